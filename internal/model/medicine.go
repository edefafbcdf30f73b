package model

// Medicine is a pharmacy catalog entry. The catalog is seeded at first boot
// and read-only through the API; stock is checked at order time but never
// decremented (a known quirk of the ordering flow).
type Medicine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Pharmacy string  `json:"pharmacy"`
}
