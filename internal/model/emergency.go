package model

import (
	"time"

	"github.com/google/uuid"
)

// Emergency type constants
const (
	EmergencyTypeAmbulance = "ambulance"
	EmergencyTypeMedical   = "medical_emergency"
	EmergencyTypeAccident  = "accident"
	EmergencyTypeFire      = "fire"
	EmergencyTypePolice    = "police"
)

// Emergency status constants
const (
	EmergencyStatusActive     = "active"
	EmergencyStatusDispatched = "dispatched"
)

var emergencyTypes = []string{
	EmergencyTypeAmbulance,
	EmergencyTypeMedical,
	EmergencyTypeAccident,
	EmergencyTypeFire,
	EmergencyTypePolice,
}

// ValidEmergencyType reports whether t is a known emergency type.
func ValidEmergencyType(t string) bool {
	for _, v := range emergencyTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Emergency represents a logged emergency request. It auto-transitions from
// active to dispatched after a fixed delay unless an admin updates it first.
type Emergency struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Type        string    `json:"type"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Phone       string    `json:"phone"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateEmergencyRequest represents emergency request parameters.
type CreateEmergencyRequest struct {
	Location    string `json:"location"`
	Phone       string `json:"phone"`
	Type        string `json:"type"`
	Description string `json:"description"`
}
