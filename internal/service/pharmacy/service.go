package pharmacy

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/internal/repository"
	"github.com/medichq/medic-api/pkg/errors"
	"github.com/medichq/medic-api/pkg/validate"
)

const (
	minAddressLen   = 10
	catalogCacheKey = "catalog"
)

// Service handles the medicine catalog and pharmacy orders. The catalog is
// seeded once and read-only, so catalog reads go through a TTL cache.
// Stock is verified per item at order time but not decremented on success.
type Service struct {
	medicineRepo repository.MedicineRepository
	orderRepo    repository.OrderRepository
	catalog      *gocache.Cache
}

func NewService(medicineRepo repository.MedicineRepository, orderRepo repository.OrderRepository, catalogTTL time.Duration) *Service {
	return &Service{
		medicineRepo: medicineRepo,
		orderRepo:    orderRepo,
		catalog:      gocache.New(catalogTTL, 2*catalogTTL),
	}
}

func (s *Service) ListMedicines(ctx context.Context) ([]model.Medicine, error) {
	if cached, ok := s.catalog.Get(catalogCacheKey); ok {
		return cached.([]model.Medicine), nil
	}

	medicines, err := s.medicineRepo.List(ctx)
	if err != nil {
		return nil, errors.Internal(err)
	}
	s.catalog.SetDefault(catalogCacheKey, medicines)
	return medicines, nil
}

// ListOrders returns every order for admins and owner-scoped rows otherwise.
func (s *Service) ListOrders(ctx context.Context, caller *model.TokenClaims) ([]model.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if caller.IsAdmin() {
		return orders, nil
	}

	owned := make([]model.Order, 0)
	for _, o := range orders {
		if o.UserID == caller.UserID {
			owned = append(owned, o)
		}
	}
	return owned, nil
}

// CreateOrder validates every line item and collects all violations into one
// combined error. Any invalid item fails the whole order; nothing is
// persisted and the total covers only the validated pass.
func (s *Service) CreateOrder(ctx context.Context, caller *model.TokenClaims, req *model.CreateOrderRequest) (*model.Order, error) {
	if len(req.Items) == 0 {
		return nil, errors.InvalidInput("Order must contain at least one item")
	}
	if len(req.Address) < minAddressLen {
		return nil, errors.InvalidInput("Valid address is required (minimum 10 characters)")
	}
	if !validate.IsPhone(req.Phone) {
		return nil, errors.InvalidInput("Valid phone number is required")
	}

	medicines, err := s.medicineRepo.List(ctx)
	if err != nil {
		return nil, errors.Internal(err)
	}
	byID := make(map[string]model.Medicine, len(medicines))
	for _, m := range medicines {
		byID[m.ID] = m
	}

	var (
		total    float64
		items    []model.OrderItem
		problems []string
	)
	for _, item := range req.Items {
		if item.MedicineID == "" || item.Quantity == 0 {
			problems = append(problems, "Each item must have medicineId and quantity")
			continue
		}
		if item.Quantity < model.MinOrderQuantity || item.Quantity > model.MaxOrderQuantity {
			problems = append(problems, fmt.Sprintf("Invalid quantity for medicine %s. Must be between 1 and 100", item.MedicineID))
			continue
		}
		medicine, ok := byID[item.MedicineID]
		if !ok {
			problems = append(problems, fmt.Sprintf("Medicine with ID %s not found", item.MedicineID))
			continue
		}
		if medicine.Stock < item.Quantity {
			problems = append(problems, fmt.Sprintf("Insufficient stock for %s. Available: %d", medicine.Name, medicine.Stock))
			continue
		}

		total += medicine.Price * float64(item.Quantity)
		items = append(items, model.OrderItem{
			MedicineID:   item.MedicineID,
			Quantity:     item.Quantity,
			MedicineName: medicine.Name,
			Price:        medicine.Price,
		})
	}

	if len(problems) > 0 {
		return nil, errors.InvalidInput(strings.Join(problems, ", "))
	}
	if len(items) == 0 {
		return nil, errors.InvalidInput("No valid items in order")
	}

	order := &model.Order{
		ID:        uuid.New(),
		UserID:    caller.UserID,
		Items:     items,
		Total:     math.Round(total*100) / 100,
		Address:   validate.Sanitize(req.Address),
		Phone:     strings.TrimSpace(req.Phone),
		Status:    model.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Internal(err)
	}
	return order, nil
}

// UpdateOrderStatus is admin-only regardless of ownership. The new status is
// applied as submitted; enum membership is not checked on transition.
func (s *Service) UpdateOrderStatus(ctx context.Context, caller *model.TokenClaims, id uuid.UUID, status string) (*model.Order, error) {
	if !caller.IsAdmin() {
		return nil, errors.Forbidden("Admin access required")
	}

	order, err := s.orderRepo.Get(ctx, id)
	if err != nil {
		if errors.IsCode(err, errors.ErrNotFound) {
			return nil, err
		}
		return nil, errors.Internal(err)
	}

	if status != "" {
		order.Status = status
	}
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Internal(err)
	}
	return order, nil
}
