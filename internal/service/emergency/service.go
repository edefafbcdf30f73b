package emergency

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/internal/repository"
	"github.com/medichq/medic-api/pkg/errors"
	"github.com/medichq/medic-api/pkg/validate"
)

const minLocationLen = 5

// Service handles emergency requests and the simulated dispatch transition.
type Service struct {
	repo       repository.EmergencyRepository
	dispatcher *Dispatcher
}

func NewService(repo repository.EmergencyRepository, dispatcher *Dispatcher) *Service {
	return &Service{repo: repo, dispatcher: dispatcher}
}

// List returns every emergency for admins and owner-scoped rows otherwise.
func (s *Service) List(ctx context.Context, caller *model.TokenClaims) ([]model.Emergency, error) {
	emergencies, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if caller.IsAdmin() {
		return emergencies, nil
	}

	owned := make([]model.Emergency, 0)
	for _, e := range emergencies {
		if e.UserID == caller.UserID {
			owned = append(owned, e)
		}
	}
	return owned, nil
}

func (s *Service) Create(ctx context.Context, caller *model.TokenClaims, req *model.CreateEmergencyRequest) (*model.Emergency, error) {
	if len(req.Location) < minLocationLen {
		return nil, errors.InvalidInput("Valid location is required (minimum 5 characters)")
	}
	if !validate.IsPhone(req.Phone) {
		return nil, errors.InvalidInput("Valid phone number is required")
	}
	if req.Type != "" && !model.ValidEmergencyType(req.Type) {
		return nil, errors.InvalidInput("Invalid emergency type")
	}

	emType := req.Type
	if emType == "" {
		emType = model.EmergencyTypeAmbulance
	}

	e := &model.Emergency{
		ID:          uuid.New(),
		UserID:      caller.UserID,
		Type:        emType,
		Location:    validate.Sanitize(req.Location),
		Description: validate.Sanitize(req.Description),
		Phone:       strings.TrimSpace(req.Phone),
		Status:      model.EmergencyStatusActive,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, errors.Internal(err)
	}

	s.dispatcher.Schedule(e.ID)
	return e, nil
}

// UpdateStatus is admin-only. A manual update cancels the pending
// auto-dispatch timer so the admin's decision is not overwritten.
func (s *Service) UpdateStatus(ctx context.Context, caller *model.TokenClaims, id uuid.UUID, status string) (*model.Emergency, error) {
	if !caller.IsAdmin() {
		return nil, errors.Forbidden("Admin access required")
	}

	e, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.IsCode(err, errors.ErrNotFound) {
			return nil, err
		}
		return nil, errors.Internal(err)
	}

	if status != "" {
		e.Status = status
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, errors.Internal(err)
	}

	s.dispatcher.Cancel(id)
	return e, nil
}
