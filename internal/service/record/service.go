package record

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/internal/repository"
	"github.com/medichq/medic-api/pkg/errors"
	"github.com/medichq/medic-api/pkg/validate"
)

const (
	minTitleLen       = 3
	minDescriptionLen = 10
)

// Service handles personal health records. Records are strictly
// owner-scoped: even admins only see their own.
type Service struct {
	repo repository.RecordRepository
}

func NewService(repo repository.RecordRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, caller *model.TokenClaims) ([]model.Record, error) {
	records, err := s.repo.ListByUser(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return records, nil
}

func (s *Service) Create(ctx context.Context, caller *model.TokenClaims, req *model.CreateRecordRequest) (*model.Record, error) {
	if len(req.Title) < minTitleLen {
		return nil, errors.InvalidInput("Title must be at least 3 characters long")
	}
	if len(req.Description) < minDescriptionLen {
		return nil, errors.InvalidInput("Description must be at least 10 characters long")
	}
	if req.Type != "" && !model.ValidRecordType(req.Type) {
		return nil, errors.InvalidInput("Invalid record type")
	}
	if req.Date != "" && !validate.IsDate(req.Date) {
		return nil, errors.InvalidInput("Invalid date format")
	}

	now := time.Now().UTC()
	date := req.Date
	if date == "" {
		date = now.Format(time.RFC3339)
	}
	recType := req.Type
	if recType == "" {
		recType = model.RecordTypeGeneral
	}

	rec := &model.Record{
		ID:          uuid.New(),
		UserID:      caller.UserID,
		Title:       validate.Sanitize(req.Title),
		Description: validate.Sanitize(req.Description),
		Date:        date,
		Type:        recType,
		Doctor:      validate.Sanitize(req.Doctor),
		CreatedAt:   now,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, errors.Internal(err)
	}
	return rec, nil
}

// Delete removes the caller's record. A non-owned or unknown id is a silent
// no-op; the operation still reports success.
func (s *Service) Delete(ctx context.Context, caller *model.TokenClaims, id uuid.UUID) error {
	if err := s.repo.DeleteOwned(ctx, id, caller.UserID); err != nil {
		return errors.Internal(err)
	}
	return nil
}
