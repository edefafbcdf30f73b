package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/internal/repository"
	"github.com/medichq/medic-api/pkg/errors"
	"github.com/medichq/medic-api/pkg/validate"
)

// Service handles diagnostic report storage. Reports are read-only once
// created.
type Service struct {
	repo repository.ReportRepository
}

func NewService(repo repository.ReportRepository) *Service {
	return &Service{repo: repo}
}

// List returns every report for admins and owner-scoped rows otherwise.
func (s *Service) List(ctx context.Context, caller *model.TokenClaims) ([]model.Report, error) {
	reports, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if caller.IsAdmin() {
		return reports, nil
	}

	owned := make([]model.Report, 0)
	for _, r := range reports {
		if r.UserID == caller.UserID {
			owned = append(owned, r)
		}
	}
	return owned, nil
}

func (s *Service) Create(ctx context.Context, caller *model.TokenClaims, req *model.CreateReportRequest) (*model.Report, error) {
	now := time.Now().UTC()
	repType := req.Type
	if repType == "" {
		repType = model.ReportTypeLabTest
	}
	date := req.Date
	if date == "" {
		date = now.Format(time.RFC3339)
	}

	rep := &model.Report{
		ID:        uuid.New(),
		UserID:    caller.UserID,
		Title:     validate.Sanitize(req.Title),
		Type:      repType,
		LabName:   validate.Sanitize(req.LabName),
		Results:   validate.Sanitize(req.Results),
		Date:      date,
		CreatedAt: now,
	}
	if err := s.repo.Create(ctx, rep); err != nil {
		return nil, errors.Internal(err)
	}
	return rep, nil
}
