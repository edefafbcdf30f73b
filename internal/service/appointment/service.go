package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/internal/repository"
	"github.com/medichq/medic-api/pkg/errors"
	"github.com/medichq/medic-api/pkg/validate"
)

const minDoctorNameLen = 3

// Service handles appointment booking and status transitions.
type Service struct {
	repo repository.AppointmentRepository
}

func NewService(repo repository.AppointmentRepository) *Service {
	return &Service{repo: repo}
}

// List returns every appointment for admins and owner-scoped rows otherwise.
func (s *Service) List(ctx context.Context, caller *model.TokenClaims) ([]model.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if caller.IsAdmin() {
		return appointments, nil
	}

	owned := make([]model.Appointment, 0)
	for _, a := range appointments {
		if a.UserID == caller.UserID {
			owned = append(owned, a)
		}
	}
	return owned, nil
}

func (s *Service) Create(ctx context.Context, caller *model.TokenClaims, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if len(req.DoctorName) < minDoctorNameLen {
		return nil, errors.InvalidInput("Doctor name must be at least 3 characters long")
	}

	date, err := validate.ParseDate(req.Date)
	if err != nil {
		return nil, errors.InvalidInput("Invalid date format")
	}
	// Business rule on top of format validity: no booking before today,
	// with "today" taken at the UTC midnight boundary.
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return nil, errors.InvalidInput("Appointment date cannot be in the past")
	}

	if !validate.IsTime(req.Time) {
		return nil, errors.InvalidInput("Invalid time format. Use HH:MM format")
	}
	if req.Type != "" && !model.ValidAppointmentType(req.Type) {
		return nil, errors.InvalidInput("Invalid appointment type")
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Internal(err)
	}
	for _, a := range existing {
		if a.UserID == caller.UserID && a.Date == req.Date && a.Time == req.Time &&
			a.Status != model.AppointmentStatusCancelled {
			return nil, errors.Conflict("You already have an appointment at this date and time")
		}
	}

	aptType := req.Type
	if aptType == "" {
		aptType = model.AppointmentTypeConsultation
	}

	apt := &model.Appointment{
		ID:         uuid.New(),
		UserID:     caller.UserID,
		DoctorName: validate.Sanitize(req.DoctorName),
		Date:       req.Date,
		Time:       req.Time,
		Type:       aptType,
		Status:     model.AppointmentStatusPending,
		Notes:      validate.Sanitize(req.Notes),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, apt); err != nil {
		return nil, errors.Internal(err)
	}
	return apt, nil
}

// UpdateStatus applies a status transition. Admins may update any
// appointment, owners their own. The new status is applied as submitted;
// enum membership and transition ordering are not checked here, matching the
// create-only enum enforcement of the API.
func (s *Service) UpdateStatus(ctx context.Context, caller *model.TokenClaims, id uuid.UUID, status string) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.IsCode(err, errors.ErrNotFound) {
			return nil, err
		}
		return nil, errors.Internal(err)
	}

	if !caller.IsAdmin() && apt.UserID != caller.UserID {
		return nil, errors.Forbidden("Unauthorized")
	}

	if status != "" {
		apt.Status = status
	}
	if err := s.repo.Update(ctx, apt); err != nil {
		return nil, errors.Internal(err)
	}
	return apt, nil
}
