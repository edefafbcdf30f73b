package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/medichq/medic-api/internal/model"
)

// Repositories expose load/append/update access to one collection each.
// Row-level scoping (ownership, admin visibility) is applied by the services.

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

type RecordRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Record, error)
	Create(ctx context.Context, record *model.Record) error
	// DeleteOwned removes the record only when id and owner both match;
	// a mismatch is a silent no-op.
	DeleteOwned(ctx context.Context, id, userID uuid.UUID) error
}

type AppointmentRepository interface {
	List(ctx context.Context) ([]model.Appointment, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	Create(ctx context.Context, appointment *model.Appointment) error
	Update(ctx context.Context, appointment *model.Appointment) error
}

type MedicineRepository interface {
	List(ctx context.Context) ([]model.Medicine, error)
	Replace(ctx context.Context, medicines []model.Medicine) error
}

type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Order, error)
	Create(ctx context.Context, order *model.Order) error
	Update(ctx context.Context, order *model.Order) error
}

type ReportRepository interface {
	List(ctx context.Context) ([]model.Report, error)
	Create(ctx context.Context, report *model.Report) error
}

type EmergencyRepository interface {
	List(ctx context.Context) ([]model.Emergency, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Emergency, error)
	Create(ctx context.Context, emergency *model.Emergency) error
	Update(ctx context.Context, emergency *model.Emergency) error
}
