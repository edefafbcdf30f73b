package jsonstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/internal/repository"
	"github.com/medichq/medic-api/pkg/errors"
)

type appointmentRepository struct {
	store *Store
}

func NewAppointmentRepository(store *Store) repository.AppointmentRepository {
	return &appointmentRepository{store: store}
}

func (r *appointmentRepository) List(ctx context.Context) ([]model.Appointment, error) {
	l := r.store.lock(collectionAppointments)
	l.Lock()
	defer l.Unlock()

	appointments := make([]model.Appointment, 0)
	if err := r.store.load(collectionAppointments, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	l := r.store.lock(collectionAppointments)
	l.Lock()
	defer l.Unlock()

	var appointments []model.Appointment
	if err := r.store.load(collectionAppointments, &appointments); err != nil {
		return nil, err
	}
	for i := range appointments {
		if appointments[i].ID == id {
			return &appointments[i], nil
		}
	}
	return nil, errors.NotFound("appointment")
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	l := r.store.lock(collectionAppointments)
	l.Lock()
	defer l.Unlock()

	var appointments []model.Appointment
	if err := r.store.load(collectionAppointments, &appointments); err != nil {
		return err
	}
	appointments = append(appointments, *appointment)
	return r.store.save(collectionAppointments, appointments)
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	l := r.store.lock(collectionAppointments)
	l.Lock()
	defer l.Unlock()

	var appointments []model.Appointment
	if err := r.store.load(collectionAppointments, &appointments); err != nil {
		return err
	}
	for i := range appointments {
		if appointments[i].ID == appointment.ID {
			appointments[i] = *appointment
			return r.store.save(collectionAppointments, appointments)
		}
	}
	return errors.NotFound("appointment")
}
