package jsonstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/internal/repository"
	"github.com/medichq/medic-api/pkg/errors"
)

type emergencyRepository struct {
	store *Store
}

func NewEmergencyRepository(store *Store) repository.EmergencyRepository {
	return &emergencyRepository{store: store}
}

func (r *emergencyRepository) List(ctx context.Context) ([]model.Emergency, error) {
	l := r.store.lock(collectionEmergencies)
	l.Lock()
	defer l.Unlock()

	emergencies := make([]model.Emergency, 0)
	if err := r.store.load(collectionEmergencies, &emergencies); err != nil {
		return nil, err
	}
	return emergencies, nil
}

func (r *emergencyRepository) Get(ctx context.Context, id uuid.UUID) (*model.Emergency, error) {
	l := r.store.lock(collectionEmergencies)
	l.Lock()
	defer l.Unlock()

	var emergencies []model.Emergency
	if err := r.store.load(collectionEmergencies, &emergencies); err != nil {
		return nil, err
	}
	for i := range emergencies {
		if emergencies[i].ID == id {
			return &emergencies[i], nil
		}
	}
	return nil, errors.NotFound("emergency")
}

func (r *emergencyRepository) Create(ctx context.Context, emergency *model.Emergency) error {
	l := r.store.lock(collectionEmergencies)
	l.Lock()
	defer l.Unlock()

	var emergencies []model.Emergency
	if err := r.store.load(collectionEmergencies, &emergencies); err != nil {
		return err
	}
	emergencies = append(emergencies, *emergency)
	return r.store.save(collectionEmergencies, emergencies)
}

func (r *emergencyRepository) Update(ctx context.Context, emergency *model.Emergency) error {
	l := r.store.lock(collectionEmergencies)
	l.Lock()
	defer l.Unlock()

	var emergencies []model.Emergency
	if err := r.store.load(collectionEmergencies, &emergencies); err != nil {
		return err
	}
	for i := range emergencies {
		if emergencies[i].ID == emergency.ID {
			emergencies[i] = *emergency
			return r.store.save(collectionEmergencies, emergencies)
		}
	}
	return errors.NotFound("emergency")
}
