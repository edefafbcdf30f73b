package jsonstore

import (
	"context"

	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/internal/repository"
)

type medicineRepository struct {
	store *Store
}

func NewMedicineRepository(store *Store) repository.MedicineRepository {
	return &medicineRepository{store: store}
}

func (r *medicineRepository) List(ctx context.Context) ([]model.Medicine, error) {
	l := r.store.lock(collectionMedicines)
	l.Lock()
	defer l.Unlock()

	medicines := make([]model.Medicine, 0)
	if err := r.store.load(collectionMedicines, &medicines); err != nil {
		return nil, err
	}
	return medicines, nil
}

func (r *medicineRepository) Replace(ctx context.Context, medicines []model.Medicine) error {
	l := r.store.lock(collectionMedicines)
	l.Lock()
	defer l.Unlock()

	return r.store.save(collectionMedicines, medicines)
}
