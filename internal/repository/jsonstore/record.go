package jsonstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/internal/repository"
)

type recordRepository struct {
	store *Store
}

func NewRecordRepository(store *Store) repository.RecordRepository {
	return &recordRepository{store: store}
}

func (r *recordRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Record, error) {
	l := r.store.lock(collectionRecords)
	l.Lock()
	defer l.Unlock()

	var records []model.Record
	if err := r.store.load(collectionRecords, &records); err != nil {
		return nil, err
	}

	owned := make([]model.Record, 0)
	for _, rec := range records {
		if rec.UserID == userID {
			owned = append(owned, rec)
		}
	}
	return owned, nil
}

func (r *recordRepository) Create(ctx context.Context, record *model.Record) error {
	l := r.store.lock(collectionRecords)
	l.Lock()
	defer l.Unlock()

	var records []model.Record
	if err := r.store.load(collectionRecords, &records); err != nil {
		return err
	}
	records = append(records, *record)
	return r.store.save(collectionRecords, records)
}

// DeleteOwned keeps every row that does not match both id and owner, so a
// non-owner delete leaves the collection untouched.
func (r *recordRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) error {
	l := r.store.lock(collectionRecords)
	l.Lock()
	defer l.Unlock()

	var records []model.Record
	if err := r.store.load(collectionRecords, &records); err != nil {
		return err
	}

	kept := make([]model.Record, 0, len(records))
	for _, rec := range records {
		if rec.ID == id && rec.UserID == userID {
			continue
		}
		kept = append(kept, rec)
	}
	return r.store.save(collectionRecords, kept)
}
