package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/pkg/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestLoadMissingFileYieldsEmptyCollection(t *testing.T) {
	store := newTestStore(t)

	user, err := NewUserRepository(store).GetByEmail(context.Background(), "nobody@example.com")
	assert.Nil(t, user)
	assert.True(t, errors.IsCode(err, errors.ErrNotFound))
}

func TestUserCreateAndGetByEmailCaseInsensitive(t *testing.T) {
	store := newTestStore(t)
	repo := NewUserRepository(store)
	ctx := context.Background()

	user := &model.User{ID: uuid.New(), Email: "jane@example.com", Name: "Jane", Role: model.RolePatient}
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.GetByEmail(ctx, "JANE@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	found, err = repo.GetByEmail(ctx, "  jane@example.com  ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestRecordDeleteOwnedMismatchIsNoOp(t *testing.T) {
	store := newTestStore(t)
	repo := NewRecordRepository(store)
	ctx := context.Background()

	owner := uuid.New()
	stranger := uuid.New()
	rec := &model.Record{ID: uuid.New(), UserID: owner, Title: "Blood work", Description: "Annual panel results"}
	require.NoError(t, repo.Create(ctx, rec))

	// Right id, wrong owner: the row must survive.
	require.NoError(t, repo.DeleteOwned(ctx, rec.ID, stranger))
	records, err := repo.ListByUser(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	require.NoError(t, repo.DeleteOwned(ctx, rec.ID, owner))
	records, err = repo.ListByUser(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAppointmentGetUnknownIDIsNotFound(t *testing.T) {
	store := newTestStore(t)
	repo := NewAppointmentRepository(store)

	_, err := repo.Get(context.Background(), uuid.New())
	assert.True(t, errors.IsCode(err, errors.ErrNotFound))
}

func TestAppointmentUpdatePersists(t *testing.T) {
	store := newTestStore(t)
	repo := NewAppointmentRepository(store)
	ctx := context.Background()

	apt := &model.Appointment{ID: uuid.New(), UserID: uuid.New(), DoctorName: "Dr. Patel", Status: model.AppointmentStatusPending}
	require.NoError(t, repo.Create(ctx, apt))

	apt.Status = model.AppointmentStatusConfirmed
	require.NoError(t, repo.Update(ctx, apt))

	got, err := repo.Get(ctx, apt.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusConfirmed, got.Status)
}

func TestSaveWritesCollectionFileAtomically(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	repo := NewMedicineRepository(store)
	require.NoError(t, repo.Replace(context.Background(), defaultCatalog))

	data, err := os.ReadFile(filepath.Join(dir, "medicines.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Paracetamol 500mg")

	// No leftover temp files after a successful write.
	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestConcurrentCreatesLoseNoRows(t *testing.T) {
	store := newTestStore(t)
	repo := NewRecordRepository(store)
	ctx := context.Background()
	owner := uuid.New()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, &model.Record{ID: uuid.New(), UserID: owner, Title: "entry", Description: "concurrent write"})
		}()
	}
	wg.Wait()

	records, err := repo.ListByUser(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, records, n)
}
