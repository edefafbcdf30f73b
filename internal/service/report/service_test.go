package report

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/internal/repository/jsonstore"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := jsonstore.NewStore(t.TempDir())
	require.NoError(t, err)
	return NewService(jsonstore.NewReportRepository(store))
}

func patient() *model.TokenClaims {
	return &model.TokenClaims{UserID: uuid.New(), Email: "jane@example.com", Role: model.RolePatient}
}

func TestCreateAppliesDefaultsAndSanitizes(t *testing.T) {
	svc := newTestService(t)
	me := patient()

	rep, err := svc.Create(context.Background(), me, &model.CreateReportRequest{
		Title:   "  <CBC panel>  ",
		LabName: "City Lab",
		Results: "All values within range",
	})
	require.NoError(t, err)

	assert.Equal(t, me.UserID, rep.UserID)
	assert.Equal(t, "CBC panel", rep.Title)
	assert.Equal(t, model.ReportTypeLabTest, rep.Type)
	assert.NotEmpty(t, rep.Date)
}

func TestListScopesByOwnerUnlessAdmin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	me := patient()
	other := patient()

	_, err := svc.Create(ctx, me, &model.CreateReportRequest{Title: "Mine"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, other, &model.CreateReportRequest{Title: "Theirs"})
	require.NoError(t, err)

	mine, err := svc.List(ctx, me)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Mine", mine[0].Title)

	adminCaller := &model.TokenClaims{UserID: uuid.New(), Email: "admin@medic.com", Role: model.RoleAdmin}
	all, err := svc.List(ctx, adminCaller)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
