package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medichq/medic-api/internal/email"
	appointmentHandler "github.com/medichq/medic-api/internal/handler/appointment"
	authHandler "github.com/medichq/medic-api/internal/handler/auth"
	emergencyHandler "github.com/medichq/medic-api/internal/handler/emergency"
	pharmacyHandler "github.com/medichq/medic-api/internal/handler/pharmacy"
	recordHandler "github.com/medichq/medic-api/internal/handler/record"
	reportHandler "github.com/medichq/medic-api/internal/handler/report"
	triageHandler "github.com/medichq/medic-api/internal/handler/triage"
	"github.com/medichq/medic-api/internal/middleware"
	"github.com/medichq/medic-api/internal/repository/jsonstore"
	appointmentService "github.com/medichq/medic-api/internal/service/appointment"
	authService "github.com/medichq/medic-api/internal/service/auth"
	emergencyService "github.com/medichq/medic-api/internal/service/emergency"
	pharmacyService "github.com/medichq/medic-api/internal/service/pharmacy"
	recordService "github.com/medichq/medic-api/internal/service/record"
	reportService "github.com/medichq/medic-api/internal/service/report"
	triageService "github.com/medichq/medic-api/internal/service/triage"
	"github.com/medichq/medic-api/pkg/auth"
	"github.com/medichq/medic-api/pkg/metrics"
	"github.com/medichq/medic-api/pkg/security"
)

// newTestRouter wires the full stack against a temp data directory, the way
// the entrypoint does.
func newTestRouter(t *testing.T) *Router {
	t.Helper()

	store, err := jsonstore.NewStore(t.TempDir())
	require.NoError(t, err)

	hasher := security.NewBcryptHasher(4)
	require.NoError(t, jsonstore.EnsureSeedData(context.Background(), store, "admin@medic.com", "admin123", hasher))

	tokens := auth.NewJWTService("test-secret", time.Hour)
	mailer := email.NewService(email.Config{})

	emergencyRepo := jsonstore.NewEmergencyRepository(store)
	dispatcher := emergencyService.NewDispatcher(emergencyRepo, mailer, time.Hour)
	t.Cleanup(dispatcher.Stop)

	r := NewRouter(
		middleware.NewAuthMiddleware(tokens),
		authHandler.NewHandler(authService.NewService(jsonstore.NewUserRepository(store), hasher, tokens)),
		recordHandler.NewHandler(recordService.NewService(jsonstore.NewRecordRepository(store))),
		appointmentHandler.NewHandler(appointmentService.NewService(jsonstore.NewAppointmentRepository(store))),
		pharmacyHandler.NewHandler(pharmacyService.NewService(jsonstore.NewMedicineRepository(store), jsonstore.NewOrderRepository(store), time.Minute)),
		reportHandler.NewHandler(reportService.NewService(jsonstore.NewReportRepository(store))),
		emergencyHandler.NewHandler(emergencyService.NewService(emergencyRepo, dispatcher)),
		triageHandler.NewHandler(triageService.NewService()),
		metrics.New("medic_test"),
		middleware.DefaultCORSConfig(),
	)
	r.Setup()
	return r
}

func do(r *Router, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.Engine().ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *Router, email, password string) string {
	t.Helper()
	w := do(r, http.MethodPost, "/api/login", "", `{"email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func registerPatient(t *testing.T, r *Router, email string) string {
	t.Helper()
	w := do(r, http.MethodPost, "/api/register", "", `{"email":"`+email+`","password":"secret1","name":"Jane Doe"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestMedicinesAreAvailableWithoutToken(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/medicines", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var medicines []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &medicines))
	assert.Len(t, medicines, 5)
	assert.Equal(t, "Paracetamol 500mg", medicines[0]["name"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/api/records", "/api/appointments", "/api/orders", "/api/reports", "/api/emergencies"} {
		w := do(r, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.JSONEq(t, `{"error":"Access token required"}`, w.Body.String(), path)
	}
}

func TestRegisterBindingErrorMessage(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/register", "", `{"email":"a@b.co"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Email, password, and name are required"}`, w.Body.String())
}

func TestRegisterDuplicateReturns400(t *testing.T) {
	r := newTestRouter(t)
	registerPatient(t, r, "jane@example.com")

	w := do(r, http.MethodPost, "/api/register", "", `{"email":"jane@example.com","password":"secret1","name":"Jane"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"User with this email already exists"}`, w.Body.String())
}

func TestSeededAdminCanLogin(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "admin@medic.com", "admin123")
	assert.NotEmpty(t, token)
}

func TestRecordLifecycle(t *testing.T) {
	r := newTestRouter(t)
	token := registerPatient(t, r, "jane@example.com")

	w := do(r, http.MethodPost, "/api/records", token, `{"title":"Blood work","description":"Annual panel results"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Record added successfully", created.Message)

	w = do(r, http.MethodGet, "/api/records", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Len(t, records, 1)

	// Deleting an unknown id still reports success.
	w = do(r, http.MethodDelete, "/api/records/not-a-uuid", token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = do(r, http.MethodDelete, "/api/records/"+created.ID, token, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/records", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestOrderFlowEndToEnd(t *testing.T) {
	r := newTestRouter(t)
	patientToken := registerPatient(t, r, "jane@example.com")
	adminToken := login(t, r, "admin@medic.com", "admin123")

	w := do(r, http.MethodPost, "/api/orders", patientToken,
		`{"items":[{"medicineId":"1","quantity":2}],"address":"221B Baker Street, London","phone":"123-456-7890"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID      string  `json:"id"`
		Total   float64 `json:"total"`
		Status  string  `json:"status"`
		Message string  `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 100.0, created.Total)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, "Order placed successfully", created.Message)

	// Owner cannot change status; admin can.
	w = do(r, http.MethodPut, "/api/orders/"+created.ID, patientToken, `{"status":"shipped"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Admin access required"}`, w.Body.String())

	w = do(r, http.MethodPut, "/api/orders/"+created.ID, adminToken, `{"status":"shipped"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/orders", patientToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	var orders []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "shipped", orders[0]["status"])
}

func TestSymptomCheckerEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := registerPatient(t, r, "jane@example.com")

	w := do(r, http.MethodPost, "/api/ai/symptom-checker", token, `{"symptoms":["fever","headache"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		PossibleConditions []string `json:"possibleConditions"`
		Severity           string   `json:"severity"`
		Recommendation     string   `json:"recommendation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "moderate", result.Severity)
	assert.Equal(t, "Schedule an appointment with a doctor soon", result.Recommendation)
	assert.Equal(t, []string{"Common Cold", "Flu", "Infection"}, result.PossibleConditions)

	w = do(r, http.MethodPost, "/api/ai/symptom-checker", token, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Symptoms are required"}`, w.Body.String())
}

func TestEmergencyCreateResponseMessage(t *testing.T) {
	r := newTestRouter(t)
	token := registerPatient(t, r, "jane@example.com")

	w := do(r, http.MethodPost, "/api/emergency", token, `{"location":"221B Baker Street","phone":"123-456-7890"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Type    string `json:"type"`
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "ambulance", created.Type)
	assert.Equal(t, "active", created.Status)
	assert.Equal(t, "Emergency service has been notified. Help is on the way!", created.Message)
}
