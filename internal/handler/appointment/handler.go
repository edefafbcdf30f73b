package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/medichq/medic-api/internal/middleware"
	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/internal/service/appointment"
	"github.com/medichq/medic-api/pkg/errors"
	"github.com/medichq/medic-api/pkg/httputil"
)

type Handler struct {
	svc *appointment.Service
}

func NewHandler(svc *appointment.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/appointments", h.List)
	r.POST("/appointments", h.Create)
	r.PUT("/appointments/:id", h.UpdateStatus)
}

type createResponse struct {
	model.Appointment
	Message string `json:"message"`
}

func (h *Handler) List(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		httputil.RespondWithError(c, errors.Unauthenticated("Access token required"))
		return
	}

	appointments, err := h.svc.List(c.Request.Context(), claims)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointments)
}

func (h *Handler) Create(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		httputil.RespondWithError(c, errors.Unauthenticated("Access token required"))
		return
	}

	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.InvalidInput("Doctor name, date, and time are required"))
		return
	}

	apt, err := h.svc.Create(c.Request.Context(), claims, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createResponse{Appointment: *apt, Message: "Appointment booked successfully"})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		httputil.RespondWithError(c, errors.Unauthenticated("Access token required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.NotFound("appointment"))
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.InvalidInput("Invalid request body"))
		return
	}

	apt, err := h.svc.UpdateStatus(c.Request.Context(), claims, id, req.Status)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, apt)
}
