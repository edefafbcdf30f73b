package emergency

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/medichq/medic-api/internal/middleware"
	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/internal/service/emergency"
	"github.com/medichq/medic-api/pkg/errors"
	"github.com/medichq/medic-api/pkg/httputil"
)

type Handler struct {
	svc *emergency.Service
}

func NewHandler(svc *emergency.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/emergencies", h.List)
	r.POST("/emergency", h.Create)
	r.PUT("/emergencies/:id", h.UpdateStatus)
}

type createResponse struct {
	model.Emergency
	Message string `json:"message"`
}

func (h *Handler) List(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		httputil.RespondWithError(c, errors.Unauthenticated("Access token required"))
		return
	}

	emergencies, err := h.svc.List(c.Request.Context(), claims)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, emergencies)
}

func (h *Handler) Create(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		httputil.RespondWithError(c, errors.Unauthenticated("Access token required"))
		return
	}

	var req model.CreateEmergencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.InvalidInput("Invalid request body"))
		return
	}

	e, err := h.svc.Create(c.Request.Context(), claims, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createResponse{
		Emergency: *e,
		Message:   "Emergency service has been notified. Help is on the way!",
	})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		httputil.RespondWithError(c, errors.Unauthenticated("Access token required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.NotFound("emergency"))
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.InvalidInput("Invalid request body"))
		return
	}

	e, err := h.svc.UpdateStatus(c.Request.Context(), claims, id, req.Status)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, e)
}
