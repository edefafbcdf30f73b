package record

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/medichq/medic-api/internal/middleware"
	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/internal/service/record"
	"github.com/medichq/medic-api/pkg/errors"
	"github.com/medichq/medic-api/pkg/httputil"
)

type Handler struct {
	svc *record.Service
}

func NewHandler(svc *record.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/records", h.List)
	r.POST("/records", h.Create)
	r.DELETE("/records/:id", h.Delete)
}

type createResponse struct {
	model.Record
	Message string `json:"message"`
}

func (h *Handler) List(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		httputil.RespondWithError(c, errors.Unauthenticated("Access token required"))
		return
	}

	records, err := h.svc.List(c.Request.Context(), claims)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *Handler) Create(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		httputil.RespondWithError(c, errors.Unauthenticated("Access token required"))
		return
	}

	var req model.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.InvalidInput("Title and description are required"))
		return
	}

	rec, err := h.svc.Create(c.Request.Context(), claims, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createResponse{Record: *rec, Message: "Record added successfully"})
}

func (h *Handler) Delete(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		httputil.RespondWithError(c, errors.Unauthenticated("Access token required"))
		return
	}

	// An unparseable id cannot match any stored record; deleting it is the
	// same silent no-op as an owner mismatch.
	id, err := uuid.Parse(c.Param("id"))
	if err == nil {
		if err := h.svc.Delete(c.Request.Context(), claims, id); err != nil {
			httputil.RespondWithError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
