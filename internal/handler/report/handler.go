package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medichq/medic-api/internal/middleware"
	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/internal/service/report"
	"github.com/medichq/medic-api/pkg/errors"
	"github.com/medichq/medic-api/pkg/httputil"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/reports", h.List)
	r.POST("/reports", h.Create)
}

func (h *Handler) List(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		httputil.RespondWithError(c, errors.Unauthenticated("Access token required"))
		return
	}

	reports, err := h.svc.List(c.Request.Context(), claims)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

func (h *Handler) Create(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		httputil.RespondWithError(c, errors.Unauthenticated("Access token required"))
		return
	}

	var req model.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.InvalidInput("Title is required"))
		return
	}

	rep, err := h.svc.Create(c.Request.Context(), claims, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, rep)
}
