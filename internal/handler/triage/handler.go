package triage

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/internal/service/triage"
	"github.com/medichq/medic-api/pkg/errors"
	"github.com/medichq/medic-api/pkg/httputil"
)

type Handler struct {
	svc *triage.Service
}

func NewHandler(svc *triage.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/ai/symptom-checker", h.Check)
}

func (h *Handler) Check(c *gin.Context) {
	var req model.TriageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.InvalidInput("Symptoms are required"))
		return
	}

	c.JSON(http.StatusOK, h.svc.Classify(&req))
}
