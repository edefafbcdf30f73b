package pharmacy

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/medichq/medic-api/internal/middleware"
	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/internal/service/pharmacy"
	"github.com/medichq/medic-api/pkg/errors"
	"github.com/medichq/medic-api/pkg/httputil"
)

type Handler struct {
	svc *pharmacy.Service
}

func NewHandler(svc *pharmacy.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterPublicRoutes exposes the catalog without authentication.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/medicines", h.ListMedicines)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/orders", h.ListOrders)
	r.POST("/orders", h.CreateOrder)
	r.PUT("/orders/:id", h.UpdateOrderStatus)
}

type createResponse struct {
	model.Order
	Message string `json:"message"`
}

func (h *Handler) ListMedicines(c *gin.Context) {
	medicines, err := h.svc.ListMedicines(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, medicines)
}

func (h *Handler) ListOrders(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		httputil.RespondWithError(c, errors.Unauthenticated("Access token required"))
		return
	}

	orders, err := h.svc.ListOrders(c.Request.Context(), claims)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		httputil.RespondWithError(c, errors.Unauthenticated("Access token required"))
		return
	}

	var req model.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.InvalidInput("Order must contain at least one item"))
		return
	}

	order, err := h.svc.CreateOrder(c.Request.Context(), claims, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createResponse{Order: *order, Message: "Order placed successfully"})
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		httputil.RespondWithError(c, errors.Unauthenticated("Access token required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.NotFound("order"))
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.InvalidInput("Invalid request body"))
		return
	}

	order, err := h.svc.UpdateOrderStatus(c.Request.Context(), claims, id, req.Status)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}
