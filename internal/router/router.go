package router

import (
	"github.com/gin-gonic/gin"

	"github.com/medichq/medic-api/internal/handler"
	"github.com/medichq/medic-api/internal/middleware"
	"github.com/medichq/medic-api/pkg/metrics"
)

// Handler registers its routes on a group.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

// PublicHandler additionally registers unauthenticated routes.
type PublicHandler interface {
	Handler
	RegisterPublicRoutes(*gin.RouterGroup)
}

type Router struct {
	engine       *gin.Engine
	auth         *middleware.AuthMiddleware
	authH        Handler
	recordH      Handler
	appointmentH Handler
	pharmacyH    PublicHandler
	reportH      Handler
	emergencyH   Handler
	triageH      Handler
	metrics      *metrics.Metrics
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	authH Handler,
	recordH Handler,
	appointmentH Handler,
	pharmacyH PublicHandler,
	reportH Handler,
	emergencyH Handler,
	triageH Handler,
	m *metrics.Metrics,
	cors middleware.CORSConfig,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	r := &Router{
		engine:       engine,
		auth:         auth,
		authH:        authH,
		recordH:      recordH,
		appointmentH: appointmentH,
		pharmacyH:    pharmacyH,
		reportH:      reportH,
		emergencyH:   emergencyH,
		triageH:      triageH,
		metrics:      m,
	}

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		m.Middleware(),
		middleware.CORS(cors),
	)

	return r
}

// Setup wires the full route table.
func (r *Router) Setup() {
	r.engine.GET("/health", handler.HealthCheck)
	r.engine.GET("/metrics", r.metrics.Handler())

	api := r.engine.Group("/api")
	r.authH.RegisterRoutes(api)
	r.pharmacyH.RegisterPublicRoutes(api)

	authed := r.engine.Group("/api")
	authed.Use(r.auth.Authenticate())
	r.recordH.RegisterRoutes(authed)
	r.appointmentH.RegisterRoutes(authed)
	r.pharmacyH.RegisterRoutes(authed)
	r.reportH.RegisterRoutes(authed)
	r.emergencyH.RegisterRoutes(authed)
	r.triageH.RegisterRoutes(authed)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
