package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"traveldesigner/internal/api/controllers"
	"traveldesigner/internal/api/views"
	"traveldesigner/internal/infra"
	"traveldesigner/pkg/middleware"
)

// NewRouter builds the engine with middleware, templates and routes.
func NewRouter(
	cfg *infra.AppConfig,
	logger *zap.Logger,
	reg *prometheus.Registry,
	plannerController *controllers.PlannerController) *gin.Engine {

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())
	r.SetHTMLTemplate(views.Templates())

	RegisterRoutes(r, reg, plannerController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	reg *prometheus.Registry,
	plannerController *controllers.PlannerController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	r.GET("/", plannerController.IndexHandler)
	r.POST("/plan", plannerController.PlanFormHandler)

	apiGroup := r.Group("/api/v1")
	apiGroup.POST("/plans", plannerController.PlanTripHandler)
}
