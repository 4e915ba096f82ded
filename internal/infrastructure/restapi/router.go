package restapi

import (
	"time"

	"enterl2_explorer/internal/infrastructure/configloader"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter настраивает и возвращает экземпляр Gin роутера.
func SetupRouter(h *ExplorerHandler, cfg *configloader.Config, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), ZapLogger(logger), Metrics())

	corsCfg := cors.DefaultConfig()
	if len(cfg.Server.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.Server.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{"GET", "HEAD", "OPTIONS"}
	corsCfg.ExposeHeaders = []string{requestIDHeader}
	corsCfg.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsCfg))

	router.SetHTMLTemplate(parseTemplates(time.Now))

	router.GET("/healthz", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// everything below reaches upstream
	pages := router.Group("/")
	if cfg.RateLimit.RequestsPerSecond > 0 {
		pages.Use(RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}
	{
		pages.GET("/", h.Home)
		pages.GET("/search", h.Search)
		pages.GET("/tx/:hash", h.Transaction)
		pages.GET("/block/:id", h.Block)
		pages.GET("/address/:address", h.Address)
		pages.GET("/batch/:id", h.Batch)
		pages.GET("/batches", h.Batches)
		pages.GET("/name/:name", h.Name)
	}

	apiV1 := pages.Group("/api/v1")
	{
		apiV1.GET("/classify", h.ClassifyHandler)
		apiV1.GET("/search", h.SearchHandler)
	}

	router.NoRoute(h.NotFound)
	return router
}
