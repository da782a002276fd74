// Package server exposes the read API over the persisted snapshot, mirroring
// the historical endpoint set.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wikiweird/internal/descache"
	"wikiweird/internal/ports"
)

// Deps wires the handlers' collaborators.
type Deps struct {
	Store        ports.SnapshotStore
	Descriptions ports.DescriptionProvider
	Cache        *descache.Cache
	Logger       *slog.Logger

	// DefaultLimit bounds articles returned per country request.
	DefaultLimit int
	// RefreshDelay paces description re-fetches within one request.
	RefreshDelay time.Duration
}

// Handlers serves the API routes. The snapshot is re-read from the store per
// request so an extraction run lands without a restart.
type Handlers struct {
	store        ports.SnapshotStore
	descriptions ports.DescriptionProvider
	cache        *descache.Cache
	logger       *slog.Logger
	defaultLimit int
	refreshDelay time.Duration
}

// New builds the handler set.
func New(deps Deps) *Handlers {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	limit := deps.DefaultLimit
	if limit <= 0 {
		limit = 20
	}
	cache := deps.Cache
	if cache == nil {
		cache = descache.New(0)
	}
	return &Handlers{
		store:        deps.Store,
		descriptions: deps.Descriptions,
		cache:        cache,
		logger:       logger,
		defaultLimit: limit,
		refreshDelay: deps.RefreshDelay,
	}
}

// Router assembles the gin engine with all API routes registered.
func (h *Handlers) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), corsMiddleware())

	api := router.Group("/api")
	{
		api.GET("/countries", h.Countries)
		api.GET("/country/:country", h.CountryArticles)
		api.GET("/country/:country/details", h.CountryDetails)
		api.GET("/stats", h.Stats)
		api.GET("/health", h.Health)
		api.GET("/clear-cache", h.ClearCache)
	}

	return router
}

// corsMiddleware opens the API to browser frontends on other origins.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
