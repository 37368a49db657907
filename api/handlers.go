package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-directory/internal/analytics"
	"github.com/gcbaptista/go-directory/internal/engine"
	"github.com/gcbaptista/go-directory/internal/render"
	"github.com/gcbaptista/go-directory/services"
)

// API holds dependencies for API handlers, primarily the directory engine.
type API struct {
	directory services.Directory
	analytics *analytics.Service
	markdown  *render.Markdown
}

// NewAPI creates a new API handler structure.
func NewAPI(directory services.Directory, tracker *analytics.Service) *API {
	return &API{
		directory: directory,
		analytics: tracker,
		markdown:  render.NewMarkdown(),
	}
}

// RouterOptions configures NewRouter.
type RouterOptions struct {
	Mode          string
	AllowedOrigin string
	Logger        *slog.Logger
}

// NewRouter builds a gin engine with the middleware stack and every directory route.
func NewRouter(eng *engine.Engine, opts RouterOptions) *gin.Engine {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware(logger))
	router.Use(CORSMiddleware(opts.AllowedOrigin))

	SetupRoutes(router, eng)
	return router
}

// SetupRoutes defines all the API routes for the directory.
func SetupRoutes(router *gin.Engine, eng *engine.Engine) {
	apiHandler := NewAPI(eng, eng.Analytics())

	router.NoRoute(apiHandler.NoRouteHandler)

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Analytics route
	router.GET("/analytics", apiHandler.GetAnalyticsHandler)

	// Home page routes
	router.GET("/overview", apiHandler.OverviewHandler)
	router.GET("/news", apiHandler.NewsHandler)
	router.GET("/map", apiHandler.MapHandler)

	// List views with their facet options
	router.GET("/experts", apiHandler.ExpertsHandler)
	router.GET("/institutions", apiHandler.InstitutionsHandler)
	router.GET("/lawcase", apiHandler.LawcaseHandler)
	router.GET("/reports", apiHandler.ReportsHandler)
	router.GET("/facets/:view", apiHandler.FacetsHandler)

	// Detail routes
	router.GET("/experts/:id", apiHandler.GetExpertHandler)
	router.GET("/institutions/:id", apiHandler.GetInstitutionHandler)
	router.GET("/laws/:id", apiHandler.GetLawHandler)
	router.GET("/cases/:id", apiHandler.GetCaseHandler)
	router.GET("/reports/:id", apiHandler.GetReportHandler)

	// Global search
	router.GET("/search", apiHandler.SearchHandler)
}

// NoRouteHandler answers unknown routes with a standardized error
func (api *API) NoRouteHandler(c *gin.Context) {
	SendError(c, http.StatusNotFound, ErrorCodeRouteNotFound,
		"Route '"+c.Request.URL.Path+"' does not exist")
}
