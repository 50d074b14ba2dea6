package router

import (
	"github.com/gin-gonic/gin"

	"smartcarbon/internal/handler"
	"smartcarbon/internal/middleware"
)

// Handlers groups every HTTP handler mounted by Setup.
type Handlers struct {
	Health   *handler.HealthHandler
	Category *handler.CategoryHandler
	Session  *handler.SessionHandler
	Document *handler.DocumentHandler
	Report   *handler.ReportHandler
	Insight  *handler.InsightHandler
	Export   *handler.ExportHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(h Handlers, allowedOrigins []string) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	v1 := r.Group("/api/v1")
	v1.GET("/categories", h.Category.List)
	v1.POST("/sessions", h.Session.Create)

	// Session-scoped routes
	session := v1.Group("/sessions/:session_id")
	session.Use(middleware.SessionContext())
	session.GET("", h.Session.Get)
	session.DELETE("", h.Session.Delete)
	session.PUT("/credential", h.Session.SetCredential)

	session.POST("/extract", h.Document.ExtractUpload)
	session.POST("/extract/text", h.Document.ExtractText)
	session.POST("/documents", h.Document.Record)
	session.GET("/documents", h.Document.List)

	session.GET("/dashboard", h.Report.Dashboard)
	session.GET("/compliance", h.Report.Compliance)
	session.GET("/recommendations", h.Report.Recommendations)

	session.POST("/insights", h.Insight.Generate)
	session.GET("/export", h.Export.Export)

	return r
}
