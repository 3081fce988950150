package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/yungbote/portfolio-backend/internal/http/handlers"
	httpMW "github.com/yungbote/portfolio-backend/internal/http/middleware"
	"github.com/yungbote/portfolio-backend/internal/pkg/logger"
)

// AdminPrefix is the administrative path prefix the session gate guards.
const AdminPrefix = "/admin"

type RouterConfig struct {
	Log         *logger.Logger
	SessionGate *httpMW.SessionGate

	HealthHandler    *httpH.HealthHandler
	PortfolioHandler *httpH.PortfolioHandler
	BlogHandler      *httpH.BlogHandler
	AdminHandler     *httpH.AdminHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// The gate runs ahead of every route; outside AdminPrefix it is a no-op.
	if cfg.SessionGate != nil {
		r.Use(cfg.SessionGate.Guard())
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Public reads (static dataset)
	if cfg.PortfolioHandler != nil {
		r.GET("/profile", cfg.PortfolioHandler.GetProfile)
		r.GET("/timeline", cfg.PortfolioHandler.GetTimeline)
		r.GET("/academia", cfg.PortfolioHandler.GetAcademia)
		r.GET("/experiences", cfg.PortfolioHandler.GetExperiences)
		r.GET("/tracking", cfg.PortfolioHandler.GetTracking)
	}

	// Public reads (external provider, live per request)
	if cfg.BlogHandler != nil {
		r.GET("/blog", cfg.BlogHandler.ListPosts)
	}

	if cfg.AdminHandler != nil {
		// Diagnostic surface, deliberately outside the gated prefix.
		r.GET("/test-db", cfg.AdminHandler.TestDB)

		// Each delete is registered with and without :id so a missing
		// identifier reaches the handler's 400 instead of a router 404.
		admin := r.Group(AdminPrefix)
		admin.DELETE("/education", cfg.AdminHandler.DeleteEducation)
		admin.DELETE("/education/:id", cfg.AdminHandler.DeleteEducation)
		admin.DELETE("/experiences", cfg.AdminHandler.DeleteExperience)
		admin.DELETE("/experiences/:id", cfg.AdminHandler.DeleteExperience)
		admin.DELETE("/publications", cfg.AdminHandler.DeletePublication)
		admin.DELETE("/publications/:id", cfg.AdminHandler.DeletePublication)
	}

	return r
}
