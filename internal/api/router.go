package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/synergyvets/careers-site/internal/api/handler"
	"github.com/synergyvets/careers-site/internal/api/middleware"
	"github.com/synergyvets/careers-site/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(sessions ports.SessionService, board ports.JobsService, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := handler.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("careers"))

	// --- Handlers ---
	pagesHandler := handler.NewPagesHandler()
	jobsHandler := handler.NewJobsHandler(board, log)
	authHandler := handler.NewAuthHandler(sessions)
	dashboardHandler := handler.NewDashboardHandler()

	// --- Pages (profile cookie + session attached) ---
	pages := e.Group("", middleware.Profile(sessions))

	pages.GET("/", pagesHandler.Home)
	pages.GET("/about", pagesHandler.About)
	pages.GET("/employers", pagesHandler.Employers)
	pages.GET("/candidates", pagesHandler.Candidates)
	pages.GET("/contact", pagesHandler.Contact)

	pages.GET("/jobs", jobsHandler.List)
	pages.GET("/jobs/:slug", jobsHandler.Detail)

	pages.GET("/auth/login", authHandler.LoginForm)
	pages.POST("/auth/login", authHandler.Login)
	pages.GET("/auth/register", authHandler.RegisterForm)
	pages.POST("/auth/register", authHandler.Register)
	pages.POST("/auth/logout", authHandler.Logout)

	pages.GET("/dashboard", dashboardHandler.Dashboard, middleware.RequireAuth())
	pages.GET("/staff", dashboardHandler.Staff, middleware.RequireAuth(), middleware.RequireStaff())

	// --- Health probes and metrics (no profile cookie required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
