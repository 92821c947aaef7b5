package api

import (
	"sync"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/neondash/dashboard/internal/api/handler"
	"github.com/neondash/dashboard/internal/api/middleware"
	"github.com/neondash/dashboard/internal/core/domain"
	"github.com/neondash/dashboard/internal/core/ports"
	"github.com/neondash/dashboard/internal/infrastructure/http/handlers"

	_ "github.com/neondash/dashboard/docs"
)

const metricsSubsystem = "neondash"

// The echoprometheus collectors live in the default registry, so the
// middleware is built once per process and shared by every router.
var httpMetrics = sync.OnceValue(func() echo.MiddlewareFunc {
	return echoprometheus.NewMiddleware(metricsSubsystem)
})

// Dependencies is everything the dashboard API routes need.
type Dependencies struct {
	Log         zerolog.Logger
	JWTSecret   string
	Revocations ports.TokenRevoker
	Auth        ports.AuthService
	Profiles    ports.ProfileService
	Focus       ports.FocusService
	Ticker      ports.TickerService
	Checkout    ports.CheckoutCreator
	Health      map[string]handlers.Check
	Swagger     bool
}

// NewRouter builds the dashboard API with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	e := newEcho(d.Log)

	if d.Swagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}
	registerHealth(e, d.Health)

	authMiddleware := middleware.Auth(d.JWTSecret, d.Revocations)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(d.Auth)
	e.POST("/auth/signup", authHandler.SignUp)
	e.POST("/auth/signin", authHandler.SignIn)
	e.POST("/auth/signout", authHandler.SignOut, authMiddleware)
	e.GET("/auth/session", authHandler.Session, authMiddleware)

	// --- Public dashboard data ---
	v1 := e.Group("/v1")
	v1.GET("/links", handler.Links)
	v1.GET("/ticker", handler.NewTickerHandler(d.Ticker).Get)

	// --- Per-user routes ---
	user := v1.Group("", authMiddleware)

	user.GET("/profile", handler.NewProfileHandler(d.Profiles).Get)

	focusHandler := handler.NewFocusHandler(d.Focus)
	user.GET("/focus", focusHandler.List)
	user.POST("/focus", focusHandler.Create)
	user.PATCH("/focus/:id", focusHandler.Update)
	user.DELETE("/focus/:id", focusHandler.Delete)

	billingHandler := handler.NewBillingHandler(d.Checkout)
	user.POST("/billing/checkout", billingHandler.Checkout, middleware.RequireTier(d.Profiles, domain.TierStandard))

	return e
}

// NewWebhookRouter builds the payment webhook endpoint. Path is registered
// for every method; the handler rejects anything but POST.
func NewWebhookRouter(log zerolog.Logger, path string, webhook *handler.WebhookHandler, health map[string]handlers.Check) *echo.Echo {
	e := newEcho(log)
	registerHealth(e, health)
	e.Any(path, webhook.Receive)
	return e
}

func newEcho(log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(httpMetrics())

	e.GET("/metrics", echoprometheus.NewHandler())
	return e
}

func registerHealth(e *echo.Echo, checks map[string]handlers.Check) {
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(checks)

	e.GET("/health", healthHandler.Liveness)            // liveness
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness
}
