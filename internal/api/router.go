package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/vehicles-api/docs" // swagger docs
	"github.com/99minutos/vehicles-api/internal/api/handler"
	"github.com/99minutos/vehicles-api/internal/api/middleware"
	"github.com/99minutos/vehicles-api/internal/core/domain"
	"github.com/99minutos/vehicles-api/internal/core/ports"
	"github.com/99minutos/vehicles-api/internal/pkg/validation"
)

// Dependencies holds everything the router needs to serve requests.
type Dependencies struct {
	Administrators ports.AdministratorService
	Vehicles       ports.VehicleService
	Tokens         ports.TokenIssuer
	// HealthChecks are run by GET /health/ready, keyed by dependency name.
	HealthChecks map[string]handler.HealthCheck
	// MetricsRegisterer receives the HTTP request metrics. Defaults to
	// prometheus.DefaultRegisterer.
	MetricsRegisterer prometheus.Registerer
	Logger            zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator(validation.New())
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	registerer := deps.MetricsRegisterer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string { return ulid.Make().String() },
	}))
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "vehicles_api",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Handlers ---
	adminHandler := handler.NewAdministratorHandler(deps.Administrators, deps.Tokens)
	vehicleHandler := handler.NewVehicleHandler(deps.Vehicles)
	healthHandler := handler.NewHealthHandler(deps.HealthChecks)

	auth := middleware.Auth(deps.Tokens)
	admOnly := middleware.RBAC(domain.RoleAdm)
	admOrEditor := middleware.RBAC(domain.RoleAdm, domain.RoleEditor)

	// --- Public routes ---
	e.GET("/", handler.Home)
	e.POST("/administrators/login", adminHandler.Login)

	// --- Administrators ---
	admins := e.Group("/administrators", auth, admOnly)
	admins.GET("", adminHandler.List)
	admins.GET("/:id", adminHandler.Get)
	admins.POST("", adminHandler.Create)

	// --- Vehicles ---
	vehicles := e.Group("/vehicles", auth)
	vehicles.GET("", vehicleHandler.List)
	vehicles.POST("", vehicleHandler.Create, admOrEditor)
	vehicles.GET("/:id", vehicleHandler.Get, admOrEditor)
	vehicles.PUT("/:id", vehicleHandler.Update, admOnly)
	vehicles.DELETE("/:id", vehicleHandler.Delete, admOnly)

	// --- Operations (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger emits one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
