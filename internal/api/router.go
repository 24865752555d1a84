package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rentit/campus-rentals-api/internal/api/handler"
	"github.com/rentit/campus-rentals-api/internal/api/middleware"
	"github.com/rentit/campus-rentals-api/internal/core/ports"
	"github.com/rentit/campus-rentals-api/internal/core/service"
	"github.com/rentit/campus-rentals-api/internal/infrastructure/config"
	mongorepo "github.com/rentit/campus-rentals-api/internal/infrastructure/db/mongo"
	healthhandlers "github.com/rentit/campus-rentals-api/internal/infrastructure/http/handlers"
)

// Deps are the externally constructed collaborators the router wires into
// handlers. Tests substitute any of them.
type Deps struct {
	Verifier ports.TokenVerifier
	Advisor  ports.AdvisoryClient
	Store    ports.FileStore
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, cfg *config.Config, deps Deps, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("rentals"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	listingRepo := mongorepo.NewListingRepository(db)

	identityService := service.NewIdentityService(deps.Verifier, userRepo, cfg.AllowedEmailDomain, log)
	listingService := service.NewListingService(listingRepo, deps.Store, deps.Advisor, log)

	userHandler := handler.NewUserHandler()
	listingHandler := handler.NewListingHandler(listingService)
	authRequired := middleware.Auth(identityService)

	// --- Application routes ---
	e.GET("/me", userHandler.Me, authRequired)
	e.POST("/items", listingHandler.Create, authRequired)
	e.POST("/items/upload-image", listingHandler.UploadImage, authRequired)
	e.GET("/items", listingHandler.List) // public read access

	// Uploaded images are served straight from the uploads directory; the
	// image_url values returned by upload-image resolve against this route.
	e.Static("/uploads", cfg.UploadDir)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
