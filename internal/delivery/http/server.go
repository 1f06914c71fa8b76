package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/config"
	"github.com/horecaseek-service/internal/delivery/http/handler"
	"github.com/horecaseek-service/internal/delivery/http/middleware"
	"github.com/horecaseek-service/internal/domain"
	apperrors "github.com/horecaseek-service/internal/pkg/errors"
	"github.com/horecaseek-service/internal/pkg/utils"
)

// Server - HTTP server built on Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	estHandler     *handler.EstablishmentHandler
	spotHandler    *handler.SpotHandler
	searchHandler  *handler.SearchHandler
	accountHandler *handler.AccountHandler
	statsHandler   *handler.StatsHandler
	healthHandler  *handler.HealthHandler
}

// NewServer - creates a new HTTP server
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	estHandler *handler.EstablishmentHandler,
	spotHandler *handler.SpotHandler,
	searchHandler *handler.SearchHandler,
	accountHandler *handler.AccountHandler,
	statsHandler *handler.StatsHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "HorecaSeek Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		authHandler:    authHandler,
		profileHandler: profileHandler,
		estHandler:     estHandler,
		spotHandler:    spotHandler,
		searchHandler:  searchHandler,
		accountHandler: accountHandler,
		statsHandler:   statsHandler,
		healthHandler:  healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - middleware chain; the session gate runs last so every
// route below it sees the resolved identity.
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	s.app.Use(middleware.SessionGate(s.config.Auth.JWTSecret, s.logger))
}

// setupRoutes - route table mirroring the public/protected URL space
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Service info at the root (public landing)
	s.app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service":    "horecaseek",
			"categories": domain.Categories,
		})
	})

	// Public category pages
	s.app.Get("/restaurants", s.estHandler.ListByCategory(domain.CategoryRestaurant))
	s.app.Get("/bars", s.estHandler.ListByCategory(domain.CategoryBar))
	s.app.Get("/traiteurs", s.estHandler.ListByCategory(domain.CategoryTraiteur))
	s.app.Get("/hotels", s.estHandler.ListByCategory(domain.CategoryHotel))

	// Public listings
	s.app.Get("/spots", s.spotHandler.ListAll)
	s.app.Get("/spots/:id", s.spotHandler.GetByID)
	s.app.Post("/spots/:id/vote", s.spotHandler.Vote)
	s.app.Get("/establishment/:id", s.estHandler.GetByID)
	s.app.Post("/establishment/:id/vote", s.estHandler.Vote)

	// Search
	s.app.Get("/search", s.searchHandler.Search)

	// Auth
	auth := s.app.Group("/auth")
	auth.Post("/signup", s.authHandler.SignUp)
	auth.Get("/confirm", s.authHandler.Confirm)
	auth.Post("/login", s.authHandler.Login)
	auth.Post("/refresh", s.authHandler.Refresh)
	auth.Post("/logout", s.authHandler.Logout)
	auth.Get("/login", func(c *fiber.Ctx) error {
		// Landing for gate redirects; browsers POST back here to log in.
		return c.JSON(fiber.Map{"login": "POST /auth/login"})
	})

	// Protected area. The gate already redirected anonymous browsers;
	// handlers still re-check the identity themselves.
	protected := s.app.Group("/protected")
	protected.Get("/account", s.accountHandler.GetAccountView)
	protected.Get("/profile", s.profileHandler.GetOwn)
	protected.Post("/profile", s.profileHandler.Upsert)
	protected.Get("/establishment", s.estHandler.ListMine)
	protected.Post("/establishment", s.estHandler.Create)
	protected.Put("/establishment/:id", s.estHandler.Update)
	protected.Get("/spot", s.spotHandler.ListMine)
	protected.Post("/spot", s.spotHandler.Create)
	protected.Put("/spot/:id", s.spotHandler.Update)

	// Service API
	api := s.app.Group("/api/v1")
	api.Get("/health", s.healthHandler.Health)
	api.Get("/stats", s.statsHandler.GetStatistics)
}

// Start - starts the HTTP server
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown of the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - fallback for errors that escape the handlers. An
// AppError keeps its own code and status here instead of flattening to 500.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", appErr.StatusCode),
				zap.Error(err),
			)
			return utils.SendError(c, appErr)
		}

		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
