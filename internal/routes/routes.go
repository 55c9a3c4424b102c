package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/lunahq/accounts-api/internal/config"
	"github.com/lunahq/accounts-api/internal/handlers"
	"github.com/lunahq/accounts-api/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	usersHandler *handlers.UsersHandler,
	filesHandler *handlers.FilesHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	v1 := api.Group("/v1")

	// Auth is public, with a stricter rate limit: 10 req/min per IP
	auth := v1.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/email/login", authHandler.EmailLogin)
	auth.Post("/admin/email/login", authHandler.AdminEmailLogin)
	auth.Post("/email/register", authHandler.Register)
	auth.Post("/email/confirm", authHandler.ConfirmEmail)
	auth.Post("/forgot/password", authHandler.ForgotPassword)
	auth.Post("/reset/password", authHandler.ResetPassword)
	auth.Post("/social/login", authHandler.SocialLogin)

	// Profile routes (JWT required) - apply middleware per route so the
	// public auth routes above stay public
	v1.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)
	v1.Patch("/auth/me", middleware.JWTProtected(cfg), authHandler.UpdateMe)
	v1.Delete("/auth/me", middleware.JWTProtected(cfg), authHandler.DeleteMe)

	// Files
	v1.Post("/files/upload", middleware.JWTProtected(cfg), filesHandler.Upload)
	v1.Get("/files/:path", filesHandler.Serve)

	// Admin panel (protected + admin required)
	admin := v1.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db))
	admin.Get("/users", usersHandler.List)
	admin.Post("/users", usersHandler.Create)
	admin.Get("/users/:id", usersHandler.Get)
	admin.Patch("/users/:id", usersHandler.Update)
	admin.Delete("/users/:id", usersHandler.Delete)
}
