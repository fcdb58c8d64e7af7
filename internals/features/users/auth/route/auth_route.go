package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "eduportal_backend/internals/features/users/auth/controller"
	"eduportal_backend/internals/middlewares"
)

// AuthRoutes are the only unauthenticated endpoints besides /health.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/refresh-token", ctl.RefreshToken)
}
