package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "eduportal_backend/internals/route/details"
)

// SetupRoutes registers every route group. Order matters only for logging.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up UserRoutes...")
	routeDetails.UserRoutes(app, db)

	log.Println("[INFO] Setting up ParentRoutes...")
	routeDetails.ParentRoutes(app, db)

	log.Println("[INFO] Setting up AssistantRoutes...")
	routeDetails.AssistantRoutes(app, db)

	log.Println("[INFO] Setting up AdminRoutes...")
	routeDetails.AdminRoutes(app, db)
}
