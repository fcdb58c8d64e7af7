package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resourceController "eduportal_backend/internals/features/resources/controller"
)

func ResourceParentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := resourceController.NewLearningResourceController(db)

	r.Get("/resources", ctl.Feed)
}

func ResourceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := resourceController.NewLearningResourceController(db)

	r.Post("/resources", ctl.Create)
	r.Get("/resources", ctl.List)
	r.Put("/resources/:id", ctl.Update)
	r.Delete("/resources/:id", ctl.Delete)
	r.Post("/resources/:id/items", ctl.AddItem)
	r.Delete("/resources/items/:item_id", ctl.RemoveItem)
}
