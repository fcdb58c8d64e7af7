package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	campusController "eduportal_backend/internals/features/academics/campus/controller"
)

// CampusLookupRoutes serve the enrollment form's first cascade step.
func CampusLookupRoutes(r fiber.Router, db *gorm.DB) {
	ctl := campusController.NewCampusController(db)

	r.Get("/campuses", ctl.List)
}

func CampusAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := campusController.NewCampusController(db)

	r.Post("/campuses", ctl.Create)
	r.Get("/campuses", ctl.List)
	r.Get("/campuses/:id", ctl.GetByID)
	r.Put("/campuses/:id", ctl.Update)
	r.Delete("/campuses/:id", ctl.Delete)
}
