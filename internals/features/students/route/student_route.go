package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "eduportal_backend/internals/features/students/controller"
)

// StudentParentRoutes let a parent manage their own children.
func StudentParentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentController.NewStudentController(db)

	r.Post("/students", ctl.Create)
	r.Get("/students", ctl.ListMine)
	r.Put("/students/:id", ctl.Update)
}

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentController.NewStudentController(db)

	r.Get("/students", ctl.AdminList)
}
