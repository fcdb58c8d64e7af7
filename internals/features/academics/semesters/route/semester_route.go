package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	semesterController "eduportal_backend/internals/features/academics/semesters/controller"
)

func SemesterLookupRoutes(r fiber.Router, db *gorm.DB) {
	ctl := semesterController.NewSemesterController(db)

	r.Get("/semesters", ctl.List)
}

func SemesterAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := semesterController.NewSemesterController(db)

	r.Post("/semesters", ctl.Create)
	r.Get("/semesters", ctl.List)
	r.Get("/semesters/:id", ctl.GetByID)
	r.Put("/semesters/:id", ctl.Update)
	r.Delete("/semesters/:id", ctl.Delete)
}
