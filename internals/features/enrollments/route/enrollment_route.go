package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "eduportal_backend/internals/features/enrollments/controller"
)

// EnrollmentParentRoutes cover filing, listing, and cancelling the parent's
// own enrollments.
func EnrollmentParentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := enrollmentController.NewEnrollmentController(db)

	r.Post("/enrollments", ctl.Enroll)
	r.Get("/enrollments", ctl.ListMine)
	r.Post("/enrollments/:id/cancel", ctl.Cancel)
}

// EnrollmentAdminRoutes cover the console's queue: decisions, payment
// toggles, and slot/sub-group assignment.
func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := enrollmentController.NewEnrollmentController(db)

	r.Get("/enrollments", ctl.AdminList)
	r.Post("/enrollments/:id/decision", ctl.Decide)
	r.Post("/enrollments/:id/paid", ctl.SetPaid)
	r.Post("/enrollments/:id/assign", ctl.Assign)
}
