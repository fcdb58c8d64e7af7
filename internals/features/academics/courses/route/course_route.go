package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "eduportal_backend/internals/features/academics/courses/controller"
)

// CourseLookupRoutes serve the enrollment form cascade: slot options by
// campus+semester+weekday, then sub-groups by slot.
func CourseLookupRoutes(r fiber.Router, db *gorm.DB) {
	slotCtl := courseController.NewCourseSlotController(db)
	subCtl := courseController.NewSubGroupController(db)

	r.Get("/slot-options", slotCtl.Options)
	r.Get("/sub-groups", subCtl.ListBySlot)
}

func CourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	courseCtl := courseController.NewCourseController(db)
	slotCtl := courseController.NewCourseSlotController(db)
	subCtl := courseController.NewSubGroupController(db)

	r.Post("/courses", courseCtl.Create)
	r.Get("/courses", courseCtl.List)
	r.Get("/courses/:id", courseCtl.GetByID)
	r.Put("/courses/:id", courseCtl.Update)
	r.Delete("/courses/:id", courseCtl.Delete)

	r.Post("/course-slots", slotCtl.Create)
	r.Get("/course-slots", slotCtl.List)
	r.Put("/course-slots/:id", slotCtl.Update)
	r.Delete("/course-slots/:id", slotCtl.Delete)

	r.Post("/sub-groups", subCtl.Create)
	r.Get("/sub-groups", subCtl.ListBySlot)
	r.Put("/sub-groups/:id", subCtl.Update)
	r.Delete("/sub-groups/:id", subCtl.Delete)
}
