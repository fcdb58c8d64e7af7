package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "eduportal_backend/internals/features/attendance/controller"
)

// AttendanceMarkerRoutes are the assistant's weekly surface: the matrix,
// single and bulk marks, and the exports.
func AttendanceMarkerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attendanceController.NewAttendanceController(db)

	r.Get("/attendance/table", ctl.Table)
	r.Post("/attendance/mark", ctl.Mark)
	r.Post("/attendance/week/mark", ctl.MarkWeek)
	r.Post("/attendance/week/clear", ctl.ClearWeek)
	r.Get("/attendance/export", ctl.Export)
}

// AttendanceAdminRoutes expose raw record access for the console.
func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attendanceController.NewAttendanceAdminController(db)

	r.Get("/attendance/records", ctl.List)
	r.Put("/attendance/records/:id", ctl.Update)
	r.Delete("/attendance/records/:id", ctl.Delete)
}
