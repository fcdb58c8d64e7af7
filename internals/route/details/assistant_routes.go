package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduportal_backend/internals/constants"
	attendanceRoute "eduportal_backend/internals/features/attendance/route"
	commentRoute "eduportal_backend/internals/features/comments/route"
	authMiddleware "eduportal_backend/internals/middlewares/auth"
)

// AssistantRoutes cover the weekly marking surface. Admins may mark too;
// coaches read the board but never mark, so comments sit on the wider staff
// group.
func AssistantRoutes(app *fiber.App, db *gorm.DB) {
	marker := app.Group("/api/s",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorAssistant("attendance marking"),
			constants.MarkerRoles...,
		),
	)
	attendanceRoute.AttendanceMarkerRoutes(marker, db)

	staff := app.Group("/api/s",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorStaff("the staff board"),
			constants.StaffRoles...,
		),
	)
	commentRoute.CommentStaffRoutes(staff, db)
}
