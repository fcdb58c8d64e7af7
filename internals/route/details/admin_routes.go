package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduportal_backend/internals/constants"
	campusRoute "eduportal_backend/internals/features/academics/campus/route"
	courseRoute "eduportal_backend/internals/features/academics/courses/route"
	semesterRoute "eduportal_backend/internals/features/academics/semesters/route"
	attendanceRoute "eduportal_backend/internals/features/attendance/route"
	enrollmentRoute "eduportal_backend/internals/features/enrollments/route"
	noticeRoute "eduportal_backend/internals/features/notices/route"
	resourceRoute "eduportal_backend/internals/features/resources/route"
	studentRoute "eduportal_backend/internals/features/students/route"
	userRoute "eduportal_backend/internals/features/users/user/route"
	authMiddleware "eduportal_backend/internals/middlewares/auth"
)

// AdminRoutes are the console: catalog CRUD, the user and enrollment
// queues, notices, resources, and raw attendance records.
func AdminRoutes(app *fiber.App, db *gorm.DB) {
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("the admin console"),
			constants.RoleAdmin,
		),
	)

	userRoute.UserAdminRoutes(admin, db)
	campusRoute.CampusAdminRoutes(admin, db)
	semesterRoute.SemesterAdminRoutes(admin, db)
	courseRoute.CourseAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	enrollmentRoute.EnrollmentAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	noticeRoute.NoticeAdminRoutes(admin, db)
	resourceRoute.ResourceAdminRoutes(admin, db)
}
