package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduportal_backend/internals/constants"
	commentRoute "eduportal_backend/internals/features/comments/route"
	enrollmentRoute "eduportal_backend/internals/features/enrollments/route"
	noticeRoute "eduportal_backend/internals/features/notices/route"
	resourceRoute "eduportal_backend/internals/features/resources/route"
	studentRoute "eduportal_backend/internals/features/students/route"
	authMiddleware "eduportal_backend/internals/middlewares/auth"
)

// ParentRoutes gather everything a parent does: children, enrollments, the
// notice and resource feeds, and the comment board.
func ParentRoutes(app *fiber.App, db *gorm.DB) {
	parent := app.Group("/api/p",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorParent("the parent portal"),
			constants.RoleParent,
		),
	)

	studentRoute.StudentParentRoutes(parent, db)
	enrollmentRoute.EnrollmentParentRoutes(parent, db)
	noticeRoute.NoticeParentRoutes(parent, db)
	resourceRoute.ResourceParentRoutes(parent, db)
	commentRoute.CommentParentRoutes(parent, db)
}
