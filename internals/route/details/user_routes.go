package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	campusRoute "eduportal_backend/internals/features/academics/campus/route"
	courseRoute "eduportal_backend/internals/features/academics/courses/route"
	semesterRoute "eduportal_backend/internals/features/academics/semesters/route"
	userRoute "eduportal_backend/internals/features/users/user/route"
	authMiddleware "eduportal_backend/internals/middlewares/auth"
)

// UserRoutes are shared by every authenticated role: the profile endpoint
// and the enrollment form's lookup cascade.
func UserRoutes(app *fiber.App, db *gorm.DB) {
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	userRoute.UserRoutes(user, db)

	lookup := user.Group("/lookup")
	campusRoute.CampusLookupRoutes(lookup, db)
	semesterRoute.SemesterLookupRoutes(lookup, db)
	courseRoute.CourseLookupRoutes(lookup, db)
}
