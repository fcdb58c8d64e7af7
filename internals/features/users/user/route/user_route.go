package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "eduportal_backend/internals/features/users/user/controller"
)

// UserRoutes hang the self-service profile endpoints on any authenticated
// group.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)

	r.Get("/me", ctl.Me)
}

// UserAdminRoutes expose the approval queue and user management on the admin
// group.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)

	r.Get("/users", ctl.List)
	r.Post("/users/:id/approval", ctl.SetApproval)
	r.Put("/users/:id", ctl.Update)
}
