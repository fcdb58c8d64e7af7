package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	commentController "eduportal_backend/internals/features/comments/controller"
)

func CommentParentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := commentController.NewCommentController(db)

	r.Post("/comments", ctl.ParentCreate)
	r.Get("/comments", ctl.ParentList)
}

func CommentStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctl := commentController.NewCommentController(db)

	r.Post("/comments", ctl.AssistantCreate)
	r.Get("/comments", ctl.ListBySubGroup)
}
