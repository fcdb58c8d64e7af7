package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	noticeController "eduportal_backend/internals/features/notices/controller"
)

func NoticeParentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := noticeController.NewClassNoticeController(db)

	r.Get("/notices", ctl.Feed)
}

func NoticeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := noticeController.NewClassNoticeController(db)

	r.Post("/notices", ctl.Create)
	r.Get("/notices", ctl.List)
	r.Put("/notices/:id", ctl.Update)
	r.Delete("/notices/:id", ctl.Delete)
}
