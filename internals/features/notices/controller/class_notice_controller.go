package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollmentModel "eduportal_backend/internals/features/enrollments/model"
	"eduportal_backend/internals/features/notices/dto"
	"eduportal_backend/internals/features/notices/model"
	helper "eduportal_backend/internals/helpers"
)

type ClassNoticeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassNoticeController(db *gorm.DB) *ClassNoticeController {
	return &ClassNoticeController{DB: db, Validator: validator.New()}
}

func userIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in context")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in context")
	}
	return id, nil
}

// Create posts a notice on a slot (admin).
func (ctl *ClassNoticeController) Create(c *fiber.Ctx) error {
	adminID, err := userIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.NoticeCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	notice := req.ToModel(adminID)
	if err := ctl.DB.WithContext(c.Context()).Create(&notice).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Notice created", dto.FromModel(notice))
}

// List returns notices, optionally narrowed by ?slot_id= (admin).
func (ctl *ClassNoticeController) List(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.Context()).Model(&model.ClassNoticeModel{})
	if slotID, err := helper.ParseOptionalUUIDQuery(c, "slot_id"); err != nil {
		return helper.FromFiberError(c, err)
	} else if slotID != nil {
		tx = tx.Where("class_notice_course_slot_id = ?", *slotID)
	}

	var notices []model.ClassNoticeModel
	if err := tx.Order("class_notice_is_pinned DESC, class_notice_order_no ASC, class_notice_created_at DESC").
		Find(&notices).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Notices fetched", dto.FromModels(notices))
}

// Update edits a notice in place (admin).
func (ctl *ClassNoticeController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.NoticeUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var notice model.ClassNoticeModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&notice, "class_notice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Notice not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyUpdates(&notice)
	if err := ctl.DB.WithContext(c.Context()).Save(&notice).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Notice updated", dto.FromModel(notice))
}

// Delete soft-deletes a notice (admin).
func (ctl *ClassNoticeController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&model.ClassNoticeModel{}, "class_notice_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Notice not found")
	}
	return helper.Success(c, "Notice deleted", fiber.Map{"class_notice_id": id})
}

// Feed returns the active notices visible to the calling parent: notices on
// the slots of their approved enrollments, with PAID-only notices gated by
// that enrollment's paid status. An enrollment without a sub-group sees the
// slot's whole board.
func (ctl *ClassNoticeController) Feed(c *fiber.Ctx) error {
	parentID, err := userIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ents []enrollmentModel.EnrollmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("enrollment_parent_id = ?", parentID).
		Where("enrollment_status = ?", enrollmentModel.EnrollmentStatusApproved).
		Where("enrollment_course_slot_id IS NOT NULL").
		Find(&ents).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(ents) == 0 {
		return helper.Success(c, "Notices fetched", []dto.NoticeResponseDTO{})
	}

	slotIDs := make([]uuid.UUID, 0, len(ents))
	for _, en := range ents {
		slotIDs = append(slotIDs, *en.EnrollmentCourseSlotID)
	}

	var notices []model.ClassNoticeModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("class_notice_course_slot_id IN ?", slotIDs).
		Where("class_notice_is_active = ?", true).
		Order("class_notice_is_pinned DESC, class_notice_order_no ASC, class_notice_created_at DESC").
		Find(&notices).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	visible := make([]model.ClassNoticeModel, 0, len(notices))
	for _, n := range notices {
		for _, en := range ents {
			if *en.EnrollmentCourseSlotID != n.ClassNoticeCourseSlotID {
				continue
			}
			if n.ClassNoticeSubGroupID != nil && en.EnrollmentSubGroupID != nil &&
				*n.ClassNoticeSubGroupID != *en.EnrollmentSubGroupID {
				continue
			}
			if n.ClassNoticeVisibleTo == model.NoticeVisibleToPaid &&
				en.EnrollmentPaidStatus != enrollmentModel.EnrollmentPaidStatusPaid {
				continue
			}
			visible = append(visible, n)
			break
		}
	}
	return helper.Success(c, "Notices fetched", dto.FromModels(visible))
}
