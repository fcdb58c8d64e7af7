package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduportal_backend/internals/features/academics/courses/dto"
	"eduportal_backend/internals/features/academics/courses/model"
	helper "eduportal_backend/internals/helpers"
)

type SubGroupController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSubGroupController(db *gorm.DB) *SubGroupController {
	return &SubGroupController{DB: db, Validator: validator.New()}
}

func (ctl *SubGroupController) Create(c *fiber.Ctx) error {
	var req dto.SubGroupCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// slot must exist
	var slot model.CourseSlotModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&slot, "course_slot_id = ?", req.SubGroupCourseSlotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course slot not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	ent := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&ent).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sub-group created", dto.FromSubGroupModel(ent))
}

// ListBySlot returns the sub-groups of one slot in stable order; also used as
// the cascade lookup on the portal side.
func (ctl *SubGroupController) ListBySlot(c *fiber.Ctx) error {
	slotID, err := helper.ParseOptionalUUIDQuery(c, "slot_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if slotID == nil {
		return helper.Success(c, "OK", fiber.Map{"subgroups": []dto.SubGroupResponseDTO{}})
	}

	var groups []model.SubGroupModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("sub_group_course_slot_id = ?", *slotID).
		Order("sub_group_created_at ASC, sub_group_id ASC").
		Find(&groups).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", fiber.Map{"subgroups": dto.FromSubGroupModels(groups)})
}

func (ctl *SubGroupController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SubGroupUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var ent model.SubGroupModel
	if err := ctl.DB.WithContext(c.Context()).First(&ent, "sub_group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Sub-group not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.SubGroupName != nil {
		ent.SubGroupName = strings.TrimSpace(*req.SubGroupName)
	}
	if err := ctl.DB.WithContext(c.Context()).Save(&ent).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Sub-group updated", dto.FromSubGroupModel(ent))
}

func (ctl *SubGroupController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&model.SubGroupModel{}, "sub_group_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Sub-group not found")
	}
	return helper.Success(c, "Sub-group deleted", nil)
}
