package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduportal_backend/internals/features/students/dto"
	"eduportal_backend/internals/features/students/model"
	helper "eduportal_backend/internals/helpers"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validator: validator.New()}
}

func parentIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
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

// Create registers a child under the authenticated parent.
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	parentID, err := parentIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.StudentCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ent := req.ToModel(parentID)
	if err := ctl.DB.WithContext(c.Context()).Create(&ent).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student created", dto.FromModel(ent))
}

// ListMine returns the parent's own (active) children.
func (ctl *StudentController) ListMine(c *fiber.Ctx) error {
	parentID, err := parentIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var students []model.StudentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("student_parent_id = ? AND student_is_active = ?", parentID, true).
		Order("student_full_name ASC").
		Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModels(students))
}

// Update edits one of the parent's own children; ownership is part of the
// lookup so other parents' students read as not found.
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	parentID, err := parentIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.StudentUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var ent model.StudentModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&ent, "student_id = ? AND student_parent_id = ?", id, parentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.Context()).Save(&ent).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Student updated", dto.FromModel(ent))
}

// AdminList returns all students, optionally by parent.
func (ctl *StudentController) AdminList(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).Model(&model.StudentModel{})
	if parentID, err := helper.ParseOptionalUUIDQuery(c, "parent_id"); err != nil {
		return helper.FromFiberError(c, err)
	} else if parentID != nil {
		tx = tx.Where("student_parent_id = ?", *parentID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var students []model.StudentModel
	if err := tx.Order("student_full_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"students":   dto.FromModels(students),
		"pagination": helper.BuildPagination(total, paging, len(students)),
	})
}
