package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduportal_backend/internals/features/academics/semesters/dto"
	"eduportal_backend/internals/features/academics/semesters/model"
	helper "eduportal_backend/internals/helpers"
)

type SemesterController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSemesterController(db *gorm.DB) *SemesterController {
	return &SemesterController{DB: db, Validator: validator.New()}
}

func (ctl *SemesterController) Create(c *fiber.Ctx) error {
	var req dto.SemesterCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ent := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&ent).Error; err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Semester created", dto.FromModel(ent))
}

// List returns semesters, newest first. ?campus_id= and ?active=1 narrow it.
func (ctl *SemesterController) List(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.Context()).Model(&model.SemesterModel{})

	if campusID, err := helper.ParseOptionalUUIDQuery(c, "campus_id"); err != nil {
		return helper.FromFiberError(c, err)
	} else if campusID != nil {
		tx = tx.Where("semester_campus_id = ?", *campusID)
	}
	if c.Query("active") == "1" {
		tx = tx.Where("semester_is_active = ?", true)
	}

	var semesters []model.SemesterModel
	if err := tx.Order("semester_start_date DESC").Find(&semesters).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModels(semesters))
}

func (ctl *SemesterController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ent model.SemesterModel
	if err := ctl.DB.WithContext(c.Context()).First(&ent, "semester_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Semester not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModel(ent))
}

func (ctl *SemesterController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SemesterUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var ent model.SemesterModel
	if err := ctl.DB.WithContext(c.Context()).First(&ent, "semester_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Semester not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.Context()).Save(&ent).Error; err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.Success(c, "Semester updated", dto.FromModel(ent))
}

func (ctl *SemesterController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&model.SemesterModel{}, "semester_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Semester not found")
	}
	return helper.Success(c, "Semester deleted", nil)
}
