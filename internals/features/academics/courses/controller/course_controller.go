package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduportal_backend/internals/features/academics/courses/dto"
	"eduportal_backend/internals/features/academics/courses/model"
	helper "eduportal_backend/internals/helpers"
)

type CourseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Validator: validator.New()}
}

func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CourseCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ent := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&ent).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course created", dto.FromCourseModel(ent))
}

func (ctl *CourseController) List(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.Context()).Model(&model.CourseModel{})

	if campusID, err := helper.ParseOptionalUUIDQuery(c, "campus_id"); err != nil {
		return helper.FromFiberError(c, err)
	} else if campusID != nil {
		tx = tx.Where("course_campus_id = ?", *campusID)
	}
	if c.Query("active") == "1" {
		tx = tx.Where("course_is_active = ?", true)
	}

	var courses []model.CourseModel
	if err := tx.Order("course_title ASC").Find(&courses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromCourseModels(courses))
}

func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ent model.CourseModel
	if err := ctl.DB.WithContext(c.Context()).First(&ent, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromCourseModel(ent))
}

func (ctl *CourseController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CourseUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var ent model.CourseModel
	if err := ctl.DB.WithContext(c.Context()).First(&ent, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.Context()).Save(&ent).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Course updated", dto.FromCourseModel(ent))
}

func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&model.CourseModel{}, "course_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.Success(c, "Course deleted", nil)
}
