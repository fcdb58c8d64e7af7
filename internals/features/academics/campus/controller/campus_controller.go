package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduportal_backend/internals/features/academics/campus/dto"
	"eduportal_backend/internals/features/academics/campus/model"
	helper "eduportal_backend/internals/helpers"
)

type CampusController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCampusController(db *gorm.DB) *CampusController {
	return &CampusController{DB: db, Validator: validator.New()}
}

func (ctl *CampusController) Create(c *fiber.Ctx) error {
	var req dto.CampusCreateDTO
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
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Campus created", dto.FromModel(ent))
}

func (ctl *CampusController) List(c *fiber.Ctx) error {
	var campuses []model.CampusModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("campus_name ASC").
		Find(&campuses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModels(campuses))
}

func (ctl *CampusController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ent model.CampusModel
	if err := ctl.DB.WithContext(c.Context()).First(&ent, "campus_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Campus not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModel(ent))
}

func (ctl *CampusController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CampusUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var ent model.CampusModel
	if err := ctl.DB.WithContext(c.Context()).First(&ent, "campus_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Campus not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.Context()).Save(&ent).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Campus updated", dto.FromModel(ent))
}

func (ctl *CampusController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&model.CampusModel{}, "campus_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Campus not found")
	}
	return helper.Success(c, "Campus deleted", nil)
}
