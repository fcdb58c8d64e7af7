package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduportal_backend/internals/features/academics/courses/dto"
	"eduportal_backend/internals/features/academics/courses/model"
	helper "eduportal_backend/internals/helpers"
)

type CourseSlotController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCourseSlotController(db *gorm.DB) *CourseSlotController {
	return &CourseSlotController{DB: db, Validator: validator.New()}
}

func (ctl *CourseSlotController) Create(c *fiber.Ctx) error {
	var req dto.CourseSlotCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ent, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&ent).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.Error(c, fiber.StatusConflict, "An identical slot already exists for this course and semester")
		}
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course slot created", dto.FromCourseSlotModel(ent))
}

// List returns slots for a semester or course (admin view).
func (ctl *CourseSlotController) List(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.Context()).Model(&model.CourseSlotModel{})

	if semesterID, err := helper.ParseOptionalUUIDQuery(c, "semester_id"); err != nil {
		return helper.FromFiberError(c, err)
	} else if semesterID != nil {
		tx = tx.Where("course_slot_semester_id = ?", *semesterID)
	}
	if courseID, err := helper.ParseOptionalUUIDQuery(c, "course_id"); err != nil {
		return helper.FromFiberError(c, err)
	} else if courseID != nil {
		tx = tx.Where("course_slot_course_id = ?", *courseID)
	}

	var slots []model.CourseSlotModel
	if err := tx.Order("course_slot_weekday ASC, course_slot_start_time ASC").
		Find(&slots).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromCourseSlotModels(slots))
}

// Options is the cascading lookup behind the enroll and attendance pickers:
// campus + semester + weekday → [{id, label}]. Label carries the course title
// and the time range.
func (ctl *CourseSlotController) Options(c *fiber.Ctx) error {
	campusID, err := helper.ParseOptionalUUIDQuery(c, "campus_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	semesterID, err := helper.ParseOptionalUUIDQuery(c, "semester_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	weekday, _ := strconv.Atoi(c.Query("weekday"))

	if campusID == nil || semesterID == nil || weekday < 1 || weekday > 7 {
		return helper.Success(c, "OK", fiber.Map{"slots": []dto.CourseSlotOptionDTO{}})
	}

	type slotRow struct {
		model.CourseSlotModel
		CourseTitle string `gorm:"column:course_title"`
	}
	var rows []slotRow
	if err := ctl.DB.WithContext(c.Context()).
		Model(&model.CourseSlotModel{}).
		Select("course_slots.*, courses.course_title").
		Joins("JOIN courses ON courses.course_id = course_slots.course_slot_course_id AND courses.course_deleted_at IS NULL").
		Where("course_slots.course_slot_semester_id = ?", *semesterID).
		Where("course_slots.course_slot_weekday = ?", weekday).
		Where("courses.course_campus_id = ?", *campusID).
		Order("course_slots.course_slot_start_time ASC").
		Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	options := make([]dto.CourseSlotOptionDTO, 0, len(rows))
	for _, r := range rows {
		options = append(options, dto.SlotOption(r.CourseSlotModel, r.CourseTitle))
	}
	return helper.Success(c, "OK", fiber.Map{"slots": options})
}

// Update reschedules a slot. Marked weeks keep their stored dates; only
// cells marked after the change pick up the new weekday.
func (ctl *CourseSlotController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CourseSlotUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var ent model.CourseSlotModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&ent, "course_slot_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course slot not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := req.ApplyUpdates(&ent); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Save(&ent).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.Error(c, fiber.StatusConflict, "An identical slot already exists for this course and semester")
		}
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.Success(c, "Course slot updated", dto.FromCourseSlotModel(ent))
}

func (ctl *CourseSlotController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&model.CourseSlotModel{}, "course_slot_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Course slot not found")
	}
	return helper.Success(c, "Course slot deleted", nil)
}
