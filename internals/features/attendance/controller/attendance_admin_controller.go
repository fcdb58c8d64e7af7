package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduportal_backend/internals/features/attendance/dto"
	"eduportal_backend/internals/features/attendance/model"
	helper "eduportal_backend/internals/helpers"
)

// AttendanceAdminController gives the console raw access to stored records.
// Direct edits here are how a LATE status gets set; the marking surface only
// writes PRESENT and ABSENT.
type AttendanceAdminController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttendanceAdminController(db *gorm.DB) *AttendanceAdminController {
	return &AttendanceAdminController{DB: db, Validator: validator.New()}
}

// List returns records filtered by ?slot_id= ?enrollment_id= ?week_no=.
func (ctl *AttendanceAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	tx := ctl.DB.WithContext(c.Context()).Model(&model.AttendanceModel{})
	if slotID, err := helper.ParseOptionalUUIDQuery(c, "slot_id"); err != nil {
		return helper.FromFiberError(c, err)
	} else if slotID != nil {
		tx = tx.Where("attendance_course_slot_id = ?", *slotID)
	}
	if enrollmentID, err := helper.ParseOptionalUUIDQuery(c, "enrollment_id"); err != nil {
		return helper.FromFiberError(c, err)
	} else if enrollmentID != nil {
		tx = tx.Where("attendance_enrollment_id = ?", *enrollmentID)
	}
	if week := c.QueryInt("week_no"); week > 0 {
		tx = tx.Where("attendance_week_no = ?", week)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var records []model.AttendanceModel
	if err := tx.Order("attendance_week_no ASC, attendance_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&records).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Attendance records fetched", fiber.Map{
		"records":    dto.FromModels(records),
		"pagination": helper.BuildPagination(total, paging, len(records)),
	})
}

// Update edits one stored record in place.
func (ctl *AttendanceAdminController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.RecordUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var record model.AttendanceModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&record, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Attendance record not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := req.ApplyUpdates(&record); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid date")
	}
	if err := ctl.DB.WithContext(c.Context()).Save(&record).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Attendance record updated", dto.FromModel(record))
}

// Delete soft-deletes one record, clearing the cell.
func (ctl *AttendanceAdminController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&model.AttendanceModel{}, "attendance_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Attendance record not found")
	}
	return helper.Success(c, "Attendance record deleted", fiber.Map{"attendance_id": id})
}
