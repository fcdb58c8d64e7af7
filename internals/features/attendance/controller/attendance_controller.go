package controller

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduportal_backend/internals/features/attendance/dto"
	"eduportal_backend/internals/features/attendance/service"
	helper "eduportal_backend/internals/helpers"
)

// AttendanceController serves the assistant's weekly marking surface: the
// matrix view, cell and bulk marks, and the file exports.
type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.Service
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:        db,
		Validator: validator.New(),
		Service:   service.NewService(db),
	}
}

func markerIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
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

// Table returns the marking matrix for ?slot_id= with an optional
// ?sub_group_id= filter.
func (ctl *AttendanceController) Table(c *fiber.Ctx) error {
	slotID, err := uuid.Parse(c.Query("slot_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid slot_id")
	}
	subGroupID, err := helper.ParseOptionalUUIDQuery(c, "sub_group_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	table, err := ctl.Service.Table(c.Context(), slotID, subGroupID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Attendance table fetched", table)
}

// Mark upserts one cell.
func (ctl *AttendanceController) Mark(c *fiber.Ctx) error {
	markerID, err := markerIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.MarkRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	cell, err := ctl.Service.Mark(c.Context(), service.MarkParams{
		EnrollmentID: req.EnrollmentID,
		SlotID:       req.SlotID,
		WeekNo:       req.WeekNo,
		SubGroupID:   req.SubGroupID,
		Present:      req.Present,
		MarkedBy:     markerID,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Attendance marked", dto.FromModel(cell))
}

// MarkWeek marks every matched enrollment of a slot for one week.
func (ctl *AttendanceController) MarkWeek(c *fiber.Ctx) error {
	markerID, err := markerIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.BulkMarkRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	count, err := ctl.Service.MarkWeekBulk(c.Context(), service.BulkParams{
		SlotID:     req.SlotID,
		SubGroupID: req.SubGroupID,
		WeekNo:     req.WeekNo,
		Present:    req.Present,
		MarkedBy:   markerID,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, fmt.Sprintf("Marked %d enrollments", count), fiber.Map{
		"marked_count": count,
		"week_no":      req.WeekNo,
		"present":      req.Present,
	})
}

// ClearWeek wipes the marks of one week so it can be re-taken cleanly.
func (ctl *AttendanceController) ClearWeek(c *fiber.Ctx) error {
	var req dto.BulkMarkRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	count, err := ctl.Service.ClearWeek(c.Context(), req.SlotID, req.SubGroupID, req.WeekNo)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, fmt.Sprintf("Cleared %d records", count), fiber.Map{
		"cleared_count": count,
		"week_no":       req.WeekNo,
	})
}

// Export streams the matrix as ?format=csv (default) or xlsx.
// ?strict=0 leaves unmarked cells blank instead of ABSENT.
func (ctl *AttendanceController) Export(c *fiber.Ctx) error {
	slotID, err := uuid.Parse(c.Query("slot_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid slot_id")
	}
	subGroupID, err := helper.ParseOptionalUUIDQuery(c, "sub_group_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	params := service.ExportParams{
		SlotID:     slotID,
		SubGroupID: subGroupID,
		Strict:     c.Query("strict", "1") != "0",
	}

	var (
		filename string
		payload  []byte
		mime     string
	)
	switch format := c.Query("format", "csv"); format {
	case "csv":
		filename, payload, err = ctl.Service.ExportCSV(c.Context(), params)
		mime = "text/csv"
	case "xlsx":
		filename, payload, err = ctl.Service.ExportXLSX(c.Context(), params)
		mime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return helper.Error(c, fiber.StatusBadRequest, "Unknown export format: "+format)
	}
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(payload)
}
