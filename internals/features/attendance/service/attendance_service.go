package service

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "eduportal_backend/internals/features/academics/courses/model"
	semesterModel "eduportal_backend/internals/features/academics/semesters/model"
	"eduportal_backend/internals/features/attendance/model"
	enrollmentModel "eduportal_backend/internals/features/enrollments/model"
	studentModel "eduportal_backend/internals/features/students/model"
	userModel "eduportal_backend/internals/features/users/user/model"
	helper "eduportal_backend/internals/helpers"
)

// Service owns the weekly attendance logic: matching enrollments onto a
// slot, idempotent cell upserts, and the week-by-week matrix used by the
// table and the exports.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// slotContext bundles a slot with its semester; nearly every operation here
// needs both.
type slotContext struct {
	Slot     courseModel.CourseSlotModel
	Semester semesterModel.SemesterModel
}

func (s *Service) loadSlot(ctx context.Context, slotID uuid.UUID) (slotContext, error) {
	var sc slotContext
	if err := s.DB.WithContext(ctx).
		First(&sc.Slot, "course_slot_id = ?", slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return sc, fiber.NewError(fiber.StatusNotFound, "Course slot not found")
		}
		return sc, err
	}
	if err := s.DB.WithContext(ctx).
		First(&sc.Semester, "semester_id = ?", sc.Slot.CourseSlotSemesterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return sc, fiber.NewError(fiber.StatusNotFound, "Semester not found for slot")
		}
		return sc, err
	}
	return sc, nil
}

func (s *Service) checkSubGroup(ctx context.Context, slotID uuid.UUID, subGroupID *uuid.UUID) error {
	if subGroupID == nil {
		return nil
	}
	var count int64
	if err := s.DB.WithContext(ctx).Model(&courseModel.SubGroupModel{}).
		Where("sub_group_id = ? AND sub_group_course_slot_id = ?", *subGroupID, slotID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Sub-group not found on this slot")
	}
	return nil
}

// MatchEnrollments returns the enrollments eligible for marking on a slot.
// Besides rows bound to the slot itself, rows with no slot but a matching
// course+semester are included, covering enrollments that predate slot
// binding.
// When a sub-group filter is given, an enrollment without a sub-group matches
// every filter (it belongs to all of the slot's sub-groups until assigned).
func (s *Service) MatchEnrollments(ctx context.Context, slot courseModel.CourseSlotModel, subGroupID *uuid.UUID) ([]enrollmentModel.EnrollmentModel, error) {
	tx := s.DB.WithContext(ctx).
		Where("enrollment_status = ?", enrollmentModel.EnrollmentStatusApproved).
		Where(
			s.DB.Where("enrollment_course_slot_id = ?", slot.CourseSlotID).
				Or("enrollment_course_slot_id IS NULL AND enrollment_course_id = ? AND enrollment_semester_id = ?",
					slot.CourseSlotCourseID, slot.CourseSlotSemesterID),
		)
	if subGroupID != nil {
		tx = tx.Where("enrollment_sub_group_id = ? OR enrollment_sub_group_id IS NULL", *subGroupID)
	}

	var ents []enrollmentModel.EnrollmentModel
	if err := tx.Order("enrollment_created_at ASC, enrollment_id ASC").
		Find(&ents).Error; err != nil {
		return nil, err
	}
	return ents, nil
}

// =======================
// Mark (single cell upsert)
// =======================

type MarkParams struct {
	EnrollmentID uuid.UUID
	SlotID       uuid.UUID
	WeekNo       int
	SubGroupID   *uuid.UUID
	Present      bool
	MarkedBy     uuid.UUID
}

// Mark creates or overwrites exactly one attendance cell. Repeating the call
// with the same arguments converges to one identical row; no mark history is
// kept.
func (s *Service) Mark(ctx context.Context, p MarkParams) (model.AttendanceModel, error) {
	var zero model.AttendanceModel

	sc, err := s.loadSlot(ctx, p.SlotID)
	if err != nil {
		return zero, err
	}
	if p.WeekNo < 1 || p.WeekNo > sc.Semester.SemesterWeekCount {
		return zero, fiber.NewError(fiber.StatusBadRequest, "week_no out of range for this semester")
	}
	if err := s.checkSubGroup(ctx, sc.Slot.CourseSlotID, p.SubGroupID); err != nil {
		return zero, err
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollment_id = ?", p.EnrollmentID).
		Count(&count).Error; err != nil {
		return zero, err
	}
	if count == 0 {
		return zero, fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
	}

	return s.upsertCell(ctx, sc, p.EnrollmentID, p.SubGroupID, p.WeekNo, p.Present, p.MarkedBy)
}

func (s *Service) upsertCell(ctx context.Context, sc slotContext, enrollmentID uuid.UUID, subGroupID *uuid.UUID, weekNo int, present bool, markedBy uuid.UUID) (model.AttendanceModel, error) {
	status := model.AttendanceStatusAbsent
	if present {
		status = model.AttendanceStatusPresent
	}
	date := DateForWeek(sc.Semester.SemesterStartDate, weekNo, sc.Slot.CourseSlotWeekday)

	lookup := s.DB.WithContext(ctx).
		Where("attendance_enrollment_id = ?", enrollmentID).
		Where("attendance_course_slot_id = ?", sc.Slot.CourseSlotID).
		Where("attendance_week_no = ?", weekNo)
	if subGroupID == nil {
		lookup = lookup.Where("attendance_sub_group_id IS NULL")
	} else {
		lookup = lookup.Where("attendance_sub_group_id = ?", *subGroupID)
	}

	var cell model.AttendanceModel
	err := lookup.First(&cell).Error
	switch {
	case err == nil:
		cell.AttendanceStatus = status
		cell.AttendanceDate = date
		cell.AttendanceMarkedByUserID = markedBy
		if err := s.DB.WithContext(ctx).Save(&cell).Error; err != nil {
			return cell, err
		}
		return cell, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		cell = model.AttendanceModel{
			AttendanceEnrollmentID:   enrollmentID,
			AttendanceCourseSlotID:   sc.Slot.CourseSlotID,
			AttendanceWeekNo:         weekNo,
			AttendanceSubGroupID:     subGroupID,
			AttendanceDate:           date,
			AttendanceStatus:         status,
			AttendanceMarkedByUserID: markedBy,
		}
		if err := s.DB.WithContext(ctx).Create(&cell).Error; err != nil {
			// concurrent first-mark on the same cell: the unique tuple makes
			// the loser overwrite instead
			if helper.IsDuplicateKey(err) {
				return s.upsertCell(ctx, sc, enrollmentID, subGroupID, weekNo, present, markedBy)
			}
			return cell, err
		}
		return cell, nil
	default:
		return cell, err
	}
}

// =======================
// Bulk marker
// =======================

type BulkParams struct {
	SlotID     uuid.UUID
	SubGroupID *uuid.UUID
	WeekNo     int
	Present    bool
	MarkedBy   uuid.UUID
}

// MarkWeekBulk applies the cell upsert across every matched enrollment for
// one week and returns how many were processed. Zero matches is a success
// with count 0. Rows are written independently; a mid-way failure leaves the
// earlier rows in place, and re-running converges to the same end state.
func (s *Service) MarkWeekBulk(ctx context.Context, p BulkParams) (int, error) {
	sc, err := s.loadSlot(ctx, p.SlotID)
	if err != nil {
		return 0, err
	}
	if p.WeekNo < 1 || p.WeekNo > sc.Semester.SemesterWeekCount {
		return 0, fiber.NewError(fiber.StatusBadRequest, "week_no out of range for this semester")
	}
	if err := s.checkSubGroup(ctx, sc.Slot.CourseSlotID, p.SubGroupID); err != nil {
		return 0, err
	}

	ents, err := s.MatchEnrollments(ctx, sc.Slot, p.SubGroupID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, en := range ents {
		// cells are keyed by the enrollment's own sub-group; the filter only
		// stands in for unassigned rows
		cellSub := en.EnrollmentSubGroupID
		if cellSub == nil {
			cellSub = p.SubGroupID
		}
		if _, err := s.upsertCell(ctx, sc, en.EnrollmentID, cellSub, p.WeekNo, p.Present, p.MarkedBy); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// ClearWeek removes every cell stored for one week of a slot, honoring the
// same sub-group wildcard as the matcher. Returns how many rows were cleared.
func (s *Service) ClearWeek(ctx context.Context, slotID uuid.UUID, subGroupID *uuid.UUID, weekNo int) (int, error) {
	sc, err := s.loadSlot(ctx, slotID)
	if err != nil {
		return 0, err
	}
	if weekNo < 1 || weekNo > sc.Semester.SemesterWeekCount {
		return 0, fiber.NewError(fiber.StatusBadRequest, "week_no out of range for this semester")
	}
	if err := s.checkSubGroup(ctx, sc.Slot.CourseSlotID, subGroupID); err != nil {
		return 0, err
	}

	tx := s.DB.WithContext(ctx).
		Where("attendance_course_slot_id = ?", sc.Slot.CourseSlotID).
		Where("attendance_week_no = ?", weekNo)
	if subGroupID != nil {
		tx = tx.Where("attendance_sub_group_id = ? OR attendance_sub_group_id IS NULL", *subGroupID)
	}
	res := tx.Delete(&model.AttendanceModel{})
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

// =======================
// Table matrix
// =======================

type TableHeaderCell struct {
	Week  int    `json:"week"`
	Label string `json:"label"` // e.g. "Tue 07/22"
}

type TableCell struct {
	Week    int  `json:"week"`
	Present bool `json:"present"`
}

type TableRow struct {
	EnrollmentID uuid.UUID   `json:"enrollment_id"`
	StudentName  string      `json:"student_name"`
	ParentName   string      `json:"parent_name"`
	Paid         bool        `json:"paid"`
	SubGroupID   *uuid.UUID  `json:"sub_group_id,omitempty"`
	SubGroupName string      `json:"sub_group_name,omitempty"`
	Cells        []TableCell `json:"cells"`
}

type TableResult struct {
	SlotID    uuid.UUID         `json:"slot_id"`
	WeekCount int               `json:"week_count"`
	Header    []TableHeaderCell `json:"header"`
	Rows      []TableRow        `json:"rows"`
}

// Table renders the assistant's marking matrix: one row per matched
// enrollment, one cell per week, with existing marks folded in.
func (s *Service) Table(ctx context.Context, slotID uuid.UUID, subGroupID *uuid.UUID) (TableResult, error) {
	var res TableResult

	sc, err := s.loadSlot(ctx, slotID)
	if err != nil {
		return res, err
	}
	if err := s.checkSubGroup(ctx, sc.Slot.CourseSlotID, subGroupID); err != nil {
		return res, err
	}

	weekCount := sc.Semester.SemesterWeekCount
	res.SlotID = sc.Slot.CourseSlotID
	res.WeekCount = weekCount
	for w := 1; w <= weekCount; w++ {
		d := DateForWeek(sc.Semester.SemesterStartDate, w, sc.Slot.CourseSlotWeekday)
		res.Header = append(res.Header, TableHeaderCell{Week: w, Label: WeekLabel(d)})
	}

	ents, err := s.MatchEnrollments(ctx, sc.Slot, subGroupID)
	if err != nil {
		return res, err
	}
	names, err := s.displayNames(ctx, ents)
	if err != nil {
		return res, err
	}

	existing, err := s.cellMap(ctx, sc.Slot.CourseSlotID, subGroupID, weekCount)
	if err != nil {
		return res, err
	}

	for _, en := range ents {
		// an unassigned enrollment reads through the filter's sub-group key
		rowSub := en.EnrollmentSubGroupID
		if rowSub == nil {
			rowSub = subGroupID
		}
		row := TableRow{
			EnrollmentID: en.EnrollmentID,
			StudentName:  names.student(en),
			ParentName:   names.parent(en),
			Paid:         en.EnrollmentPaidStatus == enrollmentModel.EnrollmentPaidStatusPaid,
			SubGroupID:   rowSub,
			SubGroupName: names.subGroup(en),
		}
		for w := 1; w <= weekCount; w++ {
			status, ok := existing[cellKey{en.EnrollmentID, w, subKeyOf(rowSub)}]
			row.Cells = append(row.Cells, TableCell{
				Week:    w,
				Present: ok && status == model.AttendanceStatusPresent,
			})
		}
		res.Rows = append(res.Rows, row)
	}
	return res, nil
}

type cellKey struct {
	EnrollmentID uuid.UUID
	Week         int
	SubGroup     uuid.UUID // uuid.Nil for the NULL key
}

func subKeyOf(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.Nil
	}
	return *id
}

func (s *Service) cellMap(ctx context.Context, slotID uuid.UUID, subGroupID *uuid.UUID, weekCount int) (map[cellKey]string, error) {
	tx := s.DB.WithContext(ctx).
		Where("attendance_course_slot_id = ?", slotID).
		Where("attendance_week_no <= ?", weekCount)
	if subGroupID != nil {
		tx = tx.Where("attendance_sub_group_id = ? OR attendance_sub_group_id IS NULL", *subGroupID)
	}

	var cells []model.AttendanceModel
	if err := tx.Find(&cells).Error; err != nil {
		return nil, err
	}
	out := make(map[cellKey]string, len(cells))
	for _, a := range cells {
		out[cellKey{a.AttendanceEnrollmentID, a.AttendanceWeekNo, subKeyOf(a.AttendanceSubGroupID)}] = a.AttendanceStatus
	}
	return out, nil
}

// =======================
// Display-name lookups
// =======================

type nameLookup struct {
	studentName  map[uuid.UUID]string
	parentName   map[uuid.UUID]string
	subGroupName map[uuid.UUID]string
}

func (n nameLookup) student(en enrollmentModel.EnrollmentModel) string {
	if en.EnrollmentStudentID != nil {
		if name := n.studentName[*en.EnrollmentStudentID]; name != "" {
			return name
		}
	}
	// legacy rows without a student show the parent instead
	return n.parentName[en.EnrollmentParentID]
}

func (n nameLookup) parent(en enrollmentModel.EnrollmentModel) string {
	return n.parentName[en.EnrollmentParentID]
}

func (n nameLookup) subGroup(en enrollmentModel.EnrollmentModel) string {
	if en.EnrollmentSubGroupID == nil {
		return ""
	}
	return n.subGroupName[*en.EnrollmentSubGroupID]
}

func (s *Service) displayNames(ctx context.Context, ents []enrollmentModel.EnrollmentModel) (nameLookup, error) {
	n := nameLookup{
		studentName:  map[uuid.UUID]string{},
		parentName:   map[uuid.UUID]string{},
		subGroupName: map[uuid.UUID]string{},
	}

	studentIDs := make([]uuid.UUID, 0, len(ents))
	parentIDs := make([]uuid.UUID, 0, len(ents))
	subGroupIDs := make([]uuid.UUID, 0, len(ents))
	for _, en := range ents {
		parentIDs = append(parentIDs, en.EnrollmentParentID)
		if en.EnrollmentStudentID != nil {
			studentIDs = append(studentIDs, *en.EnrollmentStudentID)
		}
		if en.EnrollmentSubGroupID != nil {
			subGroupIDs = append(subGroupIDs, *en.EnrollmentSubGroupID)
		}
	}

	if len(studentIDs) > 0 {
		var students []studentModel.StudentModel
		if err := s.DB.WithContext(ctx).Where("student_id IN ?", studentIDs).Find(&students).Error; err != nil {
			return n, err
		}
		for _, st := range students {
			n.studentName[st.StudentID] = st.StudentFullName
		}
	}
	if len(parentIDs) > 0 {
		var users []userModel.UserModel
		if err := s.DB.WithContext(ctx).Where("user_id IN ?", parentIDs).Find(&users).Error; err != nil {
			return n, err
		}
		for _, u := range users {
			n.parentName[u.UserID] = u.UserUserName
		}
	}
	if len(subGroupIDs) > 0 {
		var groups []courseModel.SubGroupModel
		if err := s.DB.WithContext(ctx).Where("sub_group_id IN ?", subGroupIDs).Find(&groups).Error; err != nil {
			return n, err
		}
		for _, g := range groups {
			n.subGroupName[g.SubGroupID] = g.SubGroupName
		}
	}
	return n, nil
}
