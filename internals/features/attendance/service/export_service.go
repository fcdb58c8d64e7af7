package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	courseModel "eduportal_backend/internals/features/academics/courses/model"
	"eduportal_backend/internals/features/attendance/model"
	enrollmentModel "eduportal_backend/internals/features/enrollments/model"
)

type ExportParams struct {
	SlotID     uuid.UUID
	SubGroupID *uuid.UUID
	// Strict renders an unmarked cell as ABSENT instead of leaving it blank.
	Strict bool
}

// exportSheet is the shared flattened matrix behind both file formats.
type exportSheet struct {
	Filename string // without extension
	Header   []string
	Rows     [][]string
}

func (s *Service) buildSheet(ctx context.Context, p ExportParams) (exportSheet, error) {
	var sheet exportSheet

	sc, err := s.loadSlot(ctx, p.SlotID)
	if err != nil {
		return sheet, err
	}
	if err := s.checkSubGroup(ctx, sc.Slot.CourseSlotID, p.SubGroupID); err != nil {
		return sheet, err
	}

	var course courseModel.CourseModel
	if err := s.DB.WithContext(ctx).
		First(&course, "course_id = ?", sc.Slot.CourseSlotCourseID).Error; err != nil {
		return sheet, err
	}
	sheet.Filename = exportFilename(course.CourseTitle, sc.Semester.SemesterName)

	weekCount := sc.Semester.SemesterWeekCount
	sheet.Header = []string{"Student", "Parent", "Paid"}
	for w := 1; w <= weekCount; w++ {
		d := DateForWeek(sc.Semester.SemesterStartDate, w, sc.Slot.CourseSlotWeekday)
		sheet.Header = append(sheet.Header, WeekHeaderLabel(w, d))
	}

	ents, err := s.MatchEnrollments(ctx, sc.Slot, p.SubGroupID)
	if err != nil {
		return sheet, err
	}
	names, err := s.displayNames(ctx, ents)
	if err != nil {
		return sheet, err
	}
	existing, err := s.cellMap(ctx, sc.Slot.CourseSlotID, p.SubGroupID, weekCount)
	if err != nil {
		return sheet, err
	}

	for _, en := range ents {
		rowSub := en.EnrollmentSubGroupID
		if rowSub == nil {
			rowSub = p.SubGroupID
		}
		paid := "UNPAID"
		if en.EnrollmentPaidStatus == enrollmentModel.EnrollmentPaidStatusPaid {
			paid = "PAID"
		}
		row := []string{names.student(en), names.parent(en), paid}
		for w := 1; w <= weekCount; w++ {
			status, ok := existing[cellKey{en.EnrollmentID, w, subKeyOf(rowSub)}]
			switch {
			case ok:
				row = append(row, status)
			case p.Strict:
				row = append(row, model.AttendanceStatusAbsent)
			default:
				row = append(row, "")
			}
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet, nil
}

// ExportCSV writes the attendance matrix as a CSV file. The returned name
// carries the .csv extension.
func (s *Service) ExportCSV(ctx context.Context, p ExportParams) (string, []byte, error) {
	sheet, err := s.buildSheet(ctx, p)
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(sheet.Header); err != nil {
		return "", nil, err
	}
	for _, row := range sheet.Rows {
		if err := w.Write(row); err != nil {
			return "", nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, err
	}
	return sheet.Filename + ".csv", buf.Bytes(), nil
}

// ExportXLSX writes the same matrix as a single-sheet workbook.
func (s *Service) ExportXLSX(ctx context.Context, p ExportParams) (string, []byte, error) {
	sheet, err := s.buildSheet(ctx, p)
	if err != nil {
		return "", nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Attendance"
	f.SetSheetName(f.GetSheetName(0), sheetName)

	writeRow := func(rowIdx int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		cells := make([]interface{}, len(values))
		for i, v := range values {
			cells[i] = v
		}
		return f.SetSheetRow(sheetName, cell, &cells)
	}

	if err := writeRow(1, sheet.Header); err != nil {
		return "", nil, err
	}
	for i, row := range sheet.Rows {
		if err := writeRow(i+2, row); err != nil {
			return "", nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return "", nil, err
	}
	return sheet.Filename + ".xlsx", buf.Bytes(), nil
}

// exportFilename slugs "Chess Beginners" + "Fall 2025" into
// "attendance_chess-beginners_fall-2025".
func exportFilename(courseTitle, semesterName string) string {
	return fmt.Sprintf("attendance_%s_%s", slugify(courseTitle), slugify(semesterName))
}

func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
