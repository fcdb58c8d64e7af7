package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	campusModel "eduportal_backend/internals/features/academics/campus/model"
	courseModel "eduportal_backend/internals/features/academics/courses/model"
	semesterModel "eduportal_backend/internals/features/academics/semesters/model"
	"eduportal_backend/internals/features/attendance/model"
	enrollmentModel "eduportal_backend/internals/features/enrollments/model"
	studentModel "eduportal_backend/internals/features/students/model"
	userModel "eduportal_backend/internals/features/users/user/model"
	"eduportal_backend/internals/helpers/dbtime"
)

type fixture struct {
	db  *gorm.DB
	svc *Service

	parent   userModel.UserModel
	marker   userModel.UserModel
	campus   campusModel.CampusModel
	semester semesterModel.SemesterModel
	course   courseModel.CourseModel
	slot     courseModel.CourseSlotModel
	groupA   courseModel.SubGroupModel
	groupB   courseModel.SubGroupModel
}

func mustTod(t *testing.T, s string) dbtime.Tod {
	t.Helper()
	tod, err := dbtime.Parse(s)
	if err != nil {
		t.Fatalf("parse tod %q: %v", s, err)
	}
	return tod
}

// newFixture builds a 10-week semester starting Monday 2025-07-21 with one
// Tuesday slot and two sub-groups.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&campusModel.CampusModel{},
		&semesterModel.SemesterModel{},
		&courseModel.CourseModel{},
		&courseModel.CourseSlotModel{},
		&courseModel.SubGroupModel{},
		&studentModel.StudentModel{},
		&enrollmentModel.EnrollmentModel{},
		&model.AttendanceModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	f := &fixture{db: db, svc: NewService(db)}

	f.parent = userModel.UserModel{
		UserUserName: "parent1", UserPassword: "x",
		UserRole: "PARENT", UserApprovalStatus: "APPROVED",
	}
	f.marker = userModel.UserModel{
		UserUserName: "assistant1", UserPassword: "x",
		UserRole: "ASSISTANT", UserApprovalStatus: "APPROVED",
	}
	for _, u := range []*userModel.UserModel{&f.parent, &f.marker} {
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("create user: %v", err)
		}
	}

	f.campus = campusModel.CampusModel{CampusName: "Main"}
	if err := db.Create(&f.campus).Error; err != nil {
		t.Fatalf("create campus: %v", err)
	}
	f.semester = semesterModel.SemesterModel{
		SemesterCampusID:  f.campus.CampusID,
		SemesterName:      "Fall 2025",
		SemesterStartDate: time.Date(2025, time.July, 21, 0, 0, 0, 0, time.UTC),
		SemesterWeekCount: 10,
	}
	if err := db.Create(&f.semester).Error; err != nil {
		t.Fatalf("create semester: %v", err)
	}
	f.course = courseModel.CourseModel{
		CourseCampusID: f.campus.CampusID,
		CourseTitle:    "Chess Beginners",
	}
	if err := db.Create(&f.course).Error; err != nil {
		t.Fatalf("create course: %v", err)
	}
	f.slot = courseModel.CourseSlotModel{
		CourseSlotCourseID:   f.course.CourseID,
		CourseSlotSemesterID: f.semester.SemesterID,
		CourseSlotWeekday:    2,
		CourseSlotStartTime:  mustTod(t, "16:00"),
		CourseSlotEndTime:    mustTod(t, "17:00"),
	}
	if err := db.Create(&f.slot).Error; err != nil {
		t.Fatalf("create slot: %v", err)
	}
	f.groupA = courseModel.SubGroupModel{
		SubGroupCourseSlotID: f.slot.CourseSlotID, SubGroupName: "Group A",
	}
	f.groupB = courseModel.SubGroupModel{
		SubGroupCourseSlotID: f.slot.CourseSlotID, SubGroupName: "Group B",
	}
	for _, g := range []*courseModel.SubGroupModel{&f.groupA, &f.groupB} {
		if err := db.Create(g).Error; err != nil {
			t.Fatalf("create sub-group: %v", err)
		}
	}
	return f
}

func (f *fixture) addStudent(t *testing.T, name string) studentModel.StudentModel {
	t.Helper()
	st := studentModel.StudentModel{
		StudentParentID: f.parent.UserID,
		StudentFullName: name,
	}
	if err := f.db.Create(&st).Error; err != nil {
		t.Fatalf("create student: %v", err)
	}
	return st
}

type enrollOpt struct {
	status     string
	slotBound  bool
	subGroupID *uuid.UUID
	paid       bool
}

func (f *fixture) addEnrollment(t *testing.T, studentName string, opt enrollOpt) enrollmentModel.EnrollmentModel {
	t.Helper()
	st := f.addStudent(t, studentName)

	en := enrollmentModel.EnrollmentModel{
		EnrollmentParentID:   f.parent.UserID,
		EnrollmentStudentID:  &st.StudentID,
		EnrollmentCourseID:   f.course.CourseID,
		EnrollmentSemesterID: f.semester.SemesterID,
		EnrollmentSubGroupID: opt.subGroupID,
		EnrollmentStatus:     opt.status,
	}
	if opt.slotBound {
		en.EnrollmentCourseSlotID = &f.slot.CourseSlotID
	}
	if opt.paid {
		en.EnrollmentPaidStatus = enrollmentModel.EnrollmentPaidStatusPaid
	} else {
		en.EnrollmentPaidStatus = enrollmentModel.EnrollmentPaidStatusUnpaid
	}
	if err := f.db.Create(&en).Error; err != nil {
		t.Fatalf("create enrollment: %v", err)
	}
	return en
}

func countCells(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&model.AttendanceModel{}).Count(&n).Error; err != nil {
		t.Fatalf("count cells: %v", err)
	}
	return n
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	if !ok {
		t.Fatalf("want *fiber.Error, got %T: %v", err, err)
	}
	return fe.Code
}

func TestMatchEnrollments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	slotted := f.addEnrollment(t, "Alice", enrollOpt{
		status: enrollmentModel.EnrollmentStatusApproved, slotBound: true, subGroupID: &f.groupA.SubGroupID,
	})
	legacy := f.addEnrollment(t, "Bob", enrollOpt{
		status: enrollmentModel.EnrollmentStatusApproved, // slot never bound
	})
	f.addEnrollment(t, "Carol", enrollOpt{
		status: enrollmentModel.EnrollmentStatusPending, slotBound: true,
	})
	inB := f.addEnrollment(t, "Dave", enrollOpt{
		status: enrollmentModel.EnrollmentStatusApproved, slotBound: true, subGroupID: &f.groupB.SubGroupID,
	})

	// slotless row on a different course never matches
	otherCourse := courseModel.CourseModel{
		CourseCampusID: f.campus.CampusID, CourseTitle: "Painting",
	}
	if err := f.db.Create(&otherCourse).Error; err != nil {
		t.Fatalf("create course: %v", err)
	}
	stray := enrollmentModel.EnrollmentModel{
		EnrollmentParentID:   f.parent.UserID,
		EnrollmentCourseID:   otherCourse.CourseID,
		EnrollmentSemesterID: f.semester.SemesterID,
		EnrollmentStatus:     enrollmentModel.EnrollmentStatusApproved,
		EnrollmentPaidStatus: enrollmentModel.EnrollmentPaidStatusUnpaid,
	}
	if err := f.db.Create(&stray).Error; err != nil {
		t.Fatalf("create stray enrollment: %v", err)
	}

	all, err := f.svc.MatchEnrollments(ctx, f.slot, nil)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("unfiltered match = %d enrollments, want 3", len(all))
	}

	// groupA filter keeps the groupA row and the unassigned legacy row,
	// drops groupB
	inA, err := f.svc.MatchEnrollments(ctx, f.slot, &f.groupA.SubGroupID)
	if err != nil {
		t.Fatalf("match groupA: %v", err)
	}
	if len(inA) != 2 {
		t.Fatalf("groupA match = %d enrollments, want 2", len(inA))
	}
	got := map[uuid.UUID]bool{}
	for _, en := range inA {
		got[en.EnrollmentID] = true
	}
	if !got[slotted.EnrollmentID] || !got[legacy.EnrollmentID] || got[inB.EnrollmentID] {
		t.Errorf("groupA match picked wrong rows: %v", got)
	}
}

func TestMarkIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	en := f.addEnrollment(t, "Alice", enrollOpt{
		status: enrollmentModel.EnrollmentStatusApproved, slotBound: true,
	})

	cell, err := f.svc.Mark(ctx, MarkParams{
		EnrollmentID: en.EnrollmentID, SlotID: f.slot.CourseSlotID,
		WeekNo: 3, Present: true, MarkedBy: f.marker.UserID,
	})
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if cell.AttendanceStatus != model.AttendanceStatusPresent {
		t.Errorf("status = %s, want PRESENT", cell.AttendanceStatus)
	}
	// week 3, Tuesday slot off a 2025-07-21 Monday start
	wantDate := time.Date(2025, time.August, 5, 0, 0, 0, 0, time.UTC)
	if !cell.AttendanceDate.Equal(wantDate) {
		t.Errorf("date = %s, want 2025-08-05", cell.AttendanceDate.Format("2006-01-02"))
	}

	// flipping the same cell overwrites, never duplicates
	cell2, err := f.svc.Mark(ctx, MarkParams{
		EnrollmentID: en.EnrollmentID, SlotID: f.slot.CourseSlotID,
		WeekNo: 3, Present: false, MarkedBy: f.marker.UserID,
	})
	if err != nil {
		t.Fatalf("re-mark: %v", err)
	}
	if cell2.AttendanceID != cell.AttendanceID {
		t.Errorf("re-mark created a new row")
	}
	if cell2.AttendanceStatus != model.AttendanceStatusAbsent {
		t.Errorf("status after flip = %s, want ABSENT", cell2.AttendanceStatus)
	}
	if n := countCells(t, f.db); n != 1 {
		t.Errorf("cell count = %d, want 1", n)
	}
}

func TestMarkSubGroupKeysAreDistinct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	en := f.addEnrollment(t, "Alice", enrollOpt{
		status: enrollmentModel.EnrollmentStatusApproved, slotBound: true,
	})

	for _, sub := range []*uuid.UUID{nil, &f.groupA.SubGroupID} {
		if _, err := f.svc.Mark(ctx, MarkParams{
			EnrollmentID: en.EnrollmentID, SlotID: f.slot.CourseSlotID,
			WeekNo: 1, SubGroupID: sub, Present: true, MarkedBy: f.marker.UserID,
		}); err != nil {
			t.Fatalf("mark: %v", err)
		}
	}
	// NULL and groupA are different cells
	if n := countCells(t, f.db); n != 2 {
		t.Errorf("cell count = %d, want 2", n)
	}
}

func TestMarkValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	en := f.addEnrollment(t, "Alice", enrollOpt{
		status: enrollmentModel.EnrollmentStatusApproved, slotBound: true,
	})

	for _, week := range []int{0, 11} {
		_, err := f.svc.Mark(ctx, MarkParams{
			EnrollmentID: en.EnrollmentID, SlotID: f.slot.CourseSlotID,
			WeekNo: week, Present: true, MarkedBy: f.marker.UserID,
		})
		if code := fiberCode(t, err); code != fiber.StatusBadRequest {
			t.Errorf("week %d: code = %d, want 400", week, code)
		}
	}

	_, err := f.svc.Mark(ctx, MarkParams{
		EnrollmentID: en.EnrollmentID, SlotID: uuid.New(),
		WeekNo: 1, Present: true, MarkedBy: f.marker.UserID,
	})
	if code := fiberCode(t, err); code != fiber.StatusNotFound {
		t.Errorf("unknown slot: code = %d, want 404", code)
	}

	_, err = f.svc.Mark(ctx, MarkParams{
		EnrollmentID: uuid.New(), SlotID: f.slot.CourseSlotID,
		WeekNo: 1, Present: true, MarkedBy: f.marker.UserID,
	})
	if code := fiberCode(t, err); code != fiber.StatusNotFound {
		t.Errorf("unknown enrollment: code = %d, want 404", code)
	}
}

func TestMarkWeekBulkConverges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addEnrollment(t, "Alice", enrollOpt{
		status: enrollmentModel.EnrollmentStatusApproved, slotBound: true, subGroupID: &f.groupA.SubGroupID,
	})
	f.addEnrollment(t, "Bob", enrollOpt{
		status: enrollmentModel.EnrollmentStatusApproved,
	})
	f.addEnrollment(t, "Carol", enrollOpt{
		status: enrollmentModel.EnrollmentStatusApproved, slotBound: true,
	})
	f.addEnrollment(t, "Dave", enrollOpt{
		status: enrollmentModel.EnrollmentStatusRejected, slotBound: true,
	})

	count, err := f.svc.MarkWeekBulk(ctx, BulkParams{
		SlotID: f.slot.CourseSlotID, WeekNo: 2, Present: true, MarkedBy: f.marker.UserID,
	})
	if err != nil {
		t.Fatalf("bulk: %v", err)
	}
	if count != 3 {
		t.Fatalf("bulk count = %d, want 3", count)
	}
	if n := countCells(t, f.db); n != 3 {
		t.Fatalf("cell count = %d, want 3", n)
	}

	// second run with the opposite status rewrites the same three rows
	count, err = f.svc.MarkWeekBulk(ctx, BulkParams{
		SlotID: f.slot.CourseSlotID, WeekNo: 2, Present: false, MarkedBy: f.marker.UserID,
	})
	if err != nil {
		t.Fatalf("bulk again: %v", err)
	}
	if count != 3 {
		t.Fatalf("second bulk count = %d, want 3", count)
	}
	if n := countCells(t, f.db); n != 3 {
		t.Fatalf("cell count after re-run = %d, want 3", n)
	}
	var absent int64
	if err := f.db.Model(&model.AttendanceModel{}).
		Where("attendance_status = ?", model.AttendanceStatusAbsent).
		Count(&absent).Error; err != nil {
		t.Fatalf("count absent: %v", err)
	}
	if absent != 3 {
		t.Errorf("absent count = %d, want 3", absent)
	}
}

func TestMarkWeekBulkNoMatches(t *testing.T) {
	f := newFixture(t)

	count, err := f.svc.MarkWeekBulk(context.Background(), BulkParams{
		SlotID: f.slot.CourseSlotID, WeekNo: 1, Present: true, MarkedBy: f.marker.UserID,
	})
	if err != nil {
		t.Fatalf("bulk: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestClearWeek(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addEnrollment(t, "Alice", enrollOpt{
		status: enrollmentModel.EnrollmentStatusApproved, slotBound: true,
	})
	f.addEnrollment(t, "Bob", enrollOpt{
		status: enrollmentModel.EnrollmentStatusApproved, slotBound: true,
	})

	if _, err := f.svc.MarkWeekBulk(ctx, BulkParams{
		SlotID: f.slot.CourseSlotID, WeekNo: 5, Present: true, MarkedBy: f.marker.UserID,
	}); err != nil {
		t.Fatalf("bulk: %v", err)
	}

	cleared, err := f.svc.ClearWeek(ctx, f.slot.CourseSlotID, nil, 5)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if cleared != 2 {
		t.Errorf("cleared = %d, want 2", cleared)
	}
	if n := countCells(t, f.db); n != 0 {
		t.Errorf("cell count after clear = %d, want 0", n)
	}
}

func TestTable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	en := f.addEnrollment(t, "Alice", enrollOpt{
		status: enrollmentModel.EnrollmentStatusApproved, slotBound: true, subGroupID: &f.groupA.SubGroupID, paid: true,
	})
	if _, err := f.svc.Mark(ctx, MarkParams{
		EnrollmentID: en.EnrollmentID, SlotID: f.slot.CourseSlotID,
		WeekNo: 3, SubGroupID: &f.groupA.SubGroupID, Present: true, MarkedBy: f.marker.UserID,
	}); err != nil {
		t.Fatalf("mark: %v", err)
	}

	table, err := f.svc.Table(ctx, f.slot.CourseSlotID, nil)
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	if table.WeekCount != 10 || len(table.Header) != 10 {
		t.Fatalf("header length = %d (week count %d), want 10", len(table.Header), table.WeekCount)
	}
	if table.Header[0].Label != "Tue 07/22" {
		t.Errorf("first header = %q, want %q", table.Header[0].Label, "Tue 07/22")
	}
	if len(table.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(table.Rows))
	}
	row := table.Rows[0]
	if row.StudentName != "Alice" || row.ParentName != "parent1" || !row.Paid {
		t.Errorf("row identity wrong: %+v", row)
	}
	for _, cell := range row.Cells {
		want := cell.Week == 3
		if cell.Present != want {
			t.Errorf("week %d present = %v, want %v", cell.Week, cell.Present, want)
		}
	}
}

func TestExportCSVStrict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	en := f.addEnrollment(t, "Alice", enrollOpt{
		status: enrollmentModel.EnrollmentStatusApproved, slotBound: true, paid: true,
	})
	if _, err := f.svc.Mark(ctx, MarkParams{
		EnrollmentID: en.EnrollmentID, SlotID: f.slot.CourseSlotID,
		WeekNo: 3, Present: true, MarkedBy: f.marker.UserID,
	}); err != nil {
		t.Fatalf("mark: %v", err)
	}

	name, payload, err := f.svc.ExportCSV(ctx, ExportParams{
		SlotID: f.slot.CourseSlotID, Strict: true,
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if name != "attendance_chess-beginners_fall-2025.csv" {
		t.Errorf("filename = %q", name)
	}

	records, err := csv.NewReader(strings.NewReader(string(payload))).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("csv rows = %d, want header + 1", len(records))
	}
	header := records[0]
	if len(header) != 13 {
		t.Fatalf("header columns = %d, want 13", len(header))
	}
	if header[3] != "W1 (Tue 07/22)" {
		t.Errorf("first week header = %q, want %q", header[3], "W1 (Tue 07/22)")
	}
	row := records[1]
	if row[0] != "Alice" || row[1] != "parent1" || row[2] != "PAID" {
		t.Errorf("leading columns = %v", row[:3])
	}
	for w := 1; w <= 10; w++ {
		want := model.AttendanceStatusAbsent
		if w == 3 {
			want = model.AttendanceStatusPresent
		}
		if row[2+w] != want {
			t.Errorf("week %d cell = %q, want %q", w, row[2+w], want)
		}
	}
}

func TestExportCSVStrictNoRecords(t *testing.T) {
	f := newFixture(t)

	f.addEnrollment(t, "Alice", enrollOpt{
		status: enrollmentModel.EnrollmentStatusApproved, slotBound: true,
	})
	f.addEnrollment(t, "Bob", enrollOpt{
		status: enrollmentModel.EnrollmentStatusApproved, slotBound: true,
	})

	_, payload, err := f.svc.ExportCSV(context.Background(), ExportParams{
		SlotID: f.slot.CourseSlotID, Strict: true,
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(string(payload))).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("csv rows = %d, want header + 2", len(records))
	}
	for _, row := range records[1:] {
		for w := 1; w <= 10; w++ {
			if row[2+w] != model.AttendanceStatusAbsent {
				t.Errorf("cell %d = %q, want ABSENT", w, row[2+w])
			}
		}
	}
}

func TestExportCSVLenient(t *testing.T) {
	f := newFixture(t)

	f.addEnrollment(t, "Alice", enrollOpt{
		status: enrollmentModel.EnrollmentStatusApproved, slotBound: true,
	})

	_, payload, err := f.svc.ExportCSV(context.Background(), ExportParams{
		SlotID: f.slot.CourseSlotID, Strict: false,
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(string(payload))).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	row := records[1]
	for w := 1; w <= 10; w++ {
		if row[2+w] != "" {
			t.Errorf("week %d cell = %q, want empty", w, row[2+w])
		}
	}
}
