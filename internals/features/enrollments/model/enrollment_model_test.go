package model

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	studentModel "eduportal_backend/internals/features/students/model"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&studentModel.StudentModel{}, &EnrollmentModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestBeforeSaveBindsParentToStudent(t *testing.T) {
	db := openDB(t)

	realParent := uuid.New()
	st := studentModel.StudentModel{
		StudentParentID: realParent,
		StudentFullName: "Alice",
	}
	if err := db.Create(&st).Error; err != nil {
		t.Fatalf("create student: %v", err)
	}

	// a mismatched parent id is silently corrected to the student's parent
	en := EnrollmentModel{
		EnrollmentParentID:   uuid.New(),
		EnrollmentStudentID:  &st.StudentID,
		EnrollmentCourseID:   uuid.New(),
		EnrollmentSemesterID: uuid.New(),
	}
	if err := db.Create(&en).Error; err != nil {
		t.Fatalf("create enrollment: %v", err)
	}
	if en.EnrollmentParentID != realParent {
		t.Errorf("parent = %s, want student's parent %s", en.EnrollmentParentID, realParent)
	}
}

func TestBeforeSaveRejectsUnknownStudent(t *testing.T) {
	db := openDB(t)

	missing := uuid.New()
	en := EnrollmentModel{
		EnrollmentParentID:   uuid.New(),
		EnrollmentStudentID:  &missing,
		EnrollmentCourseID:   uuid.New(),
		EnrollmentSemesterID: uuid.New(),
	}
	if err := db.Create(&en).Error; err == nil {
		t.Fatal("create with unknown student succeeded, want error")
	}
}

func TestBeforeSaveAllowsLegacyParentOnlyRows(t *testing.T) {
	db := openDB(t)

	en := EnrollmentModel{
		EnrollmentParentID:   uuid.New(),
		EnrollmentCourseID:   uuid.New(),
		EnrollmentSemesterID: uuid.New(),
	}
	if err := db.Create(&en).Error; err != nil {
		t.Fatalf("create without student: %v", err)
	}
}
