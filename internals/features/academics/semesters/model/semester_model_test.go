package model

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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
	if err := db.AutoMigrate(&SemesterModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSemesterStartMustBeMonday(t *testing.T) {
	db := openDB(t)

	monday := time.Date(2025, time.July, 21, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	ok := SemesterModel{
		SemesterCampusID:  uuid.New(),
		SemesterName:      "Fall 2025",
		SemesterStartDate: monday,
		SemesterWeekCount: 10,
	}
	if err := db.Create(&ok).Error; err != nil {
		t.Fatalf("monday start rejected: %v", err)
	}

	bad := SemesterModel{
		SemesterCampusID:  uuid.New(),
		SemesterName:      "Broken",
		SemesterStartDate: tuesday,
		SemesterWeekCount: 10,
	}
	if err := db.Create(&bad).Error; err == nil {
		t.Fatal("tuesday start accepted, want error")
	}
}

func TestSemesterWeekCountLowerBound(t *testing.T) {
	db := openDB(t)

	bad := SemesterModel{
		SemesterCampusID:  uuid.New(),
		SemesterName:      "Empty",
		SemesterStartDate: time.Date(2025, time.July, 21, 0, 0, 0, 0, time.UTC),
		SemesterWeekCount: 0,
	}
	if err := db.Create(&bad).Error; err == nil {
		t.Fatal("zero week count accepted, want error")
	}
}
