package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SemesterModel struct {
	SemesterID       uuid.UUID `gorm:"type:uuid;primaryKey;column:semester_id" json:"semester_id"`
	SemesterCampusID uuid.UUID `gorm:"type:uuid;not null;index;column:semester_campus_id" json:"semester_campus_id"`

	SemesterName string `gorm:"type:varchar(120);not null;column:semester_name" json:"semester_name"`

	// Monday of week 1; every weekly date in the semester derives from it.
	SemesterStartDate time.Time `gorm:"type:date;not null;column:semester_start_date" json:"semester_start_date"`
	SemesterWeekCount int       `gorm:"not null;default:10;column:semester_week_count" json:"semester_week_count"`

	SemesterIsActive bool `gorm:"not null;default:true;column:semester_is_active" json:"semester_is_active"`

	// flexible extra stats, admin dashboard only
	SemesterStats datatypes.JSON `gorm:"type:jsonb;column:semester_stats" json:"semester_stats,omitempty"`

	SemesterCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:semester_created_at" json:"semester_created_at"`
	SemesterUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:semester_updated_at" json:"semester_updated_at"`
	SemesterDeletedAt gorm.DeletedAt `gorm:"column:semester_deleted_at;index" json:"semester_deleted_at,omitempty"`
}

func (SemesterModel) TableName() string { return "semesters" }

func (m *SemesterModel) BeforeCreate(tx *gorm.DB) error {
	if m.SemesterID == uuid.Nil {
		m.SemesterID = uuid.New()
	}
	return nil
}

func (m *SemesterModel) BeforeSave(tx *gorm.DB) error {
	m.SemesterName = strings.TrimSpace(m.SemesterName)
	if m.SemesterWeekCount < 1 {
		return errors.New("semester_week_count must be >= 1")
	}
	if m.SemesterStartDate.Weekday() != time.Monday {
		return errors.New("semester_start_date must be a Monday")
	}
	return nil
}
