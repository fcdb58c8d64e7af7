package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID       uuid.UUID `gorm:"type:uuid;primaryKey;column:course_id" json:"course_id"`
	CourseCampusID uuid.UUID `gorm:"type:uuid;not null;index;column:course_campus_id" json:"course_campus_id"`

	CourseTitle    string `gorm:"type:varchar(200);not null;column:course_title" json:"course_title"`
	CourseIntro    string `gorm:"type:text;not null;default:'';column:course_intro" json:"course_intro"`
	CourseIsActive bool   `gorm:"not null;default:true;column:course_is_active" json:"course_is_active"`

	CourseCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:course_created_at" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:course_updated_at" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	return nil
}

func (m *CourseModel) BeforeSave(tx *gorm.DB) error {
	m.CourseTitle = strings.TrimSpace(m.CourseTitle)
	return nil
}
