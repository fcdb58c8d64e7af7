package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID       uuid.UUID `gorm:"type:uuid;primaryKey;column:student_id" json:"student_id"`
	StudentParentID uuid.UUID `gorm:"type:uuid;not null;index:idx_students_parent_name;column:student_parent_id" json:"student_parent_id"`

	StudentFullName  string     `gorm:"type:varchar(120);not null;index:idx_students_parent_name;column:student_full_name" json:"student_full_name"`
	StudentBirthDate *time.Time `gorm:"type:date;column:student_birth_date" json:"student_birth_date,omitempty"`
	StudentNotes     string     `gorm:"type:varchar(255);not null;default:'';column:student_notes" json:"student_notes"`
	StudentIsActive  bool       `gorm:"not null;default:true;column:student_is_active" json:"student_is_active"`

	StudentCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}

func (m *StudentModel) BeforeSave(tx *gorm.DB) error {
	m.StudentFullName = strings.TrimSpace(m.StudentFullName)
	m.StudentNotes = strings.TrimSpace(m.StudentNotes)
	return nil
}
