package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AttendanceStatusPresent = "PRESENT"
	AttendanceStatusAbsent  = "ABSENT"
	AttendanceStatusLate    = "LATE"
)

// AttendanceModel holds one weekly mark. The cell key is
// (enrollment, slot, week_no, sub_group); NULL sub_group is its own key
// value, so slot-wide marks and per-group marks never collide.
type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceEnrollmentID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_cell,where:attendance_deleted_at IS NULL;column:attendance_enrollment_id" json:"attendance_enrollment_id"`
	AttendanceCourseSlotID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_cell,where:attendance_deleted_at IS NULL;index;column:attendance_course_slot_id" json:"attendance_course_slot_id"`
	AttendanceWeekNo       int        `gorm:"not null;uniqueIndex:uq_attendance_cell,where:attendance_deleted_at IS NULL;column:attendance_week_no" json:"attendance_week_no"`
	AttendanceSubGroupID   *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_attendance_cell,where:attendance_deleted_at IS NULL;column:attendance_sub_group_id" json:"attendance_sub_group_id,omitempty"`

	// derived display date; recomputed on every overwrite
	AttendanceDate time.Time `gorm:"type:date;not null;column:attendance_date" json:"attendance_date"`

	// PRESENT | ABSENT | LATE
	AttendanceStatus string `gorm:"type:varchar(8);not null;default:'PRESENT';column:attendance_status" json:"attendance_status"`

	// the staff user who made the last mark; users are soft-deleted only, so
	// the reference stays resolvable
	AttendanceMarkedByUserID uuid.UUID `gorm:"type:uuid;not null;column:attendance_marked_by_user_id" json:"attendance_marked_by_user_id"`

	AttendanceCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:attendance_created_at" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:attendance_updated_at" json:"attendance_updated_at"`
	AttendanceDeletedAt gorm.DeletedAt `gorm:"column:attendance_deleted_at;index" json:"attendance_deleted_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
	}
	return nil
}
