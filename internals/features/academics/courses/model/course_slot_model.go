package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduportal_backend/internals/helpers/dbtime"
)

// CourseSlotModel is a course's fixed weekday + time pairing within one
// semester. weekday: 1=Mon .. 7=Sun.
type CourseSlotModel struct {
	CourseSlotID uuid.UUID `gorm:"type:uuid;primaryKey;column:course_slot_id" json:"course_slot_id"`

	CourseSlotCourseID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_course_slots_schedule;column:course_slot_course_id" json:"course_slot_course_id"`
	CourseSlotSemesterID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_course_slots_schedule;column:course_slot_semester_id" json:"course_slot_semester_id"`

	CourseSlotWeekday   int        `gorm:"not null;uniqueIndex:uq_course_slots_schedule;column:course_slot_weekday" json:"course_slot_weekday"`
	CourseSlotStartTime dbtime.Tod `gorm:"not null;uniqueIndex:uq_course_slots_schedule;column:course_slot_start_time" json:"course_slot_start_time"`
	CourseSlotEndTime   dbtime.Tod `gorm:"not null;uniqueIndex:uq_course_slots_schedule;column:course_slot_end_time" json:"course_slot_end_time"`

	CourseSlotCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:course_slot_created_at" json:"course_slot_created_at"`
	CourseSlotUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:course_slot_updated_at" json:"course_slot_updated_at"`
	CourseSlotDeletedAt gorm.DeletedAt `gorm:"column:course_slot_deleted_at;index" json:"course_slot_deleted_at,omitempty"`
}

func (CourseSlotModel) TableName() string { return "course_slots" }

func (m *CourseSlotModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseSlotID == uuid.Nil {
		m.CourseSlotID = uuid.New()
	}
	return nil
}

func (m *CourseSlotModel) BeforeSave(tx *gorm.DB) error {
	if m.CourseSlotWeekday < 1 || m.CourseSlotWeekday > 7 {
		return errors.New("course_slot_weekday must be within 1..7")
	}
	if !m.CourseSlotEndTime.After(m.CourseSlotStartTime.Time) {
		return errors.New("course_slot_end_time must be after course_slot_start_time")
	}
	return nil
}
