package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "eduportal_backend/internals/features/students/model"
)

// Enrollment status lifecycle: PENDING → APPROVED/REJECTED by staff, or
// CANCELLED by the parent while still PENDING.
const (
	EnrollmentStatusPending   = "PENDING"
	EnrollmentStatusApproved  = "APPROVED"
	EnrollmentStatusRejected  = "REJECTED"
	EnrollmentStatusCancelled = "CANCELLED"
)

const (
	EnrollmentPaidStatusUnpaid = "UNPAID"
	EnrollmentPaidStatusPaid   = "PAID"
)

type EnrollmentModel struct {
	EnrollmentID       uuid.UUID `gorm:"type:uuid;primaryKey;column:enrollment_id" json:"enrollment_id"`
	EnrollmentParentID uuid.UUID `gorm:"type:uuid;not null;index;column:enrollment_parent_id" json:"enrollment_parent_id"`

	// optional: legacy rows may carry only the parent
	EnrollmentStudentID *uuid.UUID `gorm:"type:uuid;index;column:enrollment_student_id" json:"enrollment_student_id,omitempty"`

	EnrollmentCourseID   uuid.UUID `gorm:"type:uuid;not null;index;column:enrollment_course_id" json:"enrollment_course_id"`
	EnrollmentSemesterID uuid.UUID `gorm:"type:uuid;not null;index;column:enrollment_semester_id" json:"enrollment_semester_id"`

	// nullable: enrollments created before slot-level binding existed have no
	// slot; the attendance matcher falls back to course+semester for them.
	EnrollmentCourseSlotID *uuid.UUID `gorm:"type:uuid;index;column:enrollment_course_slot_id" json:"enrollment_course_slot_id,omitempty"`
	EnrollmentSubGroupID   *uuid.UUID `gorm:"type:uuid;index;column:enrollment_sub_group_id" json:"enrollment_sub_group_id,omitempty"`

	EnrollmentStatus     string `gorm:"type:varchar(16);not null;default:'PENDING';column:enrollment_status" json:"enrollment_status"`
	EnrollmentPaidStatus string `gorm:"type:varchar(16);not null;default:'UNPAID';column:enrollment_paid_status" json:"enrollment_paid_status"`

	EnrollmentCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:enrollment_created_at" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:enrollment_updated_at" json:"enrollment_updated_at"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollment_deleted_at;index" json:"enrollment_deleted_at,omitempty"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

func (m *EnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.EnrollmentID == uuid.Nil {
		m.EnrollmentID = uuid.New()
	}
	return nil
}

// BeforeSave enforces the parent/student invariant: when a student is bound,
// the enrollment's parent is corrected to the student's parent.
func (m *EnrollmentModel) BeforeSave(tx *gorm.DB) error {
	if m.EnrollmentStudentID == nil {
		return nil
	}
	var st studentModel.StudentModel
	if err := tx.Select("student_id", "student_parent_id").
		First(&st, "student_id = ?", *m.EnrollmentStudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("enrollment_student_id does not resolve")
		}
		return err
	}
	m.EnrollmentParentID = st.StudentParentID
	return nil
}
