package dto

import (
	"time"

	"github.com/google/uuid"

	"eduportal_backend/internals/features/enrollments/model"
)

// =======================
// Request DTOs
// =======================

// EnrollRequestDTO mirrors the parent enroll form: campus/semester/weekday
// pin the slot down, then either an existing child or a new child's name.
type EnrollRequestDTO struct {
	CampusID   uuid.UUID  `json:"campus_id"   validate:"required"`
	SemesterID uuid.UUID  `json:"semester_id" validate:"required"`
	Weekday    int        `json:"weekday"     validate:"required,min=1,max=7"`
	SlotID     uuid.UUID  `json:"slot_id"     validate:"required"`
	SubGroupID *uuid.UUID `json:"sub_group_id,omitempty"`

	StudentID      *uuid.UUID `json:"student_id,omitempty"`
	NewStudentName string     `json:"new_student_name" validate:"omitempty,max=120"`
}

type EnrollmentDecisionDTO struct {
	// APPROVED or REJECTED
	EnrollmentStatus string `json:"enrollment_status" validate:"required,oneof=APPROVED REJECTED"`
}

type EnrollmentPaidDTO struct {
	EnrollmentPaidStatus string `json:"enrollment_paid_status" validate:"required,oneof=UNPAID PAID"`
}

// AdminAssignDTO binds/rebinds slot and sub-group on an existing enrollment
// (used to migrate legacy rows onto slots).
type AdminAssignDTO struct {
	EnrollmentCourseSlotID *uuid.UUID `json:"enrollment_course_slot_id,omitempty"`
	EnrollmentSubGroupID   *uuid.UUID `json:"enrollment_sub_group_id,omitempty"`
}

// =======================
// Response DTO
// =======================

type EnrollmentResponseDTO struct {
	EnrollmentID           uuid.UUID  `json:"enrollment_id"`
	EnrollmentParentID     uuid.UUID  `json:"enrollment_parent_id"`
	EnrollmentStudentID    *uuid.UUID `json:"enrollment_student_id,omitempty"`
	EnrollmentCourseID     uuid.UUID  `json:"enrollment_course_id"`
	EnrollmentSemesterID   uuid.UUID  `json:"enrollment_semester_id"`
	EnrollmentCourseSlotID *uuid.UUID `json:"enrollment_course_slot_id,omitempty"`
	EnrollmentSubGroupID   *uuid.UUID `json:"enrollment_sub_group_id,omitempty"`
	EnrollmentStatus       string     `json:"enrollment_status"`
	EnrollmentPaidStatus   string     `json:"enrollment_paid_status"`
	EnrollmentCreatedAt    time.Time  `json:"enrollment_created_at"`

	// denormalized display names, filled by the controller when loaded
	StudentName  string `json:"student_name,omitempty"`
	CourseTitle  string `json:"course_title,omitempty"`
	SubGroupName string `json:"sub_group_name,omitempty"`
}

func FromModel(ent model.EnrollmentModel) EnrollmentResponseDTO {
	return EnrollmentResponseDTO{
		EnrollmentID:           ent.EnrollmentID,
		EnrollmentParentID:     ent.EnrollmentParentID,
		EnrollmentStudentID:    ent.EnrollmentStudentID,
		EnrollmentCourseID:     ent.EnrollmentCourseID,
		EnrollmentSemesterID:   ent.EnrollmentSemesterID,
		EnrollmentCourseSlotID: ent.EnrollmentCourseSlotID,
		EnrollmentSubGroupID:   ent.EnrollmentSubGroupID,
		EnrollmentStatus:       ent.EnrollmentStatus,
		EnrollmentPaidStatus:   ent.EnrollmentPaidStatus,
		EnrollmentCreatedAt:    ent.EnrollmentCreatedAt,
	}
}

func FromModels(ents []model.EnrollmentModel) []EnrollmentResponseDTO {
	out := make([]EnrollmentResponseDTO, 0, len(ents))
	for _, e := range ents {
		out = append(out, FromModel(e))
	}
	return out
}
