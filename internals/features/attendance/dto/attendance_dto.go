package dto

import (
	"time"

	"github.com/google/uuid"

	"eduportal_backend/internals/features/attendance/model"
)

// MarkRequestDTO flips one cell for one enrollment.
type MarkRequestDTO struct {
	EnrollmentID uuid.UUID  `json:"enrollment_id" validate:"required"`
	SlotID       uuid.UUID  `json:"slot_id" validate:"required"`
	WeekNo       int        `json:"week_no" validate:"required,min=1"`
	SubGroupID   *uuid.UUID `json:"sub_group_id,omitempty"`
	Present      bool       `json:"present"`
}

// BulkMarkRequestDTO marks a whole week for every matched enrollment.
type BulkMarkRequestDTO struct {
	SlotID     uuid.UUID  `json:"slot_id" validate:"required"`
	WeekNo     int        `json:"week_no" validate:"required,min=1"`
	SubGroupID *uuid.UUID `json:"sub_group_id,omitempty"`
	Present    bool       `json:"present"`
}

// RecordUpdateDTO is the admin-side direct edit of a stored record. It is the
// only path that may write LATE.
type RecordUpdateDTO struct {
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=PRESENT ABSENT LATE"`
	Date   *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (in *RecordUpdateDTO) ApplyUpdates(m *model.AttendanceModel) error {
	if in.Status != nil {
		m.AttendanceStatus = *in.Status
	}
	if in.Date != nil {
		d, err := time.Parse("2006-01-02", *in.Date)
		if err != nil {
			return err
		}
		m.AttendanceDate = d
	}
	return nil
}

type AttendanceResponseDTO struct {
	AttendanceID uuid.UUID  `json:"attendance_id"`
	EnrollmentID uuid.UUID  `json:"enrollment_id"`
	SlotID       uuid.UUID  `json:"slot_id"`
	WeekNo       int        `json:"week_no"`
	SubGroupID   *uuid.UUID `json:"sub_group_id,omitempty"`
	Date         string     `json:"date"`
	Status       string     `json:"status"`
	MarkedByID   uuid.UUID  `json:"marked_by_user_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func FromModel(m model.AttendanceModel) AttendanceResponseDTO {
	return AttendanceResponseDTO{
		AttendanceID: m.AttendanceID,
		EnrollmentID: m.AttendanceEnrollmentID,
		SlotID:       m.AttendanceCourseSlotID,
		WeekNo:       m.AttendanceWeekNo,
		SubGroupID:   m.AttendanceSubGroupID,
		Date:         m.AttendanceDate.Format("2006-01-02"),
		Status:       m.AttendanceStatus,
		MarkedByID:   m.AttendanceMarkedByUserID,
		CreatedAt:    m.AttendanceCreatedAt,
		UpdatedAt:    m.AttendanceUpdatedAt,
	}
}

func FromModels(ms []model.AttendanceModel) []AttendanceResponseDTO {
	out := make([]AttendanceResponseDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
