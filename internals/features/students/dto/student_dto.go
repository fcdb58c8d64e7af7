package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"eduportal_backend/internals/features/students/model"
)

type StudentCreateDTO struct {
	StudentFullName  string     `json:"student_full_name" validate:"required,min=1,max=120"`
	StudentBirthDate *time.Time `json:"student_birth_date,omitempty"`
	StudentNotes     string     `json:"student_notes"     validate:"omitempty,max=255"`
}

type StudentUpdateDTO struct {
	StudentFullName  *string    `json:"student_full_name,omitempty" validate:"omitempty,min=1,max=120"`
	StudentBirthDate *time.Time `json:"student_birth_date,omitempty"`
	StudentNotes     *string    `json:"student_notes,omitempty"     validate:"omitempty,max=255"`
	StudentIsActive  *bool      `json:"student_is_active,omitempty"`
}

type StudentResponseDTO struct {
	StudentID        uuid.UUID  `json:"student_id"`
	StudentParentID  uuid.UUID  `json:"student_parent_id"`
	StudentFullName  string     `json:"student_full_name"`
	StudentBirthDate *time.Time `json:"student_birth_date,omitempty"`
	StudentNotes     string     `json:"student_notes"`
	StudentIsActive  bool       `json:"student_is_active"`
	StudentCreatedAt time.Time  `json:"student_created_at"`
}

func (p *StudentCreateDTO) ToModel(parentID uuid.UUID) model.StudentModel {
	return model.StudentModel{
		StudentParentID:  parentID,
		StudentFullName:  strings.TrimSpace(p.StudentFullName),
		StudentBirthDate: p.StudentBirthDate,
		StudentNotes:     strings.TrimSpace(p.StudentNotes),
		StudentIsActive:  true,
	}
}

func (u *StudentUpdateDTO) ApplyUpdates(ent *model.StudentModel) {
	if u.StudentFullName != nil {
		ent.StudentFullName = strings.TrimSpace(*u.StudentFullName)
	}
	if u.StudentBirthDate != nil {
		ent.StudentBirthDate = u.StudentBirthDate
	}
	if u.StudentNotes != nil {
		ent.StudentNotes = strings.TrimSpace(*u.StudentNotes)
	}
	if u.StudentIsActive != nil {
		ent.StudentIsActive = *u.StudentIsActive
	}
}

func FromModel(ent model.StudentModel) StudentResponseDTO {
	return StudentResponseDTO{
		StudentID:        ent.StudentID,
		StudentParentID:  ent.StudentParentID,
		StudentFullName:  ent.StudentFullName,
		StudentBirthDate: ent.StudentBirthDate,
		StudentNotes:     ent.StudentNotes,
		StudentIsActive:  ent.StudentIsActive,
		StudentCreatedAt: ent.StudentCreatedAt,
	}
}

func FromModels(ents []model.StudentModel) []StudentResponseDTO {
	out := make([]StudentResponseDTO, 0, len(ents))
	for _, e := range ents {
		out = append(out, FromModel(e))
	}
	return out
}
