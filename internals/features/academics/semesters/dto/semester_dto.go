package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"eduportal_backend/internals/features/academics/semesters/model"
)

type SemesterCreateDTO struct {
	SemesterCampusID  uuid.UUID `json:"semester_campus_id"  validate:"required"`
	SemesterName      string    `json:"semester_name"       validate:"required,min=2,max=120"`
	SemesterStartDate time.Time `json:"semester_start_date" validate:"required"`
	SemesterWeekCount int       `json:"semester_week_count" validate:"required,min=1,max=52"`
	// pointer: distinguish "not sent" from "false"
	SemesterIsActive *bool `json:"semester_is_active,omitempty"`
}

type SemesterUpdateDTO struct {
	SemesterName      *string    `json:"semester_name,omitempty"       validate:"omitempty,min=2,max=120"`
	SemesterStartDate *time.Time `json:"semester_start_date,omitempty"`
	SemesterWeekCount *int       `json:"semester_week_count,omitempty" validate:"omitempty,min=1,max=52"`
	SemesterIsActive  *bool      `json:"semester_is_active,omitempty"`
}

type SemesterResponseDTO struct {
	SemesterID        uuid.UUID      `json:"semester_id"`
	SemesterCampusID  uuid.UUID      `json:"semester_campus_id"`
	SemesterName      string         `json:"semester_name"`
	SemesterStartDate time.Time      `json:"semester_start_date"`
	SemesterWeekCount int            `json:"semester_week_count"`
	SemesterIsActive  bool           `json:"semester_is_active"`
	SemesterStats     datatypes.JSON `json:"semester_stats,omitempty"`
	SemesterCreatedAt time.Time      `json:"semester_created_at"`
}

func (p *SemesterCreateDTO) Normalize() {
	p.SemesterName = strings.TrimSpace(p.SemesterName)
}

func (p *SemesterCreateDTO) ToModel() model.SemesterModel {
	isActive := true
	if p.SemesterIsActive != nil {
		isActive = *p.SemesterIsActive
	}
	return model.SemesterModel{
		SemesterCampusID:  p.SemesterCampusID,
		SemesterName:      p.SemesterName,
		SemesterStartDate: p.SemesterStartDate,
		SemesterWeekCount: p.SemesterWeekCount,
		SemesterIsActive:  isActive,
	}
}

func (u *SemesterUpdateDTO) ApplyUpdates(ent *model.SemesterModel) {
	if u.SemesterName != nil {
		ent.SemesterName = strings.TrimSpace(*u.SemesterName)
	}
	if u.SemesterStartDate != nil {
		ent.SemesterStartDate = *u.SemesterStartDate
	}
	if u.SemesterWeekCount != nil {
		ent.SemesterWeekCount = *u.SemesterWeekCount
	}
	if u.SemesterIsActive != nil {
		ent.SemesterIsActive = *u.SemesterIsActive
	}
}

func FromModel(ent model.SemesterModel) SemesterResponseDTO {
	return SemesterResponseDTO{
		SemesterID:        ent.SemesterID,
		SemesterCampusID:  ent.SemesterCampusID,
		SemesterName:      ent.SemesterName,
		SemesterStartDate: ent.SemesterStartDate,
		SemesterWeekCount: ent.SemesterWeekCount,
		SemesterIsActive:  ent.SemesterIsActive,
		SemesterStats:     ent.SemesterStats,
		SemesterCreatedAt: ent.SemesterCreatedAt,
	}
}

func FromModels(ents []model.SemesterModel) []SemesterResponseDTO {
	out := make([]SemesterResponseDTO, 0, len(ents))
	for _, e := range ents {
		out = append(out, FromModel(e))
	}
	return out
}
