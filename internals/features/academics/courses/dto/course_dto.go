package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"eduportal_backend/internals/features/academics/courses/model"
)

type CourseCreateDTO struct {
	CourseCampusID uuid.UUID `json:"course_campus_id" validate:"required"`
	CourseTitle    string    `json:"course_title"     validate:"required,min=2,max=200"`
	CourseIntro    string    `json:"course_intro"     validate:"omitempty"`
	CourseIsActive *bool     `json:"course_is_active,omitempty"`
}

type CourseUpdateDTO struct {
	CourseTitle    *string `json:"course_title,omitempty" validate:"omitempty,min=2,max=200"`
	CourseIntro    *string `json:"course_intro,omitempty"`
	CourseIsActive *bool   `json:"course_is_active,omitempty"`
}

type CourseResponseDTO struct {
	CourseID        uuid.UUID `json:"course_id"`
	CourseCampusID  uuid.UUID `json:"course_campus_id"`
	CourseTitle     string    `json:"course_title"`
	CourseIntro     string    `json:"course_intro"`
	CourseIsActive  bool      `json:"course_is_active"`
	CourseCreatedAt time.Time `json:"course_created_at"`
}

func (p *CourseCreateDTO) Normalize() {
	p.CourseTitle = strings.TrimSpace(p.CourseTitle)
	p.CourseIntro = strings.TrimSpace(p.CourseIntro)
}

func (p *CourseCreateDTO) ToModel() model.CourseModel {
	isActive := true
	if p.CourseIsActive != nil {
		isActive = *p.CourseIsActive
	}
	return model.CourseModel{
		CourseCampusID: p.CourseCampusID,
		CourseTitle:    p.CourseTitle,
		CourseIntro:    p.CourseIntro,
		CourseIsActive: isActive,
	}
}

func (u *CourseUpdateDTO) ApplyUpdates(ent *model.CourseModel) {
	if u.CourseTitle != nil {
		ent.CourseTitle = strings.TrimSpace(*u.CourseTitle)
	}
	if u.CourseIntro != nil {
		ent.CourseIntro = strings.TrimSpace(*u.CourseIntro)
	}
	if u.CourseIsActive != nil {
		ent.CourseIsActive = *u.CourseIsActive
	}
}

func FromCourseModel(ent model.CourseModel) CourseResponseDTO {
	return CourseResponseDTO{
		CourseID:        ent.CourseID,
		CourseCampusID:  ent.CourseCampusID,
		CourseTitle:     ent.CourseTitle,
		CourseIntro:     ent.CourseIntro,
		CourseIsActive:  ent.CourseIsActive,
		CourseCreatedAt: ent.CourseCreatedAt,
	}
}

func FromCourseModels(ents []model.CourseModel) []CourseResponseDTO {
	out := make([]CourseResponseDTO, 0, len(ents))
	for _, e := range ents {
		out = append(out, FromCourseModel(e))
	}
	return out
}
