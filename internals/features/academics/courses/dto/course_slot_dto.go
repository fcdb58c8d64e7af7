package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"eduportal_backend/internals/features/academics/courses/model"
	"eduportal_backend/internals/helpers/dbtime"
)

type CourseSlotCreateDTO struct {
	CourseSlotCourseID   uuid.UUID `json:"course_slot_course_id"   validate:"required"`
	CourseSlotSemesterID uuid.UUID `json:"course_slot_semester_id" validate:"required"`
	CourseSlotWeekday    int       `json:"course_slot_weekday"     validate:"required,min=1,max=7"`
	CourseSlotStartTime  string    `json:"course_slot_start_time"  validate:"required"`
	CourseSlotEndTime    string    `json:"course_slot_end_time"    validate:"required"`
}

type CourseSlotResponseDTO struct {
	CourseSlotID         uuid.UUID  `json:"course_slot_id"`
	CourseSlotCourseID   uuid.UUID  `json:"course_slot_course_id"`
	CourseSlotSemesterID uuid.UUID  `json:"course_slot_semester_id"`
	CourseSlotWeekday    int        `json:"course_slot_weekday"`
	CourseSlotStartTime  dbtime.Tod `json:"course_slot_start_time"`
	CourseSlotEndTime    dbtime.Tod `json:"course_slot_end_time"`
	CourseSlotCreatedAt  time.Time  `json:"course_slot_created_at"`
}

type CourseSlotUpdateDTO struct {
	CourseSlotWeekday   *int    `json:"course_slot_weekday,omitempty"    validate:"omitempty,min=1,max=7"`
	CourseSlotStartTime *string `json:"course_slot_start_time,omitempty"`
	CourseSlotEndTime   *string `json:"course_slot_end_time,omitempty"`
}

func (p *CourseSlotUpdateDTO) ApplyUpdates(ent *model.CourseSlotModel) error {
	if p.CourseSlotWeekday != nil {
		ent.CourseSlotWeekday = *p.CourseSlotWeekday
	}
	if p.CourseSlotStartTime != nil {
		start, err := dbtime.Parse(*p.CourseSlotStartTime)
		if err != nil {
			return fmt.Errorf("course_slot_start_time: %w", err)
		}
		ent.CourseSlotStartTime = start
	}
	if p.CourseSlotEndTime != nil {
		end, err := dbtime.Parse(*p.CourseSlotEndTime)
		if err != nil {
			return fmt.Errorf("course_slot_end_time: %w", err)
		}
		ent.CourseSlotEndTime = end
	}
	return nil
}

// CourseSlotOptionDTO feeds the cascading pickers (enroll form, attendance
// page): id + human label.
type CourseSlotOptionDTO struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
}

func (p *CourseSlotCreateDTO) ToModel() (model.CourseSlotModel, error) {
	start, err := dbtime.Parse(p.CourseSlotStartTime)
	if err != nil {
		return model.CourseSlotModel{}, fmt.Errorf("course_slot_start_time: %w", err)
	}
	end, err := dbtime.Parse(p.CourseSlotEndTime)
	if err != nil {
		return model.CourseSlotModel{}, fmt.Errorf("course_slot_end_time: %w", err)
	}
	return model.CourseSlotModel{
		CourseSlotCourseID:   p.CourseSlotCourseID,
		CourseSlotSemesterID: p.CourseSlotSemesterID,
		CourseSlotWeekday:    p.CourseSlotWeekday,
		CourseSlotStartTime:  start,
		CourseSlotEndTime:    end,
	}, nil
}

func FromCourseSlotModel(ent model.CourseSlotModel) CourseSlotResponseDTO {
	return CourseSlotResponseDTO{
		CourseSlotID:         ent.CourseSlotID,
		CourseSlotCourseID:   ent.CourseSlotCourseID,
		CourseSlotSemesterID: ent.CourseSlotSemesterID,
		CourseSlotWeekday:    ent.CourseSlotWeekday,
		CourseSlotStartTime:  ent.CourseSlotStartTime,
		CourseSlotEndTime:    ent.CourseSlotEndTime,
		CourseSlotCreatedAt:  ent.CourseSlotCreatedAt,
	}
}

func FromCourseSlotModels(ents []model.CourseSlotModel) []CourseSlotResponseDTO {
	out := make([]CourseSlotResponseDTO, 0, len(ents))
	for _, e := range ents {
		out = append(out, FromCourseSlotModel(e))
	}
	return out
}

func SlotOption(slot model.CourseSlotModel, courseTitle string) CourseSlotOptionDTO {
	return CourseSlotOptionDTO{
		ID:    slot.CourseSlotID,
		Label: fmt.Sprintf("%s %s–%s", courseTitle, slot.CourseSlotStartTime.HHMM(), slot.CourseSlotEndTime.HHMM()),
	}
}
