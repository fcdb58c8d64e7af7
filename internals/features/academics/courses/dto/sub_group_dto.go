package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"eduportal_backend/internals/features/academics/courses/model"
)

type SubGroupCreateDTO struct {
	SubGroupCourseSlotID uuid.UUID `json:"sub_group_course_slot_id" validate:"required"`
	SubGroupName         string    `json:"sub_group_name"           validate:"required,min=1,max=120"`
}

type SubGroupUpdateDTO struct {
	SubGroupName *string `json:"sub_group_name,omitempty" validate:"omitempty,min=1,max=120"`
}

type SubGroupResponseDTO struct {
	SubGroupID           uuid.UUID `json:"sub_group_id"`
	SubGroupCourseSlotID uuid.UUID `json:"sub_group_course_slot_id"`
	SubGroupName         string    `json:"sub_group_name"`
	SubGroupCreatedAt    time.Time `json:"sub_group_created_at"`
}

func (p *SubGroupCreateDTO) ToModel() model.SubGroupModel {
	return model.SubGroupModel{
		SubGroupCourseSlotID: p.SubGroupCourseSlotID,
		SubGroupName:         strings.TrimSpace(p.SubGroupName),
	}
}

func FromSubGroupModel(ent model.SubGroupModel) SubGroupResponseDTO {
	return SubGroupResponseDTO{
		SubGroupID:           ent.SubGroupID,
		SubGroupCourseSlotID: ent.SubGroupCourseSlotID,
		SubGroupName:         ent.SubGroupName,
		SubGroupCreatedAt:    ent.SubGroupCreatedAt,
	}
}

func FromSubGroupModels(ents []model.SubGroupModel) []SubGroupResponseDTO {
	out := make([]SubGroupResponseDTO, 0, len(ents))
	for _, e := range ents {
		out = append(out, FromSubGroupModel(e))
	}
	return out
}
