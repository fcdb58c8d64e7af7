package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"eduportal_backend/internals/features/resources/model"
)

type ResourceCreateDTO struct {
	SubGroupID  uuid.UUID `json:"sub_group_id" validate:"required"`
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags" validate:"omitempty,dive,max=50"`
	OrderNo     int       `json:"order_no" validate:"min=0"`
}

func (in ResourceCreateDTO) ToModel(createdBy uuid.UUID) model.LearningResourceModel {
	return model.LearningResourceModel{
		LearningResourceSubGroupID:      in.SubGroupID,
		LearningResourceTitle:           in.Title,
		LearningResourceDescription:     in.Description,
		LearningResourceTags:            pq.StringArray(in.Tags),
		LearningResourceOrderNo:         in.OrderNo,
		LearningResourceIsActive:        true,
		LearningResourceCreatedByUserID: createdBy,
	}
}

type ResourceUpdateDTO struct {
	Title       *string   `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string   `json:"description,omitempty"`
	Tags        *[]string `json:"tags,omitempty" validate:"omitempty,dive,max=50"`
	OrderNo     *int      `json:"order_no,omitempty" validate:"omitempty,min=0"`
	IsActive    *bool     `json:"is_active,omitempty"`
}

func (in *ResourceUpdateDTO) ApplyUpdates(m *model.LearningResourceModel) {
	if in.Title != nil {
		m.LearningResourceTitle = *in.Title
	}
	if in.Description != nil {
		m.LearningResourceDescription = *in.Description
	}
	if in.Tags != nil {
		m.LearningResourceTags = pq.StringArray(*in.Tags)
	}
	if in.OrderNo != nil {
		m.LearningResourceOrderNo = *in.OrderNo
	}
	if in.IsActive != nil {
		m.LearningResourceIsActive = *in.IsActive
	}
}

type ResourceItemCreateDTO struct {
	Type    string `json:"type" validate:"required,oneof=VIDEO FILE IMAGE LINK"`
	URL     string `json:"url" validate:"required,url"`
	OrderNo int    `json:"order_no" validate:"min=0"`
}

func (in ResourceItemCreateDTO) ToModel(resourceID uuid.UUID) model.LearningResourceItemModel {
	return model.LearningResourceItemModel{
		LearningResourceItemResourceID: resourceID,
		LearningResourceItemType:       in.Type,
		LearningResourceItemURL:        in.URL,
		LearningResourceItemOrderNo:    in.OrderNo,
	}
}

type ResourceItemResponseDTO struct {
	ItemID  uuid.UUID `json:"item_id"`
	Type    string    `json:"type"`
	URL     string    `json:"url"`
	OrderNo int       `json:"order_no"`
}

type ResourceResponseDTO struct {
	LearningResourceID uuid.UUID                 `json:"learning_resource_id"`
	SubGroupID         uuid.UUID                 `json:"sub_group_id"`
	Title              string                    `json:"title"`
	Description        string                    `json:"description,omitempty"`
	Tags               []string                  `json:"tags,omitempty"`
	OrderNo            int                       `json:"order_no"`
	IsActive           bool                      `json:"is_active"`
	CreatedAt          time.Time                 `json:"created_at"`
	Items              []ResourceItemResponseDTO `json:"items"`
}

func FromModel(m model.LearningResourceModel) ResourceResponseDTO {
	items := make([]ResourceItemResponseDTO, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, ResourceItemResponseDTO{
			ItemID:  it.LearningResourceItemID,
			Type:    it.LearningResourceItemType,
			URL:     it.LearningResourceItemURL,
			OrderNo: it.LearningResourceItemOrderNo,
		})
	}
	return ResourceResponseDTO{
		LearningResourceID: m.LearningResourceID,
		SubGroupID:         m.LearningResourceSubGroupID,
		Title:              m.LearningResourceTitle,
		Description:        m.LearningResourceDescription,
		Tags:               m.LearningResourceTags,
		OrderNo:            m.LearningResourceOrderNo,
		IsActive:           m.LearningResourceIsActive,
		CreatedAt:          m.LearningResourceCreatedAt,
		Items:              items,
	}
}

func FromModels(ms []model.LearningResourceModel) []ResourceResponseDTO {
	out := make([]ResourceResponseDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
