package dto

import (
	"time"

	"github.com/google/uuid"

	"eduportal_backend/internals/features/notices/model"
)

type NoticeCreateDTO struct {
	CourseSlotID uuid.UUID  `json:"course_slot_id" validate:"required"`
	SubGroupID   *uuid.UUID `json:"sub_group_id,omitempty"`
	Title        string     `json:"title" validate:"required,max=200"`
	Content      string     `json:"content" validate:"required"`
	IsPinned     bool       `json:"is_pinned"`
	VisibleTo    string     `json:"visible_to" validate:"omitempty,oneof=ALL PAID"`
	OrderNo      int        `json:"order_no" validate:"min=0"`
}

func (in NoticeCreateDTO) ToModel(createdBy uuid.UUID) model.ClassNoticeModel {
	visibleTo := in.VisibleTo
	if visibleTo == "" {
		visibleTo = model.NoticeVisibleToAll
	}
	return model.ClassNoticeModel{
		ClassNoticeCourseSlotID:    in.CourseSlotID,
		ClassNoticeSubGroupID:      in.SubGroupID,
		ClassNoticeTitle:           in.Title,
		ClassNoticeContent:         in.Content,
		ClassNoticeIsPinned:        in.IsPinned,
		ClassNoticeVisibleTo:       visibleTo,
		ClassNoticeIsActive:        true,
		ClassNoticeOrderNo:         in.OrderNo,
		ClassNoticeCreatedByUserID: createdBy,
	}
}

type NoticeUpdateDTO struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Content   *string `json:"content,omitempty"`
	IsPinned  *bool   `json:"is_pinned,omitempty"`
	VisibleTo *string `json:"visible_to,omitempty" validate:"omitempty,oneof=ALL PAID"`
	IsActive  *bool   `json:"is_active,omitempty"`
	OrderNo   *int    `json:"order_no,omitempty" validate:"omitempty,min=0"`
}

func (in *NoticeUpdateDTO) ApplyUpdates(m *model.ClassNoticeModel) {
	if in.Title != nil {
		m.ClassNoticeTitle = *in.Title
	}
	if in.Content != nil {
		m.ClassNoticeContent = *in.Content
	}
	if in.IsPinned != nil {
		m.ClassNoticeIsPinned = *in.IsPinned
	}
	if in.VisibleTo != nil {
		m.ClassNoticeVisibleTo = *in.VisibleTo
	}
	if in.IsActive != nil {
		m.ClassNoticeIsActive = *in.IsActive
	}
	if in.OrderNo != nil {
		m.ClassNoticeOrderNo = *in.OrderNo
	}
}

type NoticeResponseDTO struct {
	ClassNoticeID uuid.UUID  `json:"class_notice_id"`
	CourseSlotID  uuid.UUID  `json:"course_slot_id"`
	SubGroupID    *uuid.UUID `json:"sub_group_id,omitempty"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	IsPinned      bool       `json:"is_pinned"`
	VisibleTo     string     `json:"visible_to"`
	IsActive      bool       `json:"is_active"`
	OrderNo       int        `json:"order_no"`
	CreatedAt     time.Time  `json:"created_at"`
}

func FromModel(m model.ClassNoticeModel) NoticeResponseDTO {
	return NoticeResponseDTO{
		ClassNoticeID: m.ClassNoticeID,
		CourseSlotID:  m.ClassNoticeCourseSlotID,
		SubGroupID:    m.ClassNoticeSubGroupID,
		Title:         m.ClassNoticeTitle,
		Content:       m.ClassNoticeContent,
		IsPinned:      m.ClassNoticeIsPinned,
		VisibleTo:     m.ClassNoticeVisibleTo,
		IsActive:      m.ClassNoticeIsActive,
		OrderNo:       m.ClassNoticeOrderNo,
		CreatedAt:     m.ClassNoticeCreatedAt,
	}
}

func FromModels(ms []model.ClassNoticeModel) []NoticeResponseDTO {
	out := make([]NoticeResponseDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
