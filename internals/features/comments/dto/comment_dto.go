package dto

import (
	"time"

	"github.com/google/uuid"

	"eduportal_backend/internals/features/comments/model"
)

type CommentCreateDTO struct {
	SubGroupID uuid.UUID `json:"sub_group_id" validate:"required"`
	Content    string    `json:"content" validate:"required,max=2000"`
}

type CommentResponseDTO struct {
	CommentID    uuid.UUID  `json:"comment_id"`
	UserID       uuid.UUID  `json:"user_id"`
	UserName     string     `json:"user_name,omitempty"`
	Role         string     `json:"role"`
	SubGroupID   uuid.UUID  `json:"sub_group_id"`
	EnrollmentID *uuid.UUID `json:"enrollment_id,omitempty"`
	Content      string     `json:"content"`
	CreatedAt    time.Time  `json:"created_at"`
}

func FromModel(m model.CommentModel, userName string) CommentResponseDTO {
	return CommentResponseDTO{
		CommentID:    m.CommentID,
		UserID:       m.CommentUserID,
		UserName:     userName,
		Role:         m.CommentRole,
		SubGroupID:   m.CommentSubGroupID,
		EnrollmentID: m.CommentEnrollmentID,
		Content:      m.CommentContent,
		CreatedAt:    m.CommentCreatedAt,
	}
}
