package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CommentRoleParent    = "PARENT"
	CommentRoleAssistant = "ASSISTANT"
)

// CommentModel is a message on a sub-group's board. Parent comments are tied
// to the enrollment that grants them access; assistant comments are not.
type CommentModel struct {
	CommentID uuid.UUID `gorm:"type:uuid;primaryKey;column:comment_id" json:"comment_id"`

	CommentUserID       uuid.UUID  `gorm:"type:uuid;not null;index;column:comment_user_id" json:"comment_user_id"`
	CommentRole         string     `gorm:"type:varchar(16);not null;column:comment_role" json:"comment_role"`
	CommentSubGroupID   uuid.UUID  `gorm:"type:uuid;not null;index;column:comment_sub_group_id" json:"comment_sub_group_id"`
	CommentEnrollmentID *uuid.UUID `gorm:"type:uuid;index;column:comment_enrollment_id" json:"comment_enrollment_id,omitempty"`

	CommentContent string `gorm:"type:text;not null;column:comment_content" json:"comment_content"`

	CommentCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:comment_created_at" json:"comment_created_at"`
	CommentUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:comment_updated_at" json:"comment_updated_at"`
	CommentDeletedAt gorm.DeletedAt `gorm:"column:comment_deleted_at;index" json:"comment_deleted_at,omitempty"`
}

func (CommentModel) TableName() string { return "comments" }

func (m *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if m.CommentID == uuid.Nil {
		m.CommentID = uuid.New()
	}
	return nil
}

func (m *CommentModel) BeforeSave(tx *gorm.DB) error {
	m.CommentContent = strings.TrimSpace(m.CommentContent)
	return nil
}
