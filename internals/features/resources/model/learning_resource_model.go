package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// LearningResourceModel is a study bundle published to one sub-group,
// composed of ordered items (videos, files, links).
type LearningResourceModel struct {
	LearningResourceID uuid.UUID `gorm:"type:uuid;primaryKey;column:learning_resource_id" json:"learning_resource_id"`

	LearningResourceSubGroupID uuid.UUID `gorm:"type:uuid;not null;index;column:learning_resource_sub_group_id" json:"learning_resource_sub_group_id"`

	LearningResourceTitle       string `gorm:"type:varchar(200);not null;column:learning_resource_title" json:"learning_resource_title"`
	LearningResourceDescription string `gorm:"type:text;column:learning_resource_description" json:"learning_resource_description,omitempty"`

	LearningResourceTags pq.StringArray `gorm:"type:text[];column:learning_resource_tags" json:"learning_resource_tags,omitempty"`

	LearningResourceOrderNo  int  `gorm:"not null;default:0;column:learning_resource_order_no" json:"learning_resource_order_no"`
	LearningResourceIsActive bool `gorm:"not null;default:true;column:learning_resource_is_active" json:"learning_resource_is_active"`

	LearningResourceCreatedByUserID uuid.UUID `gorm:"type:uuid;not null;column:learning_resource_created_by_user_id" json:"learning_resource_created_by_user_id"`

	LearningResourceCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:learning_resource_created_at" json:"learning_resource_created_at"`
	LearningResourceUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:learning_resource_updated_at" json:"learning_resource_updated_at"`
	LearningResourceDeletedAt gorm.DeletedAt `gorm:"column:learning_resource_deleted_at;index" json:"learning_resource_deleted_at,omitempty"`

	Items []LearningResourceItemModel `gorm:"foreignKey:LearningResourceItemResourceID;references:LearningResourceID" json:"items,omitempty"`
}

func (LearningResourceModel) TableName() string { return "learning_resources" }

func (m *LearningResourceModel) BeforeCreate(tx *gorm.DB) error {
	if m.LearningResourceID == uuid.Nil {
		m.LearningResourceID = uuid.New()
	}
	return nil
}

func (m *LearningResourceModel) BeforeSave(tx *gorm.DB) error {
	m.LearningResourceTitle = strings.TrimSpace(m.LearningResourceTitle)
	return nil
}
