package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ResourceItemTypeVideo = "VIDEO"
	ResourceItemTypeFile  = "FILE"
	ResourceItemTypeImage = "IMAGE"
	ResourceItemTypeLink  = "LINK"
)

type LearningResourceItemModel struct {
	LearningResourceItemID uuid.UUID `gorm:"type:uuid;primaryKey;column:learning_resource_item_id" json:"learning_resource_item_id"`

	LearningResourceItemResourceID uuid.UUID `gorm:"type:uuid;not null;index;column:learning_resource_item_resource_id" json:"learning_resource_item_resource_id"`

	LearningResourceItemType    string `gorm:"type:varchar(8);not null;column:learning_resource_item_type" json:"learning_resource_item_type"`
	LearningResourceItemURL     string `gorm:"type:text;not null;column:learning_resource_item_url" json:"learning_resource_item_url"`
	LearningResourceItemOrderNo int    `gorm:"not null;default:0;column:learning_resource_item_order_no" json:"learning_resource_item_order_no"`

	LearningResourceItemCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:learning_resource_item_created_at" json:"learning_resource_item_created_at"`
	LearningResourceItemUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:learning_resource_item_updated_at" json:"learning_resource_item_updated_at"`
	LearningResourceItemDeletedAt gorm.DeletedAt `gorm:"column:learning_resource_item_deleted_at;index" json:"learning_resource_item_deleted_at,omitempty"`
}

func (LearningResourceItemModel) TableName() string { return "learning_resource_items" }

func (m *LearningResourceItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.LearningResourceItemID == uuid.Nil {
		m.LearningResourceItemID = uuid.New()
	}
	return nil
}
