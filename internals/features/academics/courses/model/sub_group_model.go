package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubGroupModel is a named subdivision of a slot's enrolled students
// (e.g. "4-5pm 7-10 basic").
type SubGroupModel struct {
	SubGroupID           uuid.UUID `gorm:"type:uuid;primaryKey;column:sub_group_id" json:"sub_group_id"`
	SubGroupCourseSlotID uuid.UUID `gorm:"type:uuid;not null;index;column:sub_group_course_slot_id" json:"sub_group_course_slot_id"`

	SubGroupName string `gorm:"type:varchar(120);not null;column:sub_group_name" json:"sub_group_name"`

	SubGroupCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:sub_group_created_at" json:"sub_group_created_at"`
	SubGroupUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:sub_group_updated_at" json:"sub_group_updated_at"`
	SubGroupDeletedAt gorm.DeletedAt `gorm:"column:sub_group_deleted_at;index" json:"sub_group_deleted_at,omitempty"`
}

func (SubGroupModel) TableName() string { return "sub_groups" }

func (m *SubGroupModel) BeforeCreate(tx *gorm.DB) error {
	if m.SubGroupID == uuid.Nil {
		m.SubGroupID = uuid.New()
	}
	return nil
}

func (m *SubGroupModel) BeforeSave(tx *gorm.DB) error {
	m.SubGroupName = strings.TrimSpace(m.SubGroupName)
	return nil
}
