package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CampusModel struct {
	CampusID uuid.UUID `gorm:"type:uuid;primaryKey;column:campus_id" json:"campus_id"`

	CampusName    string `gorm:"type:varchar(150);not null;column:campus_name" json:"campus_name"`
	CampusAddress string `gorm:"type:varchar(255);not null;default:'';column:campus_address" json:"campus_address"`

	CampusCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:campus_created_at" json:"campus_created_at"`
	CampusUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:campus_updated_at" json:"campus_updated_at"`
	CampusDeletedAt gorm.DeletedAt `gorm:"column:campus_deleted_at;index" json:"campus_deleted_at,omitempty"`
}

func (CampusModel) TableName() string { return "campuses" }

func (m *CampusModel) BeforeCreate(tx *gorm.DB) error {
	if m.CampusID == uuid.Nil {
		m.CampusID = uuid.New()
	}
	return nil
}

func (m *CampusModel) BeforeSave(tx *gorm.DB) error {
	m.CampusName = strings.TrimSpace(m.CampusName)
	m.CampusAddress = strings.TrimSpace(m.CampusAddress)
	return nil
}
