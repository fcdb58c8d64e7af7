package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`

	UserUserName string  `gorm:"type:varchar(50);not null;uniqueIndex:uq_users_user_name,where:user_deleted_at IS NULL;column:user_user_name" json:"user_user_name"`
	UserEmail    *string `gorm:"type:varchar(255);column:user_email" json:"user_email,omitempty"`
	UserPhone    *string `gorm:"type:varchar(30);column:user_phone" json:"user_phone,omitempty"`
	UserFullName *string `gorm:"type:varchar(120);column:user_full_name" json:"user_full_name,omitempty"`

	// never serialized
	UserPassword string `gorm:"type:text;not null;column:user_password" json:"-"`

	// PARENT | ASSISTANT | ADMIN | COACH
	UserRole string `gorm:"type:varchar(16);not null;default:'PARENT';column:user_role" json:"user_role"`
	// PENDING | APPROVED | REJECTED; gates login
	UserApprovalStatus string `gorm:"type:varchar(16);not null;default:'PENDING';column:user_approval_status" json:"user_approval_status"`

	UserIsActive bool `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:user_updated_at" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}

func (m *UserModel) BeforeSave(tx *gorm.DB) error {
	m.UserUserName = strings.TrimSpace(m.UserUserName)
	if m.UserEmail != nil {
		e := strings.ToLower(strings.TrimSpace(*m.UserEmail))
		if e == "" {
			m.UserEmail = nil
		} else {
			m.UserEmail = &e
		}
	}
	return nil
}
