package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NoticeVisibleToAll  = "ALL"
	NoticeVisibleToPaid = "PAID"
)

// ClassNoticeModel is an announcement pinned to a slot, optionally narrowed
// to one sub-group. PAID visibility hides it from parents without a paid
// enrollment on the slot.
type ClassNoticeModel struct {
	ClassNoticeID uuid.UUID `gorm:"type:uuid;primaryKey;column:class_notice_id" json:"class_notice_id"`

	ClassNoticeCourseSlotID uuid.UUID  `gorm:"type:uuid;not null;index;column:class_notice_course_slot_id" json:"class_notice_course_slot_id"`
	ClassNoticeSubGroupID   *uuid.UUID `gorm:"type:uuid;index;column:class_notice_sub_group_id" json:"class_notice_sub_group_id,omitempty"`

	ClassNoticeTitle   string `gorm:"type:varchar(200);not null;column:class_notice_title" json:"class_notice_title"`
	ClassNoticeContent string `gorm:"type:text;not null;column:class_notice_content" json:"class_notice_content"`

	ClassNoticeIsPinned  bool   `gorm:"not null;default:false;column:class_notice_is_pinned" json:"class_notice_is_pinned"`
	ClassNoticeVisibleTo string `gorm:"type:varchar(8);not null;default:'ALL';column:class_notice_visible_to" json:"class_notice_visible_to"`
	ClassNoticeIsActive  bool   `gorm:"not null;default:true;column:class_notice_is_active" json:"class_notice_is_active"`
	ClassNoticeOrderNo   int    `gorm:"not null;default:0;column:class_notice_order_no" json:"class_notice_order_no"`

	ClassNoticeCreatedByUserID uuid.UUID `gorm:"type:uuid;not null;column:class_notice_created_by_user_id" json:"class_notice_created_by_user_id"`

	ClassNoticeCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:class_notice_created_at" json:"class_notice_created_at"`
	ClassNoticeUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:class_notice_updated_at" json:"class_notice_updated_at"`
	ClassNoticeDeletedAt gorm.DeletedAt `gorm:"column:class_notice_deleted_at;index" json:"class_notice_deleted_at,omitempty"`
}

func (ClassNoticeModel) TableName() string { return "class_notices" }

func (m *ClassNoticeModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassNoticeID == uuid.Nil {
		m.ClassNoticeID = uuid.New()
	}
	return nil
}

func (m *ClassNoticeModel) BeforeSave(tx *gorm.DB) error {
	m.ClassNoticeTitle = strings.TrimSpace(m.ClassNoticeTitle)
	if m.ClassNoticeVisibleTo == "" {
		m.ClassNoticeVisibleTo = NoticeVisibleToAll
	}
	return nil
}
