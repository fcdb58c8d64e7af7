package dto

import (
	"time"

	"github.com/google/uuid"

	"eduportal_backend/internals/features/users/user/model"
)

// =======================
// Response DTO
// =======================

type UserResponseDTO struct {
	UserID             uuid.UUID `json:"user_id"`
	UserUserName       string    `json:"user_user_name"`
	UserEmail          *string   `json:"user_email,omitempty"`
	UserPhone          *string   `json:"user_phone,omitempty"`
	UserFullName       *string   `json:"user_full_name,omitempty"`
	UserRole           string    `json:"user_role"`
	UserApprovalStatus string    `json:"user_approval_status"`
	UserIsActive       bool      `json:"user_is_active"`
	UserCreatedAt      time.Time `json:"user_created_at"`
}

func FromModel(m model.UserModel) UserResponseDTO {
	return UserResponseDTO{
		UserID:             m.UserID,
		UserUserName:       m.UserUserName,
		UserEmail:          m.UserEmail,
		UserPhone:          m.UserPhone,
		UserFullName:       m.UserFullName,
		UserRole:           m.UserRole,
		UserApprovalStatus: m.UserApprovalStatus,
		UserIsActive:       m.UserIsActive,
		UserCreatedAt:      m.UserCreatedAt,
	}
}

func FromModels(ms []model.UserModel) []UserResponseDTO {
	out := make([]UserResponseDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}

// =======================
// Admin request DTOs
// =======================

type UserApprovalDTO struct {
	// APPROVED or REJECTED; PENDING cannot be re-entered
	UserApprovalStatus string `json:"user_approval_status" validate:"required,oneof=APPROVED REJECTED"`
}

type UserUpdateDTO struct {
	UserFullName *string `json:"user_full_name,omitempty" validate:"omitempty,max=120"`
	UserPhone    *string `json:"user_phone,omitempty"     validate:"omitempty,max=30"`
	UserRole     *string `json:"user_role,omitempty"      validate:"omitempty,oneof=PARENT ASSISTANT ADMIN COACH"`
	UserIsActive *bool   `json:"user_is_active,omitempty"`
}

func (u *UserUpdateDTO) ApplyUpdates(ent *model.UserModel) {
	if u.UserFullName != nil {
		ent.UserFullName = u.UserFullName
	}
	if u.UserPhone != nil {
		ent.UserPhone = u.UserPhone
	}
	if u.UserRole != nil {
		ent.UserRole = *u.UserRole
	}
	if u.UserIsActive != nil {
		ent.UserIsActive = *u.UserIsActive
	}
}
