package dto

import userDTO "eduportal_backend/internals/features/users/user/dto"

type RegisterRequest struct {
	UserName string  `json:"user_name" validate:"required,min=3,max=50"`
	Password string  `json:"password"  validate:"required,min=8,max=72"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=120"`
}

type LoginRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password"  validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string                  `json:"access_token"`
	RefreshToken string                  `json:"refresh_token"`
	User         userDTO.UserResponseDTO `json:"user"`
}
