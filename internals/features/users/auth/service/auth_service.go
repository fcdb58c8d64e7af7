package service

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eduportal_backend/internals/configs"
	"eduportal_backend/internals/constants"
	authDTO "eduportal_backend/internals/features/users/auth/dto"
	userDTO "eduportal_backend/internals/features/users/user/dto"
	userModel "eduportal_backend/internals/features/users/user/model"
	helper "eduportal_backend/internals/helpers"
)

var validate = validator.New()

const (
	accessTokenTTL  = 2 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

// Register creates a PARENT account in the PENDING approval queue. Staff
// accounts are provisioned by admins, never self-registered.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserUserName:       req.UserName,
		UserEmail:          req.Email,
		UserPhone:          req.Phone,
		UserFullName:       req.FullName,
		UserPassword:       string(hashed),
		UserRole:           constants.RoleParent,
		UserApprovalStatus: constants.ApprovalPending,
		UserIsActive:       true,
	}
	if err := db.WithContext(c.Context()).Create(&user).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.Error(c, fiber.StatusConflict, "Username already taken")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated,
		"Registration submitted. Please wait for admin approval.",
		userDTO.FromModel(user))
}

// Login authenticates and gates on the approval status.
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := db.WithContext(c.Context()).
		First(&user, "user_user_name = ?", req.UserName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	switch user.UserApprovalStatus {
	case constants.ApprovalPending:
		return helper.Error(c, fiber.StatusForbidden, "Waiting for admin approval")
	case constants.ApprovalRejected:
		return helper.Error(c, fiber.StatusForbidden, "Registration rejected")
	}

	access, err := signToken(user, configs.JWTSecret, accessTokenTTL)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign token")
	}
	refresh, err := signToken(user, configs.JWTRefreshSecret, refreshTokenTTL)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	return helper.Success(c, "Login successful", authDTO.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         userDTO.FromModel(user),
	})
}

// RefreshToken exchanges a valid refresh token for a fresh pair.
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(req.RefreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	id, _ := claims["id"].(string)
	var user userModel.UserModel
	if err := db.WithContext(c.Context()).First(&user, "user_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.UserIsActive || user.UserApprovalStatus != constants.ApprovalApproved {
		return helper.Error(c, fiber.StatusForbidden, "Account not allowed to login")
	}

	access, err := signToken(user, configs.JWTSecret, accessTokenTTL)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign token")
	}
	refresh, err := signToken(user, configs.JWTRefreshSecret, refreshTokenTTL)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	return helper.Success(c, "Token refreshed", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func signToken(user userModel.UserModel, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":        user.UserID.String(),
		"user_name": user.UserUserName,
		"role":      user.UserRole,
		"exp":       time.Now().Add(ttl).Unix(),
		"iat":       time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
