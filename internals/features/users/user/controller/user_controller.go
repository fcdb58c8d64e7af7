package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduportal_backend/internals/constants"
	"eduportal_backend/internals/features/users/user/dto"
	"eduportal_backend/internals/features/users/user/model"
	helper "eduportal_backend/internals/helpers"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validator: validator.New()}
}

// Me returns the authenticated user's own profile.
func (ctl *UserController) Me(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid user ID in context")
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&user, "user_id = ?", userIDStr).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, "OK", dto.FromModel(user))
}

// List returns users for the admin console. ?approval=PENDING filters the
// registration queue, ?role= narrows by role.
func (ctl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).Model(&model.UserModel{})
	if ap := c.Query("approval"); ap != "" {
		tx = tx.Where("user_approval_status = ?", ap)
	}
	if role := c.Query("role"); role != "" {
		tx = tx.Where("user_role = ?", role)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var users []model.UserModel
	if err := tx.Order("user_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"users":      dto.FromModels(users),
		"pagination": helper.BuildPagination(total, paging, len(users)),
	})
}

// SetApproval moves a user out of the PENDING registration queue.
func (ctl *UserController) SetApproval(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UserApprovalDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	user.UserApprovalStatus = req.UserApprovalStatus
	if err := ctl.DB.WithContext(c.Context()).Save(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Approval status updated", dto.FromModel(user))
}

// Update edits profile fields, role, and the active flag.
func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UserUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyUpdates(&user)
	if req.UserRole != nil && !contains(constants.AllRoles, *req.UserRole) {
		return helper.Error(c, fiber.StatusBadRequest, "Unknown role")
	}
	if err := ctl.DB.WithContext(c.Context()).Save(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "User updated", dto.FromModel(user))
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
