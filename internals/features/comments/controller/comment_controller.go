package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduportal_backend/internals/features/comments/dto"
	"eduportal_backend/internals/features/comments/model"
	enrollmentModel "eduportal_backend/internals/features/enrollments/model"
	userModel "eduportal_backend/internals/features/users/user/model"
	helper "eduportal_backend/internals/helpers"
)

type CommentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db, Validator: validator.New()}
}

func userIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in context")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in context")
	}
	return id, nil
}

// ParentCreate posts a comment on a sub-group the parent is enrolled in. The
// comment is bound to their latest approved enrollment there; without one,
// posting is refused.
func (ctl *CommentController) ParentCreate(c *fiber.Ctx) error {
	parentID, err := userIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CommentCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var en enrollmentModel.EnrollmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("enrollment_parent_id = ?", parentID).
		Where("enrollment_sub_group_id = ?", req.SubGroupID).
		Where("enrollment_status = ?", enrollmentModel.EnrollmentStatusApproved).
		Order("enrollment_created_at DESC").
		First(&en).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusForbidden, "No approved enrollment in this sub-group")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	comment := model.CommentModel{
		CommentUserID:       parentID,
		CommentRole:         model.CommentRoleParent,
		CommentSubGroupID:   req.SubGroupID,
		CommentEnrollmentID: &en.EnrollmentID,
		CommentContent:      req.Content,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&comment).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Comment posted", dto.FromModel(comment, ""))
}

// ParentList returns the caller's own comments, newest first.
func (ctl *CommentController) ParentList(c *fiber.Ctx) error {
	parentID, err := userIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var comments []model.CommentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("comment_user_id = ?", parentID).
		Order("comment_created_at DESC").
		Find(&comments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Comments fetched", ctl.withUserNames(c, comments))
}

// AssistantCreate posts a staff comment on any sub-group board.
func (ctl *CommentController) AssistantCreate(c *fiber.Ctx) error {
	assistantID, err := userIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CommentCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	comment := model.CommentModel{
		CommentUserID:     assistantID,
		CommentRole:       model.CommentRoleAssistant,
		CommentSubGroupID: req.SubGroupID,
		CommentContent:    req.Content,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&comment).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Comment posted", dto.FromModel(comment, ""))
}

// ListBySubGroup returns a sub-group's board, oldest first, for staff.
func (ctl *CommentController) ListBySubGroup(c *fiber.Ctx) error {
	subGroupID, err := uuid.Parse(c.Query("sub_group_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sub_group_id")
	}

	var comments []model.CommentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("comment_sub_group_id = ?", subGroupID).
		Order("comment_created_at ASC").
		Find(&comments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Comments fetched", ctl.withUserNames(c, comments))
}

func (ctl *CommentController) withUserNames(c *fiber.Ctx, comments []model.CommentModel) []dto.CommentResponseDTO {
	userIDs := make([]uuid.UUID, 0, len(comments))
	for _, cm := range comments {
		userIDs = append(userIDs, cm.CommentUserID)
	}

	names := map[uuid.UUID]string{}
	if len(userIDs) > 0 {
		var users []userModel.UserModel
		if err := ctl.DB.WithContext(c.Context()).
			Where("user_id IN ?", userIDs).
			Find(&users).Error; err == nil {
			for _, u := range users {
				names[u.UserID] = u.UserUserName
			}
		}
	}

	out := make([]dto.CommentResponseDTO, 0, len(comments))
	for _, cm := range comments {
		out = append(out, dto.FromModel(cm, names[cm.CommentUserID]))
	}
	return out
}
