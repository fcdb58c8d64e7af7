package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "eduportal_backend/internals/features/academics/courses/model"
	enrollmentModel "eduportal_backend/internals/features/enrollments/model"
	"eduportal_backend/internals/features/resources/dto"
	"eduportal_backend/internals/features/resources/model"
	helper "eduportal_backend/internals/helpers"
)

type LearningResourceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLearningResourceController(db *gorm.DB) *LearningResourceController {
	return &LearningResourceController{DB: db, Validator: validator.New()}
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

// Create publishes a resource bundle to a sub-group (admin).
func (ctl *LearningResourceController) Create(c *fiber.Ctx) error {
	adminID, err := userIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ResourceCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctl.DB.WithContext(c.Context()).Model(&courseModel.SubGroupModel{}).
		Where("sub_group_id = ?", req.SubGroupID).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Sub-group not found")
	}

	resource := req.ToModel(adminID)
	if err := ctl.DB.WithContext(c.Context()).Create(&resource).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Resource created", dto.FromModel(resource))
}

// List returns resources with items, optionally by ?sub_group_id= (admin).
func (ctl *LearningResourceController) List(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.Context()).Model(&model.LearningResourceModel{}).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("learning_resource_item_order_no ASC")
		})
	if subGroupID, err := helper.ParseOptionalUUIDQuery(c, "sub_group_id"); err != nil {
		return helper.FromFiberError(c, err)
	} else if subGroupID != nil {
		tx = tx.Where("learning_resource_sub_group_id = ?", *subGroupID)
	}

	var resources []model.LearningResourceModel
	if err := tx.Order("learning_resource_order_no ASC, learning_resource_created_at DESC").
		Find(&resources).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Resources fetched", dto.FromModels(resources))
}

// Update edits a resource in place (admin).
func (ctl *LearningResourceController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ResourceUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var resource model.LearningResourceModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&resource, "learning_resource_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Resource not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyUpdates(&resource)
	if err := ctl.DB.WithContext(c.Context()).Save(&resource).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Resource updated", dto.FromModel(resource))
}

// Delete soft-deletes a resource and its items (admin).
func (ctl *LearningResourceController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.LearningResourceModel{}, "learning_resource_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Resource not found")
		}
		return tx.Delete(&model.LearningResourceItemModel{}, "learning_resource_item_resource_id = ?", id).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Resource deleted", fiber.Map{"learning_resource_id": id})
}

// AddItem appends one item to a resource (admin).
func (ctl *LearningResourceController) AddItem(c *fiber.Ctx) error {
	resourceID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ResourceItemCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctl.DB.WithContext(c.Context()).Model(&model.LearningResourceModel{}).
		Where("learning_resource_id = ?", resourceID).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Resource not found")
	}

	item := req.ToModel(resourceID)
	if err := ctl.DB.WithContext(c.Context()).Create(&item).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Item added", dto.ResourceItemResponseDTO{
		ItemID:  item.LearningResourceItemID,
		Type:    item.LearningResourceItemType,
		URL:     item.LearningResourceItemURL,
		OrderNo: item.LearningResourceItemOrderNo,
	})
}

// RemoveItem soft-deletes one item (admin).
func (ctl *LearningResourceController) RemoveItem(c *fiber.Ctx) error {
	itemID, err := helper.ParseUUIDParam(c, "item_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&model.LearningResourceItemModel{}, "learning_resource_item_id = ?", itemID)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Item not found")
	}
	return helper.Success(c, "Item removed", fiber.Map{"learning_resource_item_id": itemID})
}

// Feed returns the active resources of the sub-groups the calling parent is
// enrolled in (approved enrollments only).
func (ctl *LearningResourceController) Feed(c *fiber.Ctx) error {
	parentID, err := userIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var subGroupIDs []uuid.UUID
	if err := ctl.DB.WithContext(c.Context()).Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollment_parent_id = ?", parentID).
		Where("enrollment_status = ?", enrollmentModel.EnrollmentStatusApproved).
		Where("enrollment_sub_group_id IS NOT NULL").
		Distinct().
		Pluck("enrollment_sub_group_id", &subGroupIDs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(subGroupIDs) == 0 {
		return helper.Success(c, "Resources fetched", []dto.ResourceResponseDTO{})
	}

	var resources []model.LearningResourceModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("learning_resource_item_order_no ASC")
		}).
		Where("learning_resource_sub_group_id IN ?", subGroupIDs).
		Where("learning_resource_is_active = ?", true).
		Order("learning_resource_order_no ASC, learning_resource_created_at DESC").
		Find(&resources).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Resources fetched", dto.FromModels(resources))
}
