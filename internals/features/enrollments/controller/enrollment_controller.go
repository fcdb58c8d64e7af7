package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "eduportal_backend/internals/features/academics/courses/model"
	"eduportal_backend/internals/features/enrollments/dto"
	"eduportal_backend/internals/features/enrollments/model"
	studentModel "eduportal_backend/internals/features/students/model"
	helper "eduportal_backend/internals/helpers"
)

type EnrollmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db, Validator: validator.New()}
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

// Enroll files a PENDING enrollment for one of the parent's children on a
// validated slot.
func (ctl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	parentID, err := userIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.EnrollRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// the chosen slot must agree with the campus/semester/weekday the form
	// cascaded through
	var slot courseModel.CourseSlotModel
	if err := ctl.DB.WithContext(c.Context()).
		Joins("JOIN courses ON courses.course_id = course_slots.course_slot_course_id").
		Where("course_slots.course_slot_id = ?", req.SlotID).
		Where("course_slots.course_slot_semester_id = ?", req.SemesterID).
		Where("course_slots.course_slot_weekday = ?", req.Weekday).
		Where("courses.course_campus_id = ?", req.CampusID).
		First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Invalid time slot, please select again")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.SubGroupID != nil {
		var count int64
		if err := ctl.DB.WithContext(c.Context()).Model(&courseModel.SubGroupModel{}).
			Where("sub_group_id = ? AND sub_group_course_slot_id = ?", *req.SubGroupID, slot.CourseSlotID).
			Count(&count).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		if count == 0 {
			return helper.Error(c, fiber.StatusNotFound, "Sub-group does not belong to this slot")
		}
	}

	// resolve the child: a new name wins over a picked id
	var student studentModel.StudentModel
	if name := strings.TrimSpace(req.NewStudentName); name != "" {
		student = studentModel.StudentModel{
			StudentParentID: parentID,
			StudentFullName: name,
			StudentIsActive: true,
		}
		if err := ctl.DB.WithContext(c.Context()).Create(&student).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
	} else {
		if req.StudentID == nil {
			return helper.Error(c, fiber.StatusBadRequest, "Select a child or provide a new child's name")
		}
		if err := ctl.DB.WithContext(c.Context()).
			First(&student, "student_id = ? AND student_parent_id = ? AND student_is_active = ?",
				*req.StudentID, parentID, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, fiber.StatusNotFound, "Child selection is invalid")
			}
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	// duplicate guard: same child on the same slot, unless the earlier attempt
	// was rejected or cancelled. A filter-less sub-group matches any.
	dup := ctl.DB.WithContext(c.Context()).Model(&model.EnrollmentModel{}).
		Where("enrollment_parent_id = ?", parentID).
		Where("enrollment_student_id = ?", student.StudentID).
		Where("enrollment_course_slot_id = ?", slot.CourseSlotID).
		Where("enrollment_status NOT IN ?", []string{model.EnrollmentStatusRejected, model.EnrollmentStatusCancelled})
	if req.SubGroupID != nil {
		dup = dup.Where("enrollment_sub_group_id = ? OR enrollment_sub_group_id IS NULL", *req.SubGroupID)
	}
	var dupCount int64
	if err := dup.Count(&dupCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if dupCount > 0 {
		return helper.Error(c, fiber.StatusConflict, "This child already has an application for this slot")
	}

	studentID := student.StudentID
	ent := model.EnrollmentModel{
		EnrollmentParentID:     parentID,
		EnrollmentStudentID:    &studentID,
		EnrollmentCourseID:     slot.CourseSlotCourseID,
		EnrollmentSemesterID:   slot.CourseSlotSemesterID,
		EnrollmentCourseSlotID: &slot.CourseSlotID,
		EnrollmentSubGroupID:   req.SubGroupID,
		EnrollmentStatus:       model.EnrollmentStatusPending,
		EnrollmentPaidStatus:   model.EnrollmentPaidStatusUnpaid,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&ent).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Enrollment submitted", dto.FromModel(ent))
}

// ListMine returns the parent's enrollments, newest first.
func (ctl *EnrollmentController) ListMine(c *fiber.Ctx) error {
	parentID, err := userIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	tx := ctl.DB.WithContext(c.Context()).
		Where("enrollment_parent_id = ?", parentID)
	if status := c.Query("status"); status != "" {
		tx = tx.Where("enrollment_status = ?", status)
	}

	var ents []model.EnrollmentModel
	if err := tx.Order("enrollment_created_at DESC").Find(&ents).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", ctl.withNames(c, ents))
}

// Cancel lets a parent withdraw their own enrollment while it is PENDING.
func (ctl *EnrollmentController) Cancel(c *fiber.Ctx) error {
	parentID, err := userIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ent model.EnrollmentModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&ent, "enrollment_id = ? AND enrollment_parent_id = ?", id, parentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Enrollment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if ent.EnrollmentStatus != model.EnrollmentStatusPending {
		return helper.Error(c, fiber.StatusConflict, "Only pending enrollments can be cancelled")
	}

	ent.EnrollmentStatus = model.EnrollmentStatusCancelled
	if err := ctl.DB.WithContext(c.Context()).Save(&ent).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Enrollment cancelled", dto.FromModel(ent))
}

// AdminList returns enrollments for the console, filterable by status,
// semester, and slot.
func (ctl *EnrollmentController) AdminList(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).Model(&model.EnrollmentModel{})
	if status := c.Query("status"); status != "" {
		tx = tx.Where("enrollment_status = ?", status)
	}
	if semesterID, err := helper.ParseOptionalUUIDQuery(c, "semester_id"); err != nil {
		return helper.FromFiberError(c, err)
	} else if semesterID != nil {
		tx = tx.Where("enrollment_semester_id = ?", *semesterID)
	}
	if slotID, err := helper.ParseOptionalUUIDQuery(c, "slot_id"); err != nil {
		return helper.FromFiberError(c, err)
	} else if slotID != nil {
		tx = tx.Where("enrollment_course_slot_id = ?", *slotID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var ents []model.EnrollmentModel
	if err := tx.Order("enrollment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&ents).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"enrollments": ctl.withNames(c, ents),
		"pagination":  helper.BuildPagination(total, paging, len(ents)),
	})
}

// Decide approves or rejects a pending enrollment.
func (ctl *EnrollmentController) Decide(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.EnrollmentDecisionDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var ent model.EnrollmentModel
	if err := ctl.DB.WithContext(c.Context()).First(&ent, "enrollment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Enrollment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	ent.EnrollmentStatus = req.EnrollmentStatus
	if err := ctl.DB.WithContext(c.Context()).Save(&ent).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Enrollment decision saved", dto.FromModel(ent))
}

// SetPaid toggles the paid flag. Payment itself is out of scope; this is a
// bookkeeping mark, not a transaction.
func (ctl *EnrollmentController) SetPaid(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.EnrollmentPaidDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctl.DB.WithContext(c.Context()).Model(&model.EnrollmentModel{}).
		Where("enrollment_id = ?", id).
		Update("enrollment_paid_status", req.EnrollmentPaidStatus)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Enrollment not found")
	}
	return helper.Success(c, "Paid status updated", nil)
}

// Assign binds or rebinds slot and sub-group on an enrollment; used to
// migrate legacy rows that predate slot binding.
func (ctl *EnrollmentController) Assign(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.AdminAssignDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var ent model.EnrollmentModel
	if err := ctl.DB.WithContext(c.Context()).First(&ent, "enrollment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Enrollment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.EnrollmentCourseSlotID != nil {
		var slot courseModel.CourseSlotModel
		if err := ctl.DB.WithContext(c.Context()).
			First(&slot, "course_slot_id = ?", *req.EnrollmentCourseSlotID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, fiber.StatusNotFound, "Course slot not found")
			}
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		if slot.CourseSlotCourseID != ent.EnrollmentCourseID || slot.CourseSlotSemesterID != ent.EnrollmentSemesterID {
			return helper.Error(c, fiber.StatusBadRequest, "Slot belongs to a different course or semester")
		}
		ent.EnrollmentCourseSlotID = req.EnrollmentCourseSlotID
	}
	if req.EnrollmentSubGroupID != nil {
		ent.EnrollmentSubGroupID = req.EnrollmentSubGroupID
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&ent).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Enrollment assignment updated", dto.FromModel(ent))
}

// withNames decorates responses with student/course/sub-group display names.
func (ctl *EnrollmentController) withNames(c *fiber.Ctx, ents []model.EnrollmentModel) []dto.EnrollmentResponseDTO {
	out := dto.FromModels(ents)

	studentIDs := make([]uuid.UUID, 0, len(ents))
	courseIDs := make([]uuid.UUID, 0, len(ents))
	subGroupIDs := make([]uuid.UUID, 0, len(ents))
	for _, e := range ents {
		if e.EnrollmentStudentID != nil {
			studentIDs = append(studentIDs, *e.EnrollmentStudentID)
		}
		courseIDs = append(courseIDs, e.EnrollmentCourseID)
		if e.EnrollmentSubGroupID != nil {
			subGroupIDs = append(subGroupIDs, *e.EnrollmentSubGroupID)
		}
	}

	studentName := map[uuid.UUID]string{}
	if len(studentIDs) > 0 {
		var students []studentModel.StudentModel
		if err := ctl.DB.WithContext(c.Context()).
			Where("student_id IN ?", studentIDs).Find(&students).Error; err == nil {
			for _, s := range students {
				studentName[s.StudentID] = s.StudentFullName
			}
		}
	}
	courseTitle := map[uuid.UUID]string{}
	if len(courseIDs) > 0 {
		var courses []courseModel.CourseModel
		if err := ctl.DB.WithContext(c.Context()).
			Where("course_id IN ?", courseIDs).Find(&courses).Error; err == nil {
			for _, co := range courses {
				courseTitle[co.CourseID] = co.CourseTitle
			}
		}
	}
	subGroupName := map[uuid.UUID]string{}
	if len(subGroupIDs) > 0 {
		var groups []courseModel.SubGroupModel
		if err := ctl.DB.WithContext(c.Context()).
			Where("sub_group_id IN ?", subGroupIDs).Find(&groups).Error; err == nil {
			for _, g := range groups {
				subGroupName[g.SubGroupID] = g.SubGroupName
			}
		}
	}

	for i := range out {
		if out[i].EnrollmentStudentID != nil {
			out[i].StudentName = studentName[*out[i].EnrollmentStudentID]
		}
		out[i].CourseTitle = courseTitle[out[i].EnrollmentCourseID]
		if out[i].EnrollmentSubGroupID != nil {
			out[i].SubGroupName = subGroupName[*out[i].EnrollmentSubGroupID]
		}
	}
	return out
}
