package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/app/services"
	"github.com/yigit/schooladmin/internal/middleware"
)

// StaffController handles staff-related operations
type StaffController struct {
	staffService services.StaffService
	groupService services.GroupService
}

// NewStaffController creates a new StaffController
func NewStaffController(staffService services.StaffService, groupService services.GroupService) *StaffController {
	return &StaffController{
		staffService: staffService,
		groupService: groupService,
	}
}

// GetAllStaff lists staff members
// @Summary Get all staff
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.StaffDetail} "Staff retrieved successfully"
// @Router /staff [get]
func (c *StaffController) GetAllStaff(ctx *gin.Context) {
	staff, err := c.staffService.GetAllStaff(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(staff, ""))
}

// GetTeachers lists the active staff as select options
// @Summary Get teacher options
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Option} "Teachers retrieved successfully"
// @Router /staff/teachers [get]
func (c *StaffController) GetTeachers(ctx *gin.Context) {
	teachers, err := c.staffService.GetTeacherOptions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(teachers, ""))
}

// GetStaffByID retrieves a staff member by ID
// @Summary Get staff details
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.StaffDetail} "Staff retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Staff not found"
// @Router /staff/{id} [get]
func (c *StaffController) GetStaffByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "staff")
	if !ok {
		return
	}

	staff, err := c.staffService.GetStaffByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(staff, ""))
}

// GetTeacherGroups lists the groups a staff member teaches
// @Summary Get groups of a teacher
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.GroupDetail} "Groups retrieved successfully"
// @Router /groups/teacher/{id} [get]
func (c *StaffController) GetTeacherGroups(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "teacher")
	if !ok {
		return
	}

	groups, err := c.groupService.GetGroupsByTeacher(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(groups, ""))
}

// CreateStaff handles staff creation
// @Summary Create a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StaffRequest true "Staff information"
// @Success 201 {object} dto.APIResponse{data=dto.CreatedResponse} "Staff created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /staff [post]
func (c *StaffController) CreateStaff(ctx *gin.Context) {
	var req dto.StaffRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	id, err := c.staffService.CreateStaff(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.CreatedResponse{ID: id}, "Staff created successfully"))
}

// UpdateStaff replaces a staff member
// @Summary Update a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID" Format(int64) minimum(1)
// @Param request body dto.StaffRequest true "Staff information"
// @Success 200 {object} dto.APIResponse "Staff updated successfully"
// @Failure 404 {object} dto.ErrorResponse "Staff not found"
// @Router /staff/{id} [put]
func (c *StaffController) UpdateStaff(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "staff")
	if !ok {
		return
	}
	var req dto.StaffRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	staff := req.ToModel()
	staff.ID = id
	if err := c.staffService.UpdateStaff(ctx.Request.Context(), staff); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Staff updated successfully"))
}

// DeleteStaff removes a staff member and unassigns it everywhere
// @Summary Delete a staff member
// @Description Groups and students taught by the staff member are left without a teacher
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.DeletionResponse} "Staff deleted"
// @Failure 404 {object} dto.ErrorResponse "Staff not found"
// @Router /staff/{id} [delete]
func (c *StaffController) DeleteStaff(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "staff")
	if !ok {
		return
	}
	result, err := c.staffService.DeleteStaff(ctx.Request.Context(), id)
	respondDeletion(ctx, result, err)
}
