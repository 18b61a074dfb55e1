package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/app/services"
	"github.com/yigit/schooladmin/internal/middleware"
)

// GroupController handles group-related operations
type GroupController struct {
	groupService services.GroupService
}

// NewGroupController creates a new GroupController
func NewGroupController(groupService services.GroupService) *GroupController {
	return &GroupController{
		groupService: groupService,
	}
}

// GetAllGroups lists groups with grade and teacher
// @Summary Get all groups
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.GroupDetail} "Groups retrieved successfully"
// @Router /groups [get]
func (c *GroupController) GetAllGroups(ctx *gin.Context) {
	groups, err := c.groupService.GetAllGroups(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(groups, ""))
}

// GetGroupByID retrieves a group by ID
// @Summary Get group details
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.GroupDetail} "Group retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id} [get]
func (c *GroupController) GetGroupByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "group")
	if !ok {
		return
	}

	group, err := c.groupService.GetGroupByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(group, ""))
}

// GetGroupStudents lists the students of a group
// @Summary Get students of a group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id}/students [get]
func (c *GroupController) GetGroupStudents(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "group")
	if !ok {
		return
	}

	students, err := c.groupService.GetGroupStudents(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students, ""))
}

// CreateGroup handles group creation
// @Summary Create a group
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GroupRequest true "Group information"
// @Success 201 {object} dto.APIResponse{data=dto.CreatedResponse} "Group created successfully"
// @Failure 400 {object} dto.ErrorResponse "Name and grade are required"
// @Router /groups [post]
func (c *GroupController) CreateGroup(ctx *gin.Context) {
	var req dto.GroupRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	id, err := c.groupService.CreateGroup(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.CreatedResponse{ID: id}, "Group created successfully"))
}

// UpdateGroup replaces a group
// @Summary Update a group
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID" Format(int64) minimum(1)
// @Param request body dto.GroupRequest true "Group information"
// @Success 200 {object} dto.APIResponse "Group updated successfully"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id} [put]
func (c *GroupController) UpdateGroup(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "group")
	if !ok {
		return
	}
	var req dto.GroupRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	group := req.ToModel()
	group.ID = id
	if err := c.groupService.UpdateGroup(ctx.Request.Context(), group); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Group updated successfully"))
}

// DeleteGroup removes a group without students
// @Summary Delete a group
// @Description Fails with 409 and the names of the students still assigned to the group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.DeletionResponse} "Group deleted"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 409 {object} dto.ErrorResponse "Group still has students"
// @Router /groups/{id} [delete]
func (c *GroupController) DeleteGroup(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "group")
	if !ok {
		return
	}
	result, err := c.groupService.DeleteGroup(ctx.Request.Context(), id)
	respondDeletion(ctx, result, err)
}
