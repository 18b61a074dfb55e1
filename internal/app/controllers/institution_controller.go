package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/app/services"
	"github.com/yigit/schooladmin/internal/middleware"
)

// InstitutionController handles institution-related operations
type InstitutionController struct {
	institutionService services.InstitutionService
}

// NewInstitutionController creates a new InstitutionController
func NewInstitutionController(institutionService services.InstitutionService) *InstitutionController {
	return &InstitutionController{
		institutionService: institutionService,
	}
}

// GetAllInstitutions lists institutions with their type
// @Summary Get all institutions
// @Tags institutions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.InstitutionDetail} "Institutions retrieved successfully"
// @Router /institutions [get]
func (c *InstitutionController) GetAllInstitutions(ctx *gin.Context) {
	institutions, err := c.institutionService.GetAllInstitutions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(institutions, ""))
}

// GetInstitutionLabels lists institutions as select options
// @Summary Get institution options
// @Tags institutions
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Option} "Institutions retrieved successfully"
// @Router /institutions/labels [get]
func (c *InstitutionController) GetInstitutionLabels(ctx *gin.Context) {
	labels, err := c.institutionService.GetInstitutionLabels(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(labels, ""))
}

// GetInstitutionByID retrieves an institution by ID
// @Summary Get institution details
// @Tags institutions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Institution ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.InstitutionDetail} "Institution retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Institution not found"
// @Router /institutions/{id} [get]
func (c *InstitutionController) GetInstitutionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "institution")
	if !ok {
		return
	}

	institution, err := c.institutionService.GetInstitutionByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(institution, ""))
}

// CreateInstitution handles institution creation
// @Summary Create an institution
// @Tags institutions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.InstitutionRequest true "Institution information"
// @Success 201 {object} dto.APIResponse{data=dto.CreatedResponse} "Institution created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /institutions [post]
func (c *InstitutionController) CreateInstitution(ctx *gin.Context) {
	var req dto.InstitutionRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	id, err := c.institutionService.CreateInstitution(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.CreatedResponse{ID: id}, "Institution created successfully"))
}

// UpdateInstitution replaces an institution
// @Summary Update an institution
// @Tags institutions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Institution ID" Format(int64) minimum(1)
// @Param request body dto.InstitutionRequest true "Institution information"
// @Success 200 {object} dto.APIResponse "Institution updated successfully"
// @Failure 404 {object} dto.ErrorResponse "Institution not found"
// @Router /institutions/{id} [put]
func (c *InstitutionController) UpdateInstitution(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "institution")
	if !ok {
		return
	}
	var req dto.InstitutionRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	institution := req.ToModel()
	institution.ID = id
	if err := c.institutionService.UpdateInstitution(ctx.Request.Context(), institution); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Institution updated successfully"))
}

// DeleteInstitution removes an institution nobody belongs to
// @Summary Delete an institution
// @Description Fails with 409 and the names of the students and staff that still belong to it
// @Tags institutions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Institution ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.DeletionResponse} "Institution deleted"
// @Failure 404 {object} dto.ErrorResponse "Institution not found"
// @Failure 409 {object} dto.ErrorResponse{error=dto.ErrorDetail{details=dto.BlockersDetails}} "Institution still in use"
// @Router /institutions/{id} [delete]
func (c *InstitutionController) DeleteInstitution(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "institution")
	if !ok {
		return
	}
	result, err := c.institutionService.DeleteInstitution(ctx.Request.Context(), id)
	respondDeletion(ctx, result, err)
}
