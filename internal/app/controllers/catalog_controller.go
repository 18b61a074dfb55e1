package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/app/services"
	"github.com/yigit/schooladmin/internal/middleware"
)

// CatalogController serves the lookup tables
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// GetGenders godoc
// @Summary Gender catalog
// @Tags catalogs
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Option}
// @Router /catalogs/genders [get]
func (c *CatalogController) GetGenders(ctx *gin.Context) {
	genders, err := c.catalogService.GetGenders(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(genders, ""))
}

// GetGrades godoc
// @Summary Grade catalog
// @Tags catalogs
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Option}
// @Router /catalogs/grades [get]
func (c *CatalogController) GetGrades(ctx *gin.Context) {
	grades, err := c.catalogService.GetGrades(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(grades, ""))
}

// GetInstitutionTypes godoc
// @Summary Institution type catalog
// @Tags catalogs
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.InstitutionType}
// @Router /catalogs/institution-types [get]
func (c *CatalogController) GetInstitutionTypes(ctx *gin.Context) {
	types, err := c.catalogService.GetInstitutionTypes(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(types, ""))
}
