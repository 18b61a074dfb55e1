package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/app/services"
	"github.com/yigit/schooladmin/internal/middleware"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetAllStudents lists students with the names of their related records
// @Summary Get all students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.StudentDetail} "Students retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students, ""))
}

// GetStudentByID retrieves a student by ID
// @Summary Get student details
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.StudentDetail} "Student retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "student")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, ""))
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.CreatedResponse} "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	id, err := c.studentService.CreateStudent(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.CreatedResponse{ID: id}, "Student created successfully"))
}

// UpdateStudent replaces a student
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.StudentRequest true "Student information"
// @Success 200 {object} dto.APIResponse "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "student")
	if !ok {
		return
	}
	var req dto.StudentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	student := req.ToModel()
	student.ID = id
	if err := c.studentService.UpdateStudent(ctx.Request.Context(), student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Student updated successfully"))
}

// AssignGroup moves a student to another group
// @Summary Assign a student to a group
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.AssignGroupRequest true "Target group"
// @Success 200 {object} dto.APIResponse "Group assigned successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown group"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/group [patch]
func (c *StudentController) AssignGroup(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "student")
	if !ok {
		return
	}
	var req dto.AssignGroupRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	if err := c.studentService.AssignGroup(ctx.Request.Context(), id, *req.GroupID.Ptr()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Group assigned successfully"))
}

// DeleteStudent removes a student and everything it owns
// @Summary Delete a student
// @Description Removes the student together with its disabilities, special needs and specialist attentions
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.DeletionResponse} "Student deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 503 {object} dto.ErrorResponse "Database unavailable"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "student")
	if !ok {
		return
	}
	result, err := c.studentService.DeleteStudent(ctx.Request.Context(), id)
	respondDeletion(ctx, result, err)
}
