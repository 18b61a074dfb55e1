package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schooladmin/internal/app/controllers"
	"github.com/yigit/schooladmin/internal/app/models"
	"github.com/yigit/schooladmin/internal/middleware"
)

// Controllers groups every HTTP handler the router mounts
type Controllers struct {
	Auth        *controllers.AuthController
	Student     *controllers.StudentController
	Staff       *controllers.StaffController
	Institution *controllers.InstitutionController
	Group       *controllers.GroupController
	Catalog     *controllers.CatalogController
	Health      *controllers.HealthController
}

// MetricsRoute exposes a scrape handler at Path. A nil Handler disables it.
type MetricsRoute struct {
	Path    string
	Handler http.Handler
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	c Controllers,
	authMiddleware *middleware.AuthMiddleware,
	metrics MetricsRoute,
) {
	if metrics.Handler != nil {
		router.GET(metrics.Path, gin.WrapH(metrics.Handler))
	}

	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", c.Health.Health)

	// --- Public routes ---
	v1.POST("/auth/login", c.Auth.Login)

	catalogs := v1.Group("/catalogs")
	{
		catalogs.GET("/genders", c.Catalog.GetGenders)
		catalogs.GET("/grades", c.Catalog.GetGrades)
		catalogs.GET("/institution-types", c.Catalog.GetInstitutionTypes)
	}
	v1.GET("/institutions/labels", c.Institution.GetInstitutionLabels)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Writes are restricted to administrators
	admin := authMiddleware.RoleRequired(string(models.RoleAdmin))

	students := authenticated.Group("/students")
	{
		students.GET("", c.Student.GetAllStudents)
		students.GET("/:id", c.Student.GetStudentByID)
		students.POST("", admin, c.Student.CreateStudent)
		students.PUT("/:id", admin, c.Student.UpdateStudent)
		students.PATCH("/:id/group", admin, c.Student.AssignGroup)
		students.DELETE("/:id", admin, c.Student.DeleteStudent)
	}

	staff := authenticated.Group("/staff")
	{
		staff.GET("", admin, c.Staff.GetAllStaff)
		staff.GET("/teachers", c.Staff.GetTeachers)
		staff.GET("/:id", admin, c.Staff.GetStaffByID)
		staff.POST("", admin, c.Staff.CreateStaff)
		staff.PUT("/:id", admin, c.Staff.UpdateStaff)
		staff.DELETE("/:id", admin, c.Staff.DeleteStaff)
	}

	institutions := authenticated.Group("/institutions")
	{
		institutions.GET("", c.Institution.GetAllInstitutions)
		institutions.GET("/:id", c.Institution.GetInstitutionByID)
		institutions.POST("", admin, c.Institution.CreateInstitution)
		institutions.PUT("/:id", admin, c.Institution.UpdateInstitution)
		institutions.DELETE("/:id", admin, c.Institution.DeleteInstitution)
	}

	groups := authenticated.Group("/groups")
	{
		groups.GET("", c.Group.GetAllGroups)
		groups.GET("/teacher/:id", c.Staff.GetTeacherGroups)
		groups.GET("/:id", c.Group.GetGroupByID)
		groups.GET("/:id/students", c.Group.GetGroupStudents)
		groups.POST("", admin, c.Group.CreateGroup)
		groups.PUT("/:id", admin, c.Group.UpdateGroup)
		groups.DELETE("/:id", admin, c.Group.DeleteGroup)
	}
}
