package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Chippsss/sms-backend/internal/app/models/dto"
	"github.com/Chippsss/sms-backend/internal/app/services"
	"github.com/Chippsss/sms-backend/internal/middleware"
	"github.com/Chippsss/sms-backend/internal/pkg/helpers"
)

// AdminController serves administrator provisioning of students, teachers
// and enrollments.
type AdminController struct {
	personService *services.PersonService
	logger        zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(personService *services.PersonService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		personService: personService,
		logger:        logger,
	}
}

// CreateStudent handles POST /admin/students
func (c *AdminController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.personService.CreateStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(student))
}

// ListStudents handles GET /admin/students
func (c *AdminController) ListStudents(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	students, pagination, err := c.personService.ListStudents(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{
		"students":   students,
		"pagination": pagination,
	}))
}

// GetStudent handles GET /admin/students/:studentId
func (c *AdminController) GetStudent(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	if studentID == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidInput, "Invalid studentId parameter").
			WithField("studentId")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.personService.GetStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// ListDivisionStudents handles GET /admin/divisions/:divisionId/students
func (c *AdminController) ListDivisionStudents(ctx *gin.Context) {
	divisionID, ok := pathID(ctx, "divisionId")
	if !ok {
		return
	}

	students, err := c.personService.ListStudentsByDivision(ctx.Request.Context(), divisionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// LinkStudentAccount handles PUT /admin/students/:studentId/account
func (c *AdminController) LinkStudentAccount(ctx *gin.Context) {
	studentID := ctx.Param("studentId")

	var req dto.LinkStudentAccountRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.personService.LinkStudentAccount(ctx.Request.Context(), studentID, req.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"message": "Account linked"}))
}

// CreateTeacher handles POST /admin/teachers
func (c *AdminController) CreateTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	teacher, err := c.personService.CreateTeacher(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(teacher))
}

// ListTeachers handles GET /admin/teachers
func (c *AdminController) ListTeachers(ctx *gin.Context) {
	teachers, err := c.personService.ListTeachers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(teachers))
}

// GetTeacher handles GET /admin/teachers/:teacherId
func (c *AdminController) GetTeacher(ctx *gin.Context) {
	teacherID, ok := pathID(ctx, "teacherId")
	if !ok {
		return
	}

	teacher, err := c.personService.GetTeacher(ctx.Request.Context(), teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(teacher))
}

// EnrollStudent handles POST /admin/courses/:courseId/enrollments
func (c *AdminController) EnrollStudent(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}

	var req dto.EnrollStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.personService.EnrollStudent(ctx.Request.Context(), req.StudentID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(gin.H{"message": "Student enrolled"}))
}

// UnenrollStudent handles DELETE /admin/courses/:courseId/enrollments/:studentId
func (c *AdminController) UnenrollStudent(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}
	studentID := ctx.Param("studentId")

	if err := c.personService.UnenrollStudent(ctx.Request.Context(), studentID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"message": "Student unenrolled"}))
}
