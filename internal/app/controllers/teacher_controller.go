package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Chippsss/sms-backend/internal/app/models/dto"
	"github.com/Chippsss/sms-backend/internal/app/services"
	"github.com/Chippsss/sms-backend/internal/middleware"
)

// TeacherController serves the teacher-facing endpoints. Course access is
// always scoped to the caller's own assignments.
type TeacherController struct {
	teacherService *services.TeacherService
	logger         zerolog.Logger
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService *services.TeacherService, logger zerolog.Logger) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
		logger:         logger,
	}
}

// GetDashboard handles GET /teacher/dashboard
func (c *TeacherController) GetDashboard(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	courses, err := c.teacherService.GetDashboard(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// GetCourseDetail handles GET /teacher/courses/:courseId
func (c *TeacherController) GetCourseDetail(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	courseID, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}

	resp, err := c.teacherService.GetCourseDetail(ctx.Request.Context(), userID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// GetCourseGrades handles GET /teacher/courses/:courseId/grades
func (c *TeacherController) GetCourseGrades(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	courseID, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}

	grades, err := c.teacherService.GetCourseGrades(ctx.Request.Context(), userID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(grades))
}

// CreateGrade handles POST /teacher/courses/:courseId/grades
func (c *TeacherController) CreateGrade(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	courseID, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}

	var req dto.CreateGradeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	grade, err := c.teacherService.CreateGrade(ctx.Request.Context(), userID, courseID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(grade))
}

// UpdateGrade handles PUT /teacher/grades/:gradeId
func (c *TeacherController) UpdateGrade(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	gradeID, ok := pathID(ctx, "gradeId")
	if !ok {
		return
	}

	var req dto.UpdateGradeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	grade, err := c.teacherService.UpdateGrade(ctx.Request.Context(), userID, gradeID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(grade))
}

// DeleteGrade handles DELETE /teacher/grades/:gradeId
func (c *TeacherController) DeleteGrade(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	gradeID, ok := pathID(ctx, "gradeId")
	if !ok {
		return
	}

	if err := c.teacherService.DeleteGrade(ctx.Request.Context(), userID, gradeID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"message": "Grade deleted"}))
}

// GetAttendanceSheet handles
// GET /teacher/courses/:courseId/attendance?divisionId=&date=
func (c *TeacherController) GetAttendanceSheet(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	courseID, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}

	var query struct {
		DivisionID int64  `form:"divisionId" binding:"required,min=1"`
		Date       string `form:"date" binding:"required"`
	}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.teacherService.GetAttendanceSheet(ctx.Request.Context(), userID, courseID, query.DivisionID, query.Date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// RecordAttendance handles POST /teacher/courses/:courseId/attendance
func (c *TeacherController) RecordAttendance(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	courseID, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}

	var req dto.RecordAttendanceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.teacherService.RecordAttendance(ctx.Request.Context(), userID, courseID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"message": "Attendance recorded"}))
}

// DeleteAttendanceRecord handles DELETE /teacher/attendance/:recordId
func (c *TeacherController) DeleteAttendanceRecord(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	recordID, ok := pathID(ctx, "recordId")
	if !ok {
		return
	}

	if err := c.teacherService.DeleteAttendanceRecord(ctx.Request.Context(), userID, recordID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"message": "Attendance record deleted"}))
}

// GetAssignments handles GET /teacher/courses/:courseId/assignments
func (c *TeacherController) GetAssignments(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	courseID, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}

	assignments, err := c.teacherService.GetAssignments(ctx.Request.Context(), userID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(assignments))
}

// CreateAssignment handles POST /teacher/courses/:courseId/assignments
func (c *TeacherController) CreateAssignment(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	courseID, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}

	var req dto.CreateAssignmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	assignment, err := c.teacherService.CreateAssignment(ctx.Request.Context(), userID, courseID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(assignment))
}

// UpdateAssignment handles PUT /teacher/assignments/:assignmentId
func (c *TeacherController) UpdateAssignment(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	assignmentID, ok := pathID(ctx, "assignmentId")
	if !ok {
		return
	}

	var req dto.UpdateAssignmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	assignment, err := c.teacherService.UpdateAssignment(ctx.Request.Context(), userID, assignmentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(assignment))
}

// DeleteAssignment handles DELETE /teacher/assignments/:assignmentId
func (c *TeacherController) DeleteAssignment(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	assignmentID, ok := pathID(ctx, "assignmentId")
	if !ok {
		return
	}

	if err := c.teacherService.DeleteAssignment(ctx.Request.Context(), userID, assignmentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"message": "Assignment deleted"}))
}
