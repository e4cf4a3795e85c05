// Package routes wires controllers onto the Gin engine.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Chippsss/sms-backend/internal/app/controllers"
	"github.com/Chippsss/sms-backend/internal/app/models"
	"github.com/Chippsss/sms-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrl *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", ctrl.AuthController.Login)
		auth.POST("/refresh", ctrl.AuthController.Refresh)
		auth.POST("/logout", ctrl.AuthController.Logout)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Identity endpoint, answers for every role including unlinked accounts
		authenticated.GET("/me", ctrl.AuthController.WhoAmI)
		authenticated.POST("/auth/logout-all", ctrl.AuthController.LogoutAll)

		// Reference data readable by any authenticated user
		authenticated.GET("/catalog", ctrl.CatalogController.GetCatalog)
		authenticated.GET("/academic-years", ctrl.CatalogController.ListAcademicYears)
		authenticated.GET("/semesters", ctrl.CatalogController.ListSemesters)
		authenticated.GET("/semesters/:semesterId", ctrl.CatalogController.GetSemester)
		authenticated.GET("/branches", ctrl.CatalogController.ListBranches)
		authenticated.GET("/divisions", ctrl.CatalogController.ListDivisions)
		authenticated.GET("/divisions/:divisionId", ctrl.CatalogController.GetDivision)
		authenticated.GET("/courses/:courseId", ctrl.CatalogController.GetCourse)

		// Student dashboard, always scoped to the caller's own record
		student := authenticated.Group("/student")
		student.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
		{
			student.GET("/dashboard", ctrl.StudentController.GetDashboard)
			student.GET("/profile", ctrl.StudentController.GetProfile)
			student.GET("/courses", ctrl.StudentController.GetCourses)
			student.GET("/grades", ctrl.StudentController.GetGrades)
			student.GET("/attendance", ctrl.StudentController.GetAttendance)
			student.GET("/assignments", ctrl.StudentController.GetAssignments)
		}

		// Teacher endpoints, course access scoped to the caller's assignments
		teacher := authenticated.Group("/teacher")
		teacher.Use(authMiddleware.RoleRequired(string(models.RoleTeacher)))
		{
			teacher.GET("/dashboard", ctrl.TeacherController.GetDashboard)
			teacher.GET("/courses/:courseId", ctrl.TeacherController.GetCourseDetail)

			teacher.GET("/courses/:courseId/grades", ctrl.TeacherController.GetCourseGrades)
			teacher.POST("/courses/:courseId/grades", ctrl.TeacherController.CreateGrade)
			teacher.PUT("/grades/:gradeId", ctrl.TeacherController.UpdateGrade)
			teacher.DELETE("/grades/:gradeId", ctrl.TeacherController.DeleteGrade)

			teacher.GET("/courses/:courseId/attendance", ctrl.TeacherController.GetAttendanceSheet)
			teacher.POST("/courses/:courseId/attendance", ctrl.TeacherController.RecordAttendance)
			teacher.DELETE("/attendance/:recordId", ctrl.TeacherController.DeleteAttendanceRecord)

			teacher.GET("/courses/:courseId/assignments", ctrl.TeacherController.GetAssignments)
			teacher.POST("/courses/:courseId/assignments", ctrl.TeacherController.CreateAssignment)
			teacher.PUT("/assignments/:assignmentId", ctrl.TeacherController.UpdateAssignment)
			teacher.DELETE("/assignments/:assignmentId", ctrl.TeacherController.DeleteAssignment)
		}

		// Admin provisioning
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			admin.POST("/academic-years", ctrl.CatalogController.CreateAcademicYear)
			admin.POST("/semesters", ctrl.CatalogController.CreateSemester)
			admin.POST("/branches", ctrl.CatalogController.CreateBranch)
			admin.POST("/divisions", ctrl.CatalogController.CreateDivision)
			admin.POST("/courses", ctrl.CatalogController.CreateCourse)

			admin.POST("/students", ctrl.AdminController.CreateStudent)
			admin.GET("/students", ctrl.AdminController.ListStudents)
			admin.GET("/students/:studentId", ctrl.AdminController.GetStudent)
			admin.PUT("/students/:studentId/account", ctrl.AdminController.LinkStudentAccount)
			admin.GET("/divisions/:divisionId/students", ctrl.AdminController.ListDivisionStudents)
			admin.POST("/teachers", ctrl.AdminController.CreateTeacher)
			admin.GET("/teachers", ctrl.AdminController.ListTeachers)
			admin.GET("/teachers/:teacherId", ctrl.AdminController.GetTeacher)

			admin.POST("/courses/:courseId/enrollments", ctrl.AdminController.EnrollStudent)
			admin.DELETE("/courses/:courseId/enrollments/:studentId", ctrl.AdminController.UnenrollStudent)
		}
	}
}
