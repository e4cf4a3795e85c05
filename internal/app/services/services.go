// Package services contains the business logic between HTTP controllers
// and database repositories.
package services

import (
	"github.com/rs/zerolog"

	appauth "github.com/Chippsss/sms-backend/internal/app/auth"
	"github.com/Chippsss/sms-backend/internal/app/repositories"
	"github.com/Chippsss/sms-backend/internal/pkg/auth"
)

// Services holds all service instances
type Services struct {
	AuthService    *AuthService
	CatalogService *CatalogService
	PersonService  *PersonService
	StudentService *StudentService
	TeacherService *TeacherService
}

// NewServices wires all services onto the repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, logger zerolog.Logger) *Services {
	resolver := appauth.NewIdentityResolver(repos.UserRepository, repos.StudentRepository, repos.TeacherRepository)

	return &Services{
		AuthService: NewAuthService(
			repos.UserRepository,
			repos.TokenRepository,
			resolver,
			jwtService,
			logger,
		),
		CatalogService: NewCatalogService(
			repos.CatalogRepository,
			repos.CourseRepository,
			repos.TeacherRepository,
			logger,
		),
		PersonService: NewPersonService(
			repos.StudentRepository,
			repos.TeacherRepository,
			repos.UserRepository,
			repos.CourseRepository,
			logger,
		),
		StudentService: NewStudentService(
			resolver,
			repos.CourseRepository,
			repos.GradeRepository,
			repos.AttendanceRepository,
			repos.AssignmentRepository,
			logger,
		),
		TeacherService: NewTeacherService(
			resolver,
			repos.CourseRepository,
			repos.GradeRepository,
			repos.AttendanceRepository,
			repos.AssignmentRepository,
			logger,
		),
	}
}
