package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Chippsss/sms-backend/internal/app/models"
	"github.com/Chippsss/sms-backend/internal/app/models/dto"
)

// studentResolver resolves a user id to its student profile.
type studentResolver interface {
	ResolveStudent(ctx context.Context, userID int64) (*models.Student, error)
}

// studentCourseStore is the slice of CourseRepository the student service needs.
type studentCourseStore interface {
	GetCoursesByStudent(ctx context.Context, studentID string) ([]*models.Course, error)
}

// studentGradeStore is the slice of GradeRepository the student service needs.
type studentGradeStore interface {
	GetGradesByStudent(ctx context.Context, studentID string) ([]*models.Grade, error)
}

// studentAttendanceStore is the slice of AttendanceRepository the student
// service needs.
type studentAttendanceStore interface {
	GetAttendanceByStudent(ctx context.Context, studentID string) ([]*models.AttendanceRecord, error)
}

// studentAssignmentStore is the slice of AssignmentRepository the student
// service needs.
type studentAssignmentStore interface {
	GetAssignmentsByStudent(ctx context.Context, studentID string) ([]*models.Assignment, error)
}

// StudentService serves the student-facing read endpoints. Every method
// starts from the authenticated user id and resolves it to the linked
// student profile; a user without one gets ErrNoProfile.
type StudentService struct {
	resolver       studentResolver
	courseRepo     studentCourseStore
	gradeRepo      studentGradeStore
	attendanceRepo studentAttendanceStore
	assignmentRepo studentAssignmentStore
	logger         zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	resolver studentResolver,
	courseRepo studentCourseStore,
	gradeRepo studentGradeStore,
	attendanceRepo studentAttendanceStore,
	assignmentRepo studentAssignmentStore,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		resolver:       resolver,
		courseRepo:     courseRepo,
		gradeRepo:      gradeRepo,
		attendanceRepo: attendanceRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// GetProfile returns the caller's student record
func (s *StudentService) GetProfile(ctx context.Context, userID int64) (*models.Student, error) {
	return s.resolver.ResolveStudent(ctx, userID)
}

// GetDashboard returns the caller's profile and enrolled courses
func (s *StudentService) GetDashboard(ctx context.Context, userID int64) (*dto.StudentDashboardResponse, error) {
	student, err := s.resolver.ResolveStudent(ctx, userID)
	if err != nil {
		return nil, err
	}

	courses, err := s.courseRepo.GetCoursesByStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	return &dto.StudentDashboardResponse{
		Student: student,
		Courses: courses,
	}, nil
}

// GetCourses returns the caller's enrolled courses ordered by name
func (s *StudentService) GetCourses(ctx context.Context, userID int64) ([]*models.Course, error) {
	student, err := s.resolver.ResolveStudent(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.courseRepo.GetCoursesByStudent(ctx, student.ID)
}

// GetGrades returns the caller's grades ordered by course code
func (s *StudentService) GetGrades(ctx context.Context, userID int64) ([]*models.Grade, error) {
	student, err := s.resolver.ResolveStudent(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.gradeRepo.GetGradesByStudent(ctx, student.ID)
}

// GetAttendance returns the caller's attendance records, newest first
func (s *StudentService) GetAttendance(ctx context.Context, userID int64) ([]*models.AttendanceRecord, error) {
	student, err := s.resolver.ResolveStudent(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.attendanceRepo.GetAttendanceByStudent(ctx, student.ID)
}

// GetAssignments returns the assignments of the caller's enrolled courses
// ordered by due date.
func (s *StudentService) GetAssignments(ctx context.Context, userID int64) ([]*models.Assignment, error) {
	student, err := s.resolver.ResolveStudent(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.assignmentRepo.GetAssignmentsByStudent(ctx, student.ID)
}
