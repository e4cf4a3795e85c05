package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Chippsss/sms-backend/internal/app/models"
	"github.com/Chippsss/sms-backend/internal/app/models/dto"
	"github.com/Chippsss/sms-backend/internal/pkg/apperrors"
	"github.com/Chippsss/sms-backend/internal/pkg/auth"
	"github.com/Chippsss/sms-backend/internal/pkg/helpers"
)

// studentWriter is the slice of StudentRepository the person service needs.
type studentWriter interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	GetStudentByID(ctx context.Context, id string) (*models.Student, error)
	GetAllStudents(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error)
	GetStudentsByDivision(ctx context.Context, divisionID int64) ([]*models.Student, error)
	LinkUserAccount(ctx context.Context, studentID string, userID int64) error
}

// teacherWriter is the slice of TeacherRepository the person service needs.
type teacherWriter interface {
	CreateTeacher(ctx context.Context, teacher *models.Teacher) error
	GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetAllTeachers(ctx context.Context) ([]*models.Teacher, error)
}

// userCreator creates login accounts for provisioned people.
type userCreator interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// enrollmentStore is the slice of CourseRepository the person service needs.
type enrollmentStore interface {
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	EnrollStudent(ctx context.Context, studentID string, courseID int64) error
	UnenrollStudent(ctx context.Context, studentID string, courseID int64) error
}

// PersonService handles administrator provisioning of student and teacher
// records and course enrollment.
type PersonService struct {
	studentRepo studentWriter
	teacherRepo teacherWriter
	userRepo    userCreator
	courseRepo  enrollmentStore
	logger      zerolog.Logger
}

// NewPersonService creates a new PersonService
func NewPersonService(
	studentRepo studentWriter,
	teacherRepo teacherWriter,
	userRepo userCreator,
	courseRepo enrollmentStore,
	logger zerolog.Logger,
) *PersonService {
	return &PersonService{
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		userRepo:    userRepo,
		courseRepo:  courseRepo,
		logger:      logger,
	}
}

// CreateStudent provisions a student record. An existing user account may
// be linked at creation time, or later when the student claims it.
func (s *PersonService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if req.UserID != nil {
		if _, err := s.userRepo.GetUserByID(ctx, *req.UserID); err != nil {
			return nil, err
		}
	}

	student := &models.Student{
		ID:             req.ID,
		UserID:         req.UserID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PRN:            req.PRN,
		DivisionID:     req.DivisionID,
		AcademicYearID: req.AcademicYearID,
		BranchID:       req.BranchID,
		SemesterID:     req.SemesterID,
	}
	if err := s.studentRepo.CreateStudent(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// CreateTeacher provisions a teacher together with their login account.
// The account is created first; if the teacher row then fails the account
// is left behind and reported, it can be linked manually.
func (s *PersonService) CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		RoleType:  models.RoleTeacher,
		IsActive:  true,
	}
	userID, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		UserID:     userID,
		EmployeeID: req.EmployeeID,
		Phone:      req.Phone,
		BranchID:   req.BranchID,
	}
	if err := s.teacherRepo.CreateTeacher(ctx, teacher); err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).
			Msg("Teacher profile creation failed after account creation, account left unlinked")
		return nil, err
	}

	teacher.User = user
	user.ID = userID
	return teacher, nil
}

// GetStudent retrieves one student record
func (s *PersonService) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	return s.studentRepo.GetStudentByID(ctx, id)
}

// ListStudents lists one page of student records
func (s *PersonService) ListStudents(ctx context.Context, page, size int) ([]*models.Student, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	students, total, err := s.studentRepo.GetAllStudents(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return students, helpers.NewPaginationInfo(total, page, limit), nil
}

// ListStudentsByDivision lists the students of one division
func (s *PersonService) ListStudentsByDivision(ctx context.Context, divisionID int64) ([]*models.Student, error) {
	return s.studentRepo.GetStudentsByDivision(ctx, divisionID)
}

// GetTeacher retrieves one teacher record
func (s *PersonService) GetTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	return s.teacherRepo.GetTeacherByID(ctx, id)
}

// ListTeachers lists all teacher records
func (s *PersonService) ListTeachers(ctx context.Context) ([]*models.Teacher, error) {
	return s.teacherRepo.GetAllTeachers(ctx)
}

// LinkStudentAccount links a login account to a pre-provisioned student
func (s *PersonService) LinkStudentAccount(ctx context.Context, studentID string, userID int64) error {
	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return err
	}
	return s.studentRepo.LinkUserAccount(ctx, studentID, userID)
}

// EnrollStudent adds a student to a course roster. Both sides must exist;
// duplicate enrollment is rejected.
func (s *PersonService) EnrollStudent(ctx context.Context, studentID string, courseID int64) error {
	if _, err := s.studentRepo.GetStudentByID(ctx, studentID); err != nil {
		return err
	}
	if _, err := s.courseRepo.GetCourseByID(ctx, courseID); err != nil {
		return err
	}
	return s.courseRepo.EnrollStudent(ctx, studentID, courseID)
}

// UnenrollStudent removes a student from a course roster
func (s *PersonService) UnenrollStudent(ctx context.Context, studentID string, courseID int64) error {
	return s.courseRepo.UnenrollStudent(ctx, studentID, courseID)
}
