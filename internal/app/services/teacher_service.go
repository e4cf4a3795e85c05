package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Chippsss/sms-backend/internal/app/models"
	"github.com/Chippsss/sms-backend/internal/app/models/dto"
	"github.com/Chippsss/sms-backend/internal/pkg/apperrors"
	"github.com/Chippsss/sms-backend/internal/pkg/helpers"
)

// teacherResolver resolves a user id to its teacher profile.
type teacherResolver interface {
	ResolveTeacher(ctx context.Context, userID int64) (*models.Teacher, error)
}

// teacherCourseStore is the slice of CourseRepository the teacher service
// needs. Course lookups are always keyed by (course, teacher) so one
// teacher can never reach another teacher's course.
type teacherCourseStore interface {
	GetCourseByIDForTeacher(ctx context.Context, courseID, teacherID int64) (*models.Course, error)
	GetCoursesByTeacher(ctx context.Context, teacherID int64) ([]*models.Course, error)
	GetEnrolledStudents(ctx context.Context, courseID int64) ([]*models.Student, error)
	GetDivisionsForCourse(ctx context.Context, courseID int64) ([]*models.Division, error)
	IsEnrolled(ctx context.Context, studentID string, courseID int64) (bool, error)
}

// teacherGradeStore is the slice of GradeRepository the teacher service needs.
type teacherGradeStore interface {
	CreateGrade(ctx context.Context, grade *models.Grade) error
	GetGradeByID(ctx context.Context, id int64) (*models.Grade, error)
	GetGradesByCourse(ctx context.Context, courseID int64) ([]*models.Grade, error)
	UpdateGrade(ctx context.Context, grade *models.Grade) error
	DeleteGrade(ctx context.Context, id int64) error
}

// teacherAttendanceStore is the slice of AttendanceRepository the teacher
// service needs.
type teacherAttendanceStore interface {
	GetRoster(ctx context.Context, courseID, divisionID int64, date time.Time) ([]models.RosterEntry, error)
	RecordBatch(ctx context.Context, courseID int64, date time.Time, marks map[string]bool) error
	GetRecordByID(ctx context.Context, id int64) (*models.AttendanceRecord, error)
	DeleteRecord(ctx context.Context, id int64) error
}

// teacherAssignmentStore is the slice of AssignmentRepository the teacher
// service needs.
type teacherAssignmentStore interface {
	CreateAssignment(ctx context.Context, assignment *models.Assignment) error
	GetAssignmentByID(ctx context.Context, id int64) (*models.Assignment, error)
	GetAssignmentsByCourse(ctx context.Context, courseID int64) ([]*models.Assignment, error)
	UpdateAssignment(ctx context.Context, assignment *models.Assignment) error
	DeleteAssignment(ctx context.Context, id int64) error
}

// TeacherService serves the teacher-facing endpoints: the course dashboard,
// per-course detail, grading, attendance and coursework.
type TeacherService struct {
	resolver       teacherResolver
	courseRepo     teacherCourseStore
	gradeRepo      teacherGradeStore
	attendanceRepo teacherAttendanceStore
	assignmentRepo teacherAssignmentStore
	logger         zerolog.Logger
}

// NewTeacherService creates a new TeacherService
func NewTeacherService(
	resolver teacherResolver,
	courseRepo teacherCourseStore,
	gradeRepo teacherGradeStore,
	attendanceRepo teacherAttendanceStore,
	assignmentRepo teacherAssignmentStore,
	logger zerolog.Logger,
) *TeacherService {
	return &TeacherService{
		resolver:       resolver,
		courseRepo:     courseRepo,
		gradeRepo:      gradeRepo,
		attendanceRepo: attendanceRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// scopedCourse resolves the caller's teacher profile and loads the course
// only if it is assigned to them. Courses assigned to another teacher are
// indistinguishable from missing ones.
func (s *TeacherService) scopedCourse(ctx context.Context, userID, courseID int64) (*models.Teacher, *models.Course, error) {
	teacher, err := s.resolver.ResolveTeacher(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	course, err := s.courseRepo.GetCourseByIDForTeacher(ctx, courseID, teacher.ID)
	if err != nil {
		return nil, nil, err
	}
	return teacher, course, nil
}

// GetDashboard returns the caller's assigned courses ordered by name
func (s *TeacherService) GetDashboard(ctx context.Context, userID int64) ([]*models.Course, error) {
	teacher, err := s.resolver.ResolveTeacher(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.courseRepo.GetCoursesByTeacher(ctx, teacher.ID)
}

// GetCourseDetail returns one assigned course with its roster and the
// divisions that have enrolled students.
func (s *TeacherService) GetCourseDetail(ctx context.Context, userID, courseID int64) (*dto.CourseDetailResponse, error) {
	_, course, err := s.scopedCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	roster, err := s.courseRepo.GetEnrolledStudents(ctx, course.ID)
	if err != nil {
		return nil, err
	}
	divisions, err := s.courseRepo.GetDivisionsForCourse(ctx, course.ID)
	if err != nil {
		return nil, err
	}

	return &dto.CourseDetailResponse{
		Course:    course,
		Roster:    roster,
		Divisions: divisions,
	}, nil
}

// GetCourseGrades returns all grades recorded in an assigned course
func (s *TeacherService) GetCourseGrades(ctx context.Context, userID, courseID int64) ([]*models.Grade, error) {
	_, _, err := s.scopedCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	return s.gradeRepo.GetGradesByCourse(ctx, courseID)
}

// CreateGrade records a score for an enrolled student of an assigned course
func (s *TeacherService) CreateGrade(ctx context.Context, userID, courseID int64, req *dto.CreateGradeRequest) (*models.Grade, error) {
	_, _, err := s.scopedCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.courseRepo.IsEnrolled(ctx, req.StudentID, courseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, apperrors.ErrNotEnrolled
	}

	grade := &models.Grade{
		StudentID:   req.StudentID,
		CourseID:    courseID,
		Score:       req.Score,
		GradeLetter: req.GradeLetter,
	}
	if err := s.gradeRepo.CreateGrade(ctx, grade); err != nil {
		return nil, err
	}
	return grade, nil
}

// UpdateGrade updates a grade belonging to one of the caller's courses
func (s *TeacherService) UpdateGrade(ctx context.Context, userID, gradeID int64, req *dto.UpdateGradeRequest) (*models.Grade, error) {
	grade, err := s.gradeRepo.GetGradeByID(ctx, gradeID)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.scopedCourse(ctx, userID, grade.CourseID); err != nil {
		return nil, err
	}

	grade.Score = req.Score
	grade.GradeLetter = req.GradeLetter
	if err := s.gradeRepo.UpdateGrade(ctx, grade); err != nil {
		return nil, err
	}
	return grade, nil
}

// DeleteGrade removes a grade belonging to one of the caller's courses
func (s *TeacherService) DeleteGrade(ctx context.Context, userID, gradeID int64) error {
	grade, err := s.gradeRepo.GetGradeByID(ctx, gradeID)
	if err != nil {
		return err
	}
	if _, _, err := s.scopedCourse(ctx, userID, grade.CourseID); err != nil {
		return err
	}
	return s.gradeRepo.DeleteGrade(ctx, gradeID)
}

// GetAttendanceSheet reconciles one division's roster against the recorded
// attendance of an assigned course on a date. Students without a record
// report NO_RECORD rather than a defaulted absence.
func (s *TeacherService) GetAttendanceSheet(ctx context.Context, userID, courseID, divisionID int64, dateStr string) (*dto.AttendanceSheetResponse, error) {
	_, course, err := s.scopedCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	date, err := helpers.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	entries, err := s.attendanceRepo.GetRoster(ctx, course.ID, divisionID, date)
	if err != nil {
		return nil, err
	}

	return &dto.AttendanceSheetResponse{
		CourseID:   course.ID,
		DivisionID: divisionID,
		Date:       date.Format(helpers.DateLayout),
		Entries:    entries,
	}, nil
}

// RecordAttendance writes one day's marks for an assigned course in a
// single transaction. Every marked student must be enrolled; re-submitting
// a date overwrites the previous marks.
func (s *TeacherService) RecordAttendance(ctx context.Context, userID, courseID int64, req *dto.RecordAttendanceRequest) error {
	_, course, err := s.scopedCourse(ctx, userID, courseID)
	if err != nil {
		return err
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return err
	}

	marks := make(map[string]bool, len(req.Marks))
	for _, mark := range req.Marks {
		enrolled, err := s.courseRepo.IsEnrolled(ctx, mark.StudentID, course.ID)
		if err != nil {
			return err
		}
		if !enrolled {
			return apperrors.ErrNotEnrolled
		}
		marks[mark.StudentID] = mark.IsPresent
	}

	return s.attendanceRepo.RecordBatch(ctx, course.ID, date, marks)
}

// DeleteAttendanceRecord removes one attendance record. The record's course
// must be assigned to the caller.
func (s *TeacherService) DeleteAttendanceRecord(ctx context.Context, userID, recordID int64) error {
	record, err := s.attendanceRepo.GetRecordByID(ctx, recordID)
	if err != nil {
		return err
	}
	if _, _, err := s.scopedCourse(ctx, userID, record.CourseID); err != nil {
		return err
	}
	return s.attendanceRepo.DeleteRecord(ctx, recordID)
}

// GetAssignments returns the assignments of an assigned course
func (s *TeacherService) GetAssignments(ctx context.Context, userID, courseID int64) ([]*models.Assignment, error) {
	_, _, err := s.scopedCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	return s.assignmentRepo.GetAssignmentsByCourse(ctx, courseID)
}

// CreateAssignment publishes coursework for an assigned course
func (s *TeacherService) CreateAssignment(ctx context.Context, userID, courseID int64, req *dto.CreateAssignmentRequest) (*models.Assignment, error) {
	_, course, err := s.scopedCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	assignment := &models.Assignment{
		Title:       req.Title,
		Description: req.Description,
		CourseID:    course.ID,
		DueAt:       req.DueAt,
		MaxScore:    req.MaxScore,
	}
	if err := s.assignmentRepo.CreateAssignment(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// UpdateAssignment updates coursework of one of the caller's courses
func (s *TeacherService) UpdateAssignment(ctx context.Context, userID, assignmentID int64, req *dto.UpdateAssignmentRequest) (*models.Assignment, error) {
	assignment, err := s.assignmentRepo.GetAssignmentByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.scopedCourse(ctx, userID, assignment.CourseID); err != nil {
		return nil, err
	}

	assignment.Title = req.Title
	assignment.Description = req.Description
	assignment.DueAt = req.DueAt
	assignment.MaxScore = req.MaxScore
	if err := s.assignmentRepo.UpdateAssignment(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// DeleteAssignment removes coursework of one of the caller's courses
func (s *TeacherService) DeleteAssignment(ctx context.Context, userID, assignmentID int64) error {
	assignment, err := s.assignmentRepo.GetAssignmentByID(ctx, assignmentID)
	if err != nil {
		return err
	}
	if _, _, err := s.scopedCourse(ctx, userID, assignment.CourseID); err != nil {
		return err
	}
	return s.assignmentRepo.DeleteAssignment(ctx, assignmentID)
}
