package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Chippsss/sms-backend/internal/app/models"
	"github.com/Chippsss/sms-backend/internal/app/models/dto"
	"github.com/Chippsss/sms-backend/internal/pkg/apperrors"
)

// catalogStore is the slice of CatalogRepository the catalog service needs.
type catalogStore interface {
	CreateAcademicYear(ctx context.Context, year *models.AcademicYear) error
	GetAcademicYearByID(ctx context.Context, id int64) (*models.AcademicYear, error)
	GetAllAcademicYears(ctx context.Context) ([]*models.AcademicYear, error)
	CreateSemester(ctx context.Context, semester *models.Semester) error
	GetSemesterByID(ctx context.Context, id int64) (*models.Semester, error)
	GetSemestersByAcademicYear(ctx context.Context, academicYearID int64) ([]*models.Semester, error)
	GetAllSemesters(ctx context.Context) ([]*models.Semester, error)
	CreateBranch(ctx context.Context, branch *models.Branch) error
	GetBranchByID(ctx context.Context, id int64) (*models.Branch, error)
	GetAllBranches(ctx context.Context) ([]*models.Branch, error)
	CreateDivision(ctx context.Context, division *models.Division) error
	GetDivisionByID(ctx context.Context, id int64) (*models.Division, error)
	GetAllDivisions(ctx context.Context) ([]*models.Division, error)
}

// courseCreator is the slice of CourseRepository the catalog service needs.
type courseCreator interface {
	CreateCourse(ctx context.Context, course *models.Course) error
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
}

// teacherLookup verifies teacher assignments on course creation.
type teacherLookup interface {
	GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error)
}

// CatalogService manages the academic reference data: years, semesters,
// branches, divisions and the course catalog built on top of them.
type CatalogService struct {
	catalogRepo catalogStore
	courseRepo  courseCreator
	teacherRepo teacherLookup
	logger      zerolog.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(catalogRepo catalogStore, courseRepo courseCreator, teacherRepo teacherLookup, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		courseRepo:  courseRepo,
		teacherRepo: teacherRepo,
		logger:      logger,
	}
}

// CreateAcademicYear creates an academic year from its label
func (s *CatalogService) CreateAcademicYear(ctx context.Context, req *dto.CreateAcademicYearRequest) (*models.AcademicYear, error) {
	year := &models.AcademicYear{YearLabel: req.YearLabel}
	if err := s.catalogRepo.CreateAcademicYear(ctx, year); err != nil {
		return nil, err
	}
	return year, nil
}

// CreateSemester creates a semester after checking the ordinal is one of
// the eight recognised values. The parent year must exist.
func (s *CatalogService) CreateSemester(ctx context.Context, req *dto.CreateSemesterRequest) (*models.Semester, error) {
	if !models.ValidSemesterOrdinal(req.Ordinal) {
		return nil, apperrors.NewInvalidInputError("ordinal must be one of 1st through 8th")
	}

	if _, err := s.catalogRepo.GetAcademicYearByID(ctx, req.AcademicYearID); err != nil {
		return nil, err
	}

	semester := &models.Semester{
		Ordinal:        req.Ordinal,
		AcademicYearID: req.AcademicYearID,
	}
	if err := s.catalogRepo.CreateSemester(ctx, semester); err != nil {
		return nil, err
	}
	return semester, nil
}

// CreateBranch creates a branch
func (s *CatalogService) CreateBranch(ctx context.Context, req *dto.CreateBranchRequest) (*models.Branch, error) {
	branch := &models.Branch{Name: req.Name, Code: req.Code}
	if err := s.catalogRepo.CreateBranch(ctx, branch); err != nil {
		return nil, err
	}
	return branch, nil
}

// CreateDivision creates a division under an existing branch and year
func (s *CatalogService) CreateDivision(ctx context.Context, req *dto.CreateDivisionRequest) (*models.Division, error) {
	if _, err := s.catalogRepo.GetBranchByID(ctx, req.BranchID); err != nil {
		return nil, err
	}
	if _, err := s.catalogRepo.GetAcademicYearByID(ctx, req.AcademicYearID); err != nil {
		return nil, err
	}

	division := &models.Division{
		Name:           req.Name,
		BranchID:       req.BranchID,
		AcademicYearID: req.AcademicYearID,
	}
	if err := s.catalogRepo.CreateDivision(ctx, division); err != nil {
		return nil, err
	}
	return division, nil
}

// CreateCourse creates a course. A teacher assignment is optional but must
// reference an existing teacher when given.
func (s *CatalogService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if req.TeacherID != nil {
		if _, err := s.teacherRepo.GetTeacherByID(ctx, *req.TeacherID); err != nil {
			if errors.Is(err, apperrors.ErrTeacherNotFound) {
				return nil, apperrors.ErrTeacherNotFound
			}
			return nil, err
		}
	}

	course := &models.Course{
		Name:           req.Name,
		Code:           req.Code,
		BranchID:       req.BranchID,
		AcademicYearID: req.AcademicYearID,
		SemesterID:     req.SemesterID,
		TeacherID:      req.TeacherID,
	}
	if err := s.courseRepo.CreateCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// GetCourse retrieves a course by id
func (s *CatalogService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetCourseByID(ctx, id)
}

// ListAcademicYears lists all academic years ordered by label
func (s *CatalogService) ListAcademicYears(ctx context.Context) ([]*models.AcademicYear, error) {
	return s.catalogRepo.GetAllAcademicYears(ctx)
}

// ListSemesters lists semesters, optionally scoped to one academic year
func (s *CatalogService) ListSemesters(ctx context.Context, academicYearID *int64) ([]*models.Semester, error) {
	if academicYearID != nil {
		return s.catalogRepo.GetSemestersByAcademicYear(ctx, *academicYearID)
	}
	return s.catalogRepo.GetAllSemesters(ctx)
}

// GetSemester retrieves a semester by id
func (s *CatalogService) GetSemester(ctx context.Context, id int64) (*models.Semester, error) {
	return s.catalogRepo.GetSemesterByID(ctx, id)
}

// GetDivision retrieves a division by id
func (s *CatalogService) GetDivision(ctx context.Context, id int64) (*models.Division, error) {
	return s.catalogRepo.GetDivisionByID(ctx, id)
}

// ListBranches lists all branches ordered by code
func (s *CatalogService) ListBranches(ctx context.Context) ([]*models.Branch, error) {
	return s.catalogRepo.GetAllBranches(ctx)
}

// ListDivisions lists all divisions ordered by name
func (s *CatalogService) ListDivisions(ctx context.Context) ([]*models.Division, error) {
	return s.catalogRepo.GetAllDivisions(ctx)
}

// GetCatalog bundles all reference data into one response
func (s *CatalogService) GetCatalog(ctx context.Context) (*dto.CatalogListResponse, error) {
	years, err := s.catalogRepo.GetAllAcademicYears(ctx)
	if err != nil {
		return nil, err
	}
	semesters, err := s.catalogRepo.GetAllSemesters(ctx)
	if err != nil {
		return nil, err
	}
	branches, err := s.catalogRepo.GetAllBranches(ctx)
	if err != nil {
		return nil, err
	}
	divisions, err := s.catalogRepo.GetAllDivisions(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.CatalogListResponse{
		AcademicYears: years,
		Semesters:     semesters,
		Branches:      branches,
		Divisions:     divisions,
	}, nil
}
