package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chippsss/sms-backend/internal/app/models"
	"github.com/Chippsss/sms-backend/internal/app/models/dto"
	"github.com/Chippsss/sms-backend/internal/pkg/apperrors"
)

type fakeCatalogStore struct {
	years     map[int64]*models.AcademicYear
	branches  map[int64]*models.Branch
	semesters []*models.Semester
	divisions []*models.Division
	nextID    int64
}

func (f *fakeCatalogStore) CreateAcademicYear(_ context.Context, year *models.AcademicYear) error {
	for _, y := range f.years {
		if y.YearLabel == year.YearLabel {
			return apperrors.ErrAcademicYearAlreadyExists
		}
	}
	f.nextID++
	year.ID = f.nextID
	f.years[year.ID] = year
	return nil
}

func (f *fakeCatalogStore) GetAcademicYearByID(_ context.Context, id int64) (*models.AcademicYear, error) {
	y, ok := f.years[id]
	if !ok {
		return nil, apperrors.ErrAcademicYearNotFound
	}
	return y, nil
}

func (f *fakeCatalogStore) GetAllAcademicYears(_ context.Context) ([]*models.AcademicYear, error) {
	var out []*models.AcademicYear
	for _, y := range f.years {
		out = append(out, y)
	}
	return out, nil
}

func (f *fakeCatalogStore) CreateSemester(_ context.Context, semester *models.Semester) error {
	f.nextID++
	semester.ID = f.nextID
	f.semesters = append(f.semesters, semester)
	return nil
}

func (f *fakeCatalogStore) GetSemesterByID(_ context.Context, id int64) (*models.Semester, error) {
	for _, s := range f.semesters {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, apperrors.ErrSemesterNotFound
}

func (f *fakeCatalogStore) GetSemestersByAcademicYear(_ context.Context, academicYearID int64) ([]*models.Semester, error) {
	var out []*models.Semester
	for _, s := range f.semesters {
		if s.AcademicYearID == academicYearID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeCatalogStore) GetAllSemesters(_ context.Context) ([]*models.Semester, error) {
	return f.semesters, nil
}

func (f *fakeCatalogStore) CreateBranch(_ context.Context, branch *models.Branch) error {
	f.nextID++
	branch.ID = f.nextID
	f.branches[branch.ID] = branch
	return nil
}

func (f *fakeCatalogStore) GetBranchByID(_ context.Context, id int64) (*models.Branch, error) {
	b, ok := f.branches[id]
	if !ok {
		return nil, apperrors.ErrBranchNotFound
	}
	return b, nil
}

func (f *fakeCatalogStore) GetAllBranches(_ context.Context) ([]*models.Branch, error) {
	var out []*models.Branch
	for _, b := range f.branches {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeCatalogStore) CreateDivision(_ context.Context, division *models.Division) error {
	f.nextID++
	division.ID = f.nextID
	f.divisions = append(f.divisions, division)
	return nil
}

func (f *fakeCatalogStore) GetDivisionByID(_ context.Context, id int64) (*models.Division, error) {
	for _, d := range f.divisions {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, apperrors.ErrDivisionNotFound
}

func (f *fakeCatalogStore) GetAllDivisions(_ context.Context) ([]*models.Division, error) {
	return f.divisions, nil
}

type fakeCourseCreator struct {
	courses map[int64]*models.Course
	nextID  int64
}

func (f *fakeCourseCreator) CreateCourse(_ context.Context, course *models.Course) error {
	f.nextID++
	course.ID = f.nextID
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseCreator) GetCourseByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return c, nil
}

type fakeTeacherLookup struct {
	teachers map[int64]*models.Teacher
}

func (f *fakeTeacherLookup) GetTeacherByID(_ context.Context, id int64) (*models.Teacher, error) {
	t, ok := f.teachers[id]
	if !ok {
		return nil, apperrors.ErrTeacherNotFound
	}
	return t, nil
}

func newCatalogServiceFixture() (*CatalogService, *fakeCatalogStore, *fakeCourseCreator) {
	catalog := &fakeCatalogStore{
		years:    map[int64]*models.AcademicYear{1: {ID: 1, YearLabel: "2024-25"}},
		branches: map[int64]*models.Branch{2: {ID: 2, Name: "Computer Science", Code: "CS"}},
		nextID:   10,
	}
	courses := &fakeCourseCreator{courses: map[int64]*models.Course{}}
	teachers := &fakeTeacherLookup{teachers: map[int64]*models.Teacher{7: {ID: 7, EmployeeID: "EMP-007"}}}
	svc := NewCatalogService(catalog, courses, teachers, zerolog.Nop())
	return svc, catalog, courses
}

func TestCatalogService_CreateSemester(t *testing.T) {
	svc, _, _ := newCatalogServiceFixture()

	semester, err := svc.CreateSemester(context.Background(), &dto.CreateSemesterRequest{
		Ordinal:        models.SemesterThird,
		AcademicYearID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, models.SemesterThird, semester.Ordinal)
}

func TestCatalogService_CreateSemester_BadOrdinal(t *testing.T) {
	svc, catalog, _ := newCatalogServiceFixture()

	_, err := svc.CreateSemester(context.Background(), &dto.CreateSemesterRequest{
		Ordinal:        "9th",
		AcademicYearID: 1,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Empty(t, catalog.semesters)
}

func TestCatalogService_CreateSemester_MissingYear(t *testing.T) {
	svc, _, _ := newCatalogServiceFixture()

	_, err := svc.CreateSemester(context.Background(), &dto.CreateSemesterRequest{
		Ordinal:        models.SemesterFirst,
		AcademicYearID: 99,
	})
	assert.ErrorIs(t, err, apperrors.ErrAcademicYearNotFound)
}

func TestCatalogService_CreateDivision_MissingBranch(t *testing.T) {
	svc, _, _ := newCatalogServiceFixture()

	_, err := svc.CreateDivision(context.Background(), &dto.CreateDivisionRequest{
		Name:           "A",
		BranchID:       99,
		AcademicYearID: 1,
	})
	assert.ErrorIs(t, err, apperrors.ErrBranchNotFound)
}

func TestCatalogService_CreateCourse_MissingTeacher(t *testing.T) {
	svc, _, courses := newCatalogServiceFixture()

	_, err := svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Name:           "Operating Systems",
		Code:           "CS301",
		BranchID:       2,
		AcademicYearID: 1,
		SemesterID:     3,
		TeacherID:      int64Ptr(99),
	})
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)
	assert.Empty(t, courses.courses)
}

func TestCatalogService_CreateCourse(t *testing.T) {
	svc, _, _ := newCatalogServiceFixture()

	course, err := svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Name:           "Operating Systems",
		Code:           "CS301",
		BranchID:       2,
		AcademicYearID: 1,
		SemesterID:     3,
		TeacherID:      int64Ptr(7),
	})
	require.NoError(t, err)
	assert.Equal(t, "CS301", course.Code)
	require.NotNil(t, course.TeacherID)
	assert.Equal(t, int64(7), *course.TeacherID)
}

func TestCatalogService_GetCatalog(t *testing.T) {
	svc, catalog, _ := newCatalogServiceFixture()
	catalog.divisions = []*models.Division{{ID: 5, Name: "A", BranchID: 2, AcademicYearID: 1}}

	resp, err := svc.GetCatalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.AcademicYears, 1)
	assert.Len(t, resp.Branches, 1)
	assert.Len(t, resp.Divisions, 1)
}
