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

type fakeStudentDirectory struct {
	students map[string]*models.Student
	order    []string
}

func (f *fakeStudentDirectory) CreateStudent(_ context.Context, s *models.Student) error {
	if _, ok := f.students[s.ID]; ok {
		return apperrors.ErrStudentAlreadyExists
	}
	f.students[s.ID] = s
	f.order = append(f.order, s.ID)
	return nil
}

func (f *fakeStudentDirectory) GetStudentByID(_ context.Context, id string) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func (f *fakeStudentDirectory) GetAllStudents(_ context.Context, offset uint64, limit int) ([]*models.Student, int64, error) {
	var all []*models.Student
	for _, id := range f.order {
		all = append(all, f.students[id])
	}
	total := int64(len(all))
	if offset >= uint64(len(all)) {
		return nil, total, nil
	}
	end := int(offset) + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (f *fakeStudentDirectory) GetStudentsByDivision(_ context.Context, divisionID int64) ([]*models.Student, error) {
	var out []*models.Student
	for _, id := range f.order {
		s := f.students[id]
		if s.DivisionID != nil && *s.DivisionID == divisionID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStudentDirectory) LinkUserAccount(_ context.Context, studentID string, userID int64) error {
	s, ok := f.students[studentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	if s.UserID != nil {
		return apperrors.ErrUserAlreadyLinked
	}
	s.UserID = &userID
	return nil
}

type fakeTeacherDirectory struct {
	teachers map[int64]*models.Teacher
	nextID   int64
}

func (f *fakeTeacherDirectory) CreateTeacher(_ context.Context, t *models.Teacher) error {
	f.nextID++
	t.ID = f.nextID
	f.teachers[t.ID] = t
	return nil
}

func (f *fakeTeacherDirectory) GetTeacherByID(_ context.Context, id int64) (*models.Teacher, error) {
	t, ok := f.teachers[id]
	if !ok {
		return nil, apperrors.ErrTeacherNotFound
	}
	return t, nil
}

func (f *fakeTeacherDirectory) GetAllTeachers(_ context.Context) ([]*models.Teacher, error) {
	var out []*models.Teacher
	for _, t := range f.teachers {
		out = append(out, t)
	}
	return out, nil
}

type fakeAccountStore struct {
	users  map[int64]*models.User
	nextID int64
}

func (f *fakeAccountStore) CreateUser(_ context.Context, u *models.User) (int64, error) {
	f.nextID++
	u.ID = f.nextID
	f.users[u.ID] = u
	return u.ID, nil
}

func (f *fakeAccountStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeAccountStore) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeEnrollments struct {
	courses  map[int64]*models.Course
	enrolled map[string][]int64
}

func (f *fakeEnrollments) GetCourseByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return c, nil
}

func (f *fakeEnrollments) EnrollStudent(_ context.Context, studentID string, courseID int64) error {
	for _, id := range f.enrolled[studentID] {
		if id == courseID {
			return apperrors.ErrAlreadyEnrolled
		}
	}
	f.enrolled[studentID] = append(f.enrolled[studentID], courseID)
	return nil
}

func (f *fakeEnrollments) UnenrollStudent(_ context.Context, studentID string, courseID int64) error {
	for i, id := range f.enrolled[studentID] {
		if id == courseID {
			f.enrolled[studentID] = append(f.enrolled[studentID][:i], f.enrolled[studentID][i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotEnrolled
}

func newPersonServiceFixture() (*PersonService, *fakeStudentDirectory, *fakeAccountStore, *fakeEnrollments) {
	students := &fakeStudentDirectory{students: map[string]*models.Student{}}
	teachers := &fakeTeacherDirectory{teachers: map[int64]*models.Teacher{}}
	accounts := &fakeAccountStore{users: map[int64]*models.User{}}
	enrollments := &fakeEnrollments{
		courses:  map[int64]*models.Course{100: {ID: 100, Name: "Operating Systems", Code: "CS301"}},
		enrolled: map[string][]int64{},
	}

	svc := NewPersonService(students, teachers, accounts, enrollments, zerolog.Nop())
	return svc, students, accounts, enrollments
}

func TestPersonService_CreateStudent_Unlinked(t *testing.T) {
	svc, students, _, _ := newPersonServiceFixture()

	created, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		ID:        "S1",
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha@school.edu",
		PRN:       72001,
	})
	require.NoError(t, err)
	assert.Nil(t, created.UserID)
	assert.Contains(t, students.students, "S1")
}

func TestPersonService_CreateStudent_UnknownUser(t *testing.T) {
	svc, _, _, _ := newPersonServiceFixture()

	_, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		ID:        "S1",
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha@school.edu",
		PRN:       72001,
		UserID:    int64Ptr(99),
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestPersonService_CreateTeacher(t *testing.T) {
	svc, _, accounts, _ := newPersonServiceFixture()

	teacher, err := svc.CreateTeacher(context.Background(), &dto.CreateTeacherRequest{
		Email:      "newton@school.edu",
		Password:   "correct-horse-battery",
		FirstName:  "Isaac",
		LastName:   "Newton",
		EmployeeID: "EMP-010",
	})
	require.NoError(t, err)
	require.NotNil(t, teacher.User)
	assert.Equal(t, models.RoleTeacher, teacher.User.RoleType)
	assert.True(t, teacher.User.IsActive)
	// stored password must be a hash, never the plaintext
	assert.NotEqual(t, "correct-horse-battery", accounts.users[teacher.UserID].Password)
}

func TestPersonService_CreateTeacher_DuplicateEmail(t *testing.T) {
	svc, _, accounts, _ := newPersonServiceFixture()
	accounts.users[1] = &models.User{ID: 1, Email: "newton@school.edu"}
	accounts.nextID = 1

	_, err := svc.CreateTeacher(context.Background(), &dto.CreateTeacherRequest{
		Email:      "newton@school.edu",
		Password:   "correct-horse-battery",
		FirstName:  "Isaac",
		LastName:   "Newton",
		EmployeeID: "EMP-010",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	assert.Len(t, accounts.users, 1)
}

func TestPersonService_ListStudents_Pagination(t *testing.T) {
	svc, students, _, _ := newPersonServiceFixture()
	for _, id := range []string{"S1", "S2", "S3"} {
		students.students[id] = &models.Student{ID: id}
		students.order = append(students.order, id)
	}

	page, pagination, err := svc.ListStudents(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, int64(3), pagination.TotalItems)
	assert.Equal(t, 2, pagination.TotalPages)

	page, _, err = svc.ListStudents(context.Background(), 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "S3", page[0].ID)
}

func TestPersonService_LinkStudentAccount(t *testing.T) {
	svc, students, accounts, _ := newPersonServiceFixture()
	students.students["S1"] = &models.Student{ID: "S1"}
	students.order = append(students.order, "S1")
	accounts.users[1] = &models.User{ID: 1, Email: "asha@school.edu"}

	require.NoError(t, svc.LinkStudentAccount(context.Background(), "S1", 1))
	require.NotNil(t, students.students["S1"].UserID)
	assert.Equal(t, int64(1), *students.students["S1"].UserID)

	// an already-claimed student is a conflict, not a missing row
	err := svc.LinkStudentAccount(context.Background(), "S1", 1)
	assert.ErrorIs(t, err, apperrors.ErrUserAlreadyLinked)

	err = svc.LinkStudentAccount(context.Background(), "S9", 1)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestPersonService_EnrollStudent(t *testing.T) {
	svc, students, _, enrollments := newPersonServiceFixture()
	students.students["S1"] = &models.Student{ID: "S1"}
	students.order = append(students.order, "S1")

	require.NoError(t, svc.EnrollStudent(context.Background(), "S1", 100))
	assert.Equal(t, []int64{100}, enrollments.enrolled["S1"])

	err := svc.EnrollStudent(context.Background(), "S1", 100)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)

	err = svc.EnrollStudent(context.Background(), "S9", 100)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	err = svc.EnrollStudent(context.Background(), "S1", 999)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	require.NoError(t, svc.UnenrollStudent(context.Background(), "S1", 100))
	err = svc.UnenrollStudent(context.Background(), "S1", 100)
	assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
}
