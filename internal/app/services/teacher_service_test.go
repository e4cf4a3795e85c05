package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chippsss/sms-backend/internal/app/models"
	"github.com/Chippsss/sms-backend/internal/app/models/dto"
	"github.com/Chippsss/sms-backend/internal/pkg/apperrors"
)

// --- in-memory fakes ---

type fakeResolver struct {
	teachers map[int64]*models.Teacher
	students map[int64]*models.Student
}

func (f *fakeResolver) ResolveTeacher(_ context.Context, userID int64) (*models.Teacher, error) {
	if t, ok := f.teachers[userID]; ok {
		return t, nil
	}
	return nil, apperrors.ErrNoProfile
}

func (f *fakeResolver) ResolveStudent(_ context.Context, userID int64) (*models.Student, error) {
	if s, ok := f.students[userID]; ok {
		return s, nil
	}
	return nil, apperrors.ErrNoProfile
}

type fakeCourseStore struct {
	courses     map[int64]*models.Course
	enrollments map[string][]int64
	divisions   map[int64][]*models.Division
}

func (f *fakeCourseStore) GetCourseByIDForTeacher(_ context.Context, courseID, teacherID int64) (*models.Course, error) {
	c, ok := f.courses[courseID]
	if !ok || c.TeacherID == nil || *c.TeacherID != teacherID {
		return nil, apperrors.ErrCourseNotFound
	}
	return c, nil
}

func (f *fakeCourseStore) GetCoursesByTeacher(_ context.Context, teacherID int64) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range f.courses {
		if c.TeacherID != nil && *c.TeacherID == teacherID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseStore) GetEnrolledStudents(_ context.Context, _ int64) ([]*models.Student, error) {
	return nil, nil
}

func (f *fakeCourseStore) GetDivisionsForCourse(_ context.Context, courseID int64) ([]*models.Division, error) {
	return f.divisions[courseID], nil
}

func (f *fakeCourseStore) IsEnrolled(_ context.Context, studentID string, courseID int64) (bool, error) {
	for _, id := range f.enrollments[studentID] {
		if id == courseID {
			return true, nil
		}
	}
	return false, nil
}

type fakeGradeStore struct {
	grades map[int64]*models.Grade
	nextID int64
}

func (f *fakeGradeStore) CreateGrade(_ context.Context, grade *models.Grade) error {
	f.nextID++
	grade.ID = f.nextID
	f.grades[grade.ID] = grade
	return nil
}

func (f *fakeGradeStore) GetGradeByID(_ context.Context, id int64) (*models.Grade, error) {
	g, ok := f.grades[id]
	if !ok {
		return nil, apperrors.ErrGradeNotFound
	}
	return g, nil
}

func (f *fakeGradeStore) GetGradesByCourse(_ context.Context, courseID int64) ([]*models.Grade, error) {
	var out []*models.Grade
	for _, g := range f.grades {
		if g.CourseID == courseID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGradeStore) UpdateGrade(_ context.Context, grade *models.Grade) error {
	if _, ok := f.grades[grade.ID]; !ok {
		return apperrors.ErrGradeNotFound
	}
	f.grades[grade.ID] = grade
	return nil
}

func (f *fakeGradeStore) DeleteGrade(_ context.Context, id int64) error {
	if _, ok := f.grades[id]; !ok {
		return apperrors.ErrGradeNotFound
	}
	delete(f.grades, id)
	return nil
}

type fakeAttendanceStore struct {
	roster      []models.RosterEntry
	records     map[int64]*models.AttendanceRecord
	lastCourse  int64
	lastDate    time.Time
	lastMarks   map[string]bool
	batchCalled bool
}

func (f *fakeAttendanceStore) GetRoster(_ context.Context, courseID, divisionID int64, date time.Time) ([]models.RosterEntry, error) {
	f.lastCourse = courseID
	f.lastDate = date
	return f.roster, nil
}

func (f *fakeAttendanceStore) RecordBatch(_ context.Context, courseID int64, date time.Time, marks map[string]bool) error {
	f.batchCalled = true
	f.lastCourse = courseID
	f.lastDate = date
	f.lastMarks = marks
	return nil
}

func (f *fakeAttendanceStore) GetRecordByID(_ context.Context, id int64) (*models.AttendanceRecord, error) {
	r, ok := f.records[id]
	if !ok {
		return nil, apperrors.ErrAttendanceNotFound
	}
	return r, nil
}

func (f *fakeAttendanceStore) DeleteRecord(_ context.Context, id int64) error {
	if _, ok := f.records[id]; !ok {
		return apperrors.ErrAttendanceNotFound
	}
	delete(f.records, id)
	return nil
}

type fakeAssignmentStore struct {
	assignments map[int64]*models.Assignment
	nextID      int64
}

func (f *fakeAssignmentStore) CreateAssignment(_ context.Context, a *models.Assignment) error {
	f.nextID++
	a.ID = f.nextID
	f.assignments[a.ID] = a
	return nil
}

func (f *fakeAssignmentStore) GetAssignmentByID(_ context.Context, id int64) (*models.Assignment, error) {
	a, ok := f.assignments[id]
	if !ok {
		return nil, apperrors.ErrAssignmentNotFound
	}
	return a, nil
}

func (f *fakeAssignmentStore) GetAssignmentsByCourse(_ context.Context, courseID int64) ([]*models.Assignment, error) {
	var out []*models.Assignment
	for _, a := range f.assignments {
		if a.CourseID == courseID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentStore) UpdateAssignment(_ context.Context, a *models.Assignment) error {
	if _, ok := f.assignments[a.ID]; !ok {
		return apperrors.ErrAssignmentNotFound
	}
	f.assignments[a.ID] = a
	return nil
}

func (f *fakeAssignmentStore) DeleteAssignment(_ context.Context, id int64) error {
	if _, ok := f.assignments[id]; !ok {
		return apperrors.ErrAssignmentNotFound
	}
	delete(f.assignments, id)
	return nil
}

// --- fixtures ---

func int64Ptr(v int64) *int64 { return &v }

func newTeacherServiceFixture() (*TeacherService, *fakeCourseStore, *fakeGradeStore, *fakeAttendanceStore, *fakeAssignmentStore) {
	resolver := &fakeResolver{
		teachers: map[int64]*models.Teacher{
			10: {ID: 1, UserID: 10, EmployeeID: "EMP-001"},
			20: {ID: 2, UserID: 20, EmployeeID: "EMP-002"},
		},
	}
	courses := &fakeCourseStore{
		courses: map[int64]*models.Course{
			100: {ID: 100, Name: "Operating Systems", Code: "CS301", TeacherID: int64Ptr(1)},
			200: {ID: 200, Name: "Databases", Code: "CS302", TeacherID: int64Ptr(2)},
		},
		enrollments: map[string][]int64{
			"S1": {100},
			"S2": {100},
		},
	}
	grades := &fakeGradeStore{grades: map[int64]*models.Grade{}}
	attendance := &fakeAttendanceStore{records: map[int64]*models.AttendanceRecord{}}
	assignments := &fakeAssignmentStore{assignments: map[int64]*models.Assignment{}}

	svc := NewTeacherService(resolver, courses, grades, attendance, assignments, zerolog.Nop())
	return svc, courses, grades, attendance, assignments
}

// --- tests ---

func TestTeacherService_GetCourseDetail_NotAssigned(t *testing.T) {
	svc, _, _, _, _ := newTeacherServiceFixture()

	// Course 200 exists but belongs to teacher 2; teacher 1 must not be
	// able to tell it apart from a missing course.
	_, err := svc.GetCourseDetail(context.Background(), 10, 200)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	_, err = svc.GetCourseDetail(context.Background(), 10, 999)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestTeacherService_GetCourseDetail_Assigned(t *testing.T) {
	svc, _, _, _, _ := newTeacherServiceFixture()

	resp, err := svc.GetCourseDetail(context.Background(), 10, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.Course.ID)
}

func TestTeacherService_NoProfile(t *testing.T) {
	svc, _, _, _, _ := newTeacherServiceFixture()

	_, err := svc.GetDashboard(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrNoProfile)
}

func TestTeacherService_CreateGrade(t *testing.T) {
	svc, _, grades, _, _ := newTeacherServiceFixture()

	grade, err := svc.CreateGrade(context.Background(), 10, 100, &dto.CreateGradeRequest{
		StudentID: "S1",
		Score:     85.5,
	})
	require.NoError(t, err)
	assert.Equal(t, "S1", grade.StudentID)
	assert.Equal(t, int64(100), grade.CourseID)
	assert.Len(t, grades.grades, 1)
}

func TestTeacherService_CreateGrade_NotEnrolled(t *testing.T) {
	svc, _, grades, _, _ := newTeacherServiceFixture()

	_, err := svc.CreateGrade(context.Background(), 10, 100, &dto.CreateGradeRequest{
		StudentID: "S9",
		Score:     70,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
	assert.Empty(t, grades.grades)
}

func TestTeacherService_UpdateGrade_OtherTeachersCourse(t *testing.T) {
	svc, _, grades, _, _ := newTeacherServiceFixture()
	grades.grades[1] = &models.Grade{ID: 1, StudentID: "S1", CourseID: 200, Score: 50}

	_, err := svc.UpdateGrade(context.Background(), 10, 1, &dto.UpdateGradeRequest{Score: 60})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	assert.Equal(t, float64(50), grades.grades[1].Score)
}

func TestTeacherService_GetAttendanceSheet(t *testing.T) {
	svc, _, _, attendance, _ := newTeacherServiceFixture()
	attendance.roster = []models.RosterEntry{
		{Student: models.Student{ID: "S1"}, State: models.AttendancePresent},
		{Student: models.Student{ID: "S2"}, State: models.AttendanceNoRecord},
	}

	resp, err := svc.GetAttendanceSheet(context.Background(), 10, 100, 5, "2024-09-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-09-01", resp.Date)
	assert.Equal(t, int64(100), resp.CourseID)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, models.AttendancePresent, resp.Entries[0].State)
	assert.Equal(t, models.AttendanceNoRecord, resp.Entries[1].State)
}

func TestTeacherService_GetAttendanceSheet_BadDate(t *testing.T) {
	svc, _, _, _, _ := newTeacherServiceFixture()

	_, err := svc.GetAttendanceSheet(context.Background(), 10, 100, 5, "01-09-2024")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestTeacherService_RecordAttendance(t *testing.T) {
	svc, _, _, attendance, _ := newTeacherServiceFixture()

	err := svc.RecordAttendance(context.Background(), 10, 100, &dto.RecordAttendanceRequest{
		Date: "2024-09-01",
		Marks: []dto.AttendanceMark{
			{StudentID: "S1", IsPresent: true},
			{StudentID: "S2", IsPresent: false},
		},
	})
	require.NoError(t, err)
	assert.True(t, attendance.batchCalled)
	assert.Equal(t, map[string]bool{"S1": true, "S2": false}, attendance.lastMarks)
	assert.Equal(t, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), attendance.lastDate)
}

func TestTeacherService_RecordAttendance_NotEnrolled(t *testing.T) {
	svc, _, _, attendance, _ := newTeacherServiceFixture()

	err := svc.RecordAttendance(context.Background(), 10, 100, &dto.RecordAttendanceRequest{
		Date: "2024-09-01",
		Marks: []dto.AttendanceMark{
			{StudentID: "S1", IsPresent: true},
			{StudentID: "S9", IsPresent: true},
		},
	})
	assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
	assert.False(t, attendance.batchCalled)
}

func TestTeacherService_RecordAttendance_BadDate(t *testing.T) {
	svc, _, _, attendance, _ := newTeacherServiceFixture()

	err := svc.RecordAttendance(context.Background(), 10, 100, &dto.RecordAttendanceRequest{
		Date:  "not-a-date",
		Marks: []dto.AttendanceMark{{StudentID: "S1", IsPresent: true}},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.False(t, attendance.batchCalled)
}

func TestTeacherService_DeleteAttendanceRecord(t *testing.T) {
	svc, _, _, attendance, _ := newTeacherServiceFixture()
	attendance.records[5] = &models.AttendanceRecord{
		ID: 5, StudentID: "S1", CourseID: 100,
		Date: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), IsPresent: true,
	}

	// Another teacher cannot touch the record; the failure mode matches a
	// missing course.
	err := svc.DeleteAttendanceRecord(context.Background(), 20, 5)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	assert.Contains(t, attendance.records, int64(5))

	require.NoError(t, svc.DeleteAttendanceRecord(context.Background(), 10, 5))
	assert.NotContains(t, attendance.records, int64(5))

	err = svc.DeleteAttendanceRecord(context.Background(), 10, 5)
	assert.ErrorIs(t, err, apperrors.ErrAttendanceNotFound)
}

func TestTeacherService_Assignments(t *testing.T) {
	svc, _, _, _, assignments := newTeacherServiceFixture()

	created, err := svc.CreateAssignment(context.Background(), 10, 100, &dto.CreateAssignmentRequest{
		Title:    "Scheduler lab",
		DueAt:    time.Date(2024, 10, 1, 23, 59, 0, 0, time.UTC),
		MaxScore: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), created.CourseID)

	// Updating through another teacher's scope fails
	_, err = svc.UpdateAssignment(context.Background(), 20, created.ID, &dto.UpdateAssignmentRequest{
		Title:    "Renamed",
		DueAt:    created.DueAt,
		MaxScore: 50,
	})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	err = svc.DeleteAssignment(context.Background(), 10, created.ID)
	require.NoError(t, err)
	assert.Empty(t, assignments.assignments)
}
