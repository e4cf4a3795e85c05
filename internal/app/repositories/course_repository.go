package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Chippsss/sms-backend/internal/app/models"
	"github.com/Chippsss/sms-backend/internal/pkg/apperrors"
	"github.com/Chippsss/sms-backend/internal/pkg/dberrors"
)

// CourseRepository handles course and enrollment database operations
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

const courseColumns = `id, name, code, branch_id, academic_year_id, semester_id, teacher_id`

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID, &course.Name, &course.Code, &course.BranchID,
		&course.AcademicYearID, &course.SemesterID, &course.TeacherID,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func scanCourses(rows pgx.Rows) ([]*models.Course, error) {
	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// CreateCourse inserts a course and sets the generated ID on the model
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, code, branch_id, academic_year_id, semester_id, teacher_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		course.Name, course.Code, course.BranchID, course.AcademicYearID,
		course.SemesterID, course.TeacherID).Scan(&course.ID)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("course code already exists for this offering")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewIntegrityViolationError("course references a missing catalog row or teacher")
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetCourseByID retrieves a course by ID
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := scanCourse(r.db.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id = $1`, id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetCourseByIDForTeacher retrieves a course only when it is assigned to
// the given teacher. An existing course assigned to somebody else comes
// back as not found, so teachers cannot probe for other teachers' courses.
func (r *CourseRepository) GetCourseByIDForTeacher(ctx context.Context, courseID, teacherID int64) (*models.Course, error) {
	course, err := scanCourse(r.db.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id = $1 AND teacher_id = $2`, courseID, teacherID))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course for teacher: %w", err)
	}

	return course, nil
}

// GetCoursesByTeacher retrieves a teacher's assigned courses ordered by name
func (r *CourseRepository) GetCoursesByTeacher(ctx context.Context, teacherID int64) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE teacher_id = $1 ORDER BY name ASC`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

// GetCoursesByStudent retrieves the courses a student is enrolled in,
// ordered by name.
func (r *CourseRepository) GetCoursesByStudent(ctx context.Context, studentID string) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.name, c.code, c.branch_id, c.academic_year_id, c.semester_id, c.teacher_id
		FROM courses c
		JOIN course_enrollments ce ON ce.course_id = c.id
		WHERE ce.student_id = $1
		ORDER BY c.name ASC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

// EnrollStudent adds a student to a course roster
func (r *CourseRepository) EnrollStudent(ctx context.Context, studentID string, courseID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO course_enrollments (student_id, course_id) VALUES ($1, $2)`,
		studentID, courseID)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyEnrolled
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewIntegrityViolationError("enrollment references a missing student or course")
		}
		return fmt.Errorf("error enrolling student: %w", err)
	}

	return nil
}

// UnenrollStudent removes a student from a course roster
func (r *CourseRepository) UnenrollStudent(ctx context.Context, studentID string, courseID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM course_enrollments WHERE student_id = $1 AND course_id = $2`,
		studentID, courseID)
	if err != nil {
		return fmt.Errorf("error unenrolling student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotEnrolled
	}
	return nil
}

// IsEnrolled reports whether a student is on a course roster
func (r *CourseRepository) IsEnrolled(ctx context.Context, studentID string, courseID int64) (bool, error) {
	var enrolled bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM course_enrollments WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID).Scan(&enrolled)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}
	return enrolled, nil
}

// GetEnrolledStudents retrieves a course's full roster ordered by student
// last then first name.
func (r *CourseRepository) GetEnrolledStudents(ctx context.Context, courseID int64) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.user_id, s.first_name, s.last_name, s.email, s.prn,
		       s.division_id, s.academic_year_id, s.branch_id, s.semester_id
		FROM students s
		JOIN course_enrollments ce ON ce.student_id = s.id
		WHERE ce.course_id = $1
		ORDER BY s.last_name, s.first_name
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

// GetDivisionsForCourse retrieves the distinct divisions that have at least
// one enrolled student in the course, ordered by division name. Divisions
// with no enrollees do not appear.
func (r *CourseRepository) GetDivisionsForCourse(ctx context.Context, courseID int64) ([]*models.Division, error) {
	query := `
		SELECT DISTINCT d.id, d.name, d.branch_id, d.academic_year_id
		FROM divisions d
		JOIN students s ON s.division_id = d.id
		JOIN course_enrollments ce ON ce.student_id = s.id
		WHERE ce.course_id = $1
		ORDER BY d.name
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var divisions []*models.Division
	for rows.Next() {
		var division models.Division
		if err := rows.Scan(&division.ID, &division.Name, &division.BranchID, &division.AcademicYearID); err != nil {
			return nil, err
		}
		divisions = append(divisions, &division)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return divisions, nil
}
