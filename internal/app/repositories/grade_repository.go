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

// GradeRepository handles grade database operations
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new GradeRepository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
	}
}

// CreateGrade inserts a grade and sets the generated ID on the model
func (r *GradeRepository) CreateGrade(ctx context.Context, grade *models.Grade) error {
	query := `
		INSERT INTO grades (student_id, course_id, score, grade_letter)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		grade.StudentID, grade.CourseID, grade.Score, grade.GradeLetter).Scan(&grade.ID)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewIntegrityViolationError("grade references a missing student or course")
		}
		return fmt.Errorf("error creating grade: %w", err)
	}

	return nil
}

// GetGradeByID retrieves a grade by ID
func (r *GradeRepository) GetGradeByID(ctx context.Context, id int64) (*models.Grade, error) {
	var grade models.Grade
	err := r.db.QueryRow(ctx,
		`SELECT id, student_id, course_id, score, grade_letter FROM grades WHERE id = $1`, id).
		Scan(&grade.ID, &grade.StudentID, &grade.CourseID, &grade.Score, &grade.GradeLetter)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradeNotFound
		}
		return nil, fmt.Errorf("error retrieving grade: %w", err)
	}

	return &grade, nil
}

// GetGradesByStudent retrieves a student's grades with the graded course
// attached, ordered by course code.
func (r *GradeRepository) GetGradesByStudent(ctx context.Context, studentID string) ([]*models.Grade, error) {
	query := `
		SELECT g.id, g.student_id, g.course_id, g.score, g.grade_letter,
		       c.id, c.name, c.code, c.branch_id, c.academic_year_id, c.semester_id, c.teacher_id
		FROM grades g
		JOIN courses c ON c.id = g.course_id
		WHERE g.student_id = $1
		ORDER BY c.code
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		var grade models.Grade
		var course models.Course
		err := rows.Scan(
			&grade.ID, &grade.StudentID, &grade.CourseID, &grade.Score, &grade.GradeLetter,
			&course.ID, &course.Name, &course.Code, &course.BranchID,
			&course.AcademicYearID, &course.SemesterID, &course.TeacherID,
		)
		if err != nil {
			return nil, err
		}
		grade.Course = &course
		grades = append(grades, &grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

// GetGradesByCourse retrieves all grades recorded in a course with the
// graded student attached, ordered by student last then first name.
func (r *GradeRepository) GetGradesByCourse(ctx context.Context, courseID int64) ([]*models.Grade, error) {
	query := `
		SELECT g.id, g.student_id, g.course_id, g.score, g.grade_letter,
		       s.id, s.user_id, s.first_name, s.last_name, s.email, s.prn,
		       s.division_id, s.academic_year_id, s.branch_id, s.semester_id
		FROM grades g
		JOIN students s ON s.id = g.student_id
		WHERE g.course_id = $1
		ORDER BY s.last_name, s.first_name
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		var grade models.Grade
		var student models.Student
		err := rows.Scan(
			&grade.ID, &grade.StudentID, &grade.CourseID, &grade.Score, &grade.GradeLetter,
			&student.ID, &student.UserID, &student.FirstName, &student.LastName,
			&student.Email, &student.PRN, &student.DivisionID, &student.AcademicYearID,
			&student.BranchID, &student.SemesterID,
		)
		if err != nil {
			return nil, err
		}
		grade.Student = &student
		grades = append(grades, &grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

// UpdateGrade updates the score and letter of an existing grade
func (r *GradeRepository) UpdateGrade(ctx context.Context, grade *models.Grade) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE grades SET score = $1, grade_letter = $2 WHERE id = $3`,
		grade.Score, grade.GradeLetter, grade.ID)
	if err != nil {
		return fmt.Errorf("error updating grade: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}
	return nil
}

// DeleteGrade removes a grade by ID
func (r *GradeRepository) DeleteGrade(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM grades WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting grade: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}
	return nil
}
