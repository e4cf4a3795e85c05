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

// AssignmentRepository handles assignment database operations
type AssignmentRepository struct {
	db *pgxpool.Pool
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{
		db: db,
	}
}

const assignmentColumns = `id, title, description, course_id, due_at, max_score`

func scanAssignment(row pgx.Row) (*models.Assignment, error) {
	var assignment models.Assignment
	err := row.Scan(
		&assignment.ID, &assignment.Title, &assignment.Description,
		&assignment.CourseID, &assignment.DueAt, &assignment.MaxScore,
	)
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// CreateAssignment inserts an assignment and sets the generated ID on the model
func (r *AssignmentRepository) CreateAssignment(ctx context.Context, assignment *models.Assignment) error {
	query := `
		INSERT INTO assignments (title, description, course_id, due_at, max_score)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		assignment.Title, assignment.Description, assignment.CourseID,
		assignment.DueAt, assignment.MaxScore).Scan(&assignment.ID)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewIntegrityViolationError("assignment references a missing course")
		}
		return fmt.Errorf("error creating assignment: %w", err)
	}

	return nil
}

// GetAssignmentByID retrieves an assignment by ID
func (r *AssignmentRepository) GetAssignmentByID(ctx context.Context, id int64) (*models.Assignment, error) {
	assignment, err := scanAssignment(r.db.QueryRow(ctx,
		`SELECT `+assignmentColumns+` FROM assignments WHERE id = $1`, id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("error retrieving assignment: %w", err)
	}

	return assignment, nil
}

// GetAssignmentsByCourse retrieves a course's assignments ordered by due date
func (r *AssignmentRepository) GetAssignmentsByCourse(ctx context.Context, courseID int64) ([]*models.Assignment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+assignmentColumns+` FROM assignments WHERE course_id = $1 ORDER BY due_at`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// GetAssignmentsByStudent retrieves the assignments of every course the
// student is enrolled in, with the course attached, ordered by due date.
func (r *AssignmentRepository) GetAssignmentsByStudent(ctx context.Context, studentID string) ([]*models.Assignment, error) {
	query := `
		SELECT a.id, a.title, a.description, a.course_id, a.due_at, a.max_score,
		       c.id, c.name, c.code, c.branch_id, c.academic_year_id, c.semester_id, c.teacher_id
		FROM assignments a
		JOIN courses c ON c.id = a.course_id
		JOIN course_enrollments ce ON ce.course_id = c.id
		WHERE ce.student_id = $1
		ORDER BY a.due_at
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		var assignment models.Assignment
		var course models.Course
		err := rows.Scan(
			&assignment.ID, &assignment.Title, &assignment.Description,
			&assignment.CourseID, &assignment.DueAt, &assignment.MaxScore,
			&course.ID, &course.Name, &course.Code, &course.BranchID,
			&course.AcademicYearID, &course.SemesterID, &course.TeacherID,
		)
		if err != nil {
			return nil, err
		}
		assignment.Course = &course
		assignments = append(assignments, &assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// UpdateAssignment updates the mutable fields of an assignment
func (r *AssignmentRepository) UpdateAssignment(ctx context.Context, assignment *models.Assignment) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE assignments SET title = $1, description = $2, due_at = $3, max_score = $4 WHERE id = $5`,
		assignment.Title, assignment.Description, assignment.DueAt, assignment.MaxScore, assignment.ID)
	if err != nil {
		return fmt.Errorf("error updating assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}
	return nil
}

// DeleteAssignment removes an assignment by ID
func (r *AssignmentRepository) DeleteAssignment(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}
	return nil
}
