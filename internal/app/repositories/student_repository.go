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

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `id, user_id, first_name, last_name, email, prn, division_id, academic_year_id, branch_id, semester_id`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID, &student.UserID, &student.FirstName, &student.LastName,
		&student.Email, &student.PRN, &student.DivisionID, &student.AcademicYearID,
		&student.BranchID, &student.SemesterID,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func scanStudents(rows pgx.Rows) ([]*models.Student, error) {
	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// CreateStudent inserts a student row. The id is caller-supplied; the user
// link is optional.
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (id, user_id, first_name, last_name, email, prn, division_id, academic_year_id, branch_id, semester_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		student.ID, student.UserID, student.FirstName, student.LastName,
		student.Email, student.PRN, student.DivisionID, student.AcademicYearID,
		student.BranchID, student.SemesterID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_pkey") {
			return apperrors.ErrStudentAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_user_id_key") {
			return apperrors.ErrUserAlreadyLinked
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewIntegrityViolationError("student references a missing catalog row or user")
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetStudentByID retrieves a student by their externally assigned id
func (r *StudentRepository) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	student, err := scanStudent(r.db.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetStudentByUserID resolves the student profile linked to an
// authentication identity. This is the only sanctioned way to find the
// "current student"; there is deliberately no first-row fallback.
func (r *StudentRepository) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	student, err := scanStudent(r.db.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE user_id = $1`, userID))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by user id: %w", err)
	}

	return student, nil
}

// LinkUserAccount claims a pre-provisioned student record for a login
// account. Fails if the student is already claimed or the account is
// already linked to another student.
func (r *StudentRepository) LinkUserAccount(ctx context.Context, studentID string, userID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE students SET user_id = $1 WHERE id = $2 AND user_id IS NULL`, userID, studentID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_user_id_key") {
			return apperrors.ErrUserAlreadyLinked
		}
		return fmt.Errorf("error linking user account: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		// the guard filters out claimed rows too, so tell them apart
		var exists bool
		if err := r.db.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, studentID).Scan(&exists); err != nil {
			return fmt.Errorf("error linking user account: %w", err)
		}
		if exists {
			return apperrors.ErrUserAlreadyLinked
		}
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// GetStudentsByDivision retrieves all students of one division ordered by
// last then first name.
func (r *StudentRepository) GetStudentsByDivision(ctx context.Context, divisionID int64) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+studentColumns+` FROM students WHERE division_id = $1 ORDER BY last_name, first_name`,
		divisionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

// GetAllStudents retrieves one page of students ordered by last then first
// name, together with the total student count.
func (r *StudentRepository) GetAllStudents(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+studentColumns+` FROM students ORDER BY last_name, first_name LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	students, err := scanStudents(rows)
	if err != nil {
		return nil, 0, err
	}
	return students, total, nil
}
