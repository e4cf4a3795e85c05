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

// TeacherRepository handles teacher database operations
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
	}
}

const teacherColumns = `id, user_id, employee_id, phone, branch_id`

func scanTeacher(row pgx.Row) (*models.Teacher, error) {
	var teacher models.Teacher
	err := row.Scan(&teacher.ID, &teacher.UserID, &teacher.EmployeeID, &teacher.Phone, &teacher.BranchID)
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

// CreateTeacher inserts a teacher row and sets the generated ID on the
// given model. Teacher rows always carry a user link.
func (r *TeacherRepository) CreateTeacher(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (user_id, employee_id, phone, branch_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		teacher.UserID, teacher.EmployeeID, teacher.Phone, teacher.BranchID).Scan(&teacher.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "teachers_employee_id_key") {
			return apperrors.ErrEmployeeIDAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "teachers_user_id_key") {
			return apperrors.ErrUserAlreadyLinked
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewIntegrityViolationError("teacher references a missing user or branch")
		}
		return fmt.Errorf("error creating teacher: %w", err)
	}

	return nil
}

// GetTeacherByID retrieves a teacher by ID
func (r *TeacherRepository) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	teacher, err := scanTeacher(r.db.QueryRow(ctx,
		`SELECT `+teacherColumns+` FROM teachers WHERE id = $1`, id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return teacher, nil
}

// GetTeacherByUserID resolves the teacher profile linked to an
// authentication identity.
func (r *TeacherRepository) GetTeacherByUserID(ctx context.Context, userID int64) (*models.Teacher, error) {
	teacher, err := scanTeacher(r.db.QueryRow(ctx,
		`SELECT `+teacherColumns+` FROM teachers WHERE user_id = $1`, userID))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher by user id: %w", err)
	}

	return teacher, nil
}

// GetAllTeachers retrieves all teachers ordered by employee id
func (r *TeacherRepository) GetAllTeachers(ctx context.Context) ([]*models.Teacher, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+teacherColumns+` FROM teachers ORDER BY employee_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teachers, nil
}
