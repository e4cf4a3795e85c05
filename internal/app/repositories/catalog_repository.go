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

// CatalogRepository handles database operations for the academic reference
// data hierarchy: academic years, semesters, branches and divisions.
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{
		db: db,
	}
}

// CreateAcademicYear creates a new academic year
func (r *CatalogRepository) CreateAcademicYear(ctx context.Context, year *models.AcademicYear) error {
	query := `
		INSERT INTO academic_years (year_label)
		VALUES ($1)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, year.YearLabel).Scan(&year.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAcademicYearAlreadyExists
		}
		return fmt.Errorf("error creating academic year: %w", err)
	}

	return nil
}

// GetAcademicYearByID retrieves an academic year by ID
func (r *CatalogRepository) GetAcademicYearByID(ctx context.Context, id int64) (*models.AcademicYear, error) {
	var year models.AcademicYear
	err := r.db.QueryRow(ctx,
		`SELECT id, year_label FROM academic_years WHERE id = $1`, id).
		Scan(&year.ID, &year.YearLabel)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAcademicYearNotFound
		}
		return nil, fmt.Errorf("error retrieving academic year: %w", err)
	}

	return &year, nil
}

// GetAllAcademicYears retrieves all academic years ordered by label
func (r *CatalogRepository) GetAllAcademicYears(ctx context.Context) ([]*models.AcademicYear, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, year_label FROM academic_years ORDER BY year_label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []*models.AcademicYear
	for rows.Next() {
		var year models.AcademicYear
		if err := rows.Scan(&year.ID, &year.YearLabel); err != nil {
			return nil, err
		}
		years = append(years, &year)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return years, nil
}

// CreateSemester creates a new semester. Insertion without a valid parent
// academic year fails with ErrIntegrityViolation.
func (r *CatalogRepository) CreateSemester(ctx context.Context, semester *models.Semester) error {
	query := `
		INSERT INTO semesters (ordinal, academic_year_id)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, semester.Ordinal, semester.AcademicYearID).Scan(&semester.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewIntegrityViolationError("semester references a missing academic year")
		}
		return fmt.Errorf("error creating semester: %w", err)
	}

	return nil
}

// GetSemesterByID retrieves a semester by ID
func (r *CatalogRepository) GetSemesterByID(ctx context.Context, id int64) (*models.Semester, error) {
	var semester models.Semester
	err := r.db.QueryRow(ctx,
		`SELECT id, ordinal, academic_year_id FROM semesters WHERE id = $1`, id).
		Scan(&semester.ID, &semester.Ordinal, &semester.AcademicYearID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSemesterNotFound
		}
		return nil, fmt.Errorf("error retrieving semester: %w", err)
	}

	return &semester, nil
}

// GetSemestersByAcademicYear retrieves all semesters of one academic year
func (r *CatalogRepository) GetSemestersByAcademicYear(ctx context.Context, academicYearID int64) ([]*models.Semester, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, ordinal, academic_year_id
		FROM semesters
		WHERE academic_year_id = $1
		ORDER BY ordinal`,
		academicYearID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSemesters(rows)
}

// GetAllSemesters retrieves all semesters
func (r *CatalogRepository) GetAllSemesters(ctx context.Context) ([]*models.Semester, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, ordinal, academic_year_id FROM semesters ORDER BY academic_year_id, ordinal`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSemesters(rows)
}

func scanSemesters(rows pgx.Rows) ([]*models.Semester, error) {
	var semesters []*models.Semester
	for rows.Next() {
		var semester models.Semester
		if err := rows.Scan(&semester.ID, &semester.Ordinal, &semester.AcademicYearID); err != nil {
			return nil, err
		}
		semesters = append(semesters, &semester)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return semesters, nil
}

// CreateBranch creates a new branch
func (r *CatalogRepository) CreateBranch(ctx context.Context, branch *models.Branch) error {
	query := `
		INSERT INTO branches (name, code)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, branch.Name, branch.Code).Scan(&branch.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrBranchAlreadyExists
		}
		return fmt.Errorf("error creating branch: %w", err)
	}

	return nil
}

// GetBranchByID retrieves a branch by ID
func (r *CatalogRepository) GetBranchByID(ctx context.Context, id int64) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.QueryRow(ctx,
		`SELECT id, name, code FROM branches WHERE id = $1`, id).
		Scan(&branch.ID, &branch.Name, &branch.Code)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBranchNotFound
		}
		return nil, fmt.Errorf("error retrieving branch: %w", err)
	}

	return &branch, nil
}

// GetAllBranches retrieves all branches ordered by code
func (r *CatalogRepository) GetAllBranches(ctx context.Context) ([]*models.Branch, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, code FROM branches ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []*models.Branch
	for rows.Next() {
		var branch models.Branch
		if err := rows.Scan(&branch.ID, &branch.Name, &branch.Code); err != nil {
			return nil, err
		}
		branches = append(branches, &branch)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return branches, nil
}

// CreateDivision creates a new division. Insertion without a valid parent
// branch or academic year fails with ErrIntegrityViolation.
func (r *CatalogRepository) CreateDivision(ctx context.Context, division *models.Division) error {
	query := `
		INSERT INTO divisions (name, branch_id, academic_year_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, division.Name, division.BranchID, division.AcademicYearID).Scan(&division.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewIntegrityViolationError("division references a missing branch or academic year")
		}
		return fmt.Errorf("error creating division: %w", err)
	}

	return nil
}

// GetDivisionByID retrieves a division by ID
func (r *CatalogRepository) GetDivisionByID(ctx context.Context, id int64) (*models.Division, error) {
	var division models.Division
	err := r.db.QueryRow(ctx,
		`SELECT id, name, branch_id, academic_year_id FROM divisions WHERE id = $1`, id).
		Scan(&division.ID, &division.Name, &division.BranchID, &division.AcademicYearID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDivisionNotFound
		}
		return nil, fmt.Errorf("error retrieving division: %w", err)
	}

	return &division, nil
}

// GetAllDivisions retrieves all divisions ordered by name
func (r *CatalogRepository) GetAllDivisions(ctx context.Context) ([]*models.Division, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, branch_id, academic_year_id FROM divisions ORDER BY name`)
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
