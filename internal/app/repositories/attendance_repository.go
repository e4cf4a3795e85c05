package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Chippsss/sms-backend/internal/app/models"
	"github.com/Chippsss/sms-backend/internal/db"
	"github.com/Chippsss/sms-backend/internal/pkg/apperrors"
	"github.com/Chippsss/sms-backend/internal/pkg/dberrors"
)

// AttendanceRepository handles attendance database operations
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// GetAttendanceByStudent retrieves a student's attendance records with the
// course attached, newest dates first, then course code.
func (r *AttendanceRepository) GetAttendanceByStudent(ctx context.Context, studentID string) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT a.id, a.student_id, a.course_id, a.date, a.is_present,
		       c.id, c.name, c.code, c.branch_id, c.academic_year_id, c.semester_id, c.teacher_id
		FROM attendance_records a
		JOIN courses c ON c.id = a.course_id
		WHERE a.student_id = $1
		ORDER BY a.date DESC, c.code
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		var record models.AttendanceRecord
		var course models.Course
		err := rows.Scan(
			&record.ID, &record.StudentID, &record.CourseID, &record.Date, &record.IsPresent,
			&course.ID, &course.Name, &course.Code, &course.BranchID,
			&course.AcademicYearID, &course.SemesterID, &course.TeacherID,
		)
		if err != nil {
			return nil, err
		}
		record.Course = &course
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// GetRoster reconciles the enrolled students of one division against the
// attendance records of a course on a date. Every enrolled student of the
// division appears exactly once: PRESENT or ABSENT when a record exists,
// NO_RECORD when none does. Ordered by student last then first name.
func (r *AttendanceRepository) GetRoster(ctx context.Context, courseID, divisionID int64, date time.Time) ([]models.RosterEntry, error) {
	studentsQuery := `
		SELECT s.id, s.user_id, s.first_name, s.last_name, s.email, s.prn,
		       s.division_id, s.academic_year_id, s.branch_id, s.semester_id
		FROM students s
		JOIN course_enrollments ce ON ce.student_id = s.id
		WHERE ce.course_id = $1 AND s.division_id = $2
		ORDER BY s.last_name, s.first_name
	`

	rows, err := r.db.Query(ctx, studentsQuery, courseID, divisionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students, err := scanStudents(rows)
	if err != nil {
		return nil, err
	}

	marksQuery := `
		SELECT student_id, is_present
		FROM attendance_records
		WHERE course_id = $1 AND date = $2
	`

	markRows, err := r.db.Query(ctx, marksQuery, courseID, date)
	if err != nil {
		return nil, err
	}
	defer markRows.Close()

	marks := make(map[string]bool)
	for markRows.Next() {
		var studentID string
		var isPresent bool
		if err := markRows.Scan(&studentID, &isPresent); err != nil {
			return nil, err
		}
		marks[studentID] = isPresent
	}
	if err := markRows.Err(); err != nil {
		return nil, err
	}

	return models.ReconcileRoster(students, marks), nil
}

// RecordBatch writes one day's attendance marks for a course in a single
// transaction. A mark for a (student, course, date) that already has a row
// overwrites it, so re-submitting a corrected sheet is safe.
func (r *AttendanceRepository) RecordBatch(ctx context.Context, courseID int64, date time.Time, marks map[string]bool) error {
	query := `
		INSERT INTO attendance_records (student_id, course_id, date, is_present)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ON CONSTRAINT attendance_records_student_course_date_key
		DO UPDATE SET is_present = EXCLUDED.is_present
	`

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for studentID, present := range marks {
			if _, err := tx.Exec(ctx, query, studentID, courseID, date, present); err != nil {
				if dberrors.IsForeignKeyViolation(err) {
					return apperrors.NewIntegrityViolationError(
						fmt.Sprintf("attendance mark references a missing student or course (student %s)", studentID))
				}
				return fmt.Errorf("error recording attendance for student %s: %w", studentID, err)
			}
		}
		return nil
	})
}

// GetRecordByID retrieves one attendance record
func (r *AttendanceRepository) GetRecordByID(ctx context.Context, id int64) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	err := r.db.QueryRow(ctx,
		`SELECT id, student_id, course_id, date, is_present FROM attendance_records WHERE id = $1`, id).
		Scan(&record.ID, &record.StudentID, &record.CourseID, &record.Date, &record.IsPresent)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("error retrieving attendance record: %w", err)
	}

	return &record, nil
}

// DeleteRecord removes one attendance record
func (r *AttendanceRepository) DeleteRecord(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting attendance record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}
	return nil
}
