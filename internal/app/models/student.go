package models

// Student defines the student model based on the 'students' table.
// The ID is externally assigned (roll number style), never generated.
// The user link is optional: student rows may be provisioned before any
// login account is claimed.
type Student struct {
	ID             string  `json:"id" db:"id" example:"CS2024001"`
	UserID         *int64  `json:"userId,omitempty" db:"user_id"`
	FirstName      string  `json:"firstName" db:"first_name"`
	LastName       string  `json:"lastName" db:"last_name"`
	Email          string  `json:"email" db:"email"`
	PRN            int64   `json:"prn" db:"prn"`
	DivisionID     *int64  `json:"divisionId,omitempty" db:"division_id"`
	AcademicYearID *int64  `json:"academicYearId,omitempty" db:"academic_year_id"`
	BranchID       *int64  `json:"branchId,omitempty" db:"branch_id"`
	SemesterID     *int64  `json:"semesterId,omitempty" db:"semester_id"`

	// Relations (populated when needed)
	User         *User         `json:"user,omitempty"`
	Division     *Division     `json:"division,omitempty"`
	AcademicYear *AcademicYear `json:"academicYear,omitempty"`
	Branch       *Branch       `json:"branch,omitempty"`
	Semester     *Semester     `json:"semester,omitempty"`
}
