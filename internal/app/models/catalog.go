package models

// AcademicYear represents one academic year, e.g. "2024-25"
type AcademicYear struct {
	ID        int64  `json:"id" db:"id"`
	YearLabel string `json:"yearLabel" db:"year_label" example:"2024-25"`
}

// Semester represents one semester within an academic year
type Semester struct {
	ID             int64           `json:"id" db:"id"`
	Ordinal        SemesterOrdinal `json:"ordinal" db:"ordinal" example:"3rd"`
	AcademicYearID int64           `json:"academicYearId" db:"academic_year_id"`

	// Relations (populated when needed)
	AcademicYear *AcademicYear `json:"academicYear,omitempty"`
}

// Branch represents an academic branch, e.g. "CS" / "Computer Science"
type Branch struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name" example:"Computer Science"`
	Code string `json:"code" db:"code" example:"CS"`
}

// Division is a named group of students scoped to one branch and one
// academic year, e.g. division "A" of CS in 2024-25.
type Division struct {
	ID             int64  `json:"id" db:"id"`
	Name           string `json:"name" db:"name" example:"A"`
	BranchID       int64  `json:"branchId" db:"branch_id"`
	AcademicYearID int64  `json:"academicYearId" db:"academic_year_id"`

	// Relations (populated when needed)
	Branch       *Branch       `json:"branch,omitempty"`
	AcademicYear *AcademicYear `json:"academicYear,omitempty"`
}
