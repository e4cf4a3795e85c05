package models

// Course represents a course offered by a branch in a given academic year
// and semester. TeacherID is the assigned instructor; every teacher-facing
// query on the course is filtered by it.
type Course struct {
	ID             int64  `json:"id" db:"id"`
	Name           string `json:"name" db:"name" example:"Operating Systems"`
	Code           string `json:"code" db:"code" example:"CS301"`
	BranchID       int64  `json:"branchId" db:"branch_id"`
	AcademicYearID int64  `json:"academicYearId" db:"academic_year_id"`
	SemesterID     int64  `json:"semesterId" db:"semester_id"`
	TeacherID      *int64 `json:"teacherId,omitempty" db:"teacher_id"`

	// Relations (populated when needed)
	Branch       *Branch       `json:"branch,omitempty"`
	AcademicYear *AcademicYear `json:"academicYear,omitempty"`
	Semester     *Semester     `json:"semester,omitempty"`
	Teacher      *Teacher      `json:"teacher,omitempty"`
}
