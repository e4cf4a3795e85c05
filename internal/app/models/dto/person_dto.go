package dto

// CreateStudentRequest provisions a student record. The id is supplied by
// the administrator, not generated; the user link is optional so records
// can exist before a login account claims them.
type CreateStudentRequest struct {
	ID             string `json:"id" binding:"required,max=15"`
	FirstName      string `json:"firstName" binding:"required,max=64"`
	LastName       string `json:"lastName" binding:"required,max=64"`
	Email          string `json:"email" binding:"required,email"`
	PRN            int64  `json:"prn" binding:"required"`
	UserID         *int64 `json:"userId,omitempty"`
	DivisionID     *int64 `json:"divisionId,omitempty"`
	AcademicYearID *int64 `json:"academicYearId,omitempty"`
	BranchID       *int64 `json:"branchId,omitempty"`
	SemesterID     *int64 `json:"semesterId,omitempty"`
}

// CreateTeacherRequest provisions a teacher together with their login
// account. The user link is mandatory for teachers.
type CreateTeacherRequest struct {
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=8"`
	FirstName  string  `json:"firstName" binding:"required,max=64"`
	LastName   string  `json:"lastName" binding:"required,max=64"`
	EmployeeID string  `json:"employeeId" binding:"required,max=20"`
	Phone      *string `json:"phone,omitempty"`
	BranchID   *int64  `json:"branchId,omitempty"`
}

// EnrollStudentRequest enrolls one student into one course
type EnrollStudentRequest struct {
	StudentID string `json:"studentId" binding:"required"`
}

// LinkStudentAccountRequest attaches a login account to a pre-provisioned
// student record.
type LinkStudentAccountRequest struct {
	UserID int64 `json:"userId" binding:"required,min=1"`
}
