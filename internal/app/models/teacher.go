package models

// Teacher defines the teacher model based on the 'teachers' table.
// Unlike students, a teacher row always has a linked user account.
type Teacher struct {
	ID         int64   `json:"id" db:"id"`
	UserID     int64   `json:"userId" db:"user_id"`
	EmployeeID string  `json:"employeeId" db:"employee_id" example:"EMP-1042"`
	Phone      *string `json:"phone,omitempty" db:"phone"`
	BranchID   *int64  `json:"branchId,omitempty" db:"branch_id"`

	// Relations (populated when needed)
	User   *User   `json:"user,omitempty"`
	Branch *Branch `json:"branch,omitempty"`
}
