package models

// Grade is one score a student received in a course. Score carries two
// decimal places (NUMERIC(5,2) in the schema).
type Grade struct {
	ID          int64   `json:"id" db:"id"`
	StudentID   string  `json:"studentId" db:"student_id"`
	CourseID    int64   `json:"courseId" db:"course_id"`
	Score       float64 `json:"score" db:"score" example:"85.50"`
	GradeLetter *string `json:"gradeLetter,omitempty" db:"grade_letter" example:"A"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
}
