package models

import "time"

// Assignment is coursework published for a course with a due timestamp.
type Assignment struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	CourseID    int64     `json:"courseId" db:"course_id"`
	DueAt       time.Time `json:"dueAt" db:"due_at"`
	MaxScore    float64   `json:"maxScore" db:"max_score" example:"100.00"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
}
