package dto

import (
	"time"

	"github.com/Chippsss/sms-backend/internal/app/models"
)

// CreateGradeRequest records a score for a student in a course
type CreateGradeRequest struct {
	StudentID   string  `json:"studentId" binding:"required"`
	Score       float64 `json:"score" binding:"min=0,max=999.99"`
	GradeLetter *string `json:"gradeLetter,omitempty" binding:"omitempty,max=5"`
}

// UpdateGradeRequest updates an existing grade
type UpdateGradeRequest struct {
	Score       float64 `json:"score" binding:"min=0,max=999.99"`
	GradeLetter *string `json:"gradeLetter,omitempty" binding:"omitempty,max=5"`
}

// CreateAssignmentRequest publishes coursework for a course
type CreateAssignmentRequest struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Description *string   `json:"description,omitempty"`
	DueAt       time.Time `json:"dueAt" binding:"required"`
	MaxScore    float64   `json:"maxScore" binding:"required,min=0,max=999.99"`
}

// UpdateAssignmentRequest updates published coursework
type UpdateAssignmentRequest struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Description *string   `json:"description,omitempty"`
	DueAt       time.Time `json:"dueAt" binding:"required"`
	MaxScore    float64   `json:"maxScore" binding:"required,min=0,max=999.99"`
}

// AttendanceMark is one student's mark inside a batch attendance write
type AttendanceMark struct {
	StudentID string `json:"studentId" binding:"required"`
	IsPresent bool   `json:"isPresent"`
}

// RecordAttendanceRequest records a roster's attendance for one date as a
// single atomic write.
type RecordAttendanceRequest struct {
	Date  string           `json:"date" binding:"required" example:"2024-09-01"`
	Marks []AttendanceMark `json:"marks" binding:"required,min=1,dive"`
}

// AttendanceSheetResponse is the reconciled roster for one
// (course, division, date) triple.
type AttendanceSheetResponse struct {
	CourseID   int64                `json:"courseId"`
	DivisionID int64                `json:"divisionId"`
	Date       string               `json:"date"`
	Entries    []models.RosterEntry `json:"entries"`
}

// CourseDetailResponse is the teacher-facing view of one course
type CourseDetailResponse struct {
	Course    *models.Course     `json:"course"`
	Roster    []*models.Student  `json:"roster"`
	Divisions []*models.Division `json:"divisions"` // only divisions with enrolled students
}

// StudentDashboardResponse is the student-facing summary view
type StudentDashboardResponse struct {
	Student *models.Student  `json:"student"`
	Courses []*models.Course `json:"courses"`
}
