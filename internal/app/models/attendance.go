package models

import "time"

// AttendanceRecord marks a student present or absent in a course on one
// calendar date. The schema enforces at most one record per
// (student, course, date).
type AttendanceRecord struct {
	ID        int64     `json:"id" db:"id"`
	StudentID string    `json:"studentId" db:"student_id"`
	CourseID  int64     `json:"courseId" db:"course_id"`
	Date      time.Time `json:"date" db:"date"`
	IsPresent bool      `json:"isPresent" db:"is_present"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
}

// AttendanceState is the reconciled per-student state for one roster date.
type AttendanceState string

const (
	AttendancePresent  AttendanceState = "PRESENT"
	AttendanceAbsent   AttendanceState = "ABSENT"
	AttendanceNoRecord AttendanceState = "NO_RECORD"
)

// RosterEntry pairs a student with their reconciled attendance state for a
// given (course, division, date). Students without a recorded row report
// AttendanceNoRecord, never a defaulted absence.
type RosterEntry struct {
	Student Student         `json:"student"`
	State   AttendanceState `json:"state"`
}

// ReconcileRoster builds one RosterEntry per student, preserving input
// order. marks holds the recorded is_present value keyed by student id for
// the exact (course, date) being reconciled; a student with no entry in
// marks has no record for that date and reports AttendanceNoRecord.
func ReconcileRoster(students []*Student, marks map[string]bool) []RosterEntry {
	roster := make([]RosterEntry, 0, len(students))
	for _, student := range students {
		entry := RosterEntry{Student: *student, State: AttendanceNoRecord}
		if present, ok := marks[student.ID]; ok {
			if present {
				entry.State = AttendancePresent
			} else {
				entry.State = AttendanceAbsent
			}
		}
		roster = append(roster, entry)
	}
	return roster
}
