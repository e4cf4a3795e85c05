package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleTeacher RoleType = "TEACHER"
	RoleAdmin   RoleType = "ADMIN"
)

// SemesterOrdinal is the position of a semester within a programme (1st..8th)
type SemesterOrdinal string

const (
	SemesterFirst   SemesterOrdinal = "1st"
	SemesterSecond  SemesterOrdinal = "2nd"
	SemesterThird   SemesterOrdinal = "3rd"
	SemesterFourth  SemesterOrdinal = "4th"
	SemesterFifth   SemesterOrdinal = "5th"
	SemesterSixth   SemesterOrdinal = "6th"
	SemesterSeventh SemesterOrdinal = "7th"
	SemesterEighth  SemesterOrdinal = "8th"
)

// ValidSemesterOrdinal reports whether s is one of the eight allowed ordinals.
func ValidSemesterOrdinal(s SemesterOrdinal) bool {
	switch s {
	case SemesterFirst, SemesterSecond, SemesterThird, SemesterFourth,
		SemesterFifth, SemesterSixth, SemesterSeventh, SemesterEighth:
		return true
	}
	return false
}
