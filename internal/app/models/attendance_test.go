package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reconciliation of division A of CS301 for 2024-09-01: one student marked
// present, one marked absent, one enrolled with no record for that date.
func TestReconcileRoster(t *testing.T) {
	students := []*Student{
		{ID: "CS2024001", FirstName: "Asha", LastName: "Iyer"},
		{ID: "CS2024002", FirstName: "Rohan", LastName: "Kulkarni"},
		{ID: "CS2024003", FirstName: "Meera", LastName: "Patil"},
	}
	marks := map[string]bool{
		"CS2024001": true,
		"CS2024002": false,
	}

	roster := ReconcileRoster(students, marks)

	// exactly one entry per enrolled student, input order preserved
	require.Len(t, roster, 3)
	assert.Equal(t, "CS2024001", roster[0].Student.ID)
	assert.Equal(t, "CS2024002", roster[1].Student.ID)
	assert.Equal(t, "CS2024003", roster[2].Student.ID)

	assert.Equal(t, AttendancePresent, roster[0].State)
	assert.Equal(t, AttendanceAbsent, roster[1].State)
	assert.Equal(t, AttendanceNoRecord, roster[2].State)
}

func TestReconcileRoster_IgnoresMarksOutsideRoster(t *testing.T) {
	students := []*Student{{ID: "CS2024001", FirstName: "Asha", LastName: "Iyer"}}
	marks := map[string]bool{
		"CS2024001": true,
		"CS2024099": true, // enrolled in another division
	}

	roster := ReconcileRoster(students, marks)

	require.Len(t, roster, 1)
	assert.Equal(t, AttendancePresent, roster[0].State)
}

func TestReconcileRoster_EmptyDivision(t *testing.T) {
	roster := ReconcileRoster(nil, map[string]bool{"CS2024001": true})
	assert.Empty(t, roster)
}

func TestReconcileRoster_NoMarksRecorded(t *testing.T) {
	students := []*Student{
		{ID: "CS2024001"},
		{ID: "CS2024002"},
	}

	roster := ReconcileRoster(students, nil)

	require.Len(t, roster, 2)
	for _, entry := range roster {
		assert.Equal(t, AttendanceNoRecord, entry.State)
	}
}
