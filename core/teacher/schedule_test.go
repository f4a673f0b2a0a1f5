package teacher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ScheduleGrid_SessionsAt(t *testing.T) {
	sessions := []ScheduleSession{
		{Day: "Monday", Time: "9:00 AM", Duration: 60, Subject: "Piano", Type: SessionPrivate},
		{Day: "Monday", Time: "2:00 PM", Duration: 90, Subject: "Piano Group", Type: SessionGroup},
		{Day: "Saturday", Time: "9:00 AM", Duration: 60, Subject: "Piano", Type: SessionPrivate},
		{Day: "Monday", Time: "9:00 AM", Duration: 30, Subject: "Music Theory", Type: SessionPrivate},
	}
	grid := NewScheduleGrid(sessions)

	tests := []struct {
		name         string
		day, slot    string
		wantSubjects []string
	}{
		{name: "single match", day: "Monday", slot: "2:00 PM", wantSubjects: []string{"Piano Group"}},
		{name: "overlapping cell keeps both in input order", day: "Monday", slot: "9:00 AM", wantSubjects: []string{"Piano", "Music Theory"}},
		{name: "same slot, other day", day: "Saturday", slot: "9:00 AM", wantSubjects: []string{"Piano"}},
		{name: "empty slot", day: "Tuesday", slot: "9:00 AM", wantSubjects: nil},
		{name: "unknown slot", day: "Monday", slot: "9:30 AM", wantSubjects: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := grid.SessionsAt(tt.day, tt.slot)
			subjects := make([]string, 0, len(got))
			for _, s := range got {
				subjects = append(subjects, s.Subject)
			}
			if tt.wantSubjects == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.wantSubjects, subjects)
			}
		})
	}
}

func Test_ScheduleGrid_axes(t *testing.T) {
	assert.Len(t, Days, 7)
	assert.Equal(t, "Monday", Days[0])
	assert.Equal(t, "Sunday", Days[6])

	assert.Len(t, TimeSlots, 15) // hourly, 7:00 AM through 9:00 PM
	assert.Equal(t, "7:00 AM", TimeSlots[0])
	assert.Equal(t, "9:00 PM", TimeSlots[len(TimeSlots)-1])
}

func Test_ScheduleGrid_empty(t *testing.T) {
	grid := NewScheduleGrid(nil)
	assert.Empty(t, grid.Sessions())
	assert.Empty(t, grid.SessionsAt("Monday", "9:00 AM"))
}
