package teacher

type SessionType string

const (
	SessionPrivate SessionType = "private"
	SessionGroup   SessionType = "group"
)

// Days and TimeSlots are the fixed axes of the weekly schedule grid.
var (
	Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

	TimeSlots = []string{
		"7:00 AM", "8:00 AM", "9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
		"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM", "6:00 PM",
		"7:00 PM", "8:00 PM", "9:00 PM",
	}
)

// ScheduleSession is a recurring weekly session occupying one grid cell.
type ScheduleSession struct {
	Day      string      `json:"day"`
	Time     string      `json:"time"`
	Duration int         `json:"duration"` // minutes
	Subject  string      `json:"subject"`
	Type     SessionType `json:"type"`
}

type gridKey struct {
	day  string
	time string
}

// ScheduleGrid is a day x time-slot matrix over an unordered session list.
// A cell may hold zero, one or several sessions; overlapping sessions are a
// display concern and are not rejected.
type ScheduleGrid struct {
	sessions []ScheduleSession
	cells    map[gridKey][]ScheduleSession
}

func NewScheduleGrid(sessions []ScheduleSession) ScheduleGrid {
	g := ScheduleGrid{
		sessions: sessions,
		cells:    make(map[gridKey][]ScheduleSession, len(sessions)),
	}
	for _, s := range sessions {
		k := gridKey{day: s.Day, time: s.Time}
		g.cells[k] = append(g.cells[k], s)
	}
	return g
}

// SessionsAt returns all sessions matching both the day and the time slot
// exactly, in input order. Unknown slots yield an empty result.
func (g ScheduleGrid) SessionsAt(day, timeSlot string) []ScheduleSession {
	return g.cells[gridKey{day: day, time: timeSlot}]
}

func (g ScheduleGrid) Sessions() []ScheduleSession { return g.sessions }
