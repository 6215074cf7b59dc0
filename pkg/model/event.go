package model

import "time"

// Event is one calendar entry from the calendar source. All-day events
// carry date-only bounds; timed events carry full date-times. The two
// forms are mutually exclusive per event.
type Event struct {
	Summary string
	Start   time.Time
	End     time.Time
	AllDay  bool
}
