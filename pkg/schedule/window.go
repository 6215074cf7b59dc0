package schedule

import (
	"time"

	"github.com/harrisonrobin/dayplan/pkg/model"
)

// quickMinutes is the fixed allocation for tasks flagged quick, regardless
// of their effort.
const quickMinutes = 15

// SessionWindow is the free stretch between now and the next hard
// commitment: the leave time, or the next timed meeting today if that
// comes first.
type SessionWindow struct {
	Now      time.Time
	Leave    time.Time
	Deadline time.Time // the earlier of Leave and the next meeting's start
	Minutes  int       // whole minutes from Now to Deadline, truncated toward zero

	// NextMeeting is today's next timed event starting after Now, kept
	// even when it begins after Leave so the caller can report what the
	// rest of the day holds. Nil when today has no further meetings.
	NextMeeting *model.Event
}

// CutShortByMeeting reports whether the window ends at a meeting rather
// than at the leave time.
func (w SessionWindow) CutShortByMeeting() bool {
	return w.NextMeeting != nil && !w.NextMeeting.Start.After(w.Leave)
}

// Window computes the current work session's free window. Only timed
// events on now's date participate: all-day events never bound a session.
func Window(now, leave time.Time, events []model.Event) SessionWindow {
	w := SessionWindow{Now: now, Leave: leave, Deadline: leave}

	for i := range events {
		ev := events[i]
		if ev.AllDay || !sameDay(ev.Start, now) || !ev.Start.After(now) {
			continue
		}
		if w.NextMeeting == nil || ev.Start.Before(w.NextMeeting.Start) {
			w.NextMeeting = &ev
		}
	}
	if w.CutShortByMeeting() {
		w.Deadline = w.NextMeeting.Start
	}
	w.Minutes = int(w.Deadline.Sub(now).Minutes())
	return w
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// MinimumMinutes is the smallest block worth starting a task in: a fixed
// 15 minutes for quick tasks, otherwise a floor per effort level. It is
// not the task's expected duration; a high-effort task needs at least a
// 90-minute run at it to be worth picking up.
func MinimumMinutes(t model.Task) int {
	if t.Quick {
		return quickMinutes
	}
	switch t.Effort {
	case model.LevelHigh:
		return 90
	case model.LevelMedium:
		return 45
	}
	return 1 // low or unset
}

// SuggestNext returns the first ranked task whose minimum block fits in
// the available minutes, or nil when nothing fits. It never suggests a
// pending task. The caller distinguishes an empty window (minutes <= 0)
// from "no task fits" before reporting.
func SuggestNext(ranked []model.Task, minutes int) *model.Task {
	if minutes <= 0 {
		return nil
	}
	for _, t := range ranked {
		if t.Status == model.StatusPending {
			continue
		}
		if minutes >= MinimumMinutes(t) {
			pick := t
			return &pick
		}
	}
	return nil
}
