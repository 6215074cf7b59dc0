// Package dates holds the date and clock plumbing shared by the planning
// commands: day-name resolution, week/day bounds for calendar queries, and
// the labels and filenames plans are rendered with. Everything works in the
// given time's location; nothing here reads the system clock.
package dates

import (
	"fmt"
	"math"
	"strings"
	"time"
)

var dayNames = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

// ResolveDay turns a day name like "thursday" into the nearest upcoming
// date at local midnight, counting today as upcoming. An empty name or
// "today" resolves to today.
func ResolveDay(name string, today time.Time) (time.Time, error) {
	if name == "" || strings.EqualFold(name, "today") {
		return StartOfDay(today), nil
	}
	target, ok := dayNames[strings.ToLower(name)]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown day %q: use e.g. 'monday', 'thursday', or leave blank for today", name)
	}
	ahead := (int(target) - int(today.Weekday()) + 7) % 7
	return StartOfDay(today).AddDate(0, 0, ahead), nil
}

// ParseClock parses an HH:MM time-of-day string. The result carries only
// the clock reading; anchor it onto a date with At.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: use HH:MM, e.g. 16:00", s)
	}
	return t, nil
}

// At combines a date with a clock reading in the date's location.
func At(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, date.Location())
}

// StartOfDay returns midnight on t's date.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Monday returns midnight on the Monday of t's week. Sunday counts as the
// last day of the week, not the first.
func Monday(t time.Time) time.Time {
	back := (int(t.Weekday()) + 6) % 7
	return StartOfDay(t).AddDate(0, 0, -back)
}

// WeekBounds returns Monday midnight of today's week and the following
// Monday midnight, for use as a half-open calendar query range.
func WeekBounds(today time.Time) (time.Time, time.Time) {
	start := Monday(today)
	return start, start.AddDate(0, 0, 7)
}

// DayBounds returns midnight on the given date and the following midnight.
func DayBounds(date time.Time) (time.Time, time.Time) {
	start := StartOfDay(date)
	return start, start.AddDate(0, 0, 1)
}

// DaysBetween counts whole calendar days from the first date to the
// second, negative when to precedes from. Rounding keeps the count stable
// across DST transitions.
func DaysBetween(from, to time.Time) int {
	diff := StartOfDay(to).Sub(StartOfDay(from))
	return int(math.Round(diff.Hours() / 24))
}

// WeekLabel renders the working week containing today as e.g.
// "9 Feb–13 Feb 2026" (Monday through Friday).
func WeekLabel(today time.Time) string {
	monday := Monday(today)
	friday := monday.AddDate(0, 0, 4)
	return monday.Format("2 Jan") + "–" + friday.Format("2 Jan 2006")
}

// DayLabel renders a date as e.g. "Monday 24 August 2026".
func DayLabel(date time.Time) string {
	return date.Format("Monday 2 January 2006")
}

// WeekPlanFilename names a week plan after its Monday, e.g.
// "week_plan_09feb.md".
func WeekPlanFilename(today time.Time) string {
	return "week_plan_" + strings.ToLower(Monday(today).Format("02Jan")) + ".md"
}

// DayPlanFilename names a day plan after its date, e.g. "day_plan_24aug.md".
func DayPlanFilename(date time.Time) string {
	return "day_plan_" + strings.ToLower(date.Format("02Jan")) + ".md"
}
