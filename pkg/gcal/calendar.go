// Package gcal reads events from Google Calendar and converts them into
// the planner's event records. It is strictly read-only: plans are written
// to files, never back to the calendar.
package gcal

import (
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/harrisonrobin/dayplan/pkg/dates"
	"github.com/harrisonrobin/dayplan/pkg/model"
)

// upcomingHorizonDays is how far ahead the deadline annotator looks for
// events to match tasks against.
const upcomingHorizonDays = 14

// Client wraps an authenticated Calendar service for one calendar.
type Client struct {
	srv        *calendar.Service
	calendarID string
}

// NewClient creates a client for the given calendar ID ("primary" for the
// account's main calendar).
func NewClient(srv *calendar.Service, calendarID string) *Client {
	return &Client{srv: srv, calendarID: calendarID}
}

// EventsBetween fetches all events in the half-open range [start, end),
// with recurring events expanded and results ordered by start time.
func (c *Client) EventsBetween(start, end time.Time) ([]model.Event, error) {
	result, err := c.srv.Events.List(c.calendarID).
		TimeMin(start.Format(time.RFC3339)).
		TimeMax(end.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve events from calendar %q: %w", c.calendarID, err)
	}

	events := make([]model.Event, 0, len(result.Items))
	for _, item := range result.Items {
		ev, err := ConvertEvent(item)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// EventsForDay fetches the events on the given date.
func (c *Client) EventsForDay(date time.Time) ([]model.Event, error) {
	start, end := dates.DayBounds(date)
	return c.EventsBetween(start, end)
}

// EventsThisWeek fetches the events of the week containing today, Monday
// through Sunday.
func (c *Client) EventsThisWeek(today time.Time) ([]model.Event, error) {
	start, end := dates.WeekBounds(today)
	return c.EventsBetween(start, end)
}

// EventsUpcoming fetches everything from now until two weeks ahead, the
// horizon the deadline annotator scans.
func (c *Client) EventsUpcoming(now time.Time) ([]model.Event, error) {
	return c.EventsBetween(now, now.AddDate(0, 0, upcomingHorizonDays))
}

// ConvertEvent maps one Calendar API event to a planner event. Timed
// events carry an RFC 3339 DateTime; all-day events carry a bare date,
// which is anchored at local midnight. An unparseable time is a hard
// error naming the offending value.
func ConvertEvent(item *calendar.Event) (model.Event, error) {
	summary := item.Summary
	if summary == "" {
		summary = "(no title)"
	}
	if item.Start == nil || item.End == nil {
		return model.Event{}, fmt.Errorf("event %q has no start or end", summary)
	}

	if item.Start.DateTime != "" {
		start, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			return model.Event{}, fmt.Errorf("event %q has invalid start time %q: %w", summary, item.Start.DateTime, err)
		}
		end, err := time.Parse(time.RFC3339, item.End.DateTime)
		if err != nil {
			return model.Event{}, fmt.Errorf("event %q has invalid end time %q: %w", summary, item.End.DateTime, err)
		}
		return model.Event{Summary: summary, Start: start.Local(), End: end.Local()}, nil
	}

	start, err := time.ParseInLocation("2006-01-02", item.Start.Date, time.Local)
	if err != nil {
		return model.Event{}, fmt.Errorf("event %q has invalid start date %q: %w", summary, item.Start.Date, err)
	}
	end, err := time.ParseInLocation("2006-01-02", item.End.Date, time.Local)
	if err != nil {
		return model.Event{}, fmt.Errorf("event %q has invalid end date %q: %w", summary, item.End.Date, err)
	}
	return model.Event{Summary: summary, Start: start, End: end, AllDay: true}, nil
}
