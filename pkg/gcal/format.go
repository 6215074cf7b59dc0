package gcal

import (
	"fmt"
	"strings"

	"github.com/harrisonrobin/dayplan/pkg/model"
)

// FormatForPrompt renders events as the bullet list the planning prompt
// expects, one line per event with its weekday name:
//
//	- Monday 10:00–11:00: Group meeting
//	- Tuesday (all day): Conference
func FormatForPrompt(events []model.Event) string {
	if len(events) == 0 {
		return "No calendar events."
	}
	lines := make([]string, 0, len(events))
	for _, ev := range events {
		day := ev.Start.Format("Monday")
		if ev.AllDay {
			lines = append(lines, fmt.Sprintf("- %s (all day): %s", day, ev.Summary))
		} else {
			lines = append(lines, fmt.Sprintf("- %s %s–%s: %s",
				day, ev.Start.Format("15:04"), ev.End.Format("15:04"), ev.Summary))
		}
	}
	return strings.Join(lines, "\n")
}
