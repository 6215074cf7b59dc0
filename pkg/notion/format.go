package notion

import (
	"fmt"
	"strings"

	"github.com/harrisonrobin/dayplan/pkg/model"
)

// FormatForPrompt renders the task list for the planning prompt.
// Actionable tasks carry their priority/effort metadata (and an inferred
// due event when one was annotated); pending tasks are listed under a
// separate header that tells the model never to schedule them.
func FormatForPrompt(list model.TaskList) string {
	var sections []string

	if len(list.Actionable) > 0 {
		sections = append(sections, "ACTIONABLE TASKS — schedule these, higher priority first, allow more time for higher effort:")
		for _, t := range list.Actionable {
			sections = append(sections, FormatTaskLine(t))
		}
	} else {
		sections = append(sections, "ACTIONABLE TASKS: none.")
	}

	if len(list.Pending) > 0 {
		sections = append(sections, "\nPENDING TASKS — do NOT schedule these; list them in a 'Waiting / pending' section:")
		for _, t := range list.Pending {
			if t.Project != "" {
				sections = append(sections, fmt.Sprintf("- %s %s", t.Tag(), t.Text))
			} else {
				sections = append(sections, "- "+t.Text)
			}
		}
	}

	return strings.Join(sections, "\n")
}

// FormatTaskLine renders one actionable task, e.g.
//
//	- [COSMOS-Web] Draft paper (priority: high, effort: high, due: COSMOS-Web telecon in 3 days)
//	- [ADMIN] File expenses (quick — 15 min, priority: low)
func FormatTaskLine(t model.Task) string {
	tag := ""
	if t.Project != "" {
		tag = t.Tag() + " "
	}

	var meta string
	if t.Quick {
		meta = fmt.Sprintf("quick — 15 min, priority: %s", t.Priority)
	} else {
		meta = fmt.Sprintf("priority: %s, effort: %s", t.Priority, t.Effort)
	}
	if t.Deadline != nil {
		meta += ", " + dueClause(t.Deadline)
	}

	return fmt.Sprintf("- %s%s (%s)", tag, t.Text, meta)
}

func dueClause(d *model.Deadline) string {
	switch d.Days {
	case 0:
		return fmt.Sprintf("due: %s today", d.Event)
	case 1:
		return fmt.Sprintf("due: %s in 1 day", d.Event)
	default:
		return fmt.Sprintf("due: %s in %d days", d.Event, d.Days)
	}
}
