package schedule

import (
	"time"

	"github.com/harrisonrobin/dayplan/pkg/dates"
	"github.com/harrisonrobin/dayplan/pkg/model"
)

// AnnotateDeadlines cross-references each task's project label against the
// upcoming events and returns a new, re-ranked slice in which every task
// whose project keywords overlap an event's summary keywords carries the
// soonest such event as its deadline. Events already in the past are
// ignored; all-day events count like any other. Tasks without a project,
// and tasks whose project matches nothing, pass through unannotated. The
// input slice is left untouched.
//
// This is a best-effort heuristic, not a due-date system: an unrelated task
// and event sharing a generic word will match, and genuinely related items
// phrased differently will not. It improves the ordering on average, which
// is all it promises.
func AnnotateDeadlines(tasks []model.Task, events []model.Event, today time.Time) []model.Task {
	type candidate struct {
		days    int
		summary string
		words   map[string]bool
	}
	upcoming := make([]candidate, 0, len(events))
	for _, ev := range events {
		days := dates.DaysBetween(today, ev.Start)
		if days < 0 {
			continue
		}
		upcoming = append(upcoming, candidate{days: days, summary: ev.Summary, words: Keywords(ev.Summary)})
	}

	annotated := make([]model.Task, len(tasks))
	copy(annotated, tasks)
	for i := range annotated {
		task := &annotated[i]
		if task.Project == "" || task.Status == model.StatusPending {
			continue
		}
		words := Keywords(task.Project)
		best := -1
		for j, ev := range upcoming {
			if !Related(words, ev.words) {
				continue
			}
			if best == -1 || ev.days < upcoming[best].days {
				best = j
			}
		}
		if best >= 0 {
			task.Deadline = &model.Deadline{Days: upcoming[best].days, Event: upcoming[best].summary}
		}
	}
	return Rank(annotated)
}
