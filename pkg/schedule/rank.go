package schedule

import (
	"sort"

	"github.com/harrisonrobin/dayplan/pkg/model"
)

// noDeadline sorts tasks without an inferred deadline after every task
// that has one, however distant.
const noDeadline = 999

// Rank returns a new slice of the actionable tasks ordered by ascending
// (priority rank, deadline rank, effort rank); the input is left untouched.
// Pending tasks are dropped, never scheduled. The sort is stable, so tasks
// with identical keys keep their input order and re-ranking an
// already-ranked slice returns it unchanged.
func Rank(tasks []model.Task) []model.Task {
	ranked := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == model.StatusPending {
			continue
		}
		ranked = append(ranked, t)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		if deadlineRank(a) != deadlineRank(b) {
			return deadlineRank(a) < deadlineRank(b)
		}
		return a.Effort.Rank() < b.Effort.Rank()
	})
	return ranked
}

func deadlineRank(t model.Task) int {
	if t.Deadline == nil {
		return noDeadline
	}
	return t.Deadline.Days
}
