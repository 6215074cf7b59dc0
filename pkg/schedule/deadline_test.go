package schedule

import (
	"testing"
	"time"

	"github.com/harrisonrobin/dayplan/pkg/model"
)

var annotateNow = time.Date(2026, time.February, 9, 13, 0, 0, 0, time.Local)

func inDays(n int, hour int) time.Time {
	return time.Date(2026, time.February, 9+n, hour, 0, 0, 0, time.Local)
}

func TestAnnotateDeadlinesMatchesProjectToEvent(t *testing.T) {
	tasks := []model.Task{
		{Text: "Draft paper", Project: "COSMOS-Web", Priority: model.LevelHigh, Effort: model.LevelHigh},
	}
	events := []model.Event{
		{Summary: "COSMOS-Web telecon", Start: inDays(3, 10), End: inDays(3, 11)},
	}

	got := AnnotateDeadlines(tasks, events, annotateNow)
	if len(got) != 1 {
		t.Fatalf("expected 1 task, got %d", len(got))
	}
	if got[0].Deadline == nil {
		t.Fatal("task was not annotated")
	}
	if got[0].Deadline.Days != 3 {
		t.Errorf("Deadline.Days = %d, want 3", got[0].Deadline.Days)
	}
	if got[0].Deadline.Event != "COSMOS-Web telecon" {
		t.Errorf("Deadline.Event = %q, want \"COSMOS-Web telecon\"", got[0].Deadline.Event)
	}
}

func TestAnnotateDeadlinesKeepsSoonestEvent(t *testing.T) {
	tasks := []model.Task{{Text: "Prepare slides", Project: "COSMOS-Web"}}
	events := []model.Event{
		{Summary: "COSMOS-Web workshop", Start: inDays(9, 9), End: inDays(9, 17)},
		{Summary: "COSMOS-Web telecon", Start: inDays(2, 10), End: inDays(2, 11)},
		{Summary: "COSMOS-Web follow-up", Start: inDays(6, 10), End: inDays(6, 11)},
	}

	got := AnnotateDeadlines(tasks, events, annotateNow)
	if got[0].Deadline == nil || got[0].Deadline.Days != 2 {
		t.Fatalf("expected the 2-day event, got %+v", got[0].Deadline)
	}
	if got[0].Deadline.Event != "COSMOS-Web telecon" {
		t.Errorf("Deadline.Event = %q", got[0].Deadline.Event)
	}
}

func TestAnnotateDeadlinesExcludesPastEvents(t *testing.T) {
	tasks := []model.Task{{Text: "Write minutes", Project: "COSMOS-Web"}}
	events := []model.Event{
		{Summary: "COSMOS-Web telecon", Start: inDays(-2, 10), End: inDays(-2, 11)},
	}

	got := AnnotateDeadlines(tasks, events, annotateNow)
	if got[0].Deadline != nil {
		t.Errorf("past event produced a deadline: %+v", got[0].Deadline)
	}
}

func TestAnnotateDeadlinesSameDayEvent(t *testing.T) {
	tasks := []model.Task{{Text: "Prep notes", Project: "COSMOS-Web"}}
	events := []model.Event{
		// Earlier today still counts as day zero, not the past.
		{Summary: "COSMOS-Web telecon", Start: inDays(0, 9), End: inDays(0, 10)},
	}

	got := AnnotateDeadlines(tasks, events, annotateNow)
	if got[0].Deadline == nil || got[0].Deadline.Days != 0 {
		t.Errorf("same-day event should annotate with Days=0, got %+v", got[0].Deadline)
	}
}

func TestAnnotateDeadlinesAllDayEventsParticipate(t *testing.T) {
	tasks := []model.Task{{Text: "Finish abstract", Project: "Lyman-alpha survey"}}
	events := []model.Event{
		{Summary: "Lyman-alpha deadline", Start: inDays(4, 0), End: inDays(5, 0), AllDay: true},
	}

	got := AnnotateDeadlines(tasks, events, annotateNow)
	if got[0].Deadline == nil || got[0].Deadline.Days != 4 {
		t.Errorf("all-day event should annotate, got %+v", got[0].Deadline)
	}
}

func TestAnnotateDeadlinesSkipsProjectlessTasks(t *testing.T) {
	tasks := []model.Task{{Text: "Buy coffee beans"}}
	events := []model.Event{
		{Summary: "Coffee with supervisor", Start: inDays(1, 15), End: inDays(1, 16)},
	}

	got := AnnotateDeadlines(tasks, events, annotateNow)
	if got[0].Deadline != nil {
		t.Errorf("projectless task was annotated: %+v", got[0].Deadline)
	}
}

func TestAnnotateDeadlinesNoKeywordOverlap(t *testing.T) {
	tasks := []model.Task{{Text: "Reduce spectra", Project: "JWST-proposal"}}
	events := []model.Event{
		{Summary: "Departmental colloquium", Start: inDays(1, 14), End: inDays(1, 15)},
	}

	got := AnnotateDeadlines(tasks, events, annotateNow)
	if got[0].Deadline != nil {
		t.Errorf("unrelated event produced a deadline: %+v", got[0].Deadline)
	}
}

func TestAnnotateDeadlinesExcludesPending(t *testing.T) {
	tasks := []model.Task{
		{Text: "Wait for referee", Project: "COSMOS-Web", Status: model.StatusPending},
		{Text: "Draft paper", Project: "COSMOS-Web"},
	}
	events := []model.Event{
		{Summary: "COSMOS-Web telecon", Start: inDays(3, 10), End: inDays(3, 11)},
	}

	got := AnnotateDeadlines(tasks, events, annotateNow)
	if len(got) != 1 || got[0].Text != "Draft paper" {
		t.Fatalf("pending task leaked into annotated output: %v", texts(got))
	}
}

func TestAnnotateDeadlinesReRanks(t *testing.T) {
	tasks := []model.Task{
		{Text: "Hard but undated", Priority: model.LevelHigh, Effort: model.LevelHigh, Project: "archive-dive"},
		{Text: "Due soon", Priority: model.LevelHigh, Effort: model.LevelLow, Project: "COSMOS-Web"},
	}
	events := []model.Event{
		{Summary: "COSMOS-Web telecon", Start: inDays(1, 10), End: inDays(1, 11)},
	}

	got := AnnotateDeadlines(tasks, events, annotateNow)
	if got[0].Text != "Due soon" {
		t.Errorf("annotated task should rank first, got order %v", texts(got))
	}
}

func TestAnnotateDeadlinesLeavesInputUntouched(t *testing.T) {
	tasks := []model.Task{
		{Text: "Draft paper", Project: "COSMOS-Web", Priority: model.LevelHigh},
	}
	events := []model.Event{
		{Summary: "COSMOS-Web telecon", Start: inDays(3, 10), End: inDays(3, 11)},
	}

	AnnotateDeadlines(tasks, events, annotateNow)
	if tasks[0].Deadline != nil {
		t.Error("input task was mutated")
	}
}

func TestAnnotateDeadlinesDeterministic(t *testing.T) {
	tasks := []model.Task{{Text: "Plan observing run", Project: "survey planning"}}
	events := []model.Event{
		{Summary: "survey telecon A", Start: inDays(5, 10), End: inDays(5, 11)},
		{Summary: "survey telecon B", Start: inDays(5, 14), End: inDays(5, 15)},
	}

	// Two events on the same day: the first in input order wins, every run.
	for i := 0; i < 10; i++ {
		got := AnnotateDeadlines(tasks, events, annotateNow)
		if got[0].Deadline == nil || got[0].Deadline.Event != "survey telecon A" {
			t.Fatalf("run %d picked %+v, want \"survey telecon A\"", i, got[0].Deadline)
		}
	}
}
