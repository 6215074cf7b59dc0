package planner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/harrisonrobin/dayplan/pkg/model"
)

// fakeGenerator records the prompts it was given and returns a canned
// plan, standing in for the Gemini API.
type fakeGenerator struct {
	system string
	user   string
	reply  string
	err    error
}

func (f *fakeGenerator) Generate(_ context.Context, system, user string) (string, error) {
	f.system = system
	f.user = user
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

var promptTasks = model.TaskList{
	Actionable: []model.Task{
		{Text: "Draft paper", Project: "COSMOS-Web", Priority: model.LevelHigh, Effort: model.LevelHigh},
	},
}

func TestWeeklyPlanPrompt(t *testing.T) {
	gen := &fakeGenerator{reply: "## Monday\n"}
	p := New(gen)

	_, err := p.WeeklyPlan(context.Background(), WeekRequest{
		WeekLabel:    "9 Feb–13 Feb 2026",
		WorkingHours: "Mon 10-16, Wed 10-12:30",
		EventsText:   "- Monday 14:00–15:00: Group meeting",
		TasksText:    "- [COSMOS-Web] Draft paper (priority: high, effort: high)",
		Tasks:        promptTasks,
	})
	if err != nil {
		t.Fatalf("WeeklyPlan failed: %v", err)
	}

	for _, want := range []string{
		"week of 9 Feb–13 Feb 2026",
		"Mon 10-16, Wed 10-12:30",
		"- Monday 14:00–15:00: Group meeting",
		"- [COSMOS-Web] Draft paper (priority: high, effort: high)",
	} {
		if !strings.Contains(gen.user, want) {
			t.Errorf("weekly user prompt missing %q", want)
		}
	}
	if !strings.Contains(gen.system, "organise their work week") {
		t.Errorf("wrong system prompt:\n%s", gen.system)
	}
	if !strings.Contains(gen.system, "CALENDAR EVENTS ARE IMMUTABLE") {
		t.Error("system prompt missing the shared principles")
	}
}

func TestWeeklyPlanReinsertsDroppedTags(t *testing.T) {
	gen := &fakeGenerator{reply: "- [ ] 10:00–11:00 — Draft paper (priority: high, effort: high)"}
	p := New(gen)

	plan, err := p.WeeklyPlan(context.Background(), WeekRequest{Tasks: promptTasks})
	if err != nil {
		t.Fatalf("WeeklyPlan failed: %v", err)
	}
	want := "- [ ] 10:00–11:00 — [COSMOS-Web] Draft paper (priority: high, effort: high)"
	if plan != want {
		t.Errorf("plan = %q, want reconciled %q", plan, want)
	}
}

func TestDailyPlanPrompt(t *testing.T) {
	gen := &fakeGenerator{reply: "plan"}
	p := New(gen)

	_, err := p.DailyPlan(context.Background(), DayRequest{
		DayLabel:   "Monday 9 February 2026",
		Arrive:     "10:00",
		Leave:      "16:00",
		EventsText: "No calendar events.",
		TasksText:  "ACTIONABLE TASKS: none.",
		Tasks:      promptTasks,
	})
	if err != nil {
		t.Fatalf("DailyPlan failed: %v", err)
	}

	for _, want := range []string{
		"plan for Monday 9 February 2026",
		"from 10:00 to 16:00",
		"No calendar events.",
	} {
		if !strings.Contains(gen.user, want) {
			t.Errorf("daily user prompt missing %q", want)
		}
	}
	if strings.Contains(gen.user, "existing week plan") {
		t.Error("week-plan context present without a week plan")
	}
	if !strings.Contains(gen.system, "plan their working day") {
		t.Errorf("wrong system prompt:\n%s", gen.system)
	}
}

func TestDailyPlanWeekContext(t *testing.T) {
	gen := &fakeGenerator{reply: "plan"}
	p := New(gen)

	_, err := p.DailyPlan(context.Background(), DayRequest{
		DayLabel: "Monday 9 February 2026",
		Arrive:   "10:00",
		Leave:    "16:00",
		WeekPlan: "## Monday\n- [ ] 10:00–11:00 — [COSMOS-Web] Draft paper",
		Tasks:    promptTasks,
	})
	if err != nil {
		t.Fatalf("DailyPlan failed: %v", err)
	}
	if !strings.Contains(gen.user, "For context, here is my existing week plan:") {
		t.Error("week-plan context header missing")
	}
	if !strings.Contains(gen.user, "— [COSMOS-Web] Draft paper") {
		t.Error("week-plan body missing from prompt")
	}
}

func TestPlanGenerationErrorPropagates(t *testing.T) {
	genErr := errors.New("quota exceeded")
	p := New(&fakeGenerator{err: genErr})

	if _, err := p.WeeklyPlan(context.Background(), WeekRequest{}); !errors.Is(err, genErr) {
		t.Errorf("WeeklyPlan error = %v, want wrapped %v", err, genErr)
	}
	if _, err := p.DailyPlan(context.Background(), DayRequest{}); !errors.Is(err, genErr) {
		t.Errorf("DailyPlan error = %v, want wrapped %v", err, genErr)
	}
}
