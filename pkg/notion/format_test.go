package notion

import (
	"strings"
	"testing"

	"github.com/harrisonrobin/dayplan/pkg/model"
)

func TestFormatTaskLine(t *testing.T) {
	cases := []struct {
		task model.Task
		want string
	}{
		{
			model.Task{Text: "Draft paper", Project: "COSMOS-Web", Priority: model.LevelHigh, Effort: model.LevelHigh},
			"- [COSMOS-Web] Draft paper (priority: high, effort: high)",
		},
		{
			model.Task{Text: "File expenses", Project: "ADMIN", Priority: model.LevelLow, Quick: true},
			"- [ADMIN] File expenses (quick — 15 min, priority: low)",
		},
		{
			model.Task{Text: "Buy coffee beans"},
			"- Buy coffee beans (priority: unset, effort: unset)",
		},
		{
			model.Task{Text: "Draft paper", Project: "COSMOS-Web", Priority: model.LevelHigh, Effort: model.LevelHigh,
				Deadline: &model.Deadline{Days: 3, Event: "COSMOS-Web telecon"}},
			"- [COSMOS-Web] Draft paper (priority: high, effort: high, due: COSMOS-Web telecon in 3 days)",
		},
		{
			model.Task{Text: "Prep slides", Project: "COSMOS-Web", Priority: model.LevelMedium, Effort: model.LevelLow,
				Deadline: &model.Deadline{Days: 0, Event: "COSMOS-Web telecon"}},
			"- [COSMOS-Web] Prep slides (priority: medium, effort: low, due: COSMOS-Web telecon today)",
		},
		{
			model.Task{Text: "Send agenda", Project: "COSMOS-Web", Quick: true,
				Deadline: &model.Deadline{Days: 1, Event: "COSMOS-Web telecon"}},
			"- [COSMOS-Web] Send agenda (quick — 15 min, priority: unset, due: COSMOS-Web telecon in 1 day)",
		},
	}
	for _, c := range cases {
		if got := FormatTaskLine(c.task); got != c.want {
			t.Errorf("FormatTaskLine = %q, want %q", got, c.want)
		}
	}
}

func TestFormatForPrompt(t *testing.T) {
	list := model.TaskList{
		Actionable: []model.Task{
			{Text: "Draft paper", Project: "COSMOS-Web", Priority: model.LevelHigh, Effort: model.LevelHigh},
		},
		Pending: []model.Task{
			{Text: "Wait for referee report", Project: "NGC-1068", Status: model.StatusPending},
			{Text: "Hear back from admin", Status: model.StatusPending},
		},
	}

	got := FormatForPrompt(list)
	want := strings.Join([]string{
		"ACTIONABLE TASKS — schedule these, higher priority first, allow more time for higher effort:",
		"- [COSMOS-Web] Draft paper (priority: high, effort: high)",
		"",
		"PENDING TASKS — do NOT schedule these; list them in a 'Waiting / pending' section:",
		"- [NGC-1068] Wait for referee report",
		"- Hear back from admin",
	}, "\n")
	if got != want {
		t.Errorf("FormatForPrompt =\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatForPromptNoActionable(t *testing.T) {
	got := FormatForPrompt(model.TaskList{})
	if got != "ACTIONABLE TASKS: none." {
		t.Errorf("FormatForPrompt = %q", got)
	}
}

func TestFormatForPromptNoPendingSection(t *testing.T) {
	list := model.TaskList{
		Actionable: []model.Task{{Text: "Only task"}},
	}
	if got := FormatForPrompt(list); strings.Contains(got, "PENDING") {
		t.Errorf("empty pending list should not emit a PENDING section:\n%s", got)
	}
}
