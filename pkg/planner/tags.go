package planner

import (
	"strings"

	"github.com/harrisonrobin/dayplan/pkg/model"
)

// Plan lines the reconciler rewrites look like
//
//	- [ ] 10:00–11:00 — [COSMOS-Web] Draft paper (priority: high, effort: high)
//
// detected by the checkbox marker and the em-dash separator.
const (
	taskMarker = "- [ ]"
	separator  = "—"
)

// TagLookup maps lowercased task text to its bracketed project tag. It
// keeps insertion order so the reconciler's first-match rule picks the
// same entry on every run.
type TagLookup struct {
	texts []string
	tags  map[string]string
}

// BuildTagLookup indexes every task that has a project, actionable tasks
// first and then pending. Tasks without a project get no entry, so their
// plan lines are never rewritten. A duplicate text keeps its first
// position; the later tag wins.
func BuildTagLookup(list model.TaskList) *TagLookup {
	lookup := &TagLookup{tags: make(map[string]string)}
	lookup.addAll(list.Actionable)
	lookup.addAll(list.Pending)
	return lookup
}

func (l *TagLookup) addAll(tasks []model.Task) {
	for _, t := range tasks {
		if t.Project == "" {
			continue
		}
		text := strings.ToLower(t.Text)
		if _, seen := l.tags[text]; !seen {
			l.texts = append(l.texts, text)
		}
		l.tags[text] = t.Tag()
	}
}

// Len reports how many tasks are indexed.
func (l *TagLookup) Len() int {
	return len(l.texts)
}

// ReinsertTags repairs generated plan text in which the model dropped a
// task's project tag. For every task line whose description does not
// already start with a bracketed tag, it looks for a known task whose text
// contains or is contained by the description (metadata stripped, both
// lowercased) and re-inserts that task's tag after the separator. The
// two-way containment is deliberately lenient, trading precision for
// recall: a silently lost tag is worse than an occasional wrong one.
// Unmatched lines and non-task lines pass through unchanged; the result is
// stable under re-application.
func ReinsertTags(plan string, lookup *TagLookup) string {
	if lookup == nil || lookup.Len() == 0 {
		return plan
	}
	lines := strings.Split(plan, "\n")
	for i, line := range lines {
		lines[i] = reinsertLine(line, lookup)
	}
	return strings.Join(lines, "\n")
}

func reinsertLine(line string, lookup *TagLookup) string {
	if !strings.HasPrefix(strings.TrimSpace(line), taskMarker) || !strings.Contains(line, separator) {
		return line
	}

	parts := strings.SplitN(line, separator, 2)
	after := strings.TrimSpace(parts[1])
	if strings.HasPrefix(after, "[") {
		return line // already tagged
	}

	// Strip trailing metadata like "(priority: ...)" before matching.
	clean := strings.TrimSpace(strings.SplitN(strings.ToLower(after), "(priority:", 2)[0])
	for _, text := range lookup.texts {
		if strings.Contains(clean, text) || strings.Contains(text, clean) {
			return parts[0] + separator + " " + lookup.tags[text] + " " + after
		}
	}
	return line
}
