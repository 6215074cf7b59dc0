// Package schedule holds the planning logic that runs before any plan text
// is generated: ranking the task backlog, inferring soft deadlines from
// upcoming calendar events, and picking the next task that fits a free
// window. Every function is a pure transform over the snapshots it is
// given; the current time always arrives as an argument.
package schedule

import "strings"

// stopWords is the scheduling vocabulary too generic to signal that a task
// and an event belong together: conjunctions, prepositions, and the nouns
// that appear in almost every calendar entry. Never mutated after init.
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "about": true,
	"meeting": true, "call": true, "chat": true, "sync": true, "catch": true,
	"work": true, "review": true, "session": true, "team": true,
	"weekly": true, "daily": true, "monthly": true,
}

// Keywords reduces free text to its significant words: lowercased, split on
// whitespace after normalizing hyphens and underscores to spaces, keeping
// tokens of three or more runes that are not stop words. This is a crude
// heuristic signal, not semantic matching: "COSMOS-Web telecon" and a task
// filed under "COSMOS-Web" relate only because they share a token.
func Keywords(text string) map[string]bool {
	cleaned := strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(text))
	words := make(map[string]bool)
	for _, token := range strings.Fields(cleaned) {
		if len([]rune(token)) < 3 || stopWords[token] {
			continue
		}
		words[token] = true
	}
	return words
}

// Related reports whether two keyword sets share at least one word.
func Related(a, b map[string]bool) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for word := range a {
		if b[word] {
			return true
		}
	}
	return false
}
