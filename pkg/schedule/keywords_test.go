package schedule

import (
	"reflect"
	"testing"
)

func TestKeywords(t *testing.T) {
	got := Keywords("Draft COSMOS-Web paper")
	want := map[string]bool{"draft": true, "cosmos": true, "web": true, "paper": true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keywords = %v, want %v", got, want)
	}
}

func TestKeywordsNormalizesSeparators(t *testing.T) {
	got := Keywords("data_reduction-pipeline")
	want := map[string]bool{"data": true, "reduction": true, "pipeline": true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keywords = %v, want %v", got, want)
	}
}

func TestKeywordsDropsShortAndStopWords(t *testing.T) {
	got := Keywords("Go to the weekly team meeting about X")
	// "go", "to", "x" are too short; the rest is stop-listed.
	if len(got) != 0 {
		t.Errorf("expected empty set, got %v", got)
	}
}

func TestKeywordsEmptyInput(t *testing.T) {
	if got := Keywords(""); len(got) != 0 {
		t.Errorf("Keywords(\"\") = %v, want empty set", got)
	}
	if got := Keywords("   "); len(got) != 0 {
		t.Errorf("Keywords(whitespace) = %v, want empty set", got)
	}
}

func TestRelated(t *testing.T) {
	a := Keywords("COSMOS-Web")
	b := Keywords("COSMOS-Web telecon")
	c := Keywords("Dentist appointment")
	if !Related(a, b) {
		t.Errorf("expected %v and %v to be related", a, b)
	}
	if Related(a, c) {
		t.Errorf("expected %v and %v to be unrelated", a, c)
	}
	if Related(nil, b) || Related(a, nil) {
		t.Error("empty set should relate to nothing")
	}
}
