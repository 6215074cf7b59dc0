// Package planner turns the ranked backlog and the calendar into a plan
// document: it assembles the planning prompt, calls the generative
// service, and repairs any project tags the generated text dropped.
package planner

import (
	"context"

	"github.com/harrisonrobin/dayplan/pkg/model"
)

// Planner drives one plan generation end to end.
type Planner struct {
	gen Generator
}

func New(gen Generator) *Planner {
	return &Planner{gen: gen}
}

// WeekRequest carries everything a weekly plan needs. EventsText and
// TasksText are the preformatted prompt blocks; Tasks is the full list
// again, for tag reconciliation of the generated text.
type WeekRequest struct {
	WeekLabel    string
	WorkingHours string
	EventsText   string
	TasksText    string
	Tasks        model.TaskList
}

// WeeklyPlan generates the plan for a whole working week.
func (p *Planner) WeeklyPlan(ctx context.Context, req WeekRequest) (string, error) {
	user := WeeklyPrompt(req.WeekLabel, req.WorkingHours, req.EventsText, req.TasksText)
	plan, err := p.gen.Generate(ctx, weeklySystemPrompt, user)
	if err != nil {
		return "", err
	}
	return ReinsertTags(plan, BuildTagLookup(req.Tasks)), nil
}

// DayRequest carries everything a daily plan needs. WeekPlan is optional
// context from an existing week plan, empty when there is none.
type DayRequest struct {
	DayLabel   string
	Arrive     string
	Leave      string
	EventsText string
	TasksText  string
	WeekPlan   string
	Tasks      model.TaskList
}

// DailyPlan generates the plan for a single day.
func (p *Planner) DailyPlan(ctx context.Context, req DayRequest) (string, error) {
	user := DailyPrompt(req.DayLabel, req.Arrive, req.Leave, req.EventsText, req.TasksText, req.WeekPlan)
	plan, err := p.gen.Generate(ctx, dailySystemPrompt, user)
	if err != nil {
		return "", err
	}
	return ReinsertTags(plan, BuildTagLookup(req.Tasks)), nil
}
