package planner

import "fmt"

// sharedPrinciples is folded into both system prompts: the rules that hold
// for any plan this tool generates.
const sharedPrinciples = `
CALENDAR EVENTS ARE IMMUTABLE. Every calendar event must appear in the schedule exactly as given,
at its exact time. Do not move, omit, or replace any calendar event. Place all events first,
then fill the remaining gaps with tasks.

FIXED DAILY BLOCKS — include these every working day, in addition to calendar events:
- 15 minutes mid-morning: "Check emails"
- 15 minutes mid-afternoon: "Check emails"
- At least 30 minutes for lunch, placed anywhere between 12:00 and 13:00 — choose the time that best fits the schedule around it

TASK SCHEDULING RULES:
- Tasks marked "quick — 15 min" are trivial: allocate exactly 15 minutes, use short gaps
- For all other tasks, effort reflects cognitive difficulty and guides time allocation:
    high effort   → 2–3 hour block (deep, demanding work)
    medium effort → 1–1.5 hour block (focused but manageable)
    low effort    → 30–60 minutes
- High priority tasks should be scheduled earlier
- Tasks with a "due:" note must land before their due event — the sooner it is, the earlier they go
- Deep work (high/medium effort) should be in blocks of at least 60 minutes — do not fragment
- If a high or medium effort task cannot fit in one contiguous block, split it across two
  sessions in the same day, labelling them "(session 1/2)" and "(session 2/2)"
- Never schedule PENDING tasks — list them in a separate waiting section
- Don't overfill: if tasks don't fit, move them to carry-forward`

const weeklySystemPrompt = `You are a planning assistant helping a researcher organise their work week.
You are concise, practical, and realistic about time.
` + sharedPrinciples + `

- Only include days that are explicitly listed in the working hours — do not invent or assume hours for other days
- Mark tasks as carry-forward if the schedule is already full
- Output clean markdown with the same structure as the example format provided`

const dailySystemPrompt = `You are a planning assistant helping a researcher plan their working day.
You are concise, practical, and realistic about time.
` + sharedPrinciples + `

- Only schedule tasks during the user's stated working hours
- Be honest if there isn't time for everything — flag tasks as carry-forward
- Output clean markdown, time-blocked, ready to use`

// WeeklyPrompt assembles the user message for a week plan.
func WeeklyPrompt(weekLabel, workingHours, eventsText, tasksText string) string {
	return fmt.Sprintf(`Please create a weekly plan for the week of %s.

Working hours this week (ONLY schedule these days):
%s

Calendar events this week (IMMUTABLE — include every one at its exact time, schedule tasks around them):
%s

Uncompleted tasks from my todo list (schedule these in the free time between events):
%s

Instructions:
1. For each day in the working hours, first lay out all calendar events at their fixed times
2. Identify the free gaps between events within working hours
3. Fill those gaps with tasks, prioritising deep work in longer blocks
4. Move anything that doesn't fit to the carry-forward section

Each task has a project tag in square brackets and metadata in parentheses. You MUST preserve the project tag exactly as given — do not rename or generalise it.

Format as markdown:
## Wednesday 11 Feb — 11:51 to 13:30
- [ ] 11:51–12:30 — [COSMOS-Web] Task name (priority: high, effort: medium)
- [ ] 12:30–13:30 — Meeting: event name
`, weekLabel, workingHours, eventsText, tasksText)
}

// DailyPrompt assembles the user message for a day plan. weekPlan is the
// text of an existing week plan for context, or empty.
func DailyPrompt(dayLabel, arrive, leave, eventsText, tasksText, weekPlan string) string {
	weekContext := ""
	if weekPlan != "" {
		weekContext = "For context, here is my existing week plan:\n\n" + weekPlan
	}
	return fmt.Sprintf(`Please create a plan for %s.

I'm working from %s to %s today.

Today's calendar events (IMMUTABLE — include every one at its exact time):
%s

Uncompleted tasks from my todo list (schedule these in the free gaps between events):
%s

%s

Instructions:
1. Lay out all calendar events at their fixed times first
2. Identify free gaps within my working hours
3. Fill those gaps with tasks — prioritise deep work in longer blocks
4. Anything that doesn't fit goes to carry-forward

Each task has a project tag in square brackets and metadata in parentheses. You MUST preserve the project tag exactly as given — do not rename or generalise it.

Format as a markdown file with time-blocked tasks. Be realistic — if something won't fit, say so.`,
		dayLabel, arrive, leave, eventsText, tasksText, weekContext)
}
