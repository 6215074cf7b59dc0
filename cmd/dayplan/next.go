package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harrisonrobin/dayplan/pkg/config"
	"github.com/harrisonrobin/dayplan/pkg/dates"
	"github.com/harrisonrobin/dayplan/pkg/model"
	"github.com/harrisonrobin/dayplan/pkg/schedule"
)

var nextLeave string

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Suggest the one task to do right now",
	Long: `Work out how long you have until your next meeting (or until you
leave) and suggest the single best-ranked task that fits that window.
High-effort tasks need a 90 minute stretch, medium 45; quick tasks fit
any 15 minute gap.

No LLM is involved; this only needs Notion and Calendar access:
  dayplan next --leave 17:00`,
	RunE: runNext,
}

func init() {
	nextCmd.Flags().StringVar(&nextLeave, "leave", "", "when you leave today, HH:MM")
	nextCmd.MarkFlagRequired("leave")
}

func runNext(cmd *cobra.Command, args []string) error {
	if err := requireEnv("NOTION_TOKEN", "NOTION_DATABASE_ID"); err != nil {
		return err
	}

	now := time.Now()
	leaveClock, err := dates.ParseClock(nextLeave)
	if err != nil {
		return err
	}
	leave := dates.At(now, leaveClock)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := cmd.Context()

	list, err := fetchTasks(ctx)
	if err != nil {
		return err
	}

	cal, err := calendarClient(ctx, cfg)
	if err != nil {
		return err
	}
	fmt.Println("Fetching upcoming calendar events...")
	upcoming, err := cal.EventsUpcoming(now)
	if err != nil {
		return err
	}

	ranked := schedule.AnnotateDeadlines(list.Actionable, upcoming, now)
	window := schedule.Window(now, leave, upcoming)

	fmt.Printf("\nIt's %s. You have %d minutes until %s.\n\n", now.Format("15:04"), window.Minutes, windowEnd(window))

	if window.Minutes <= 0 {
		fmt.Println("No time available before your next commitment.")
		return nil
	}

	pick := schedule.SuggestNext(ranked, window.Minutes)
	if pick == nil {
		fmt.Println("No tasks fit the available time window.")
		return nil
	}
	printSuggestion(*pick)

	if window.NextMeeting != nil {
		fmt.Printf("\n  After that: %s at %s\n", window.NextMeeting.Summary, window.NextMeeting.Start.Format("15:04"))
	} else {
		fmt.Printf("\n  After that: end of day at %s\n", leave.Format("15:04"))
	}
	return nil
}

// windowEnd describes what bounds the current window.
func windowEnd(w schedule.SessionWindow) string {
	if w.CutShortByMeeting() {
		return fmt.Sprintf("your next meeting (%s at %s)", w.NextMeeting.Summary, w.NextMeeting.Start.Format("15:04"))
	}
	return fmt.Sprintf("end of day (%s)", w.Leave.Format("15:04"))
}

func printSuggestion(t model.Task) {
	project := t.Project
	if project == "" {
		project = "no project"
	}

	fmt.Println("  Suggested next task:")
	fmt.Printf("  %s %s\n", color.CyanString("[%s]", project), color.GreenString("%s", t.Text))
	if t.Quick {
		fmt.Printf("  Priority: %s  |  Quick (~15 min)\n", t.Priority)
	} else {
		fmt.Printf("  Priority: %s  |  Effort: %s\n", t.Priority, t.Effort)
	}
	if t.Deadline != nil {
		fmt.Printf("  Due: %s\n", color.YellowString("%s", deadlinePhrase(t.Deadline)))
	}
}

func deadlinePhrase(d *model.Deadline) string {
	switch d.Days {
	case 0:
		return d.Event + " today"
	case 1:
		return d.Event + " tomorrow"
	default:
		return fmt.Sprintf("%s in %d days", d.Event, d.Days)
	}
}
