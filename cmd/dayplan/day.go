package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrisonrobin/dayplan/pkg/config"
	"github.com/harrisonrobin/dayplan/pkg/dates"
	"github.com/harrisonrobin/dayplan/pkg/gcal"
	"github.com/harrisonrobin/dayplan/pkg/notion"
	"github.com/harrisonrobin/dayplan/pkg/planner"
	"github.com/harrisonrobin/dayplan/pkg/schedule"
)

var (
	dayArrive   string
	dayLeave    string
	dayWeekPlan string
	dayOutput   string
)

var dayCmd = &cobra.Command{
	Use:   "day [day-name]",
	Short: "Generate a plan for a single day",
	Long: `Generate a markdown plan for one day from your Notion backlog and that
day's calendar events, via Gemini.

With no argument the plan is for today; a day name like 'thursday' (or
'thu') picks the nearest upcoming such date. Arrival and leave times
bound the plan:
  dayplan day --arrive 09:30 --leave 16:00
  dayplan day thursday --arrive 10:00 --leave 17:30

If a week plan was generated earlier its text is fed to Gemini as
context; --week-plan points at a different file. The plan is written to
day_plan_<ddmon>.md unless --output says otherwise.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDay,
}

func init() {
	dayCmd.Flags().StringVar(&dayArrive, "arrive", "", "arrival time, HH:MM")
	dayCmd.Flags().StringVar(&dayLeave, "leave", "", "leave time, HH:MM")
	dayCmd.Flags().StringVar(&dayWeekPlan, "week-plan", "", "week plan file to include as context")
	dayCmd.Flags().StringVar(&dayOutput, "output", "", "write the plan to this file instead of the default")
	dayCmd.MarkFlagRequired("arrive")
	dayCmd.MarkFlagRequired("leave")
}

func runDay(cmd *cobra.Command, args []string) error {
	if err := requireEnv("NOTION_TOKEN", "NOTION_DATABASE_ID", "GEMINI_API_KEY"); err != nil {
		return err
	}

	// Validate everything user-supplied before touching the network.
	now := time.Now()
	dayName := ""
	if len(args) > 0 {
		dayName = args[0]
	}
	target, err := dates.ResolveDay(dayName, now)
	if err != nil {
		return err
	}
	if _, err := dates.ParseClock(dayArrive); err != nil {
		return err
	}
	if _, err := dates.ParseClock(dayLeave); err != nil {
		return err
	}

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
	fmt.Printf("Fetching calendar events for %s...\n", dates.DayLabel(target))
	dayEvents, err := cal.EventsForDay(target)
	if err != nil {
		return err
	}
	fmt.Printf("  Found %d events.\n", len(dayEvents))

	upcoming, err := cal.EventsUpcoming(now)
	if err != nil {
		return err
	}
	list.Actionable = schedule.AnnotateDeadlines(list.Actionable, upcoming, now)

	gen, err := planner.NewGemini(ctx, os.Getenv("GEMINI_API_KEY"), cfg.Model)
	if err != nil {
		return err
	}
	fmt.Println("Generating daily plan with Gemini...")
	plan, err := planner.New(gen).DailyPlan(ctx, planner.DayRequest{
		DayLabel:   dates.DayLabel(target),
		Arrive:     dayArrive,
		Leave:      dayLeave,
		EventsText: gcal.FormatForPrompt(dayEvents),
		TasksText:  notion.FormatForPrompt(list),
		WeekPlan:   readWeekPlan(cfg),
		Tasks:      list,
	})
	if err != nil {
		return err
	}

	outPath := dayOutput
	if outPath == "" {
		outPath = dates.DayPlanFilename(target)
	}
	if err := os.WriteFile(outPath, []byte(plan), 0644); err != nil {
		return fmt.Errorf("failed to write plan to %s: %w", outPath, err)
	}

	fmt.Printf("\nDaily plan written to: %s\n", outPath)
	return nil
}

// readWeekPlan returns the contents of the week plan used as prompt
// context: the --week-plan file when given, otherwise the one remembered
// from the last `week` run. An unreadable explicit file is worth a
// warning; a stale remembered path is silently skipped.
func readWeekPlan(cfg *config.Config) string {
	path := dayWeekPlan
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Warning: could not read week plan %s: %v", path, err)
			return ""
		}
		return string(b)
	}
	if cfg.LastWeekPlan == "" {
		return ""
	}
	b, err := os.ReadFile(cfg.LastWeekPlan)
	if err != nil {
		return ""
	}
	fmt.Printf("Including week plan context from %s.\n", cfg.LastWeekPlan)
	return string(b)
}
