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
	weekHours  string
	weekOutput string
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Generate a plan for the current working week",
	Long: `Generate a markdown plan for this week (Monday through Friday) from
your Notion backlog and Google Calendar, via Gemini.

Working hours are given per day, for example:
  dayplan week --hours "Mon 10-16, Tue 10-16, Wed 10-12:30, Thu 10-16, Fri 10-15"

The plan is written to week_plan_<ddmon>.md (named after the Monday)
unless --output says otherwise, and its path is remembered so a later
'dayplan day' can use it as context.`,
	RunE: runWeek,
}

func init() {
	weekCmd.Flags().StringVar(&weekHours, "hours", "", `working hours per day, e.g. "Mon 10-16, Wed 10-12:30"`)
	weekCmd.Flags().StringVar(&weekOutput, "output", "", "write the plan to this file instead of the default")
	weekCmd.MarkFlagRequired("hours")
}

func runWeek(cmd *cobra.Command, args []string) error {
	if err := requireEnv("NOTION_TOKEN", "NOTION_DATABASE_ID", "GEMINI_API_KEY"); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := cmd.Context()
	now := time.Now()

	list, err := fetchTasks(ctx)
	if err != nil {
		return err
	}

	cal, err := calendarClient(ctx, cfg)
	if err != nil {
		return err
	}
	fmt.Println("Fetching this week's calendar events...")
	weekEvents, err := cal.EventsThisWeek(now)
	if err != nil {
		return err
	}
	fmt.Printf("  Found %d events.\n", len(weekEvents))

	upcoming, err := cal.EventsUpcoming(now)
	if err != nil {
		return err
	}
	list.Actionable = schedule.AnnotateDeadlines(list.Actionable, upcoming, now)

	gen, err := planner.NewGemini(ctx, os.Getenv("GEMINI_API_KEY"), cfg.Model)
	if err != nil {
		return err
	}
	fmt.Println("Generating weekly plan with Gemini...")
	plan, err := planner.New(gen).WeeklyPlan(ctx, planner.WeekRequest{
		WeekLabel:    dates.WeekLabel(now),
		WorkingHours: weekHours,
		EventsText:   gcal.FormatForPrompt(weekEvents),
		TasksText:    notion.FormatForPrompt(list),
		Tasks:        list,
	})
	if err != nil {
		return err
	}

	outPath := weekOutput
	if outPath == "" {
		outPath = dates.WeekPlanFilename(now)
	}
	if err := os.WriteFile(outPath, []byte(plan), 0644); err != nil {
		return fmt.Errorf("failed to write plan to %s: %w", outPath, err)
	}

	cfg.LastWeekPlan = outPath
	if err := config.Save(cfg); err != nil {
		log.Printf("Warning: could not remember week plan path: %v", err)
	}

	fmt.Printf("\nWeekly plan written to: %s\n", outPath)
	return nil
}
