package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrisonrobin/dayplan/pkg/auth"
	"github.com/harrisonrobin/dayplan/pkg/config"
	"github.com/harrisonrobin/dayplan/pkg/gcal"
	"github.com/harrisonrobin/dayplan/pkg/model"
	"github.com/harrisonrobin/dayplan/pkg/notion"
)

var rootCmd = &cobra.Command{
	Use:   "dayplan",
	Short: "Generate daily and weekly plans from Notion tasks and Google Calendar",
	Long: `dayplan reads your task backlog from a Notion database, your meetings
from Google Calendar, and asks Gemini to lay out a realistic schedule
around them.

Commands:
  week   generate a plan for the current working week
  day    generate a plan for a single day
  next   suggest the one task to do right now (no LLM call)

Credentials come from the environment (a .env file in the working
directory is loaded automatically): NOTION_TOKEN, NOTION_DATABASE_ID and
GEMINI_API_KEY. Google Calendar access is set up once with 'dayplan auth'.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// requireEnv fails fast when a credential is missing, before any network
// call is made.
func requireEnv(names ...string) error {
	for _, name := range names {
		if os.Getenv(name) == "" {
			return fmt.Errorf("%s is not set. Copy .env.example to .env and fill it in, or export it", name)
		}
	}
	return nil
}

// calendarID resolves the calendar to query: the GOOGLE_CALENDAR_ID
// environment variable wins over the configured default.
func calendarID(cfg *config.Config) string {
	if id := os.Getenv("GOOGLE_CALENDAR_ID"); id != "" {
		return id
	}
	return cfg.CalendarID
}

func fetchTasks(ctx context.Context) (model.TaskList, error) {
	fmt.Println("Fetching tasks from Notion...")
	client := notion.NewClient(os.Getenv("NOTION_TOKEN"), os.Getenv("NOTION_DATABASE_ID"))
	list, err := client.FetchTasks(ctx)
	if err != nil {
		return model.TaskList{}, err
	}
	fmt.Printf("  Found %d actionable, %d pending.\n", len(list.Actionable), len(list.Pending))
	return list, nil
}

func calendarClient(ctx context.Context, cfg *config.Config) (*gcal.Client, error) {
	srv, err := auth.CalendarService(ctx)
	if err != nil {
		return nil, err
	}
	return gcal.NewClient(srv, calendarID(cfg)), nil
}
