package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrisonrobin/dayplan/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Manage configuration",
	Long: `View or modify dayplan configuration.

Without arguments, displays current configuration.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/dayplan/config.json. Settable keys:
  calendar_id   Google Calendar to read ("primary" for your main one)
  model         Gemini model used for plan generation`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		switch len(args) {
		case 0:
			showConfig(cfg)
			return nil
		case 1:
			return showConfigKey(cfg, args[0])
		default:
			return setConfigKey(cfg, args[0], args[1])
		}
	},
}

func showConfig(cfg *config.Config) {
	fmt.Printf("calendar_id: %s\n", cfg.CalendarID)
	fmt.Printf("model: %s\n", cfg.Model)
	if cfg.LastWeekPlan != "" {
		fmt.Printf("last_week_plan: %s\n", cfg.LastWeekPlan)
	}
}

func showConfigKey(cfg *config.Config, key string) error {
	switch key {
	case "calendar_id":
		fmt.Println(cfg.CalendarID)
	case "model":
		fmt.Println(cfg.Model)
	case "last_week_plan":
		fmt.Println(cfg.LastWeekPlan)
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

func setConfigKey(cfg *config.Config, key, value string) error {
	switch key {
	case "calendar_id":
		cfg.CalendarID = value
	case "model":
		cfg.Model = value
	default:
		return fmt.Errorf("unknown configuration key: %s (settable keys: calendar_id, model)", key)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}
