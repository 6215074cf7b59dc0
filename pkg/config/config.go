// Package config persists the planner's few defaults as JSON under the
// user's config directory. Secrets never land here: the Notion and Gemini
// credentials stay in the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	xdgAppName = "dayplan"
	configFile = "config.json"
)

const (
	// DefaultCalendarID is the Google Calendar queried when none is
	// configured; "primary" is the account's main calendar.
	DefaultCalendarID = "primary"
	// DefaultModel is the Gemini model used for plan generation.
	DefaultModel = "gemini-2.0-flash"
)

type Config struct {
	CalendarID string `json:"calendar_id"`
	Model      string `json:"model"`
	// LastWeekPlan remembers where the most recent week plan was written,
	// so a later `day` run can feed it to the prompt as context.
	LastWeekPlan string `json:"last_week_plan,omitempty"`
}

func GetConfigPath() (string, error) {
	xdgHome, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(xdgHome, ".config", xdgAppName, configFile), nil
}

func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{CalendarID: DefaultCalendarID, Model: DefaultModel}, nil
		}
		return nil, err
	}
	defer f.Close()

	var cfg Config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = DefaultCalendarID
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return &cfg, nil
}

func Save(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open config file for writing: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	return encoder.Encode(cfg)
}
