package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harrisonrobin/dayplan/pkg/auth"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate with Google Calendar",
	Long: `Run the Google OAuth consent flow and cache the resulting token.

Put the OAuth client file downloaded from the Google Cloud Console at
~/.config/dayplan/credentials.json first. Any previously cached token is
removed so the flow starts fresh.`,
	RunE: runAuth,
}

func runAuth(cmd *cobra.Command, args []string) error {
	tokenPath, err := auth.TokenPath()
	if err != nil {
		return fmt.Errorf("could not find path to configuration: %w", err)
	}

	if _, err := os.Stat(tokenPath); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("could not check token file %s: %v", tokenPath, err)
		}
	} else {
		log.Printf("Removing existing token at %s", tokenPath)
		if err := os.Remove(tokenPath); err != nil {
			return fmt.Errorf("could not delete token file %s (please delete it manually): %w", tokenPath, err)
		}
	}

	if _, err := auth.CalendarService(cmd.Context()); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}
	fmt.Printf("%s Authentication successful! Token saved to %s\n", color.GreenString("✓"), tokenPath)
	return nil
}
