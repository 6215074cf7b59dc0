// Package auth handles the Google OAuth2 dance for read-only calendar
// access. Credentials and the cached token live under ~/.config/dayplan:
// credentials.json is the client secret downloaded from the Google Cloud
// Console, token.json is written after the first successful consent flow
// and reused on later runs.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	credentialsFile = "credentials.json"
	tokenFile       = "token.json"

	// localAuthPort is where the temporary redirect server listens during
	// the consent flow. The OAuth client in the Google Cloud Console must
	// allow http://localhost:6789/ as a redirect URI.
	localAuthPort = "6789"

	xdgAppName = "dayplan"
)

// ConfigDir returns the directory holding credentials.json and token.json.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", xdgAppName), nil
}

// TokenPath returns the location of the cached OAuth token.
func TokenPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, tokenFile), nil
}

// CalendarService returns an authenticated read-only Google Calendar
// service, running the browser consent flow first if no cached token
// exists.
func CalendarService(ctx context.Context) (*calendar.Service, error) {
	client, err := httpClient(ctx, []string{calendar.CalendarReadonlyScope})
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated client for the Calendar API: %w", err)
	}

	srv, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Google Calendar service: %w", err)
	}
	return srv, nil
}

// httpClient loads the cached token, refreshing and re-saving it when
// expired, or runs the full web authorization flow when no token exists.
func httpClient(ctx context.Context, scopes []string) (*http.Client, error) {
	cfg, err := oauthConfig(scopes)
	if err != nil {
		return nil, err
	}

	tokenPath, err := TokenPath()
	if err != nil {
		return nil, err
	}

	tok, err := tokenFromFile(tokenPath)
	if err != nil {
		log.Printf("No usable token at %s. Starting web authorization flow...", tokenPath)
		tok, err = tokenFromWeb(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to get token from web: %w", err)
		}
		if err := saveToken(tokenPath, tok); err != nil {
			return nil, err
		}
	}

	// A short-lived CLI cannot rely on a background refresh: ask the
	// token source up front so a refreshed token is persisted before the
	// process exits.
	src := cfg.TokenSource(ctx, tok)
	current, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token (try `dayplan auth` to re-authorize): %w", err)
	}
	if current.AccessToken != tok.AccessToken || current.RefreshToken != tok.RefreshToken {
		if err := saveToken(tokenPath, current); err != nil {
			log.Printf("Warning: could not save refreshed token: %v", err)
		}
	}

	return oauth2.NewClient(ctx, src), nil
}

// oauthConfig reads credentials.json and forces the redirect onto our
// local callback port, whatever the downloaded file says.
func oauthConfig(scopes []string) (*oauth2.Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}

	secretsPath := filepath.Join(dir, credentialsFile)
	b, err := os.ReadFile(secretsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read client secret file %s (download it from the Google Cloud Console, APIs & Services > Credentials): %w", secretsPath, err)
	}

	cfg, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file %s: %w", secretsPath, err)
	}
	cfg.RedirectURL = fmt.Sprintf("http://localhost:%s/", localAuthPort)
	return cfg, nil
}

// tokenFromWeb runs the authorization-code flow: a temporary local server
// captures the redirect while the user grants access in their browser.
func tokenFromWeb(cfg *oauth2.Config) (*oauth2.Token, error) {
	codeCh := make(chan string)
	errCh := make(chan error)

	listener, err := net.Listen("tcp", ":"+localAuthPort)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on port %s for the OAuth redirect: %w", localAuthPort, err)
	}
	defer listener.Close()

	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := r.URL.Query().Get("code")
			if code == "" {
				http.Error(w, "Authorization code not found", http.StatusBadRequest)
				errCh <- fmt.Errorf("authorization code not found in redirect URL")
				return
			}
			fmt.Fprintf(w, "Authentication successful! You can close this window.")
			codeCh <- code
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("OAuth redirect server error: %w", err)
		}
	}()

	// AccessTypeOffline so Google returns a refresh token; prompt=consent
	// forces one even when the user authorized before.
	authURL := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
	fmt.Printf("Open this URL in your browser to authorize dayplan:\n%s\n", authURL)
	log.Println("Waiting for authorization...")

	select {
	case code := <-codeCh:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		tok, err := cfg.Exchange(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("unable to exchange authorization code for a token: %w", err)
		}
		server.Shutdown(ctx)
		return tok, nil
	case err := <-errCh:
		return nil, err
	case <-time.After(5 * time.Minute):
		server.Shutdown(context.Background())
		return nil, fmt.Errorf("authorization timed out, please try again")
	}
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("failed to decode token from %s: %w", path, err)
	}
	return tok, nil
}

func saveToken(path string, tok *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("could not create token directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache OAuth token to %s: %w", path, err)
	}
	defer f.Close()
	fmt.Printf("Saving authentication token to: %s\n", path)
	return json.NewEncoder(f).Encode(tok)
}
