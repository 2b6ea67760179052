package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	// ClientSecretsFile is the OAuth client downloaded from the Google Cloud
	// console, looked up in the config directory.
	ClientSecretsFile = "credentials.json"
	// TokenFile caches the access and refresh token in the config directory.
	TokenFile = "token.json"

	// LocalhostAuthPort receives the OAuth redirect.
	LocalhostAuthPort = "6789"

	authTimeout = 5 * time.Minute
)

// Scopes are the Calendar permissions chore asks for.
var Scopes = []string{
	calendar.CalendarEventsScope,
	calendar.CalendarReadonlyScope,
}

// Flow runs the installed-app OAuth flow against files in Dir. Prompts for
// the user are written to Out.
type Flow struct {
	Dir string
	Out io.Writer
}

// GetConfig reads the client secrets and forces the redirect onto the local
// callback listener.
func (f *Flow) GetConfig(scopes []string) (*oauth2.Config, error) {
	secretsPath := filepath.Join(f.Dir, ClientSecretsFile)
	b, err := os.ReadFile(secretsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read client secret file %s: %w", secretsPath, err)
	}

	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file to config: %w", err)
	}
	config.RedirectURL = redirectURL(config.RedirectURL)
	return config, nil
}

// redirectURL pins localhost redirects to LocalhostAuthPort and replaces the
// retired out-of-band URI with a local callback.
func redirectURL(configured string) string {
	if configured == "urn:ietf:wg:oauth:2.0:oob" || configured == "" {
		return fmt.Sprintf("http://localhost:%s/oauth2callback", LocalhostAuthPort)
	}
	u, err := url.Parse(configured)
	if err != nil {
		log.Printf("Warning: could not parse redirect URL %q: %v", configured, err)
		return configured
	}
	if u.Hostname() != "localhost" && u.Hostname() != "127.0.0.1" {
		log.Printf("Warning: redirect URL %s is not a localhost callback", configured)
		return configured
	}
	if u.Port() != LocalhostAuthPort {
		u.Host = net.JoinHostPort(u.Hostname(), LocalhostAuthPort)
	}
	return u.String()
}

// GetClient returns an HTTP client carrying a valid token. A cached token is
// used when present; otherwise the browser flow runs and the result is cached.
func (f *Flow) GetClient(ctx context.Context, scopes []string) (*http.Client, error) {
	config, err := f.GetConfig(scopes)
	if err != nil {
		return nil, err
	}

	tokenPath := filepath.Join(f.Dir, TokenFile)
	tok, err := tokenFromFile(tokenPath)
	if err != nil {
		log.Printf("No usable token at %s, starting web authorization", tokenPath)
		tok, err = f.getTokenFromWeb(ctx, config)
		if err != nil {
			return nil, fmt.Errorf("failed to get token from web: %w", err)
		}
		if err := saveToken(tokenPath, tok); err != nil {
			return nil, err
		}
	}

	src := config.TokenSource(ctx, tok)
	// Persist refreshed tokens so the next run does not refresh again.
	if current, err := src.Token(); err != nil {
		log.Printf("Warning: could not refresh token: %v", err)
	} else if current.AccessToken != tok.AccessToken || current.RefreshToken != tok.RefreshToken {
		if err := saveToken(tokenPath, current); err != nil {
			log.Printf("Warning: could not save refreshed token: %v", err)
		}
	}
	return oauth2.NewClient(ctx, src), nil
}

// Reset removes the cached token so the next GetClient starts a new flow.
func (f *Flow) Reset() error {
	err := os.Remove(filepath.Join(f.Dir, TokenFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (f *Flow) getTokenFromWeb(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	listener, err := net.Listen("tcp", net.JoinHostPort("localhost", LocalhostAuthPort))
	if err != nil {
		return nil, fmt.Errorf("failed to start listener on port %s: %w", LocalhostAuthPort, err)
	}

	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := r.URL.Query().Get("code")
			if code == "" {
				http.Error(w, "Authorization code not found", http.StatusBadRequest)
				select {
				case errCh <- errors.New("authorization code not found in redirect URL"):
				default:
				}
				return
			}
			fmt.Fprintln(w, "Authentication successful! You can close this window.")
			select {
			case codeCh <- code:
			default:
			}
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			select {
			case errCh <- fmt.Errorf("HTTP server error: %w", err):
			default:
			}
		}
	}()
	defer server.Close()

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
	fmt.Fprintf(f.Out, "Open the following URL in your browser to authorize chore:\n%s\n", authURL)

	select {
	case code := <-codeCh:
		exchangeCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		tok, err := config.Exchange(exchangeCtx, code)
		if err != nil {
			return nil, fmt.Errorf("unable to retrieve token from Google: %w", err)
		}
		return tok, nil
	case err := <-errCh:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(authTimeout):
		return nil, errors.New("authorization timed out, please try again")
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
		return nil, fmt.Errorf("failed to decode token from file %s: %w", path, err)
	}
	return tok, nil
}

func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("could not create token directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache OAuth token to %s: %w", path, err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}

// GetCalendarService returns an authenticated Calendar API service.
func (f *Flow) GetCalendarService(ctx context.Context) (*calendar.Service, error) {
	client, err := f.GetClient(ctx, Scopes)
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated client for Calendar API: %w", err)
	}
	srv, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve Google Calendar service: %w", err)
	}
	return srv, nil
}
