package gcal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/syammullapudi-pixel/PitstopPros/pkg/logger"
)

// Client wraps the Google Calendar API for event insertion.
type Client struct {
	service *calendar.Service
}

// Options carries the credential sources for NewClient. CredentialsJSON
// (the GOOGLE_CREDENTIALS env value) wins over CredentialsFile; the token
// file is only consulted for the installed-app OAuth flow.
type Options struct {
	CredentialsJSON string
	CredentialsFile string
	TokenFile       string
}

// NewClient authenticates against Google Calendar once, at startup. A
// service-account credential is used directly; an installed OAuth client
// needs a previously stored token (run the auth flow out-of-band first).
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	raw, err := credentialBytes(opts)
	if err != nil {
		return nil, err
	}

	var svc *calendar.Service
	if isServiceAccount(raw) {
		creds, err := google.CredentialsFromJSON(ctx, raw, calendar.CalendarScope)
		if err != nil {
			return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
		}
		svc, err = calendar.NewService(ctx, option.WithCredentials(creds))
		if err != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", err)
		}
	} else {
		config, err := google.ConfigFromJSON(raw, calendar.CalendarScope)
		if err != nil {
			return nil, fmt.Errorf("failed to parse OAuth client credentials: %w", err)
		}
		token, err := tokenFromFile(opts.TokenFile)
		if err != nil {
			return nil, fmt.Errorf("could not load token from %s: %w (complete the OAuth flow first)", opts.TokenFile, err)
		}
		client := config.Client(ctx, token)
		svc, err = calendar.NewService(ctx, option.WithHTTPClient(client))
		if err != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", err)
		}
	}

	return &Client{service: svc}, nil
}

// InsertEvent inserts one event and returns its ID and link.
func (c *Client) InsertEvent(ctx context.Context, calendarID string, ev *Event) (*CreatedEvent, error) {
	gev := &calendar.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
		Start: &calendar.EventDateTime{
			DateTime: ev.Start.Format("2006-01-02T15:04:05"),
			TimeZone: ev.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: ev.End.Format("2006-01-02T15:04:05"),
			TimeZone: ev.TimeZone,
		},
	}

	created, err := c.service.Events.Insert(calendarID, gev).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to insert calendar event: %w", err)
	}

	logger.InfoContext(ctx, "Calendar event created", "event_id", created.Id, "calendar_id", calendarID)
	return &CreatedEvent{ID: created.Id, HTMLLink: created.HtmlLink}, nil
}

func credentialBytes(opts Options) ([]byte, error) {
	if strings.TrimSpace(opts.CredentialsJSON) != "" {
		return []byte(opts.CredentialsJSON), nil
	}
	raw, err := os.ReadFile(opts.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("no calendar credentials: set GOOGLE_CREDENTIALS or provide %s: %w", opts.CredentialsFile, err)
	}
	return raw, nil
}

func isServiceAccount(raw []byte) bool {
	var probe struct {
		Type       string `json:"type"`
		PrivateKey string `json:"private_key"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	return probe.Type == "service_account" || probe.PrivateKey != ""
}

// SaveToken stores an OAuth token for later runs.
func SaveToken(path string, token *oauth2.Token) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create token file: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}
