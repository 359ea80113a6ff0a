package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/smartresolve/admin-creator/internal/config"
)

const (
	restPath = "/rest/v1/"

	// HeaderRequestID carries a per-call id for correlating logs.
	HeaderRequestID = "X-Request-Id"
)

// HTTPDoer is the transport used by Client. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the PostgREST API of a Supabase project.
type Client struct {
	baseURL string
	key     string
	http    HTTPDoer
	log     zerolog.Logger
}

// TransportError means no HTTP response was received at all.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("supabase %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Response is the raw result of a REST call.
type Response struct {
	StatusCode int
	Body       string
	RequestID  string
}

// NewClient creates a Client. A nil doer falls back to an *http.Client
// bounded by cfg.RequestTimeout (zero leaves it unbounded).
func NewClient(cfg *config.Config, doer HTTPDoer, log zerolog.Logger) *Client {
	if doer == nil {
		doer = &http.Client{Timeout: cfg.RequestTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.SupabaseURL, "/"),
		key:     cfg.SupabaseKey,
		http:    doer,
		log:     log.With().Str("component", "supabase").Logger(),
	}
}

// TableURL returns the REST endpoint for table.
func (c *Client) TableURL(table string) string {
	return c.baseURL + restPath + table
}

// Insert POSTs row to table asking for a minimal response.
// Any HTTP status is returned as a Response; only transport failures are errors.
func (c *Client) Insert(ctx context.Context, table string, row interface{}) (*Response, error) {
	url := c.TableURL(table)

	reqBody, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("marshal %s row: %w", table, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("build insert request: %w", err)
	}

	reqID := uuid.New().String()
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")
	req.Header.Set(HeaderRequestID, reqID)

	c.log.Debug().
		Str("request_id", reqID).
		Str("url", url).
		Msg("Sending insert")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "insert", URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read response", URL: url, Err: err}
	}

	c.log.Debug().
		Str("request_id", reqID).
		Int("status", resp.StatusCode).
		Int("body_bytes", len(body)).
		Msg("Insert finished")

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       string(body),
		RequestID:  reqID,
	}, nil
}
