// Package api is the client for the remote habits HTTP API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/errors"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/utils"
)

const (
	headerRequestID = "X-Request-ID"
	maxErrorBody    = 512
)

// Client talks to the habits API. The zero value is not usable; use New.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithToken sends a bearer token with every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.Token = token
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.HTTPClient = hc
	}
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.HTTPClient.Timeout = d
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid API URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid API URL %q: missing host", baseURL)
	}

	c := &Client{
		BaseURL:    strings.TrimRight(u.String(), "/"),
		HTTPClient: &http.Client{Timeout: constants.DefaultAPITimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Summary fetches the per-day completion summary (GET /summary).
func (c *Client) Summary(ctx context.Context) ([]models.DaySummaryEntry, error) {
	var entries []models.DaySummaryEntry
	if err := c.do(ctx, errors.OpLoadSummary, http.MethodGet, "/summary", nil, nil, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.DaySummaryEntry{}
	}
	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return nil, errors.Remote(errors.OpLoadSummary, http.StatusOK, err)
		}
	}
	return entries, nil
}

// Day fetches the possible and completed habits for date (GET /day).
func (c *Client) Day(ctx context.Context, date time.Time) (models.DayDetail, error) {
	query := url.Values{"date": {utils.FormatISO(date)}}

	var detail models.DayDetail
	if err := c.do(ctx, errors.OpLoadHabits, http.MethodGet, "/day", query, nil, &detail); err != nil {
		return models.DayDetail{}, err
	}
	if err := detail.Validate(); err != nil {
		return models.DayDetail{}, errors.Remote(errors.OpLoadHabits, http.StatusOK, err)
	}
	return detail, nil
}

// CreateHabit creates a recurring habit (POST /habits). The returned record
// has an empty ID when the server answers without a body.
func (c *Client) CreateHabit(ctx context.Context, habit models.NewHabit) (models.HabitRecord, error) {
	if err := habit.Validate(); err != nil {
		return models.HabitRecord{}, err
	}
	habit = habit.Normalized()

	var created models.HabitRecord
	if err := c.do(ctx, errors.OpCreateHabit, http.MethodPost, "/habits", nil, habit, &created); err != nil {
		return models.HabitRecord{}, err
	}
	if created.Title == "" {
		created.Title = habit.Title
	}
	return created, nil
}

// ToggleHabit flips today's completion of a habit (PATCH /habits/{id}/toggle).
// The response body is ignored.
func (c *Client) ToggleHabit(ctx context.Context, habitID string) error {
	if strings.TrimSpace(habitID) == "" {
		return fmt.Errorf("habit id cannot be empty")
	}
	path := "/habits/" + url.PathEscape(habitID) + "/toggle"
	return c.do(ctx, errors.OpUpdateHabit, http.MethodPatch, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, op errors.Op, method, path string, query url.Values, body, out any) error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Remote(op, 0, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	log := logger.With("op", op, "request_id", requestID)
	log.Debug("API request", "method", method, "url", endpoint)
	start := time.Now()

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Warn("API request failed", "error", err)
		return errors.Remote(op, 0, err)
	}
	defer res.Body.Close()

	log.Debug("API response", "status", res.StatusCode, "elapsed", time.Since(start))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		log.Warn("API returned error status", "status", res.StatusCode, "body", string(msg))
		return errors.Remote(op, res.StatusCode, fmt.Errorf("%s %s: %s", method, path, http.StatusText(res.StatusCode)))
	}

	if out == nil {
		return nil
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Remote(op, res.StatusCode, fmt.Errorf("read response: %w", err))
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Remote(op, res.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
