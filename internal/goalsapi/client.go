// Package goalsapi provides a client for the REST Goal Service.
package goalsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/goaltrack/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
	userAgent      = "goaltrack/1.0"
)

// Client talks to the Goal Service over REST+JSON.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger attaches a logger for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates a client rooted at baseURL, e.g. "http://localhost:3001/".
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("goalsapi: invalid base URL %q", baseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("goalsapi: unsupported scheme %q", u.Scheme)
	}

	c := &Client{
		baseURL: strings.TrimSuffix(u.String(), "/") + "/",
		http:    &http.Client{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized service root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListGoals returns every goal owned by userID.
func (c *Client) ListGoals(ctx context.Context, userID int) ([]model.Goal, error) {
	body, err := c.do(ctx, http.MethodGet, "api/goals/"+strconv.Itoa(userID), nil)
	if err != nil {
		return nil, err
	}

	var goals []model.Goal
	if err := decode(body, &goals, "goals"); err != nil {
		return nil, err
	}
	if goals == nil {
		goals = []model.Goal{}
	}
	return goals, nil
}

// AddGoal creates draft for userID and returns the persisted record with
// its server-assigned id.
func (c *Client) AddGoal(ctx context.Context, draft model.Goal, userID int) (model.Goal, error) {
	if err := draft.Validate(); err != nil {
		return model.Goal{}, err
	}
	draft.ID = 0
	draft.UserID = userID

	body, err := c.do(ctx, http.MethodPost, "api/goals", draft)
	if err != nil {
		return model.Goal{}, err
	}

	var env goalEnvelope
	if err := decode(body, &env, "created goal"); err != nil {
		return model.Goal{}, err
	}
	if len(env.Goal) == 0 || string(env.Goal) == "null" {
		return model.Goal{}, fmt.Errorf("%w: created goal: missing \"goal\" field", ErrDecode)
	}

	var created model.Goal
	if err := decode(env.Goal, &created, "created goal"); err != nil {
		return model.Goal{}, err
	}
	if created.ID == 0 {
		return model.Goal{}, fmt.Errorf("%w: created goal has no id", ErrDecode)
	}
	return created, nil
}

// EditGoal replaces the goal with g.ID and returns the service's echo of the
// stored record. The echo may be bare or wrapped as { "goal": ... }; when
// it carries no record at all, g itself is returned.
func (c *Client) EditGoal(ctx context.Context, g model.Goal) (model.Goal, error) {
	if g.IsDraft() {
		return model.Goal{}, fmt.Errorf("%w: edit requires an id", model.ErrInvalidGoal)
	}
	if err := g.Validate(); err != nil {
		return model.Goal{}, err
	}

	body, err := c.do(ctx, http.MethodPut, "api/goals", g)
	if err != nil {
		return model.Goal{}, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return g, nil
	}

	if !json.Valid(body) {
		return model.Goal{}, fmt.Errorf("%w: updated goal is not JSON", ErrDecode)
	}

	var env goalEnvelope
	_ = json.Unmarshal(body, &env) // a bare record has no "goal" field
	raw := body
	if len(env.Goal) > 0 && string(env.Goal) != "null" {
		raw = env.Goal
	}

	var updated model.Goal
	if err := decode(raw, &updated, "updated goal"); err != nil {
		return model.Goal{}, err
	}
	if updated.ID == 0 {
		return g, nil
	}
	return updated, nil
}

// DeleteGoal removes the goal with the given id.
func (c *Client) DeleteGoal(ctx context.Context, id int) error {
	body, err := c.do(ctx, http.MethodDelete, "api/goals/"+strconv.Itoa(id), nil)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) > 0 && !json.Valid(body) {
		return fmt.Errorf("%w: delete acknowledgment is not JSON", ErrDecode)
	}
	return nil
}

// do sends one JSON request and returns the response body of a 2xx reply.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("goalsapi: encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("goalsapi: creating request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", requestID)

	log := c.log.With(
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", "/"+path),
	)

	start := time.Now()
	//nolint:gosec // URL is built from the configured base URL
	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug("request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %s /%s: %w", ErrNetwork, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	log.Debug("response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s /%s", ErrNotFound, method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w %d: %s /%s", ErrUnexpectedStatus, resp.StatusCode, method, path)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %w", ErrNetwork, err)
	}
	return body, nil
}

// decode unmarshals a response body. Steps parse failures keep their own
// kind; everything else is reported as ErrDecode.
func decode(body []byte, v any, what string) error {
	err := json.Unmarshal(body, v)
	if err == nil {
		return nil
	}
	if errors.Is(err, model.ErrStepsParse) {
		return fmt.Errorf("goalsapi: parsing %s: %w", what, err)
	}
	return fmt.Errorf("%w: parsing %s: %w", ErrDecode, what, err)
}
