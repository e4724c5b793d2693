package onboarding

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/calmtree/profilewizard-backend/internal/logger"
	"github.com/calmtree/profilewizard-backend/internal/types"
)

// ErrUnauthorized is returned by Update when the session is gone. Load never
// returns it; a logged-out read degrades to an empty slice instead.
var ErrUnauthorized = errors.New("unauthorized")

// Client talks to the wizard API and mirrors the server's upsert into a
// session-local cache so renderers don't re-fetch after every write.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	log     *logger.Logger

	mu     sync.Mutex
	cached []*types.StepProgress
	loaded bool
}

func New(baseURL, token string, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: 15 * time.Second},
		log:     log.With("client", "OnboardingClient"),
	}
}

// Load fetches the user's progress once per client lifetime and serves the
// cached copy afterwards. A 401 resolves to an empty collection.
func (c *Client) Load(ctx context.Context) ([]*types.StepProgress, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return copyRows(c.cached), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/progress", nil)
	if err != nil {
		return nil, err
	}
	c.authorize(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch progress: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var rows []*types.StepProgress
		if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
			return nil, fmt.Errorf("decode progress: %w", err)
		}
		c.cached = rows
		c.loaded = true
		return copyRows(c.cached), nil
	case http.StatusUnauthorized:
		c.log.Debug("Not authenticated, treating progress as empty")
		c.cached = nil
		c.loaded = true
		return []*types.StepProgress{}, nil
	default:
		return nil, fmt.Errorf("fetch progress: unexpected status %d", resp.StatusCode)
	}
}

// Update posts a status change and merges the returned record into the
// cache, replacing the entry for the same step or appending a new one.
func (c *Client) Update(ctx context.Context, stepID int, status string) (*types.StepProgress, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"step_id": stepID,
		"status":  status,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/progress", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("update progress: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, fmt.Errorf("update progress: unexpected status %d", resp.StatusCode)
	}

	var row types.StepProgress
	if err := json.NewDecoder(resp.Body).Decode(&row); err != nil {
		return nil, fmt.Errorf("decode progress record: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		replaced := false
		for i, existing := range c.cached {
			if existing != nil && existing.StepID == row.StepID {
				c.cached[i] = &row
				replaced = true
				break
			}
		}
		if !replaced {
			c.cached = append(c.cached, &row)
		}
	}
	return &row, nil
}

// Invalidate drops the cache so the next Load re-fetches.
func (c *Client) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = nil
	c.loaded = false
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func copyRows(rows []*types.StepProgress) []*types.StepProgress {
	out := make([]*types.StepProgress, len(rows))
	copy(out, rows)
	return out
}
