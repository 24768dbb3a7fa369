package golf

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"log/slog"
)

const DefaultBaseURL = "https://code.golf"

// The API occasionally returns a 5XX for no obvious reason, so each log
// fetch is attempted this many times before giving up.
const solutionLogAttempts = 10

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// Holes lists every hole known to the API.
func (c *Client) Holes(ctx context.Context) ([]Hole, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/holes", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hole list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch hole list: unexpected status %s", resp.Status)
	}
	var holes []Hole
	if err := json.NewDecoder(resp.Body).Decode(&holes); err != nil {
		return nil, fmt.Errorf("failed to parse hole list: %w", err)
	}
	return holes, nil
}

// SolutionLog fetches the full submission history for one hole, retrying
// non-success responses a fixed number of times.
func (c *Client) SolutionLog(ctx context.Context, holeID string, lang string) ([]Solution, error) {
	logURL := fmt.Sprintf(
		"%s/api/solutions-log?hole=%s&lang=%s",
		c.baseURL,
		url.QueryEscape(holeID),
		url.QueryEscape(lang),
	)
	for attempt := 0; attempt < solutionLogAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, logURL, nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch solutions log for hole %q: %w", holeID, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			c.logger.Debug("retrying solutions log fetch", "hole", holeID, "status", resp.Status, "attempt", attempt+1)
			continue
		}
		var solutions []Solution
		err = json.NewDecoder(resp.Body).Decode(&solutions)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse solutions log for hole %q: %w", holeID, err)
		}
		return solutions, nil
	}
	return nil, fmt.Errorf(
		"the API gave a non-2XX status for hole %q for %d attempts in a row. The API is a little unstable, so you might just try re-running",
		holeID,
		solutionLogAttempts,
	)
}

// AllSolutionLogs fetches the solutions log of every given hole at once and
// returns the logs in hole order. Any failed fetch fails the whole call, so
// the result is always a complete snapshot.
func (c *Client) AllSolutionLogs(ctx context.Context, holes []Hole, lang string) ([]SolutionLog, error) {
	logs := make([]SolutionLog, len(holes))
	errs := make([]error, len(holes))

	wg := &sync.WaitGroup{}
	for i, hole := range holes {
		wg.Add(1)
		go func(i int, hole Hole) {
			defer wg.Done()
			solutions, err := c.SolutionLog(ctx, hole.ID, lang)
			if err != nil {
				errs[i] = err
				return
			}
			logs[i] = SolutionLog{HoleID: hole.ID, HoleName: hole.Name, Solutions: solutions}
		}(i, hole)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return logs, nil
}
