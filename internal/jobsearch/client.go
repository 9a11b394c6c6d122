package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const (
	searchPath = "/v1/positions"
	userAgent  = "mospath/job-search"
)

// Client queries a remote job-search API over HTTP. The API returns pages
// of loosely-typed items; they are decoded into Positions by json tag, and
// positions the API cannot express filters for are trimmed client-side.
type Client struct {
	logger     *zap.Logger
	HTTPClient *http.Client
	APIURL     string
	Token      string
}

// NewClient creates a search client for the given API base URL.
func NewClient(logger *zap.Logger, apiURL, token string) *Client {
	return &Client{
		logger: logger,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		APIURL: apiURL,
		Token:  token,
	}
}

type itemResponse struct {
	Items []any `json:"items"`
	Found int   `json:"found"`
	Pages int   `json:"pages"`
	Page  int   `json:"page"`
}

// Search queries the API and decodes the result items.
func (c *Client) Search(ctx context.Context, params Params) ([]Position, error) {
	items, err := c.getItems(ctx, c.APIURL+searchPath, buildQuery(params))
	if err != nil {
		return nil, err
	}

	var positions []Position
	cfg := &mapstructure.DecoderConfig{
		Result:  &positions,
		TagName: "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("build decoder: %w", err)
	}
	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("decode search items: %w", err)
	}

	// The API only filters on text; apply the remaining filters here.
	out := positions[:0]
	for _, p := range positions {
		if matchesParams(p, params) {
			out = append(out, p)
		}
	}
	if params.Limit > 0 && len(out) > params.Limit {
		out = out[:params.Limit]
	}

	c.logger.Debug("job search complete",
		zap.Int("fetched", len(positions)),
		zap.Int("kept", len(out)),
	)

	return out, nil
}

// getItems fetches every page of a paged item listing.
func (c *Client) getItems(ctx context.Context, endpoint string, q url.Values) ([]any, error) {
	var items []any

	page := 0
	for {
		q.Set("page", strconv.Itoa(page))

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "application/json")
		if c.Token != "" {
			req.Header.Set("Authorization", "Bearer "+c.Token)
		}
		req.URL.RawQuery = q.Encode()

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("search request: %w", err)
		}

		var parsed itemResponse
		err = json.NewDecoder(resp.Body).Decode(&parsed)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("search request: unexpected status %d", resp.StatusCode)
		}
		if err != nil {
			return nil, fmt.Errorf("parse search response: %w", err)
		}

		items = append(items, parsed.Items...)

		c.logger.Debug("fetched search page",
			zap.Int("page", parsed.Page),
			zap.Int("pages", parsed.Pages),
			zap.Int("found", parsed.Found),
		)

		page++
		if page >= parsed.Pages || parsed.Pages == 0 {
			break
		}
	}

	return items, nil
}

func buildQuery(params Params) url.Values {
	q := url.Values{}
	if params.Text != "" {
		q.Set("text", params.Text)
	}
	if params.MOS != "" {
		q.Set("mos", params.MOS)
	}
	if params.Location != "" {
		q.Set("location", params.Location)
	}
	return q
}
