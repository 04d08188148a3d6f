package kanpla

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Params identify which school/offer the vendor should answer for.
// Zero-value fields fall back to the client's configured defaults.
type Params struct {
	SchoolID      string
	Language      string
	TargetOfferID string
}

// Client fetches raw menu documents from the vendor API.
type Client interface {
	FetchMenus(ctx context.Context, p Params) ([]byte, error)
}

// HTTPClient is the production Client. One GET per call, no retries;
// the caller decides what to do with a failure.
type HTTPClient struct {
	baseURL    string
	userAgent  string
	defaults   Params
	httpClient *http.Client
	logger     *slog.Logger
}

func NewHTTPClient(baseURL, userAgent string, defaults Params, timeout time.Duration, logger *slog.Logger) *HTTPClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPClient{
		baseURL:    baseURL,
		userAgent:  userAgent,
		defaults:   defaults,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchMenus issues the vendor GET and returns the raw JSON body.
func (c *HTTPClient) FetchMenus(ctx context.Context, p Params) ([]byte, error) {
	p = c.fill(p)

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	q := u.Query()
	q.Set("school_id", p.SchoolID)
	q.Set("language", p.Language)
	q.Set("target_offer_id", p.TargetOfferID)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("fetching vendor menus",
		"url", c.baseURL,
		"school_id", p.SchoolID,
		"target_offer_id", p.TargetOfferID,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vendor request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read vendor response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	c.logger.Debug("vendor request succeeded", "status", resp.StatusCode, "bytes", len(body))
	return body, nil
}

func (c *HTTPClient) fill(p Params) Params {
	if p.SchoolID == "" {
		p.SchoolID = c.defaults.SchoolID
	}
	if p.Language == "" {
		p.Language = c.defaults.Language
	}
	if p.TargetOfferID == "" {
		p.TargetOfferID = c.defaults.TargetOfferID
	}
	return p
}
