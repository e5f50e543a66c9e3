package dart

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultBaseURL = "https://opendart.fss.or.kr/api"
	userAgent      = "portfolio-backend/1.0"

	// StatusOK is DART's in-band success code.
	StatusOK = "000"
)

// Config controls a DART client. Zero values fall back to production
// defaults; BaseURL is overridable for tests.
type Config struct {
	APIKey    string
	BaseURL   string
	Timeout   time.Duration
	CacheSize int
	CacheTTL  time.Duration
}

// Client calls the DART open API with bounded retries and a short-lived
// response cache for the read-only reference lookups.
type Client struct {
	apiKey     string
	baseURL    string
	httpc      *http.Client
	cache      *expirable.LRU[string, json.RawMessage]
	maxRetries int
	baseDelay  time.Duration
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 256
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpc:      &http.Client{Timeout: cfg.Timeout},
		cache:      expirable.NewLRU[string, json.RawMessage](cfg.CacheSize, nil, cfg.CacheTTL),
		maxRetries: 3,
		baseDelay:  300 * time.Millisecond,
	}
}

// Company fetches the company overview for corpCode, passed through as raw
// JSON.
func (c *Client) Company(ctx context.Context, corpCode string) (json.RawMessage, error) {
	v := url.Values{}
	v.Set("corp_code", corpCode)
	return c.get(ctx, "company.json", v)
}

// FinanceAll fetches the full single-company financial statement. It asks
// for the consolidated statement (CFS) first and falls back to the separate
// statement (OFS) when DART reports no data.
func (c *Client) FinanceAll(ctx context.Context, corpCode, year, reprtCode string) (json.RawMessage, error) {
	v := url.Values{}
	v.Set("corp_code", corpCode)
	v.Set("bsns_year", year)
	v.Set("reprt_code", reprtCode)
	v.Set("fs_div", "CFS")
	data, err := c.get(ctx, "fnlttSinglAcntAll.json", v)
	if err != nil {
		return nil, err
	}
	if hasRows(data) {
		return data, nil
	}
	v.Set("fs_div", "OFS")
	return c.get(ctx, "fnlttSinglAcntAll.json", v)
}

func hasRows(data json.RawMessage) bool {
	var envelope struct {
		Status string            `json:"status"`
		List   []json.RawMessage `json:"list"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return false
	}
	return envelope.Status == StatusOK && len(envelope.List) > 0
}

// get performs one cached, retrying GET against the DART API. Network
// errors and 429/5xx responses are retried with exponential backoff; other
// statuses fail immediately.
func (c *Client) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	cacheKey := path + "?" + params.Encode()
	if v, ok := c.cache.Get(cacheKey); ok {
		return v, nil
	}

	q := url.Values{}
	for k, vs := range params {
		q[k] = vs
	}
	q.Set("crtfc_key", c.apiKey)
	reqURL := c.baseURL + "/" + path + "?" + q.Encode()

	var last error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.baseDelay * time.Duration(1<<(i-1))):
			}
		}
		body, retryable, err := c.do(ctx, reqURL)
		if err == nil {
			c.cache.Add(cacheKey, body)
			return body, nil
		}
		if !retryable {
			return nil, err
		}
		last = err
	}
	return nil, last
}

func (c *Client) do(ctx context.Context, reqURL string) (json.RawMessage, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("dart: request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("dart: read body: %w", err)
	}
	switch resp.StatusCode {
	case http.StatusOK:
		return body, false, nil
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return nil, true, fmt.Errorf("dart: status %d", resp.StatusCode)
	default:
		return nil, false, fmt.Errorf("dart: status %d", resp.StatusCode)
	}
}
