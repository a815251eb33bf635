// Package gcore is a thin REST client for the Gcore API. Tool ids are
// mapped onto HTTP calls generically rather than through per-endpoint
// bindings, so the catalog stays a plain list of ids.
package gcore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"gcoremcp/internal/cache"
)

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gcore api: %d %s", e.StatusCode, e.Message)
}

type Options struct {
	BaseURL   string
	APIKey    string
	ProjectID int
	RegionID  int
	Timeout   time.Duration
	// ResponseTTL caches GET responses for the given duration. Zero
	// disables response caching.
	ResponseTTL time.Duration
}

type Client struct {
	baseURL     string
	apiKey      string
	projectID   int
	regionID    int
	httpClient  *http.Client
	responses   *cache.Store
	responseTTL time.Duration
}

func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c := &Client{
		baseURL:    opts.BaseURL,
		apiKey:     opts.APIKey,
		projectID:  opts.ProjectID,
		regionID:   opts.RegionID,
		httpClient: &http.Client{Timeout: timeout},
	}
	if opts.ResponseTTL > 0 {
		c.responses = cache.NewStore()
		c.responseTTL = opts.ResponseTTL
	}
	return c
}

// FlushCache drops cached GET responses. Called on configuration reload.
func (c *Client) FlushCache() {
	if c != nil {
		c.responses.Flush()
	}
}

// Invoke executes the REST call for a tool id. GET arguments become query
// parameters, everything else is sent as a JSON body. Item routes consume
// the "id" argument for the path.
func (c *Client) Invoke(ctx context.Context, name string, args map[string]any) (any, error) {
	route, ok := Resolve(name)
	if !ok {
		return nil, fmt.Errorf("no route for tool %q", name)
	}

	path := route.Base
	if route.Scoped {
		path += "/" + strconv.Itoa(c.projectID) + "/" + strconv.Itoa(c.regionID)
	}
	remaining := make(map[string]any, len(args))
	for k, v := range args {
		remaining[k] = v
	}
	if route.Item {
		id, ok := remaining["id"]
		if !ok || fmt.Sprint(id) == "" {
			return nil, fmt.Errorf("tool %q requires an id argument", name)
		}
		path += "/" + url.PathEscape(fmt.Sprint(id))
		delete(remaining, "id")
	}
	if route.Action != "" {
		path += "/" + route.Action
	}

	if route.Method == http.MethodGet {
		return c.get(ctx, path, remaining)
	}
	return c.send(ctx, route.Method, path, remaining)
}

func (c *Client) get(ctx context.Context, path string, params map[string]any) (any, error) {
	query := url.Values{}
	for k, v := range params {
		query.Set(k, fmt.Sprint(v))
	}
	target := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	if c.responses != nil {
		if cached, ok := c.responses.Get(target); ok {
			return cached, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	result, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if c.responses != nil {
		c.responses.Set(target, result, c.responseTTL)
	}
	return result, nil
}

func (c *Client) send(ctx context.Context, method, path string, body map[string]any) (any, error) {
	var reader io.Reader
	if len(body) > 0 {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (any, error) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "APIKey "+c.apiKey)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}
	if len(data) == 0 {
		return nil, nil
	}
	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		// Some endpoints return plain text.
		return string(data), nil
	}
	return result, nil
}

func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return string(body)
}
