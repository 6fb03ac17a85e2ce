// Package rest implements the backend API client over plain HTTP/JSON.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/sedu-app/sedu/internal/api"
	"github.com/sedu-app/sedu/internal/log"
	"github.com/sedu-app/sedu/internal/model"
)

const (
	// DefaultBaseURL is the default backend API base URL.
	DefaultBaseURL = "http://localhost:8000"
)

// ClientConfig configures the REST API client.
type ClientConfig struct {
	// BaseURL is the backend base URL (without the /v2 prefix).
	BaseURL string
	// HTTPClient is the HTTP client used for all requests.
	HTTPClient *http.Client
	// Logger for logging.
	Logger log.Logger
}

func (c *ClientConfig) defaults() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if _, err := url.Parse(c.BaseURL); err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "api.REST"})
	return nil
}

// Client is the HTTP implementation of api.Client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     log.Logger
}

var _ api.Client = (*Client)(nil)

// NewClient creates a new REST API client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}, nil
}

// --- Internal helpers ---

func (c *Client) url(path string) string {
	return c.baseURL + path
}

// do executes a request and decodes the JSON response body into out.
// Non-2xx responses are decoded as {"detail": ...} and returned as
// model.APIError.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("parsing response: %w", err)
		}
	}

	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, body, "application/json", out)
}

// apiError builds a model.APIError from a non-2xx response body. The backend
// always answers errors as {"detail": string}; anything else falls back to a
// generic message.
func apiError(statusCode int, data []byte) error {
	detail := fmt.Sprintf("request failed with status %d", statusCode)

	var wire struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &wire); err == nil && wire.Detail != "" {
		detail = wire.Detail
	}

	return model.APIError{StatusCode: statusCode, Detail: detail}
}

// parseTime parses the backend's ISO-8601 timestamps. Unparseable values
// yield a zero time instead of failing the whole response.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// multipartBody builds a multipart form body with a single "file" field.
func multipartBody(filename, contentType string, data io.Reader) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("creating form part: %w", err)
	}
	if _, err := io.Copy(part, data); err != nil {
		return nil, "", fmt.Errorf("writing form part: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing form writer: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}
