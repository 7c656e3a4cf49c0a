// Package api is the HTTP client for the MatchLLM backend. All matching,
// parsing and persistence happens server-side; this package only moves
// payloads and translates failures into typed errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/matchllm/matchctl/internal/session"
)

// Error is a non-success HTTP response from the backend.
type Error struct {
	Status  int
	Body    interface{}
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// Client talks to the MatchLLM API. The session store supplies the bearer
// token; an absent or expired token is simply sent without (or rejected by)
// the backend, there is no refresh logic.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
	logger  *zap.Logger
}

// NewClient creates a client for baseURL. timeout bounds each request; the
// session store may start empty.
func NewClient(baseURL string, timeout time.Duration, sess *session.Store, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: sess,
		logger:  logger,
	}
}

// Session returns the client's session store.
func (c *Client) Session() *session.Store {
	return c.session
}

// Do sends a JSON request and decodes the response into out (out may be nil).
// body is JSON-marshaled when non-nil.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.send(ctx, method, path, reader, contentType, out)
}

// MultipartField is one part of a multipart form: a plain value or a file.
type MultipartField struct {
	Name     string
	Value    string
	Filename string
	Data     []byte
}

// DoMultipart posts a multipart form and decodes the response into out.
func (c *Client) DoMultipart(ctx context.Context, path string, fields []MultipartField, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range fields {
		if f.Filename != "" {
			part, err := w.CreateFormFile(f.Name, f.Filename)
			if err != nil {
				return fmt.Errorf("multipart file %q: %w", f.Name, err)
			}
			if _, err := part.Write(f.Data); err != nil {
				return fmt.Errorf("multipart file %q: %w", f.Name, err)
			}
			continue
		}
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return fmt.Errorf("multipart field %q: %w", f.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("multipart close: %w", err)
	}
	return c.send(ctx, http.MethodPost, path, &buf, w.FormDataContentType(), out)
}

func (c *Client) send(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("api request", zap.String("method", method), zap.String("path", path))
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	parsed := parseBody(resp.Header.Get("Content-Type"), raw)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode, Body: parsed, Message: errorMessage(parsed)}
		c.logger.Debug("api error", zap.Int("status", resp.StatusCode), zap.String("message", apiErr.Message))
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// parseBody decodes the body as JSON when the content type says JSON,
// otherwise returns it as text.
func parseBody(contentType string, raw []byte) interface{} {
	if strings.Contains(contentType, "application/json") {
		var v interface{}
		if err := json.Unmarshal(raw, &v); err == nil {
			return v
		}
	}
	return string(raw)
}

// errorMessage extracts a human-readable message: the detail field of a JSON
// body, else the raw text, else a generic fallback.
func errorMessage(parsed interface{}) string {
	switch v := parsed.(type) {
	case string:
		if v != "" {
			return v
		}
	case map[string]interface{}:
		if detail, ok := v["detail"].(string); ok && detail != "" {
			return detail
		}
	}
	return "Erro na API"
}
