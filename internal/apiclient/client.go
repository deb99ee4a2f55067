// Package apiclient fetches HR collections from the backend REST API and
// normalizes their response envelopes.
package apiclient

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

	"github.com/cristianoliveira/hrdesk/internal/domain"
	"github.com/cristianoliveira/hrdesk/internal/logging"
)

// DefaultTimeout bounds a single request when no HTTP client is given.
const DefaultTimeout = 20 * time.Second

// endpoints maps each collection to its backend path.
var endpoints = map[domain.Kind]string{
	domain.KindEmployees:     "/employees",
	domain.KindDepartments:   "/departments",
	domain.KindAttendance:    "/attendance",
	domain.KindLeaveRequests: "/leave-requests",
	domain.KindJobPostings:   "/job-postings",
	domain.KindOnboarding:    "/onboarding",
	domain.KindAuditLogs:     "/audit-logs",
	domain.KindNotifications: "/notifications",
}

// Endpoint returns the backend path for kind.
func Endpoint(kind domain.Kind) (string, error) {
	path, ok := endpoints[kind]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownKind, kind)
	}
	return path, nil
}

// Client talks to the HR backend.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// New creates a client for baseURL authenticating with token.
func New(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the whole collection for kind as raw records.
func (c *Client) Fetch(ctx context.Context, kind domain.Kind) ([]json.RawMessage, error) {
	path, err := Endpoint(kind)
	if err != nil {
		return nil, err
	}

	body, code, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", kind, err)
	}

	res, err := Decode[json.RawMessage](body)
	if err != nil {
		if code >= 300 {
			return nil, fmt.Errorf("fetch %s: %w", kind, &APIError{StatusCode: code, Message: http.StatusText(code)})
		}
		return nil, fmt.Errorf("fetch %s: %w", kind, err)
	}
	if !res.OK() {
		res.Err.StatusCode = code
		return nil, fmt.Errorf("fetch %s: %w", kind, res.Err)
	}
	if code >= 300 {
		return nil, fmt.Errorf("fetch %s: %w", kind, &APIError{StatusCode: code, Message: http.StatusText(code)})
	}

	logging.Debug("fetched collection", "kind", kind.String(), "count", len(res.Items), "shape", res.Shape.String())
	return res.Items, nil
}

// MarkNotificationRead marks one notification as read on the backend.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("mark notification read: empty id")
	}
	path := "/notifications/" + url.PathEscape(id) + "/read"

	body, code, err := c.do(ctx, http.MethodPatch, path, []byte("{}"))
	if err != nil {
		return fmt.Errorf("mark notification %s read: %w", id, err)
	}
	if code >= 300 {
		msg := http.StatusText(code)
		var env envelope
		if json.Unmarshal(body, &env) == nil && env.Message != "" {
			msg = env.Message
		}
		return fmt.Errorf("mark notification %s read: %w", id, &APIError{StatusCode: code, Message: msg})
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, int, error) {
	if c.BaseURL == "" {
		return nil, 0, fmt.Errorf("api base url is not configured")
	}

	var r io.Reader
	if payload != nil {
		r = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, r)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	return body, resp.StatusCode, nil
}
