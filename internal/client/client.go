// Package client implements the HTTP side of the four collaborator contracts
// the session engine consumes: resume fetch, job analysis, order persistence,
// and PDF export. Shapes match the tailor backend's REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/evanqhuang/resume-tailor/internal/types"
)

// DefaultTimeout bounds each collaborator call.
const DefaultTimeout = 30 * time.Second

// AnalyzeRequest is the job analysis input. Title and description are
// rejected locally before any network call is made.
type AnalyzeRequest struct {
	JobTitle    string `json:"job_title" validate:"required"`
	Company     string `json:"company"`
	Description string `json:"description" validate:"required"`
}

// Error reports a failed collaborator call.
type Error struct {
	Op         string
	StatusCode int
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: server returned %d: %s", e.Op, e.StatusCode, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Client talks to the tailor backend.
type Client struct {
	baseURL  string
	http     *http.Client
	validate *validator.Validate
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: DefaultTimeout},
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchResume retrieves the full document from GET /api/resume.
func (c *Client) FetchResume(ctx context.Context) (*types.Resume, error) {
	var resume types.Resume
	if err := c.getJSON(ctx, "/api/resume", &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// AnalyzeJob validates the request locally, then posts it to
// POST /api/job/analyze and returns the resulting analysis.
func (c *Client) AnalyzeJob(ctx context.Context, req AnalyzeRequest) (*types.JobAnalysis, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, &Error{Op: "analyze job", Message: "job title and description are required", Cause: err}
	}

	var analysis types.JobAnalysis
	if err := c.postJSON(ctx, "/api/job/analyze", req, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// SaveOrder writes a partial section-order patch with PUT /api/order. Only
// the sections present in the patch are replaced remotely.
func (c *Client) SaveOrder(ctx context.Context, patch map[types.SectionName][]string) error {
	body, err := json.Marshal(patch)
	if err != nil {
		return &Error{Op: "save order", Message: "failed to encode patch", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/api/order", bytes.NewReader(body))
	if err != nil {
		return &Error{Op: "save order", Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Op: "save order", Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Op: "save order", StatusCode: resp.StatusCode, Message: readErrorBody(resp.Body)}
	}
	return nil
}

// Generate posts the selection set to POST /api/generate and returns the
// rendered PDF bytes.
func (c *Client) Generate(ctx context.Context, sel types.SelectionSet) ([]byte, error) {
	body, err := json.Marshal(sel)
	if err != nil {
		return nil, &Error{Op: "generate pdf", Message: "failed to encode selections", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Op: "generate pdf", Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Op: "generate pdf", Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Op: "generate pdf", StatusCode: resp.StatusCode, Message: readErrorBody(resp.Body)}
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Op: "generate pdf", Message: "failed to read response", Cause: err}
	}
	return pdf, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &Error{Op: "GET " + path, Message: "failed to build request", Cause: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Op: "GET " + path, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &Error{Op: "GET " + path, StatusCode: resp.StatusCode, Message: readErrorBody(resp.Body)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: "GET " + path, Message: "failed to decode response", Cause: err}
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return &Error{Op: "POST " + path, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &Error{Op: "POST " + path, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Op: "POST " + path, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &Error{Op: "POST " + path, StatusCode: resp.StatusCode, Message: readErrorBody(resp.Body)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: "POST " + path, Message: "failed to decode response", Cause: err}
	}
	return nil
}

// readErrorBody extracts the backend's error message from a failed response,
// falling back to the raw body.
func readErrorBody(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return "no response body"
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return string(data)
}
