package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/flavono123/curio/internal/config"
	"github.com/flavono123/curio/internal/log"
)

// Classified request failures. The transport never renders messages
// itself; the presentation layer maps these to user notices. For the
// four well-known codes the caller gets an empty Result and must treat
// it as "operation did not happen", not as data.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// StatusError is any other non-2xx status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status code %d", e.Code)
}

// Result is a response body. The registry labels some non-JSON bodies
// (yaml, xml schemas) as JSON, so decoding is deferred to the caller
// and falls back to raw text.
type Result struct {
	raw    []byte
	status int
}

func (r Result) Empty() bool {
	return len(r.raw) == 0
}

func (r Result) Text() string {
	return string(r.raw)
}

// Decode unmarshals the body into v.
func (r Result) Decode(v any) error {
	if r.Empty() {
		return nil
	}
	return json.Unmarshal(r.raw, v)
}

// Structured reports whether the body parses as a JSON object or
// array.
func (r Result) Structured() bool {
	var v any
	if err := json.Unmarshal(r.raw, &v); err != nil {
		return false
	}
	switch v.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}

// Client is the raw HTTP(S) transport to one registry. No retries:
// every failure is terminal for that call, the caller decides whether
// to re-prompt.
type Client struct {
	http *http.Client
	base string
}

func NewClient(cfg config.HTTPConfig) *Client {
	scheme := "http"
	if cfg.Secure {
		scheme = "https"
	}
	base := cfg.Path
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	return &Client{
		http: &http.Client{},
		base: fmt.Sprintf("%s://%s:%d%s", scheme, cfg.Host, cfg.Port, base),
	}
}

func (c *Client) Get(ctx context.Context, path string) (Result, error) {
	return c.Request(ctx, path, http.MethodGet, nil, nil)
}

// Request sends one call. Non-string bodies are JSON-serialized.
// A Content-Type ending in yaml/yml is rewritten to application/x-yaml;
// the registry otherwise stores such payloads under a wrong media
// type, breaking cross-schema $ref resolution.
func (c *Client) Request(ctx context.Context, path, method string, body any, headers map[string]string) (Result, error) {
	payload, err := serialize(body)
	if err != nil {
		return Result{}, fmt.Errorf("serialize body: %w", err)
	}

	if headers == nil {
		headers = map[string]string{"Content-Type": "application/json", "Accept": "*/*"}
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return Result{}, err
	}
	// rewrite at set time; the caller keeps its map
	for key, value := range headers {
		if key == "Content-Type" && (strings.HasSuffix(value, "yaml") || strings.HasSuffix(value, "yml")) {
			value = "application/x-yaml"
		}
		req.Header.Set(key, value)
	}

	log.Debug().Str("method", method).Str("path", path).Msg("registry request")

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("registry request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return Result{status: resp.StatusCode}, nil
	case http.StatusBadRequest:
		return Result{status: resp.StatusCode}, ErrBadRequest
	case http.StatusUnauthorized:
		return Result{status: resp.StatusCode}, ErrUnauthorized
	case http.StatusNotFound:
		return Result{status: resp.StatusCode}, ErrNotFound
	case http.StatusConflict:
		return Result{status: resp.StatusCode}, ErrConflict
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{status: resp.StatusCode}, &StatusError{Code: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read body: %w", err)
	}
	return Result{raw: raw, status: resp.StatusCode}, nil
}

func serialize(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(b), nil
	case []byte:
		return b, nil
	default:
		return json.Marshal(b)
	}
}
