// Package riderapi implements the delivery ports against the rider REST backend.
//
// Every GET response is wrapped in an envelope {success, message, data}; the
// client unwraps it once and hands domain values to the rest of the
// application. Field-name drift between backend DTO versions is resolved in
// dto.go and nowhere else.
package riderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rider/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	maxResponseBytes = 4 << 20
	requestIDHeader  = "X-Request-ID"
)

// Config holds the connection settings of the backend.
type Config struct {
	BaseURL string
	// Token is sent when the request context carries none.
	Token   string
	Timeout time.Duration
	// ActorID, when non-zero, is sent as {"delivererId": ActorID} on actions
	// for backends that do not derive the rider from the principal.
	ActorID int64
}

// Client talks to the rider backend.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	token   string
	actorID int64
	logger  *slog.Logger
}

// NewClient validates cfg and builds a client. A nil httpClient gets a
// default one honoring cfg.Timeout.
func NewClient(cfg Config, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errs.NewValueIsRequiredError("BaseURL")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("BaseURL", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, errs.NewValueIsInvalidErrorWithCause("BaseURL", fmt.Errorf("unsupported scheme %q", base.Scheme))
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: base,
		http:    httpClient,
		token:   cfg.Token,
		actorID: cfg.ActorID,
		logger:  logger.With("component", "riderapi"),
	}, nil
}

type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// hasData reports whether data is present and not JSON null.
func (e envelope) hasData() bool {
	d := bytes.TrimSpace(e.Data)
	return len(d) > 0 && !bytes.Equal(d, []byte("null"))
}

// response is a raw backend answer that made it through the transport.
type response struct {
	op     string
	status int
	body   []byte
}

func (r response) ok() bool {
	return r.status >= 200 && r.status <= 299
}

// call performs one request and returns the decoded envelope of a 2xx answer.
// Non-2xx answers and envelopes with success=false become *errs.RemoteError.
func (c *Client) call(ctx context.Context, method string, query url.Values, body any, segments ...string) (envelope, error) {
	resp, err := c.send(ctx, method, query, body, segments...)
	if err != nil {
		return envelope{}, err
	}

	var env envelope
	decodeErr := decodeEnvelope(resp.body, &env)

	if !resp.ok() {
		return envelope{}, errs.NewRemoteRejectedError(resp.op, resp.status, env.Message)
	}
	if decodeErr != nil {
		return envelope{}, errs.NewRemoteMalformedError(resp.op, resp.status, decodeErr)
	}
	if env.Success != nil && !*env.Success {
		return envelope{}, errs.NewRemoteRejectedError(resp.op, resp.status, env.Message)
	}
	return env, nil
}

// send performs one request and reads the answer. Only transport failures are
// errors here; the status code is left to the caller.
func (c *Client) send(ctx context.Context, method string, query url.Values, body any, segments ...string) (response, error) {
	u := c.baseURL.JoinPath(segments...)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	op := method + " /" + strings.TrimPrefix(u.EscapedPath(), "/")

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return response{}, fmt.Errorf("%s: encode body: %w", op, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return response{}, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokenFor(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "backend call failed", "op", op, "request_id", requestID, "error", err)
		return response{}, errs.NewRemoteUnavailableError(op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return response{}, errs.NewRemoteUnavailableError(op, err)
	}
	c.logger.DebugContext(ctx, "backend call",
		"op", op, "status", resp.StatusCode, "request_id", requestID, "elapsed", time.Since(started))

	return response{op: op, status: resp.StatusCode, body: raw}, nil
}

// decodeEnvelope accepts an empty body as an empty envelope.
func decodeEnvelope(raw []byte, env *envelope) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	return json.Unmarshal(raw, env)
}
