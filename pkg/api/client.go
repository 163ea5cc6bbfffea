// Package api is the client for the Budget OK HTTP API.
//
// Every method performs exactly one HTTP request and returns either the
// decoded result or one of *NetworkError, *ValidationError or *RemoteError.
// The client does not cache anything.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/budget-ok/budget-ok/pkg/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Client is a Budget OK API client.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// WithLogger sets the logger. It defaults to the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(cl *Client) {
		cl.logger = l
	}
}

// New returns a client for the API at baseURL, e.g. "http://localhost:8090/api".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", baseURL, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q: scheme and host are required", baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  log.Logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the API base URL the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// ListEnvelopes returns all envelopes. With includeExpenses, each envelope
// has its expenses embedded.
func (c *Client) ListEnvelopes(ctx context.Context, includeExpenses bool) ([]models.Envelope, error) {
	query := url.Values{}
	query.Set("includeExpenses", strconv.FormatBool(includeExpenses))

	var envelopes []models.Envelope
	err := c.do(ctx, request{
		op:     "list envelopes",
		method: http.MethodGet,
		path:   "/envelopes",
		query:  query,
	}, &envelopes)
	if err != nil {
		return nil, err
	}

	return envelopes, nil
}

// CreateEnvelope creates an envelope. A duplicate name yields a *ValidationError.
func (c *Client) CreateEnvelope(ctx context.Context, envelope models.EnvelopeEditable) (models.Envelope, error) {
	const op = "create envelope"

	envelope = envelope.Normalize()
	if err := envelope.Validate(); err != nil {
		return models.Envelope{}, &ValidationError{Op: op, Message: err.Error(), Err: err}
	}

	var created models.Envelope
	err := c.do(ctx, request{
		op:         op,
		method:     http.MethodPost,
		path:       "/envelopes",
		body:       envelope,
		validation: true,
	}, &created)

	return created, err
}

// UpdateEnvelope updates name and budget of an envelope.
func (c *Client) UpdateEnvelope(ctx context.Context, id uuid.UUID, envelope models.EnvelopeEditable) (models.Envelope, error) {
	const op = "update envelope"

	envelope = envelope.Normalize()
	if err := envelope.Validate(); err != nil {
		return models.Envelope{}, &ValidationError{Op: op, Message: err.Error(), Err: err}
	}

	var updated models.Envelope
	err := c.do(ctx, request{
		op:         op,
		method:     http.MethodPatch,
		path:       "/envelopes/" + id.String(),
		body:       envelope,
		validation: true,
	}, &updated)

	return updated, err
}

// DeleteEnvelope deletes an envelope.
func (c *Client) DeleteEnvelope(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, request{
		op:     "delete envelope",
		method: http.MethodDelete,
		path:   "/envelopes/" + id.String(),
	}, nil)
}

// ListExpenses returns the expenses of an envelope.
func (c *Client) ListExpenses(ctx context.Context, envelopeID uuid.UUID) ([]models.Expense, error) {
	query := url.Values{}
	query.Set("envelopeId", envelopeID.String())

	var expenses []models.Expense
	err := c.do(ctx, request{
		op:     "list expenses",
		method: http.MethodGet,
		path:   "/expenses",
		query:  query,
	}, &expenses)
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// CreateExpense records an expense for an envelope.
//
// The amount must be positive, the direction is set with the transaction type.
func (c *Client) CreateExpense(ctx context.Context, envelopeID uuid.UUID, expense models.ExpenseEditable) (models.Expense, error) {
	const op = "create expense"

	expense = expense.Normalize()
	if err := expense.Validate(); err != nil {
		return models.Expense{}, &ValidationError{Op: op, Message: err.Error(), Err: err}
	}

	var created models.Expense
	err := c.do(ctx, request{
		op:         op,
		method:     http.MethodPost,
		path:       "/envelopes/" + envelopeID.String() + "/expenses",
		body:       expense,
		validation: true,
	}, &created)

	return created, err
}

type request struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any

	// validation marks requests where HTTP 400 means the payload was rejected
	validation bool
}

// do sends the request and decodes a successful response into target.
// target may be nil for responses without a body.
func (c *Client) do(ctx context.Context, r request, target any) error {
	u := *c.baseURL
	u.Path = c.baseURL.Path + r.path
	if r.query != nil {
		u.RawQuery = r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("%s: encoding request body: %w", r.op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), body)
	if err != nil {
		return fmt.Errorf("%s: building request: %w", r.op, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug().Str("op", r.op).Str("method", r.method).Str("url", u.String()).Err(err).Msg("request failed")
		return &NetworkError{Op: r.op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: r.op, Err: err}
	}

	c.logger.Debug().
		Str("op", r.op).
		Str("method", r.method).
		Str("url", u.String()).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if r.validation && resp.StatusCode == http.StatusBadRequest {
			return &ValidationError{Op: r.op, Status: resp.StatusCode, Message: errorMessage(data)}
		}

		return &RemoteError{Op: r.op, Status: resp.StatusCode, Body: string(data), Message: errorMessage(data)}
	}

	if target == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, target); err != nil {
		return &RemoteError{Op: r.op, Status: resp.StatusCode, Body: string(data), Message: fmt.Sprintf("response could not be decoded: %v", err)}
	}

	return nil
}
