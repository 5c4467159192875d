// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"

	"github.com/AleutianAI/AleutianBridge/services/analyzer/project"
)

// Worker endpoints.
const (
	endpointStatus     = "/status"
	endpointInitLinter = "/init-linter"
	endpointAnalyze    = "/analyze"
	endpointNewContext = "/new-context"
	endpointLoadConfig = "/load-config"
	endpointClose      = "/close"
)

const (
	defaultCallTimeout  = 2 * time.Minute
	defaultProbeTimeout = 5 * time.Second
)

// Client is the request/response channel to the analysis worker.
//
// Calls are strictly sequential: the worker is a single-threaded resource
// and its per-project caching depends on one-at-a-time, in-order delivery.
// The Client does not serialize calls itself; the scheduler is the only
// component issuing requests during a run.
//
// InitLinter must be called exactly once before the first Analyze in a
// session; calling it again replaces the active configuration.
type Client struct {
	httpClient  *http.Client
	probeClient *http.Client
	baseURL     string
	logger      *slog.Logger
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithCallTimeout bounds each analyze/load-config call. The transport
// surfaces a timeout as a transport failure, never as a partial result.
func WithCallTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithClientLogger sets the logger. Defaults to slog.Default().
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a channel to a worker listening at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: baseURL must not be empty", ErrInvalidInput)
	}
	c := &Client{
		httpClient:  &http.Client{Timeout: defaultCallTimeout},
		probeClient: &http.Client{Timeout: defaultProbeTimeout},
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// IsAlive reports whether the worker is still responsive.
//
// The probe has no side effects and uses a short timeout independent of
// the per-call timeout. Any failure is reported as not alive.
func (c *Client) IsAlive(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpointStatus, nil)
	if err != nil {
		return false
	}
	resp, err := c.probeClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}

// InitLinter configures the worker's rule set, environments and global
// symbol names. Must be called before the first Analyze; calling it again
// replaces the prior configuration.
func (c *Client) InitLinter(ctx context.Context, rules []Rule, environments, globals []string) error {
	payload := initLinterRequest{
		Rules:        rules,
		Environments: environments,
		Globals:      globals,
	}
	if payload.Rules == nil {
		payload.Rules = []Rule{}
	}
	c.logger.Debug("initializing linter",
		slog.Int("rules", len(rules)),
		slog.Int("environments", len(environments)),
		slog.Int("globals", len(globals)),
	)
	return c.post(ctx, endpointInitLinter, payload, nil)
}

// Analyze submits one file and returns the worker's raw response.
//
// A worker-reported parsing error is a normal response, not an error; only
// transport-level failures return a non-nil error, always wrapping
// ErrTransport.
func (c *Client) Analyze(ctx context.Context, request *AnalysisRequest) (*AnalysisResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("%w: request must not be nil", ErrInvalidInput)
	}

	var response AnalysisResponse
	if err := c.post(ctx, endpointAnalyze, request, &response); err != nil {
		c.logger.Error("analyze call failed",
			slog.String("file", request.FilePath),
			slog.Any("error", err),
		)
		return nil, err
	}
	recordIssueCount(ctx, len(response.Issues))
	return &response, nil
}

// AdvanceContext signals that a new configuration's batch is starting so
// the worker can reset its per-project caches. Sent once per config
// transition, never mid-batch.
func (c *Client) AdvanceContext(ctx context.Context) error {
	return c.post(ctx, endpointNewContext, struct{}{}, nil)
}

// LoadConfig asks the worker to parse one configuration file and returns
// its projection: member files and references.
//
// A parse failure reported by the worker wraps ErrConfigParse; transport
// failures wrap ErrTransport.
func (c *Client) LoadConfig(ctx context.Context, path string) (*project.ProjectConfig, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path must not be empty", ErrInvalidInput)
	}

	var response configResponse
	if err := c.post(ctx, endpointLoadConfig, loadConfigRequest{ConfigPath: path}, &response); err != nil {
		return nil, err
	}
	if response.Error != "" {
		return nil, fmt.Errorf("%w: %s: %s", ErrConfigParse, path, response.Error)
	}
	return &project.ProjectConfig{
		Path:       path,
		Files:      response.Files,
		References: response.ProjectReferences,
	}, nil
}

// Close asks the worker to shut down. Best effort; the caller owns the
// process lifecycle.
func (c *Client) Close(ctx context.Context) error {
	return c.post(ctx, endpointClose, struct{}{}, nil)
}

// post issues one JSON request and decodes the reply into out when out is
// non-nil. All failures wrap ErrTransport via RequestError.
func (c *Client) post(ctx context.Context, endpoint string, in, out any) error {
	ctx, span := startCallSpan(ctx, endpoint)
	defer span.End()
	start := time.Now()

	fail := func(status int, err error) error {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		recordCallMetrics(ctx, endpoint, time.Since(start), false)
		return newRequestError(endpoint, status, err)
	}

	// A body that cannot be marshaled is a caller bug, not worker trouble.
	body, err := json.Marshal(in)
	if err != nil {
		err = fmt.Errorf("%w: marshaling request: %v", ErrInvalidInput, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		recordCallMetrics(ctx, endpoint, time.Since(start), false)
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return fail(0, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fail(resp.StatusCode, fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(detail))))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fail(resp.StatusCode, fmt.Errorf("decoding response: %w", err))
		}
	} else {
		io.Copy(io.Discard, resp.Body)
	}

	recordCallMetrics(ctx, endpoint, time.Since(start), true)
	return nil
}
