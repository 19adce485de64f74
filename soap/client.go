// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package soap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/blinklabs-io/gocyclos/utils"
)

// Client performs calls against a single service endpoint
type Client struct {
	config         Config
	schema         *Schema
	httpClient     *http.Client
	ownsHTTPClient bool
	logger         *slog.Logger
}

// New returns a new Client for the configured endpoint. The schema document is
// fetched (or taken from the process cache) before New returns
func New(ctx context.Context, cfg *Config) (*Client, error) {
	if cfg == nil {
		tmpCfg := NewConfig()
		cfg = &tmpCfg
	}
	if cfg.URL == "" {
		return nil, ErrMissingURL
	}
	c := &Client{
		config:     *cfg,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		}
		c.ownsHTTPClient = true
	}
	schema, err := c.loadSchema(ctx)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.schema = schema
	return c, nil
}

// endpoint returns the address requests are posted to: the location advertised
// by the schema, or the configured URL when the schema names none
func (c *Client) endpoint() string {
	if c.schema.Location != "" {
		return c.schema.Location
	}
	return c.config.URL
}

// Schema returns the schema the client was built from
func (c *Client) Schema() *Schema {
	return c.schema
}

// Close releases any idle connections held by the client's own HTTP transport
func (c *Client) Close() {
	if c.ownsHTTPClient {
		c.httpClient.CloseIdleConnections()
	}
}

func (c *Client) authorize(req *http.Request) {
	if c.config.Username != "" || c.config.Password != "" {
		req.SetBasicAuth(c.config.Username, c.config.Password)
	}
}

// Call invokes an operation and returns the decoded return value. The shape of
// the value follows the rules of the response decoder: nested maps, lists for
// repeated elements, and strings for leaves.
//
// Protocol-level failures are returned as errors: *FaultError for remote faults
// and *HTTPError for other non-success responses. Business failures reported
// by the remote service are part of the returned value
func (c *Client) Call(ctx context.Context, operation string, params Params) (any, error) {
	op, ok := c.schema.Operation(operation)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, operation)
	}
	reqBody, err := EncodeEnvelope(c.schema.Namespace, op.Name, params)
	if err != nil {
		return nil, err
	}
	requestId := uuid.NewString()
	if c.config.Trace {
		c.logger.Info(
			"SOAP request",
			"component", "soap",
			"request_id", requestId,
			"operation", operation,
			"url", c.endpoint(),
			"body", string(reqBody),
		)
	}
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.endpoint(),
		bytes.NewReader(reqBody),
	)
	if err != nil {
		return nil, err
	}
	req.ContentLength = int64(len(reqBody))
	req.Header.Set("Content-Type", ContentType)
	req.Header.Set("SOAPAction", strconv.Quote(c.schema.ActionFor(op)))
	c.authorize(req)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", operation, err)
	}
	if c.config.Trace {
		c.logger.Info(
			"SOAP response",
			"component", "soap",
			"request_id", requestId,
			"operation", operation,
			"status", resp.StatusCode,
			"body", string(respBody),
		)
	}
	result, err := DecodeResponse(respBody)
	if err != nil {
		var fault *FaultError
		if errors.As(err, &fault) {
			return nil, fault
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
		}
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	if c.config.Trace {
		c.logger.Debug(
			"SOAP result\n"+utils.DumpStructure(result, ""),
			"component", "soap",
			"request_id", requestId,
			"operation", operation,
		)
	}
	return result, nil
}
