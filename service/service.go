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

// Package service contains the pieces shared by the remote ledger service
// clients: connection options, per-call client construction and fault
// translation.
package service

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/blinklabs-io/gocyclos/metrics"
	"github.com/blinklabs-io/gocyclos/soap"
)

// ServicesPath is the path below the base URL under which every service is published
const ServicesPath = "services"

// Options holds the settings every service client is built from. Options is a
// plain value and may be shared between goroutines; the SOAP clients it creates
// may not
type Options struct {
	BaseURL     string
	Username    string
	Password    string
	Trace       bool
	CacheSchema bool
	HTTPClient  *http.Client
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
}

// URL returns the endpoint URL of the named service
func (o Options) URL(path string) string {
	return strings.TrimRight(o.BaseURL, "/") + "/" + ServicesPath + "/" + path
}

// SOAPConfig returns the SOAP client config for the named service
func (o Options) SOAPConfig(path string) soap.Config {
	options := []soap.ConfigOptionFunc{
		soap.WithURL(o.URL(path)),
		soap.WithTrace(o.Trace),
		soap.WithSchemaCache(o.CacheSchema),
		soap.WithHTTPClient(o.HTTPClient),
		soap.WithLogger(o.Log()),
	}
	if o.Username != "" || o.Password != "" {
		options = append(options, soap.WithBasicAuth(o.Username, o.Password))
	}
	return soap.NewConfig(options...)
}

// Log returns the configured logger, or the default logger if none was set
func (o Options) Log() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Call performs a single operation on a freshly constructed SOAP client, which
// is closed before Call returns
func (o Options) Call(
	ctx context.Context,
	path string,
	operation string,
	params soap.Params,
) (any, error) {
	start := time.Now()
	result, err := o.call(ctx, path, operation, params)
	o.Metrics.RecordCall(path, operation, time.Since(start), err)
	if err != nil {
		o.Log().Debug(
			"remote call failed",
			"component", "service",
			"service", path,
			"operation", operation,
			"error", err,
		)
	}
	return result, err
}

func (o Options) call(
	ctx context.Context,
	path string,
	operation string,
	params soap.Params,
) (any, error) {
	cfg := o.SOAPConfig(path)
	client, err := soap.New(ctx, &cfg)
	if err != nil {
		return nil, err
	}
	defer client.Close()
	return client.Call(ctx, operation, params)
}
