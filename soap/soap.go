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

// Package soap implements a minimal document/literal SOAP 1.1 client for the
// remote ledger web services.
//
// A Client is bound to a single service endpoint and its schema document. It is
// not safe for concurrent use; callers construct a fresh Client for each logical
// operation and discard it afterwards.
package soap

import (
	"log/slog"
	"net/http"
)

const (
	// EnvelopeNamespace is the SOAP 1.1 envelope namespace
	EnvelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"
	// SchemaInstanceNamespace is the XML schema instance namespace used for xsi:nil
	SchemaInstanceNamespace = "http://www.w3.org/2001/XMLSchema-instance"
	// ContentType is sent with every request
	ContentType = "text/xml; charset=utf-8"
	// SchemaQuery is appended to the endpoint URL to fetch its schema document
	SchemaQuery = "wsdl"
)

// Config contains configuration options for a SOAP client
type Config struct {
	URL         string
	Username    string
	Password    string
	Trace       bool
	CacheSchema bool
	HTTPClient  *http.Client
	Logger      *slog.Logger
}

// ConfigOptionFunc is a function that modifies a Config
type ConfigOptionFunc func(*Config)

// NewConfig creates a new Config with default values, applying any provided option functions
func NewConfig(options ...ConfigOptionFunc) Config {
	c := Config{}
	for _, option := range options {
		option(&c)
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// WithURL sets the service endpoint URL
func WithURL(url string) ConfigOptionFunc {
	return func(c *Config) {
		c.URL = url
	}
}

// WithBasicAuth enables HTTP basic authentication on every request
func WithBasicAuth(username string, password string) ConfigOptionFunc {
	return func(c *Config) {
		c.Username = username
		c.Password = password
	}
}

// WithTrace specifies whether requests and responses are logged verbatim. This
// exposes credentials and personal data and should only be enabled for diagnostics
func WithTrace(trace bool) ConfigOptionFunc {
	return func(c *Config) {
		c.Trace = trace
	}
}

// WithSchemaCache specifies whether parsed schema documents are reused across
// clients within the process
func WithSchemaCache(cacheSchema bool) ConfigOptionFunc {
	return func(c *Config) {
		c.CacheSchema = cacheSchema
	}
}

// WithHTTPClient specifies the HTTP client to use. If none is provided, each
// Client creates its own and releases its connections on Close
func WithHTTPClient(httpClient *http.Client) ConfigOptionFunc {
	return func(c *Config) {
		c.HTTPClient = httpClient
	}
}

// WithLogger specifies the logger to use
func WithLogger(logger *slog.Logger) ConfigOptionFunc {
	return func(c *Config) {
		c.Logger = logger
	}
}
