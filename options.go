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

package cyclos

import (
	"log/slog"
	"net/http"

	"github.com/blinklabs-io/gocyclos/metrics"
	"github.com/blinklabs-io/gocyclos/service/members"
	"github.com/blinklabs-io/gocyclos/service/payments"
)

// LedgerOptionFunc is a type that represents functions that modify the Ledger config
type LedgerOptionFunc func(*Ledger)

// WithBaseURL specifies the base URL the services are published under
func WithBaseURL(baseURL string) LedgerOptionFunc {
	return func(l *Ledger) {
		l.baseURL = baseURL
	}
}

// WithBasicAuth specifies credentials to send as an HTTP basic auth header with every request
func WithBasicAuth(username string, password string) LedgerOptionFunc {
	return func(l *Ledger) {
		l.username = username
		l.password = password
	}
}

// WithTrace specifies whether every request and response is logged verbatim. This is disabled by default
// and should stay disabled in production, since the output includes credentials
func WithTrace(trace bool) LedgerOptionFunc {
	return func(l *Ledger) {
		l.trace = trace
	}
}

// WithSchemaCache specifies whether parsed schema documents are reused across calls
func WithSchemaCache(cacheSchema bool) LedgerOptionFunc {
	return func(l *Ledger) {
		l.cacheSchema = cacheSchema
	}
}

// WithHTTPClient specifies the HTTP client to use for every call. If none is provided, each call uses its own
func WithHTTPClient(httpClient *http.Client) LedgerOptionFunc {
	return func(l *Ledger) {
		l.httpClient = httpClient
	}
}

// WithLogger specifies the logger to use
func WithLogger(logger *slog.Logger) LedgerOptionFunc {
	return func(l *Ledger) {
		l.logger = logger
	}
}

// WithMetrics specifies the metrics to record calls and payments in
func WithMetrics(m *metrics.Metrics) LedgerOptionFunc {
	return func(l *Ledger) {
		l.metrics = m
	}
}

// WithDefaultTransferTypeName specifies the name of the transfer type used for payments between members
func WithDefaultTransferTypeName(name string) LedgerOptionFunc {
	return func(l *Ledger) {
		l.defaultTransferTypeName = name
	}
}

// WithDefaultGroupID specifies the group new accounts are created in
func WithDefaultGroupID(groupID int64) LedgerOptionFunc {
	return func(l *Ledger) {
		l.defaultGroupID = groupID
	}
}

// WithMembersConfig specifies the member service config
func WithMembersConfig(cfg members.Config) LedgerOptionFunc {
	return func(l *Ledger) {
		l.membersConfig = &cfg
	}
}

// WithCredentialField specifies whether new accounts get a generated password or PIN. This
// overrides the credential field of any config passed to WithMembersConfig
func WithCredentialField(field members.CredentialField) LedgerOptionFunc {
	return func(l *Ledger) {
		if l.membersConfig == nil {
			tmpCfg := members.NewConfig()
			l.membersConfig = &tmpCfg
		}
		l.membersConfig.CredentialField = field
	}
}

// WithPaymentsConfig specifies the payment service config
func WithPaymentsConfig(cfg payments.Config) LedgerOptionFunc {
	return func(l *Ledger) {
		l.paymentsConfig = &cfg
	}
}

// WithAlertFunc specifies the callback for payments that failed without a status
func WithAlertFunc(alertFunc payments.AlertFunc) LedgerOptionFunc {
	return func(l *Ledger) {
		if l.paymentsConfig == nil {
			tmpCfg := payments.NewConfig()
			l.paymentsConfig = &tmpCfg
		}
		l.paymentsConfig.AlertFunc = alertFunc
	}
}
