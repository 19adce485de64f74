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

// Package payments implements the client for the remote payment service
package payments

import (
	"context"

	"github.com/blinklabs-io/gocyclos/service"
)

// ServiceName is the path of the payment service below the services root
const ServiceName = "payments"

// OperationDoPayment is the remote operation that performs a payment
const OperationDoPayment = "doPayment"

// Alert describes a payment whose outcome is unknown because the call itself failed
type Alert struct {
	Operation string
	Payment   PaymentParams
	Err       error
}

// AlertFunc is a callback function type for payments that failed without a status
type AlertFunc func(context.Context, Alert)

// Config contains configuration options for the payment service
type Config struct {
	AlertFunc AlertFunc
}

// PaymentsOptionFunc is a function that modifies a Config
type PaymentsOptionFunc func(*Config)

// NewConfig creates a new Config with default values, applying any provided option functions
func NewConfig(options ...PaymentsOptionFunc) Config {
	c := Config{}
	for _, option := range options {
		option(&c)
	}
	return c
}

// WithAlertFunc sets the callback invoked for payments that failed without a status
func WithAlertFunc(alertFunc AlertFunc) PaymentsOptionFunc {
	return func(c *Config) {
		c.AlertFunc = alertFunc
	}
}

// Payments is the payment service client
type Payments struct {
	options service.Options
	config  *Config
}

// New returns a new payment service client
func New(options service.Options, cfg *Config) *Payments {
	if cfg == nil {
		tmpCfg := NewConfig()
		cfg = &tmpCfg
	}
	return &Payments{
		options: options,
		config:  cfg,
	}
}
