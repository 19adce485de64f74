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

// Package members implements the client for the remote member service, which
// registers, updates and searches account holders
package members

import (
	"github.com/blinklabs-io/gocyclos/service"
)

// ServiceName is the path of the member service below the services root
const ServiceName = "members"

// Remote operation names
const (
	OperationRegister          = "registerMember"
	OperationUpdate            = "updateMember"
	OperationUpdateGroup       = "updateMemberGroup"
	OperationSearch            = "search"
	OperationFullTextSearch    = "fullTextSearch"
	OperationListManagedGroups = "listManagedGroups"
)

// CredentialField selects which secret the remote ledger requires on registration
type CredentialField string

const (
	CredentialFieldPassword CredentialField = "password"
	CredentialFieldPin      CredentialField = "pin"
)

const (
	DefaultPasswordLength = 16
	DefaultPinLength      = 4
)

// Config contains configuration options for the member service
type Config struct {
	CredentialField CredentialField
	PasswordLength  int
	PinLength       int
}

// MembersOptionFunc is a function that modifies a Config
type MembersOptionFunc func(*Config)

// NewConfig creates a new Config with default values, applying any provided option functions
func NewConfig(options ...MembersOptionFunc) Config {
	c := Config{
		CredentialField: CredentialFieldPassword,
		PasswordLength:  DefaultPasswordLength,
		PinLength:       DefaultPinLength,
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// WithCredentialField specifies whether registration fills a password or a PIN
func WithCredentialField(field CredentialField) MembersOptionFunc {
	return func(c *Config) {
		c.CredentialField = field
	}
}

// WithPasswordLength specifies the length of generated passwords
func WithPasswordLength(length int) MembersOptionFunc {
	return func(c *Config) {
		c.PasswordLength = length
	}
}

// WithPinLength specifies the number of digits of generated PINs
func WithPinLength(length int) MembersOptionFunc {
	return func(c *Config) {
		c.PinLength = length
	}
}

// Members is the member service client. It holds no connection state; each
// operation uses its own SOAP client
type Members struct {
	options service.Options
	config  *Config
}

// New returns a new member service client
func New(options service.Options, cfg *Config) *Members {
	if cfg == nil {
		tmpCfg := NewConfig()
		cfg = &tmpCfg
	}
	return &Members{
		options: options,
		config:  cfg,
	}
}
