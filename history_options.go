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
	"time"

	"github.com/blinklabs-io/gocyclos/ledger"
	"github.com/blinklabs-io/gocyclos/service/accounts"
)

type historyConfig struct {
	descending    bool
	beginDate     time.Time
	endDate       time.Time
	accountTypeID int64
	fields        []ledger.FieldValue
}

// HistoryOptionFunc is a type that represents functions that modify a transfer history view
type HistoryOptionFunc func(*historyConfig)

func newHistoryConfig(options ...HistoryOptionFunc) historyConfig {
	c := historyConfig{}
	for _, option := range options {
		option(&c)
	}
	return c
}

func (c historyConfig) filter() accounts.Filter {
	return accounts.Filter{
		BeginDate: c.beginDate,
		EndDate:   c.endDate,
		Fields:    c.fields,
	}
}

// WithDescending specifies whether the most recent transfers come first
func WithDescending(descending bool) HistoryOptionFunc {
	return func(c *historyConfig) {
		c.descending = descending
	}
}

// WithDateRange limits the view to transfers between begin and end. A zero time leaves that side open
func WithDateRange(begin time.Time, end time.Time) HistoryOptionFunc {
	return func(c *historyConfig) {
		c.beginDate = begin
		c.endDate = end
	}
}

// WithAccountType specifies the account type to search
func WithAccountType(accountTypeID int64) HistoryOptionFunc {
	return func(c *historyConfig) {
		c.accountTypeID = accountTypeID
	}
}

// WithFieldFilter limits the view to transfers with matching custom field values
func WithFieldFilter(fields ...ledger.FieldValue) HistoryOptionFunc {
	return func(c *historyConfig) {
		c.fields = append(c.fields, fields...)
	}
}
