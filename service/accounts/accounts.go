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

// Package accounts implements the client for the remote account service, which
// searches transfer history and transfer types
package accounts

import (
	"time"

	"github.com/blinklabs-io/gocyclos/ledger"
	"github.com/blinklabs-io/gocyclos/service"
)

// ServiceName is the path of the account service below the services root
const ServiceName = "accounts"

// Remote operation names
const (
	OperationSearchHistory         = "searchAccountHistory"
	OperationSearchMultipleHistory = "searchMultipleAccountHistory"
	OperationSearchTransferTypes   = "searchTransferTypes"
)

// Transfer type search values
const (
	ContextPayment = "PAYMENT"
	NatureMember   = "MEMBER"
	NatureSystem   = "SYSTEM"
)

// Paging selects one page of results. A nil *Paging sends no paging parameters,
// which makes the remote ledger return a single page with its default size
type Paging struct {
	CurrentPage int
	PageSize    int
}

// Filter holds the constraints shared by both history searches
type Filter struct {
	// BeginDate and EndDate bound the search when non-zero
	BeginDate    time.Time
	EndDate      time.Time
	ReverseOrder bool
	Fields       []ledger.FieldValue
	Paging       *Paging
}

// HistoryParams describes a transfer history search on a single member account
type HistoryParams struct {
	Filter
	Principal     string
	AccountTypeID int64
}

// MultipleHistoryParams describes a transfer history search across all accounts
// of an account type or currency
type MultipleHistoryParams struct {
	Filter
	AccountTypeID int64
	Currency      string
}

// TransferTypeQuery describes a transfer type search
type TransferTypeQuery struct {
	Context    string
	FromNature string
	ToNature   string
	Currency   string
}

// Accounts is the account service client
type Accounts struct {
	options service.Options
}

// New returns a new account service client
func New(options service.Options) *Accounts {
	return &Accounts{
		options: options,
	}
}
