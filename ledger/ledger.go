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

// Package ledger contains the typed records produced from remote ledger
// responses, along with the error kinds shared by the services that produce
// them.
//
// Every record here is an immutable value created by a single converter call
// reacting to one remote response. Nothing in this package is persisted.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Amount is a signed monetary value paired with the display string the remote
// ledger formatted for it
type Amount struct {
	Value     decimal.Decimal
	Formatted string
}

func (a Amount) String() string {
	if a.Formatted != "" {
		return a.Formatted
	}
	return a.Value.String()
}

// OptionalAmount is an Amount that the remote ledger may omit entirely
type OptionalAmount struct {
	Amount
	Valid bool
}

// FieldValue is a single custom field name/value pair
type FieldValue struct {
	FieldID      int64
	InternalName string
	DisplayName  string
	Value        string
}

// Member describes a remote account holder as it appears inside other records
type Member struct {
	ID       int64
	Name     string
	Username string
	Email    string
	GroupID  int64
	Fields   []FieldValue
}

// MemberSummary is a search result entry
type MemberSummary struct {
	ID       int64
	Name     string
	Email    string
	Username string
	// GroupID is zero when the remote ledger did not report one
	GroupID int64
}

// MemberSearchResult is one page of member search results
type MemberSearchResult struct {
	CurrentPage int
	TotalCount  int
	Members     []MemberSummary
}

// Group is a remote member group
type Group struct {
	ID   int64
	Name string
}

// NewMemberResult is returned by member registration
type NewMemberResult struct {
	ID       int64
	Username string
	// DisplayUsername is the login name as supplied by the caller, before it was
	// reduced to the character set the remote ledger accepts
	DisplayUsername    string
	AwaitingActivation bool
}

// TransferTypeEndpoint is the account type on one side of a transfer type
type TransferTypeEndpoint struct {
	ID       int64
	Name     string
	Currency string
}

// TransferType is a remote-configured category of money movement
type TransferType struct {
	ID   int64
	Name string
	From TransferTypeEndpoint
	To   TransferTypeEndpoint
}

// Party is one side of a transfer. Exactly one of Member and SystemAccount is set
type Party struct {
	Member        *Member
	SystemAccount string
}

// IsSystem returns true if the party is a named system account
func (p Party) IsSystem() bool {
	return p.Member == nil
}

func (p Party) String() string {
	if p.Member != nil {
		if p.Member.Username != "" {
			return p.Member.Username
		}
		return p.Member.Name
	}
	return p.SystemAccount
}

// Transfer is one completed ledger movement
type Transfer struct {
	ID                int64
	TransferType      TransferType
	From              Party
	To                Party
	Amount            Amount
	Date              time.Time
	FormattedDate     string
	ProcessDate       time.Time
	Description       string
	CustomValues      []FieldValue
	TransactionNumber string
	TraceNumber       string
	Status            string
}

// AccountStatus holds the balances of an account as reported by the remote
// ledger. The values are authoritative and are never recomputed locally
type AccountStatus struct {
	Balance          Amount
	AvailableBalance Amount
	ReservedAmount   Amount
	CreditLimit      Amount
	UpperCreditLimit OptionalAmount
}

// AccountHistoryPage is the result of a single remote history page fetch
type AccountHistoryPage struct {
	AccountStatus *AccountStatus
	CurrentPage   int
	TotalCount    int
	Transfers     []Transfer
}

// ChannelStatus is the result of checking a member's access through a channel
type ChannelStatus string

const (
	ChannelStatusEnabled        ChannelStatus = "ENABLED"
	ChannelStatusDisabled       ChannelStatus = "DISABLED"
	ChannelStatusBlocked        ChannelStatus = "BLOCKED"
	ChannelStatusInvalidMember  ChannelStatus = "INVALID_MEMBER"
	ChannelStatusInvalidChannel ChannelStatus = "INVALID_CHANNEL"
)
