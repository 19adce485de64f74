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

// Package cyclos implements a client for the web services of a community
// currency ledger.
//
// The Ledger type is the entry point: it binds the member, payment, account and
// access services to one base URL and exposes the business operations built on
// them. A Ledger holds no per-request state and may be shared between goroutines;
// every remote call is made on a freshly constructed SOAP client.
//
// The packages under service/ can be used on their own, but it's not a primary
// design goal.
package cyclos

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/blinklabs-io/gocyclos/history"
	"github.com/blinklabs-io/gocyclos/ledger"
	"github.com/blinklabs-io/gocyclos/metrics"
	"github.com/blinklabs-io/gocyclos/service"
	"github.com/blinklabs-io/gocyclos/service/access"
	"github.com/blinklabs-io/gocyclos/service/accounts"
	"github.com/blinklabs-io/gocyclos/service/members"
	"github.com/blinklabs-io/gocyclos/service/payments"
)

// DefaultTransferTypeName is the name of the transfer type used for payments
// between members when no other is configured
const DefaultTransferTypeName = "Member to member payment"

// ErrMissingBaseURL indicates that no base service URL was configured
var ErrMissingBaseURL = errors.New("base service URL is required")

// ErrNoAccountStatus indicates that the remote ledger did not report an account status
var ErrNoAccountStatus = errors.New("account status not reported")

// The Ledger type binds the remote ledger services and implements the business
// operations on top of them
type Ledger struct {
	baseURL                 string
	username                string
	password                string
	trace                   bool
	cacheSchema             bool
	httpClient              *http.Client
	logger                  *slog.Logger
	metrics                 *metrics.Metrics
	defaultTransferTypeName string
	defaultTransferTypeID   int64
	defaultGroupID          int64
	// Services
	members        *members.Members
	membersConfig  *members.Config
	payments       *payments.Payments
	paymentsConfig *payments.Config
	accounts       *accounts.Accounts
	access         *access.Access
}

// New returns a new Ledger with the specified options. The default transfer type
// is resolved before New returns; an error is returned if the transfer type
// search fails. A transfer type that cannot be found is not an error, but payments
// between members then need an explicit transfer type to pick anything other than
// the remote default
func New(ctx context.Context, options ...LedgerOptionFunc) (*Ledger, error) {
	l := &Ledger{
		defaultTransferTypeName: DefaultTransferTypeName,
	}
	// Apply provided options functions
	for _, option := range options {
		option(l)
	}
	if l.baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	if l.membersConfig == nil {
		tmpCfg := members.NewConfig()
		l.membersConfig = &tmpCfg
	}
	if l.paymentsConfig == nil {
		tmpCfg := payments.NewConfig()
		l.paymentsConfig = &tmpCfg
	}
	serviceOptions := service.Options{
		BaseURL:     l.baseURL,
		Username:    l.username,
		Password:    l.password,
		Trace:       l.trace,
		CacheSchema: l.cacheSchema,
		HTTPClient:  l.httpClient,
		Logger:      l.logger,
		Metrics:     l.metrics,
	}
	l.members = members.New(serviceOptions, l.membersConfig)
	l.payments = payments.New(serviceOptions, l.paymentsConfig)
	l.accounts = accounts.New(serviceOptions)
	l.access = access.New(serviceOptions)
	if err := l.resolveDefaultTransferType(ctx); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Ledger) resolveDefaultTransferType(ctx context.Context) error {
	transferTypes, err := l.accounts.SearchTransferTypes(
		ctx,
		accounts.TransferTypeQuery{
			Context:    accounts.ContextPayment,
			FromNature: accounts.NatureMember,
			ToNature:   accounts.NatureMember,
		},
	)
	if err != nil {
		return fmt.Errorf("resolve default transfer type: %w", err)
	}
	for _, tt := range transferTypes {
		if strings.EqualFold(strings.TrimSpace(tt.Name), l.defaultTransferTypeName) {
			l.defaultTransferTypeID = tt.ID
			l.logger.Debug(
				"resolved default transfer type",
				"component", "ledger",
				"name", tt.Name,
				"transfer_type_id", tt.ID,
			)
			return nil
		}
	}
	l.logger.Warn(
		"default transfer type not found",
		"component", "ledger",
		"name", l.defaultTransferTypeName,
		"candidates", len(transferTypes),
	)
	return nil
}

// DefaultTransferTypeID returns the id of the transfer type used for payments
// between members, or zero if it could not be resolved
func (l *Ledger) DefaultTransferTypeID() int64 {
	return l.defaultTransferTypeID
}

// Members returns the member service client
func (l *Ledger) Members() *members.Members {
	return l.members
}

// Payments returns the payment service client
func (l *Ledger) Payments() *payments.Payments {
	return l.payments
}

// Accounts returns the account service client
func (l *Ledger) Accounts() *accounts.Accounts {
	return l.accounts
}

// Access returns the access service client
func (l *Ledger) Access() *access.Access {
	return l.access
}

// AccountDetails describes a member account
type AccountDetails struct {
	Username string
	Name     string
	Email    string
	// GroupID is only used on creation. Zero selects the configured default group
	GroupID int64
	Fields  []ledger.FieldValue
}

// CreateAccount registers a new member account
func (l *Ledger) CreateAccount(ctx context.Context, details AccountDetails) (ledger.NewMemberResult, error) {
	groupID := details.GroupID
	if groupID == 0 {
		groupID = l.defaultGroupID
	}
	return l.members.Register(ctx, members.RegisterParams{
		Username: details.Username,
		Name:     details.Name,
		Email:    details.Email,
		GroupID:  groupID,
		Fields:   details.Fields,
	})
}

// UpdateAccount changes the name, email and custom fields of a member account
func (l *Ledger) UpdateAccount(ctx context.Context, id int64, details AccountDetails) error {
	return l.members.Update(ctx, members.UpdateParams{
		ID:     id,
		Name:   details.Name,
		Email:  details.Email,
		Fields: details.Fields,
	})
}

// UpdateAccountGroup moves a member account to another group
func (l *Ledger) UpdateAccountGroup(ctx context.Context, id int64, groupID int64, comment string) error {
	return l.members.UpdateGroup(ctx, id, groupID, comment)
}

// GetAccountStatus returns the balances of a member's account
func (l *Ledger) GetAccountStatus(ctx context.Context, username string) (ledger.AccountStatus, error) {
	page, err := l.accounts.SearchHistory(ctx, accounts.HistoryParams{
		Principal: username,
		Filter: accounts.Filter{
			Paging: &accounts.Paging{},
		},
	})
	if err != nil {
		return ledger.AccountStatus{}, err
	}
	if page.AccountStatus == nil {
		return ledger.AccountStatus{}, ErrNoAccountStatus
	}
	return *page.AccountStatus, nil
}

// SearchMembers returns one page of members matching the search
func (l *Ledger) SearchMembers(ctx context.Context, params members.SearchParams) (ledger.MemberSearchResult, error) {
	return l.members.Search(ctx, params)
}

// ListManagedGroups returns the member groups this client may manage
func (l *Ledger) ListManagedGroups(ctx context.Context) ([]ledger.Group, error) {
	return l.members.ListManagedGroups(ctx)
}

// IsChannelEnabled returns true if the member may use the channel
func (l *Ledger) IsChannelEnabled(ctx context.Context, username string, channel string) (bool, error) {
	return l.access.IsChannelEnabledForMember(ctx, username, channel)
}

// CheckChannel returns the status of the member's access through the channel
func (l *Ledger) CheckChannel(ctx context.Context, username string, channel string) (ledger.ChannelStatus, error) {
	return l.access.CheckChannel(ctx, username, channel)
}

// ChangeChannels enables or disables channels for the member
func (l *Ledger) ChangeChannels(ctx context.Context, username string, channels map[string]bool) error {
	return l.access.ChangeChannels(ctx, username, channels)
}

// ListTransactions returns a lazily fetched view of a member's transfers
func (l *Ledger) ListTransactions(username string, options ...HistoryOptionFunc) *history.View {
	cfg := newHistoryConfig(options...)
	return history.NewAccountView(
		l.accounts,
		accounts.HistoryParams{
			Filter:        cfg.filter(),
			Principal:     username,
			AccountTypeID: cfg.accountTypeID,
		},
		cfg.descending,
	)
}

// ListAllTransactions returns a lazily fetched view of the transfers of every
// account in the given currency. Use WithAccountType to select an account type instead
func (l *Ledger) ListAllTransactions(currency string, options ...HistoryOptionFunc) *history.View {
	cfg := newHistoryConfig(options...)
	return history.NewMultipleView(
		l.accounts,
		accounts.MultipleHistoryParams{
			Filter:        cfg.filter(),
			AccountTypeID: cfg.accountTypeID,
			Currency:      currency,
		},
		cfg.descending,
	)
}
