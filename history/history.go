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

// Package history provides an index-addressable view over the remotely paged
// transfer history of the account service.
//
// A View never caches pages: every At and Slice call performs exactly one remote
// fetch. Only the total count is remembered, and only by the View that fetched it.
// A View is meant to be used by a single caller at a time.
package history

import (
	"context"
	"errors"

	"github.com/jinzhu/copier"

	"github.com/blinklabs-io/gocyclos/ledger"
	"github.com/blinklabs-io/gocyclos/service/accounts"
)

// ErrInvalidRange indicates a negative index or a range whose end precedes its start
var ErrInvalidRange = errors.New("invalid history range")

// Searcher is the subset of the account service a View fetches pages from
type Searcher interface {
	SearchHistory(context.Context, accounts.HistoryParams) (ledger.AccountHistoryPage, error)
	SearchMultipleHistories(context.Context, accounts.MultipleHistoryParams) (ledger.AccountHistoryPage, error)
}

type viewKind int

const (
	viewKindAccount viewKind = iota
	viewKindMultiple
)

// View is a lazily fetched sequence of transfers
type View struct {
	searcher   Searcher
	kind       viewKind
	account    accounts.HistoryParams
	multiple   accounts.MultipleHistoryParams
	descending bool
	count      *int
}

// NewAccountView returns a view over the history of a single member account
func NewAccountView(searcher Searcher, params accounts.HistoryParams, descending bool) *View {
	return &View{
		searcher:   searcher,
		kind:       viewKindAccount,
		account:    params,
		descending: descending,
	}
}

// NewMultipleView returns a view over the transfers of every account of an
// account type or currency
func NewMultipleView(searcher Searcher, params accounts.MultipleHistoryParams, descending bool) *View {
	return &View{
		searcher:   searcher,
		kind:       viewKindMultiple,
		multiple:   params,
		descending: descending,
	}
}

// Descending returns true if the view lists the most recent transfers first
func (v *View) Descending() bool {
	return v.descending
}

// reverseOrder returns the value sent as the remote reverseOrder flag. The
// single account search takes it in the same sense as the descending flag,
// while the multiple account search takes it in the opposite sense
func (v *View) reverseOrder() bool {
	if v.kind == viewKindMultiple {
		return !v.descending
	}
	return v.descending
}

func (v *View) fetch(ctx context.Context, paging *accounts.Paging) (ledger.AccountHistoryPage, error) {
	switch v.kind {
	case viewKindMultiple:
		params := v.multiple
		params.ReverseOrder = v.reverseOrder()
		params.Paging = paging
		return v.searcher.SearchMultipleHistories(ctx, params)
	default:
		params := v.account
		params.ReverseOrder = v.reverseOrder()
		params.Paging = paging
		return v.searcher.SearchHistory(ctx, params)
	}
}

// PageFor returns the remote page that Slice requests for the range [start, stop).
// A nil result means no paging
func PageFor(start int, stop int) *accounts.Paging {
	pageSize := stop - start
	if pageSize == 0 {
		return nil
	}
	return &accounts.Paging{
		CurrentPage: start / pageSize,
		PageSize:    pageSize,
	}
}

// At returns the transfer at index i. The boolean is false if there is no such
// transfer, including when the member or account does not exist
func (v *View) At(ctx context.Context, i int) (ledger.Transfer, bool, error) {
	if i < 0 {
		return ledger.Transfer{}, false, ErrInvalidRange
	}
	page, err := v.fetch(ctx, &accounts.Paging{CurrentPage: i, PageSize: 1})
	if err != nil {
		if ledger.IsNotFound(err) {
			return ledger.Transfer{}, false, nil
		}
		return ledger.Transfer{}, false, err
	}
	if len(page.Transfers) == 0 {
		return ledger.Transfer{}, false, nil
	}
	return page.Transfers[0], true, nil
}

// Slice returns the transfers in [start, stop) using a single remote fetch of
// page size stop-start at page start/(stop-start). An empty range fetches one
// unpaged page and returns all of it
func (v *View) Slice(ctx context.Context, start int, stop int) ([]ledger.Transfer, error) {
	if start < 0 || stop < start {
		return nil, ErrInvalidRange
	}
	page, err := v.fetch(ctx, PageFor(start, stop))
	if err != nil {
		if ledger.IsNotFound(err) {
			return []ledger.Transfer{}, nil
		}
		return nil, err
	}
	return page.Transfers, nil
}

// Count returns the total number of transfers. The value is fetched once per View
func (v *View) Count(ctx context.Context) (int, error) {
	if v.count != nil {
		return *v.count, nil
	}
	var count int
	page, err := v.fetch(ctx, &accounts.Paging{CurrentPage: 0, PageSize: 0})
	if err != nil {
		if !ledger.IsNotFound(err) {
			return 0, err
		}
	} else {
		count = page.TotalCount
	}
	v.count = &count
	return count, nil
}

// AccountStatus returns the account status reported along with the first page,
// or nil if the remote ledger did not report one
func (v *View) AccountStatus(ctx context.Context) (*ledger.AccountStatus, error) {
	page, err := v.fetch(ctx, &accounts.Paging{CurrentPage: 0, PageSize: 0})
	if err != nil {
		return nil, err
	}
	return page.AccountStatus, nil
}

// Reverse returns a new View over the same transfers in the opposite order. The
// new View does not share the remembered count
func (v *View) Reverse() (*View, error) {
	ret := &View{
		searcher:   v.searcher,
		kind:       v.kind,
		account:    v.account,
		multiple:   v.multiple,
		descending: !v.descending,
	}
	// Field filter slices are the only shared state. copier reuses a non-nil
	// destination, so start from nil to get fresh backing arrays
	ret.account.Fields = nil
	ret.multiple.Fields = nil
	if err := copier.CopyWithOption(&ret.account.Fields, &v.account.Fields, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if err := copier.CopyWithOption(&ret.multiple.Fields, &v.multiple.Fields, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return ret, nil
}
