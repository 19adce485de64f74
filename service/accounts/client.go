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

package accounts

import (
	"context"

	"github.com/blinklabs-io/gocyclos/convert"
	"github.com/blinklabs-io/gocyclos/ledger"
	"github.com/blinklabs-io/gocyclos/service"
	"github.com/blinklabs-io/gocyclos/soap"
)

func (a *Accounts) call(ctx context.Context, operation string, params soap.Params) (any, error) {
	a.options.Log().Debug(
		"calling "+operation,
		"component", "service",
		"service", ServiceName,
	)
	result, err := a.options.Call(ctx, ServiceName, operation, params)
	if err != nil {
		return nil, service.TranslateFault(err)
	}
	return result, nil
}

func (f Filter) params(params soap.Params) soap.Params {
	if f.Paging != nil {
		params = params.
			Add("currentPage", f.Paging.CurrentPage).
			Add("pageSize", f.Paging.PageSize)
	}
	if !f.BeginDate.IsZero() {
		params = params.Add("beginDate", f.BeginDate)
	}
	if !f.EndDate.IsZero() {
		params = params.Add("endDate", f.EndDate)
	}
	params = params.Add("reverseOrder", f.ReverseOrder)
	return soap.AddRepeated(params, "fields", service.FieldParams(f.Fields))
}

// SearchHistory returns one page of the transfer history of a member account.
// Faults about unknown members or accounts are returned as
// ledger.ErrMemberNotFound and ledger.ErrAccountNotFound
func (a *Accounts) SearchHistory(ctx context.Context, req HistoryParams) (ledger.AccountHistoryPage, error) {
	params := service.PrincipalParams(req.Principal)
	if req.AccountTypeID != 0 {
		params = params.Add("accountTypeId", req.AccountTypeID)
	}
	params = req.Filter.params(params)
	result, err := a.call(
		ctx,
		OperationSearchHistory,
		soap.Params{{Name: "params", Value: params}},
	)
	if err != nil {
		return ledger.AccountHistoryPage{}, err
	}
	return convert.HistoryPage(result)
}

// SearchMultipleHistories returns one page of transfers across every account of
// the given account type or currency
func (a *Accounts) SearchMultipleHistories(ctx context.Context, req MultipleHistoryParams) (ledger.AccountHistoryPage, error) {
	params := soap.Params{}
	if req.AccountTypeID != 0 {
		params = params.Add("accountTypeId", req.AccountTypeID)
	}
	if req.Currency != "" {
		params = params.Add("currency", req.Currency)
	}
	params = req.Filter.params(params)
	result, err := a.call(
		ctx,
		OperationSearchMultipleHistory,
		soap.Params{{Name: "params", Value: params}},
	)
	if err != nil {
		return ledger.AccountHistoryPage{}, err
	}
	return convert.HistoryPage(result)
}

// SearchTransferTypes returns the transfer types matching the query
func (a *Accounts) SearchTransferTypes(ctx context.Context, req TransferTypeQuery) ([]ledger.TransferType, error) {
	params := soap.Params{}
	if req.Context != "" {
		params = params.Add("context", req.Context)
	}
	if req.FromNature != "" {
		params = params.Add("fromNature", req.FromNature)
	}
	if req.ToNature != "" {
		params = params.Add("toNature", req.ToNature)
	}
	if req.Currency != "" {
		params = params.Add("currency", req.Currency)
	}
	result, err := a.call(
		ctx,
		OperationSearchTransferTypes,
		soap.Params{{Name: "params", Value: params}},
	)
	if err != nil {
		return nil, err
	}
	return convert.TransferTypes(result)
}
