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

package accounts_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/blinklabs-io/gocyclos/internal/test/fakeledger"
	"github.com/blinklabs-io/gocyclos/ledger"
	"github.com/blinklabs-io/gocyclos/service"
	"github.com/blinklabs-io/gocyclos/service/accounts"
	"github.com/blinklabs-io/gocyclos/soap"
)

type testInnerFunc func(*testing.T, *fakeledger.Server, *accounts.Accounts)

func runTest(t *testing.T, innerFunc testInnerFunc) {
	defer goleak.VerifyNone(t)
	server := fakeledger.New()
	defer server.Close()
	innerFunc(t, server, accounts.New(service.Options{BaseURL: server.BaseURL()}))
}

func TestSearchHistory(t *testing.T) {
	runTest(t, func(t *testing.T, server *fakeledger.Server, a *accounts.Accounts) {
		server.Handle("accounts", accounts.OperationSearchHistory, func(fakeledger.Request) fakeledger.Response {
			return fakeledger.History(
				2,
				fakeledger.AccountStatus("40", "100"),
				fakeledger.Transfer(1, "alice", "bob", "10", "first"),
				fakeledger.Transfer(2, "bob", "alice", "5", "second"),
			)
		})
		begin := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		page, err := a.SearchHistory(context.Background(), accounts.HistoryParams{
			Principal:     "alice",
			AccountTypeID: 1,
			Filter: accounts.Filter{
				BeginDate: begin,
				Paging:    &accounts.Paging{CurrentPage: 1, PageSize: 2},
				Fields:    []ledger.FieldValue{{InternalName: "ref", Value: "A1"}},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, page.TotalCount)
		require.Len(t, page.Transfers, 2)
		assert.Equal(t, "second", page.Transfers[1].Description)
		require.NotNil(t, page.AccountStatus)
		assert.False(t, page.AccountStatus.UpperCreditLimit.Valid)

		req := server.RequestsFor("accounts", accounts.OperationSearchHistory)[0]
		assert.Equal(t, "alice", req.Param("principal"))
		assert.Equal(t, service.PrincipalTypeUser, req.Param("principalType"))
		assert.Equal(t, "1", req.Param("accountTypeId"))
		assert.Equal(t, "1", req.Param("currentPage"))
		assert.Equal(t, "2", req.Param("pageSize"))
		assert.Equal(t, "false", req.Param("reverseOrder"))
		assert.Equal(t, begin.Format(soap.DateTimeFormat), req.Param("beginDate"))
		assert.Nil(t, req.Param("endDate"))
		assert.Equal(t, map[string]any{"internalName": "ref", "value": "A1"}, req.Param("fields"))
	})
}

func TestSearchHistoryWithoutPaging(t *testing.T) {
	runTest(t, func(t *testing.T, server *fakeledger.Server, a *accounts.Accounts) {
		_, err := a.SearchHistory(context.Background(), accounts.HistoryParams{
			Principal: "alice",
			Filter:    accounts.Filter{ReverseOrder: true},
		})
		require.NoError(t, err)
		req := server.Requests()[0]
		assert.Nil(t, req.Param("currentPage"))
		assert.Nil(t, req.Param("pageSize"))
		assert.Equal(t, "true", req.Param("reverseOrder"))
	})
}

func TestSearchHistoryNotFound(t *testing.T) {
	testDefs := []struct {
		message  string
		expected error
	}{
		{message: "The specified account was not found", expected: ledger.ErrAccountNotFound},
		{message: "The specified member was not found", expected: ledger.ErrMemberNotFound},
	}
	for _, testDef := range testDefs {
		runTest(t, func(t *testing.T, server *fakeledger.Server, a *accounts.Accounts) {
			server.Handle("accounts", accounts.OperationSearchHistory, func(fakeledger.Request) fakeledger.Response {
				return fakeledger.Fault("soap:Server", testDef.message)
			})
			_, err := a.SearchHistory(context.Background(), accounts.HistoryParams{Principal: "ghost"})
			assert.ErrorIs(t, err, testDef.expected)
			var fault *soap.FaultError
			require.ErrorAs(t, err, &fault)
			assert.Equal(t, testDef.message, fault.Message)
		})
	}
}

func TestAccountNotFoundEveryOperation(t *testing.T) {
	testDefs := []struct {
		operation string
		code      string
		message   string
		call      func(*accounts.Accounts) error
	}{
		{
			operation: accounts.OperationSearchMultipleHistory,
			code:      "soap:Server",
			message:   "The specified account was not found",
			call: func(a *accounts.Accounts) error {
				_, err := a.SearchMultipleHistories(context.Background(), accounts.MultipleHistoryParams{AccountTypeID: 9})
				return err
			},
		},
		{
			operation: accounts.OperationSearchTransferTypes,
			code:      "soap:Server",
			message:   "The specified account was not found",
			call: func(a *accounts.Accounts) error {
				_, err := a.SearchTransferTypes(context.Background(), accounts.TransferTypeQuery{Currency: "X"})
				return err
			},
		},
		{
			operation: accounts.OperationSearchHistory,
			code:      "ENTITY_NOT_FOUND",
			message:   "MemberAccount",
			call: func(a *accounts.Accounts) error {
				_, err := a.SearchHistory(context.Background(), accounts.HistoryParams{Principal: "alice", AccountTypeID: 9})
				return err
			},
		},
	}
	for _, testDef := range testDefs {
		runTest(t, func(t *testing.T, server *fakeledger.Server, a *accounts.Accounts) {
			server.Handle("accounts", testDef.operation, func(fakeledger.Request) fakeledger.Response {
				return fakeledger.Fault(testDef.code, testDef.message)
			})
			err := testDef.call(a)
			assert.ErrorIs(t, err, ledger.ErrAccountNotFound, testDef.operation)
			var fault *soap.FaultError
			require.ErrorAs(t, err, &fault)
			assert.Equal(t, testDef.code, fault.Code)
		})
	}
}

func TestSearchHistoryOtherFault(t *testing.T) {
	runTest(t, func(t *testing.T, server *fakeledger.Server, a *accounts.Accounts) {
		server.Handle("accounts", accounts.OperationSearchMultipleHistory, func(fakeledger.Request) fakeledger.Response {
			return fakeledger.Fault("soap:Server", "Permission denied")
		})
		_, err := a.SearchMultipleHistories(context.Background(), accounts.MultipleHistoryParams{Currency: "U"})
		assert.False(t, ledger.IsNotFound(err))
		var fault *soap.FaultError
		require.ErrorAs(t, err, &fault)
		assert.Equal(t, "Permission denied", fault.Message)
	})
}

func TestSearchMultipleHistories(t *testing.T) {
	runTest(t, func(t *testing.T, server *fakeledger.Server, a *accounts.Accounts) {
		server.Handle("accounts", accounts.OperationSearchMultipleHistory, func(fakeledger.Request) fakeledger.Response {
			return fakeledger.History(1, "", fakeledger.Transfer(3, "carol", "dave", "1", "only"))
		})
		page, err := a.SearchMultipleHistories(context.Background(), accounts.MultipleHistoryParams{
			Currency: "U",
			Filter:   accounts.Filter{Paging: &accounts.Paging{PageSize: 10}},
		})
		require.NoError(t, err)
		assert.Nil(t, page.AccountStatus)
		require.Len(t, page.Transfers, 1)
		req := server.Requests()[0]
		assert.Equal(t, "U", req.Param("currency"))
		assert.Nil(t, req.Param("principal"))
		assert.Nil(t, req.Param("accountTypeId"))
	})
}

func TestSearchTransferTypes(t *testing.T) {
	runTest(t, func(t *testing.T, server *fakeledger.Server, a *accounts.Accounts) {
		server.Handle("accounts", accounts.OperationSearchTransferTypes, func(fakeledger.Request) fakeledger.Response {
			return fakeledger.TransferTypes(
				fakeledger.TransferType(3, "Member to member payment"),
				fakeledger.TransferType(4, "Member to system payment"),
			)
		})
		transferTypes, err := a.SearchTransferTypes(context.Background(), accounts.TransferTypeQuery{
			Context:    accounts.ContextPayment,
			FromNature: accounts.NatureMember,
			ToNature:   accounts.NatureSystem,
		})
		require.NoError(t, err)
		require.Len(t, transferTypes, 2)
		assert.Equal(t, ledger.TransferType{ID: 4, Name: "Member to system payment"}, transferTypes[1])
		req := server.Requests()[0]
		assert.Equal(t, "PAYMENT", req.Param("context"))
		assert.Equal(t, "SYSTEM", req.Param("toNature"))
		assert.Nil(t, req.Param("currency"))
	})
}
