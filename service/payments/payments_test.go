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

package payments_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/blinklabs-io/gocyclos/internal/test/fakeledger"
	"github.com/blinklabs-io/gocyclos/ledger"
	"github.com/blinklabs-io/gocyclos/service"
	"github.com/blinklabs-io/gocyclos/service/payments"
	"github.com/blinklabs-io/gocyclos/soap"
)

type testInnerFunc func(*testing.T, *fakeledger.Server, *payments.Payments)

func runTest(t *testing.T, cfg *payments.Config, innerFunc testInnerFunc) {
	defer goleak.VerifyNone(t)
	server := fakeledger.New()
	defer server.Close()
	p := payments.New(
		service.Options{
			BaseURL: server.BaseURL(),
			Logger:  slog.New(slog.DiscardHandler),
		},
		cfg,
	)
	innerFunc(t, server, p)
}

func memberPayment(amount string) payments.PaymentParams {
	return payments.PaymentParams{
		Amount:         decimal.RequireFromString(amount),
		Description:    "Bread",
		FromMember:     "alice",
		ToMember:       "bob",
		TransferTypeID: 3,
		CustomValues:   []ledger.FieldValue{{InternalName: "ref", Value: "A1"}},
	}
}

func TestDoPaymentProcessed(t *testing.T) {
	runTest(t, nil, func(t *testing.T, server *fakeledger.Server, p *payments.Payments) {
		server.Handle("payments", payments.OperationDoPayment, func(fakeledger.Request) fakeledger.Response {
			return fakeledger.Payment("PROCESSED", fakeledger.Transfer(77, "alice", "bob", "12.5", "Bread"))
		})
		result := p.DoPayment(context.Background(), memberPayment("12.50"))
		assert.Equal(t, ledger.PaymentStatusProcessed, result.Status)
		require.NotNil(t, result.Transfer)
		assert.Equal(t, int64(77), result.Transfer.ID)

		req := server.RequestsFor("payments", payments.OperationDoPayment)[0]
		assert.Equal(t, "alice", req.Param("fromMember"))
		assert.Equal(t, service.PrincipalTypeUser, req.Param("fromMemberPrincipalType"))
		assert.Equal(t, "bob", req.Param("toMember"))
		assert.Equal(t, "12.5", req.Param("amount"))
		assert.Equal(t, "3", req.Param("transferTypeId"))
		assert.Equal(t, map[string]any{"internalName": "ref", "value": "A1"}, req.Param("customValues"))
		assert.Nil(t, req.Param("fromSystem"))
	})
}

func TestDoPaymentSystemAccounts(t *testing.T) {
	runTest(t, nil, func(t *testing.T, server *fakeledger.Server, p *payments.Payments) {
		p.DoPayment(context.Background(), payments.PaymentParams{
			Amount:     decimal.NewFromInt(5),
			FromSystem: true,
			ToMember:   "bob",
		})
		req := server.RequestsFor("payments", payments.OperationDoPayment)[0]
		assert.Equal(t, "true", req.Param("fromSystem"))
		assert.Nil(t, req.Param("fromMember"))
		assert.Nil(t, req.Param("transferTypeId"))
	})
}

func TestDoPaymentNotProcessed(t *testing.T) {
	runTest(t, nil, func(t *testing.T, server *fakeledger.Server, p *payments.Payments) {
		server.Handle("payments", payments.OperationDoPayment, func(fakeledger.Request) fakeledger.Response {
			return fakeledger.Payment("NOT_ENOUGH_CREDITS", "")
		})
		result := p.DoPayment(context.Background(), memberPayment("1000"))
		assert.Equal(t, ledger.PaymentStatusNotEnoughCredits, result.Status)
		assert.Nil(t, result.Transfer)
	})
}

func TestDoPaymentTransportFailure(t *testing.T) {
	var alerts []payments.Alert
	cfg := payments.NewConfig(
		payments.WithAlertFunc(func(_ context.Context, alert payments.Alert) {
			alerts = append(alerts, alert)
		}),
	)
	runTest(t, &cfg, func(t *testing.T, server *fakeledger.Server, p *payments.Payments) {
		server.Handle("payments", payments.OperationDoPayment, func(fakeledger.Request) fakeledger.Response {
			return fakeledger.Fault("soap:Server", "java.lang.NullPointerException")
		})
		req := memberPayment("10")
		result := p.DoPayment(context.Background(), req)
		assert.Equal(t, ledger.PaymentStatusUnknownError, result.Status)
		require.Len(t, alerts, 1)
		assert.Equal(t, payments.OperationDoPayment, alerts[0].Operation)
		assert.Equal(t, "alice", alerts[0].Payment.FromMember)
		var fault *soap.FaultError
		assert.ErrorAs(t, alerts[0].Err, &fault)
	})
}

func TestDoPaymentProcessedUnreadableTransfer(t *testing.T) {
	var alerted bool
	cfg := payments.NewConfig(
		payments.WithAlertFunc(func(context.Context, payments.Alert) { alerted = true }),
	)
	runTest(t, &cfg, func(t *testing.T, server *fakeledger.Server, p *payments.Payments) {
		server.Handle("payments", payments.OperationDoPayment, func(fakeledger.Request) fakeledger.Response {
			return fakeledger.Payment("PROCESSED", fakeledger.Transfer(77, "alice", "bob", "12,50", "Bread"))
		})
		result := p.DoPayment(context.Background(), memberPayment("12.50"))
		assert.Equal(t, ledger.PaymentStatusProcessed, result.Status)
		assert.Nil(t, result.Transfer)
		assert.False(t, alerted)
	})
}

func TestDoPaymentUnreachable(t *testing.T) {
	defer goleak.VerifyNone(t)
	server := fakeledger.New()
	baseURL := server.BaseURL()
	server.Close()
	var alerted bool
	cfg := payments.NewConfig(
		payments.WithAlertFunc(func(context.Context, payments.Alert) { alerted = true }),
	)
	p := payments.New(
		service.Options{BaseURL: baseURL, Logger: slog.New(slog.DiscardHandler)},
		&cfg,
	)
	result := p.DoPayment(context.Background(), memberPayment("10"))
	assert.Equal(t, ledger.PaymentStatusUnknownError, result.Status)
	assert.True(t, alerted)
}

func TestDoPaymentInvalidParameters(t *testing.T) {
	runTest(t, nil, func(t *testing.T, server *fakeledger.Server, p *payments.Payments) {
		testDefs := []payments.PaymentParams{
			{Amount: decimal.Zero, FromMember: "alice", ToMember: "bob"},
			{Amount: decimal.NewFromInt(-1), FromMember: "alice", ToMember: "bob"},
			{Amount: decimal.NewFromInt(1), ToMember: "bob"},
			{Amount: decimal.NewFromInt(1), FromMember: "alice", FromSystem: true, ToMember: "bob"},
			{Amount: decimal.NewFromInt(1), FromMember: "alice"},
		}
		for _, req := range testDefs {
			assert.Error(t, req.Validate())
			result := p.DoPayment(context.Background(), req)
			assert.Equal(t, ledger.PaymentStatusInvalidParameters, result.Status)
		}
		assert.Empty(t, server.Requests())
	})
}
