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

package ledger_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/blinklabs-io/gocyclos/ledger"
)

func TestParsePaymentStatus(t *testing.T) {
	assert.Equal(t, ledger.PaymentStatusNotEnoughCredits, ledger.ParsePaymentStatus("NOT_ENOUGH_CREDITS"))
	assert.Equal(t, ledger.PaymentStatusMaxDailyAmount, ledger.ParsePaymentStatus("MAX_DAILY_AMOUNT_EXCEEDED"))
	assert.Equal(t, ledger.PaymentStatusUnknownError, ledger.ParsePaymentStatus("processed"))
	assert.Equal(t, ledger.PaymentStatusUnknownError, ledger.ParsePaymentStatus(""))
}

func TestPaymentStatusRecoverable(t *testing.T) {
	assert.True(t, ledger.PaymentStatusNotEnoughCredits.IsRecoverable())
	assert.True(t, ledger.PaymentStatusReceiverUpperLimit.IsRecoverable())
	assert.False(t, ledger.PaymentStatusUnknownError.IsRecoverable())
	assert.False(t, ledger.PaymentStatusInvalidChannel.IsRecoverable())
}

func TestPaymentFailedError(t *testing.T) {
	var err error = &ledger.PaymentFailedError{Status: ledger.PaymentStatusNotEnoughCredits}
	wrapped := fmt.Errorf("checkout: %w", err)
	assert.ErrorIs(t, wrapped, ledger.ErrPaymentFailed)
	var failed *ledger.PaymentFailedError
	assert.True(t, errors.As(wrapped, &failed))
	assert.Equal(t, ledger.PaymentStatusNotEnoughCredits, failed.Status)
	assert.Equal(t, "payment failed: NOT_ENOUGH_CREDITS", err.Error())
}

func TestNotFoundError(t *testing.T) {
	cause := errors.New("remote fault: The specified account was not found")
	err := &ledger.NotFoundError{Kind: ledger.ErrAccountNotFound, Cause: cause}
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ledger.ErrMemberNotFound)
	assert.True(t, ledger.IsNotFound(err))
	assert.False(t, ledger.IsNotFound(cause))
	assert.Equal(t, "member not found", (&ledger.NotFoundError{Kind: ledger.ErrMemberNotFound}).Error())
}

func TestPartyAndAmount(t *testing.T) {
	member := ledger.Party{Member: &ledger.Member{Name: "Alice"}}
	assert.False(t, member.IsSystem())
	assert.Equal(t, "Alice", member.String())
	member.Member.Username = "alice"
	assert.Equal(t, "alice", member.String())
	system := ledger.Party{SystemAccount: "Debit account"}
	assert.True(t, system.IsSystem())
	assert.Equal(t, "Debit account", system.String())

	amount := ledger.Amount{Value: decimal.RequireFromString("3.10")}
	assert.Equal(t, "3.1", amount.String())
	amount.Formatted = "3,10 U"
	assert.Equal(t, "3,10 U", amount.String())
}
