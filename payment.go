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
	"context"

	"github.com/shopspring/decimal"

	"github.com/blinklabs-io/gocyclos/ledger"
	"github.com/blinklabs-io/gocyclos/service/payments"
)

type paymentConfig struct {
	transferTypeID int64
	customValues   []ledger.FieldValue
}

// PaymentOptionFunc is a type that represents functions that modify a single payment
type PaymentOptionFunc func(*paymentConfig)

// WithTransferType specifies the transfer type of the payment. For payments between
// members this overrides the default transfer type
func WithTransferType(transferTypeID int64) PaymentOptionFunc {
	return func(c *paymentConfig) {
		c.transferTypeID = transferTypeID
	}
}

// WithCustomValues specifies custom field values to attach to the transfer
func WithCustomValues(values ...ledger.FieldValue) PaymentOptionFunc {
	return func(c *paymentConfig) {
		c.customValues = append(c.customValues, values...)
	}
}

// PayBetweenMembers moves amount from one member to another using the default
// transfer type, unless WithTransferType is given
func (l *Ledger) PayBetweenMembers(
	ctx context.Context,
	from string,
	to string,
	amount decimal.Decimal,
	description string,
	options ...PaymentOptionFunc,
) (ledger.Transfer, error) {
	return l.pay(
		ctx,
		payments.PaymentParams{
			FromMember:     from,
			ToMember:       to,
			TransferTypeID: l.defaultTransferTypeID,
		},
		amount,
		description,
		options,
	)
}

// PayToSystem moves amount from a member to the system account
func (l *Ledger) PayToSystem(
	ctx context.Context,
	from string,
	amount decimal.Decimal,
	description string,
	options ...PaymentOptionFunc,
) (ledger.Transfer, error) {
	return l.pay(
		ctx,
		payments.PaymentParams{
			FromMember: from,
			ToSystem:   true,
		},
		amount,
		description,
		options,
	)
}

// PayFromSystem moves amount from the system account to a member
func (l *Ledger) PayFromSystem(
	ctx context.Context,
	to string,
	amount decimal.Decimal,
	description string,
	options ...PaymentOptionFunc,
) (ledger.Transfer, error) {
	return l.pay(
		ctx,
		payments.PaymentParams{
			FromSystem: true,
			ToMember:   to,
		},
		amount,
		description,
		options,
	)
}

// pay performs the payment and turns any status other than processed into a
// *ledger.PaymentFailedError
func (l *Ledger) pay(
	ctx context.Context,
	req payments.PaymentParams,
	amount decimal.Decimal,
	description string,
	options []PaymentOptionFunc,
) (ledger.Transfer, error) {
	cfg := paymentConfig{}
	for _, option := range options {
		option(&cfg)
	}
	req.Amount = amount
	req.Description = description
	req.CustomValues = cfg.customValues
	if cfg.transferTypeID != 0 {
		req.TransferTypeID = cfg.transferTypeID
	}
	result := l.payments.DoPayment(ctx, req)
	if !result.Processed() {
		return ledger.Transfer{}, &ledger.PaymentFailedError{Status: result.Status}
	}
	if result.Transfer != nil {
		return *result.Transfer, nil
	}
	// The remote ledger confirmed the payment without echoing the transfer
	ret := ledger.Transfer{
		TransferType: ledger.TransferType{ID: req.TransferTypeID},
		Amount:       ledger.Amount{Value: amount, Formatted: amount.String()},
		Description:  description,
		CustomValues: req.CustomValues,
		Status:       string(result.Status),
	}
	if req.FromSystem {
		ret.From = ledger.Party{SystemAccount: "system"}
	} else {
		ret.From = ledger.Party{Member: &ledger.Member{Username: req.FromMember}}
	}
	if req.ToSystem {
		ret.To = ledger.Party{SystemAccount: "system"}
	} else {
		ret.To = ledger.Party{Member: &ledger.Member{Username: req.ToMember}}
	}
	return ret, nil
}
