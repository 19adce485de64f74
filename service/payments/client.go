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

package payments

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/blinklabs-io/gocyclos/convert"
	"github.com/blinklabs-io/gocyclos/ledger"
	"github.com/blinklabs-io/gocyclos/service"
	"github.com/blinklabs-io/gocyclos/soap"
)

var (
	errInvalidAmount = errors.New("amount must be positive")
	errFromSpecifier = errors.New("exactly one of FromMember and FromSystem must be set")
	errToSpecifier   = errors.New("exactly one of ToMember and ToSystem must be set")
)

// PaymentParams describes a single money movement. The payer is either a member
// (FromMember) or the system account (FromSystem), and likewise for the payee
type PaymentParams struct {
	Amount         decimal.Decimal
	Description    string
	FromMember     string
	FromSystem     bool
	ToMember       string
	ToSystem       bool
	TransferTypeID int64
	CustomValues   []ledger.FieldValue
}

// Validate checks the amount and the from/to specifiers
func (p PaymentParams) Validate() error {
	if !p.Amount.IsPositive() {
		return errInvalidAmount
	}
	if (p.FromMember != "") == p.FromSystem {
		return errFromSpecifier
	}
	if (p.ToMember != "") == p.ToSystem {
		return errToSpecifier
	}
	return nil
}

func (p PaymentParams) params() soap.Params {
	params := soap.Params{}
	if p.FromSystem {
		params = params.Add("fromSystem", true)
	} else {
		params = params.
			Add("fromMemberPrincipalType", service.PrincipalTypeUser).
			Add("fromMember", p.FromMember)
	}
	if p.ToSystem {
		params = params.Add("toSystem", true)
	} else {
		params = params.
			Add("toMemberPrincipalType", service.PrincipalTypeUser).
			Add("toMember", p.ToMember)
	}
	params = params.
		Add("amount", p.Amount).
		Add("description", p.Description)
	if p.TransferTypeID != 0 {
		params = params.Add("transferTypeId", p.TransferTypeID)
	}
	return soap.AddRepeated(params, "customValues", service.FieldParams(p.CustomValues))
}

// DoPayment performs a payment and always returns a result. Invalid parameters
// produce PaymentStatusInvalidParameters without contacting the remote ledger.
// If the call itself fails, the failure is logged, counted and passed to the
// alert callback, and the result has PaymentStatusUnknownError. A processed
// payment whose transfer cannot be read keeps its status, without a transfer
func (p *Payments) DoPayment(ctx context.Context, req PaymentParams) ledger.PaymentResult {
	logger := p.options.Log()
	if err := req.Validate(); err != nil {
		logger.Warn(
			"rejected payment parameters",
			"component", "service",
			"service", ServiceName,
			"error", err,
		)
		p.options.Metrics.RecordPaymentStatus(ledger.PaymentStatusInvalidParameters)
		return ledger.PaymentResult{Status: ledger.PaymentStatusInvalidParameters}
	}
	logger.Debug(
		"calling "+OperationDoPayment,
		"component", "service",
		"service", ServiceName,
		"amount", req.Amount.String(),
		"transfer_type_id", req.TransferTypeID,
	)
	result, err := p.doPayment(ctx, req)
	if err != nil && result.Processed() {
		logger.Warn(
			"processed payment returned an unreadable transfer",
			"component", "service",
			"service", ServiceName,
			"amount", req.Amount.String(),
			"error", err,
		)
		result.Transfer = nil
		err = nil
	}
	if err != nil {
		logger.Error(
			"payment failed without status",
			"component", "service",
			"service", ServiceName,
			"from_member", req.FromMember,
			"from_system", req.FromSystem,
			"to_member", req.ToMember,
			"to_system", req.ToSystem,
			"amount", req.Amount.String(),
			"error", err,
		)
		p.options.Metrics.RecordPaymentTransportFailure()
		if p.config.AlertFunc != nil {
			p.config.AlertFunc(ctx, Alert{
				Operation: OperationDoPayment,
				Payment:   req,
				Err:       err,
			})
		}
		result = ledger.PaymentResult{Status: ledger.PaymentStatusUnknownError}
	}
	p.options.Metrics.RecordPaymentStatus(result.Status)
	return result
}

func (p *Payments) doPayment(ctx context.Context, req PaymentParams) (ledger.PaymentResult, error) {
	raw, err := p.options.Call(
		ctx,
		ServiceName,
		OperationDoPayment,
		soap.Params{{Name: "params", Value: req.params()}},
	)
	if err != nil {
		return ledger.PaymentResult{}, err
	}
	return convert.PaymentResult(raw)
}
