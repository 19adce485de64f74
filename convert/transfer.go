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

package convert

import (
	"errors"

	"github.com/blinklabs-io/gocyclos/ledger"
)

// Amount builds an amount from a value leaf and its formatted twin
func Amount(m map[string]any, valueKey string, formattedKey string) (ledger.Amount, error) {
	v, err := Decimal(m, valueKey)
	if err != nil {
		return ledger.Amount{}, err
	}
	return ledger.Amount{Value: v, Formatted: String(m, formattedKey)}, nil
}

// OptionalAmount builds an amount that the remote service may omit. The amount
// is valid if either the value or its formatted twin is present
func OptionalAmount(m map[string]any, valueKey string, formattedKey string) (ledger.OptionalAmount, error) {
	v, present, err := OptionalDecimal(m, valueKey)
	if err != nil {
		return ledger.OptionalAmount{}, err
	}
	formatted := String(m, formattedKey)
	if !present && formatted == "" {
		return ledger.OptionalAmount{}, nil
	}
	return ledger.OptionalAmount{
		Amount: ledger.Amount{Value: v, Formatted: formatted},
		Valid:  true,
	}, nil
}

// FieldValues converts a repeatable custom field element
func FieldValues(raw any) ([]ledger.FieldValue, error) {
	items := AsList(raw)
	ret := make([]ledger.FieldValue, 0, len(items))
	for _, item := range items {
		id, err := Int64(item, "fieldId")
		if err != nil {
			return nil, err
		}
		ret = append(ret, ledger.FieldValue{
			FieldID:      id,
			InternalName: String(item, "internalName"),
			DisplayName:  String(item, "displayName"),
			Value:        String(item, "value"),
		})
	}
	return ret, nil
}

// TransferTypeEndpoint converts the account type on one side of a transfer type
func TransferTypeEndpoint(m map[string]any) (ledger.TransferTypeEndpoint, error) {
	if m == nil {
		return ledger.TransferTypeEndpoint{}, nil
	}
	id, err := Int64(m, "id")
	if err != nil {
		return ledger.TransferTypeEndpoint{}, err
	}
	ret := ledger.TransferTypeEndpoint{
		ID:   id,
		Name: String(m, "name"),
	}
	// The currency is either a plain symbol or a nested currency record
	if currency := Map(m, "currency"); currency != nil {
		ret.Currency = String(currency, "symbol")
		if ret.Currency == "" {
			ret.Currency = String(currency, "name")
		}
	} else {
		ret.Currency = String(m, "currency")
	}
	return ret, nil
}

// TransferType converts a transfer type record
func TransferType(m map[string]any) (ledger.TransferType, error) {
	if m == nil {
		return ledger.TransferType{}, nil
	}
	id, err := Int64(m, "id")
	if err != nil {
		return ledger.TransferType{}, err
	}
	from, err := TransferTypeEndpoint(Map(m, "from"))
	if err != nil {
		return ledger.TransferType{}, err
	}
	to, err := TransferTypeEndpoint(Map(m, "to"))
	if err != nil {
		return ledger.TransferType{}, err
	}
	return ledger.TransferType{
		ID:   id,
		Name: String(m, "name"),
		From: from,
		To:   to,
	}, nil
}

// TransferTypes converts a repeatable transfer type element
func TransferTypes(raw any) ([]ledger.TransferType, error) {
	items := AsList(raw)
	ret := make([]ledger.TransferType, 0, len(items))
	for _, item := range items {
		tt, err := TransferType(item)
		if err != nil {
			return nil, err
		}
		ret = append(ret, tt)
	}
	return ret, nil
}

func party(m map[string]any, memberKey string, systemKey string) (ledger.Party, error) {
	if member := Map(m, memberKey); member != nil {
		conv, err := Member(member)
		if err != nil {
			return ledger.Party{}, err
		}
		return ledger.Party{Member: &conv}, nil
	}
	return ledger.Party{SystemAccount: String(m, systemKey)}, nil
}

// Transfer converts a single transfer record
func Transfer(m map[string]any) (ledger.Transfer, error) {
	if m == nil {
		return ledger.Transfer{}, errors.New("convert transfer: empty record")
	}
	var ret ledger.Transfer
	var err error
	if ret.ID, err = Int64(m, "id"); err != nil {
		return ledger.Transfer{}, err
	}
	if ret.TransferType, err = TransferType(Map(m, "transferType")); err != nil {
		return ledger.Transfer{}, err
	}
	if ret.From, err = party(m, "fromMember", "fromSystemAccountName"); err != nil {
		return ledger.Transfer{}, err
	}
	if ret.To, err = party(m, "toMember", "toSystemAccountName"); err != nil {
		return ledger.Transfer{}, err
	}
	if ret.Amount, err = Amount(m, "amount", "formattedAmount"); err != nil {
		return ledger.Transfer{}, err
	}
	if ret.Date, err = Time(m, "date"); err != nil {
		return ledger.Transfer{}, err
	}
	if ret.ProcessDate, err = Time(m, "processDate"); err != nil {
		return ledger.Transfer{}, err
	}
	if ret.CustomValues, err = FieldValues(m["customValues"]); err != nil {
		return ledger.Transfer{}, err
	}
	ret.FormattedDate = String(m, "formattedDate")
	ret.Description = String(m, "description")
	ret.TransactionNumber = String(m, "transactionNumber")
	ret.TraceNumber = String(m, "traceNumber")
	ret.Status = String(m, "status")
	return ret, nil
}

// Transfers converts a repeatable transfer element
func Transfers(raw any) ([]ledger.Transfer, error) {
	items := AsList(raw)
	ret := make([]ledger.Transfer, 0, len(items))
	for _, item := range items {
		t, err := Transfer(item)
		if err != nil {
			return nil, err
		}
		ret = append(ret, t)
	}
	return ret, nil
}
