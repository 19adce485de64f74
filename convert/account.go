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
	"github.com/blinklabs-io/gocyclos/ledger"
)

// AccountStatus converts an account status record. The upper credit limit and
// its formatted twin are missing from some responses and become an invalid
// OptionalAmount
func AccountStatus(m map[string]any) (ledger.AccountStatus, error) {
	var ret ledger.AccountStatus
	var err error
	if ret.Balance, err = Amount(m, "balance", "formattedBalance"); err != nil {
		return ledger.AccountStatus{}, err
	}
	if ret.AvailableBalance, err = Amount(m, "availableBalance", "formattedAvailableBalance"); err != nil {
		return ledger.AccountStatus{}, err
	}
	if ret.ReservedAmount, err = Amount(m, "reservedAmount", "formattedReservedAmount"); err != nil {
		return ledger.AccountStatus{}, err
	}
	if ret.CreditLimit, err = Amount(m, "creditLimit", "formattedCreditLimit"); err != nil {
		return ledger.AccountStatus{}, err
	}
	if ret.UpperCreditLimit, err = OptionalAmount(m, "upperCreditLimit", "formattedUpperCreditLimit"); err != nil {
		return ledger.AccountStatus{}, err
	}
	return ret, nil
}

// HistoryPage converts the result of an account history search
func HistoryPage(raw any) (ledger.AccountHistoryPage, error) {
	var ret ledger.AccountHistoryPage
	m := Record(raw)
	if m == nil {
		return ledger.AccountHistoryPage{Transfers: []ledger.Transfer{}}, nil
	}
	var err error
	if status := Map(m, "accountStatus"); status != nil {
		conv, err := AccountStatus(status)
		if err != nil {
			return ledger.AccountHistoryPage{}, err
		}
		ret.AccountStatus = &conv
	}
	if ret.CurrentPage, err = Int(m, "currentPage"); err != nil {
		return ledger.AccountHistoryPage{}, err
	}
	if ret.TotalCount, err = Int(m, "totalCount"); err != nil {
		return ledger.AccountHistoryPage{}, err
	}
	if ret.Transfers, err = Transfers(m["transfers"]); err != nil {
		return ledger.AccountHistoryPage{}, err
	}
	return ret, nil
}
