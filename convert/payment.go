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
	"strings"

	"github.com/blinklabs-io/gocyclos/ledger"
)

// PaymentResult converts the result of a payment. The transfer is only kept
// when the payment was processed. If a processed transfer cannot be converted,
// the returned result still carries the processed status, without a transfer,
// along with the error
func PaymentResult(raw any) (ledger.PaymentResult, error) {
	m := Record(raw)
	if m == nil {
		return ledger.PaymentResult{Status: ledger.PaymentStatusUnknownError}, nil
	}
	ret := ledger.PaymentResult{
		Status: ledger.ParsePaymentStatus(trimmed(m, "status")),
	}
	if ret.Status != ledger.PaymentStatusProcessed {
		return ret, nil
	}
	if transfer := Map(m, "transfer"); transfer != nil {
		t, err := Transfer(transfer)
		if err != nil {
			return ret, err
		}
		ret.Transfer = &t
	}
	return ret, nil
}

// ChannelStatus converts the result of a channel check
func ChannelStatus(raw any) ledger.ChannelStatus {
	if s, ok := raw.(string); ok {
		return ledger.ChannelStatus(strings.TrimSpace(s))
	}
	if m := Record(raw); m != nil {
		return ledger.ChannelStatus(trimmed(m, "status"))
	}
	return ""
}
