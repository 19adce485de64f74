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

package ledger

// PaymentStatus is the outcome code of a payment attempt
type PaymentStatus string

const (
	PaymentStatusProcessed            PaymentStatus = "PROCESSED"
	PaymentStatusPendingAuthorization PaymentStatus = "PENDING_AUTHORIZATION"
	PaymentStatusInvalidCredentials   PaymentStatus = "INVALID_CREDENTIALS"
	PaymentStatusBlockedCredentials   PaymentStatus = "BLOCKED_CREDENTIALS"
	PaymentStatusInvalidChannel       PaymentStatus = "INVALID_CHANNEL"
	PaymentStatusInvalidParameters    PaymentStatus = "INVALID_PARAMETERS"
	PaymentStatusFromNotFound         PaymentStatus = "FROM_NOT_FOUND"
	PaymentStatusToNotFound           PaymentStatus = "TO_NOT_FOUND"
	PaymentStatusNotEnoughCredits     PaymentStatus = "NOT_ENOUGH_CREDITS"
	PaymentStatusMaxDailyAmount       PaymentStatus = "MAX_DAILY_AMOUNT_EXCEEDED"
	PaymentStatusReceiverUpperLimit   PaymentStatus = "RECEIVER_UPPER_CREDIT_LIMIT_REACHED"
	PaymentStatusNotPerformed         PaymentStatus = "NOT_PERFORMED"
	PaymentStatusUnknownError         PaymentStatus = "UNKNOWN_ERROR"
)

var paymentStatuses = map[PaymentStatus]struct{}{
	PaymentStatusProcessed:            {},
	PaymentStatusPendingAuthorization: {},
	PaymentStatusInvalidCredentials:   {},
	PaymentStatusBlockedCredentials:   {},
	PaymentStatusInvalidChannel:       {},
	PaymentStatusInvalidParameters:    {},
	PaymentStatusFromNotFound:         {},
	PaymentStatusToNotFound:           {},
	PaymentStatusNotEnoughCredits:     {},
	PaymentStatusMaxDailyAmount:       {},
	PaymentStatusReceiverUpperLimit:   {},
	PaymentStatusNotPerformed:         {},
	PaymentStatusUnknownError:         {},
}

// ParsePaymentStatus maps a remote status code to a PaymentStatus. Codes outside
// the known set map to PaymentStatusUnknownError
func ParsePaymentStatus(code string) PaymentStatus {
	status := PaymentStatus(code)
	if _, ok := paymentStatuses[status]; ok {
		return status
	}
	return PaymentStatusUnknownError
}

// IsRecoverable returns true for statuses the caller can act on by changing the
// payment or waiting, as opposed to configuration or transport problems
func (s PaymentStatus) IsRecoverable() bool {
	switch s {
	case PaymentStatusNotEnoughCredits,
		PaymentStatusMaxDailyAmount,
		PaymentStatusReceiverUpperLimit,
		PaymentStatusPendingAuthorization:
		return true
	}
	return false
}

// PaymentResult is the outcome of a payment attempt. Transfer is only set when
// Status is PaymentStatusProcessed
type PaymentResult struct {
	Status   PaymentStatus
	Transfer *Transfer
}

// Processed returns true if the payment was carried out
func (r PaymentResult) Processed() bool {
	return r.Status == PaymentStatusProcessed
}
