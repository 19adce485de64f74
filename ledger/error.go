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

import (
	"errors"
	"fmt"
)

// ErrMemberNotFound indicates that the remote ledger could not resolve the member a call acted upon
var ErrMemberNotFound = errors.New("member not found")

// ErrAccountNotFound indicates that the remote ledger could not resolve the account a call acted upon
var ErrAccountNotFound = errors.New("account not found")

// ErrPaymentFailed is matched by every PaymentFailedError
var ErrPaymentFailed = errors.New("payment failed")

// NotFoundError carries the original remote error alongside a not-found kind
type NotFoundError struct {
	Kind  error
	Cause error
}

func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Cause)
	}
	return e.Kind.Error()
}

// Unwrap allows errors.Is to match the kind and errors.As to reach the remote fault
func (e *NotFoundError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// PaymentFailedError is returned when a payment completes with any status
// other than PaymentStatusProcessed
type PaymentFailedError struct {
	Status PaymentStatus
}

func (e *PaymentFailedError) Error() string {
	return fmt.Sprintf("payment failed: %s", e.Status)
}

func (e *PaymentFailedError) Is(target error) bool {
	return target == ErrPaymentFailed
}

// IsNotFound returns true if err is a member or account not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrMemberNotFound) || errors.Is(err, ErrAccountNotFound)
}
