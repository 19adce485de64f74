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

package service

import (
	"errors"
	"strings"

	"github.com/blinklabs-io/gocyclos/ledger"
	"github.com/blinklabs-io/gocyclos/soap"
)

// Lowercase fragments of remote fault codes and messages, by the error kind they map to
var (
	accountNotFoundPatterns = []string{
		"specified account was not found",
		"account was not found",
		"account_not_found",
		"accountnotfound",
	}
	memberNotFoundPatterns = []string{
		"specified member was not found",
		"member was not found",
		"member not found",
		"member_not_found",
		"membernotfound",
		"invalid principal",
	}
)

// entityNotFoundCode is the generic lookup failure code, which names the entity kind in the message
const entityNotFoundCode = "entity_not_found"

// TranslateFault maps a remote fault onto the member/account not found error
// kinds. The returned error wraps the original fault. Any other error, including
// faults that match no pattern, is returned unchanged
func TranslateFault(err error) error {
	var fault *soap.FaultError
	if !errors.As(err, &fault) {
		return err
	}
	text := strings.ToLower(fault.Code + " " + fault.Message)
	if matchAny(text, accountNotFoundPatterns) ||
		(strings.Contains(text, entityNotFoundCode) && strings.Contains(text, "account")) {
		return &ledger.NotFoundError{Kind: ledger.ErrAccountNotFound, Cause: err}
	}
	if matchAny(text, memberNotFoundPatterns) {
		return &ledger.NotFoundError{Kind: ledger.ErrMemberNotFound, Cause: err}
	}
	return err
}

func matchAny(text string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(text, pattern) {
			return true
		}
	}
	return false
}
