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

package service_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blinklabs-io/gocyclos/ledger"
	"github.com/blinklabs-io/gocyclos/service"
	"github.com/blinklabs-io/gocyclos/soap"
)

func TestTranslateFault(t *testing.T) {
	testDefs := []struct {
		fault    *soap.FaultError
		expected error
	}{
		{
			fault:    &soap.FaultError{Code: "soap:Server", Message: "The specified account was not found"},
			expected: ledger.ErrAccountNotFound,
		},
		{
			fault:    &soap.FaultError{Code: "ACCOUNT_NOT_FOUND"},
			expected: ledger.ErrAccountNotFound,
		},
		{
			fault:    &soap.FaultError{Code: "ENTITY_NOT_FOUND", Message: "account"},
			expected: ledger.ErrAccountNotFound,
		},
		{
			fault:    &soap.FaultError{Code: "soap:Server", Message: "ENTITY_NOT_FOUND: MemberAccount 12"},
			expected: ledger.ErrAccountNotFound,
		},
		{
			fault:    &soap.FaultError{Code: "MEMBER_NOT_FOUND"},
			expected: ledger.ErrMemberNotFound,
		},
		{
			fault:    &soap.FaultError{Code: "soap:Server", Message: "Specified member was not found: jdoe"},
			expected: ledger.ErrMemberNotFound,
		},
		{
			fault:    &soap.FaultError{Code: "soap:Client", Message: "Invalid principal: USER jdoe"},
			expected: ledger.ErrMemberNotFound,
		},
	}
	for _, testDef := range testDefs {
		err := service.TranslateFault(fmt.Errorf("searchAccountHistory: %w", testDef.fault))
		assert.ErrorIs(t, err, testDef.expected, testDef.fault.Message)
		var fault *soap.FaultError
		assert.ErrorAs(t, err, &fault)
		assert.Equal(t, testDef.fault, fault)
	}
}

func TestTranslateFaultPassThrough(t *testing.T) {
	fault := &soap.FaultError{Code: "soap:Server", Message: "Transaction limit exceeded"}
	assert.Same(t, fault, service.TranslateFault(fault))
	entity := &soap.FaultError{Code: "ENTITY_NOT_FOUND", Message: "TransferType 7"}
	assert.Same(t, entity, service.TranslateFault(entity))
	other := errors.New("connection refused")
	assert.Same(t, other, service.TranslateFault(other))
	assert.NoError(t, service.TranslateFault(nil))
}

func TestFieldParams(t *testing.T) {
	params := service.FieldParams([]ledger.FieldValue{
		{FieldID: 4, Value: "A1"},
		{InternalName: "city", Value: "Lima"},
	})
	assert.Equal(
		t,
		[]soap.Params{
			{{Name: "fieldId", Value: int64(4)}, {Name: "value", Value: "A1"}},
			{{Name: "internalName", Value: "city"}, {Name: "value", Value: "Lima"}},
		},
		params,
	)
}
