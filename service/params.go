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
	"github.com/blinklabs-io/gocyclos/ledger"
	"github.com/blinklabs-io/gocyclos/soap"
)

// PrincipalTypeUser identifies a member by login name
const PrincipalTypeUser = "USER"

// PrincipalParams returns the parameters identifying a member by login name
func PrincipalParams(principal string) soap.Params {
	return soap.Params{
		{Name: "principalType", Value: PrincipalTypeUser},
		{Name: "principal", Value: principal},
	}
}

// FieldParams returns one element per custom field value. A field is identified
// by its id when known and by its internal name otherwise
func FieldParams(fields []ledger.FieldValue) []soap.Params {
	ret := make([]soap.Params, 0, len(fields))
	for _, field := range fields {
		var p soap.Params
		if field.FieldID != 0 {
			p = p.Add("fieldId", field.FieldID)
		}
		if field.InternalName != "" {
			p = p.Add("internalName", field.InternalName)
		}
		p = p.Add("value", field.Value)
		ret = append(ret, p)
	}
	return ret
}
