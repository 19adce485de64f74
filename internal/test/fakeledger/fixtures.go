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

package fakeledger

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/blinklabs-io/gocyclos/soap"
)

// Element returns an element with the given inner XML
func Element(name string, inner ...string) string {
	return "<" + name + ">" + strings.Join(inner, "") + "</" + name + ">"
}

// Text returns an element holding escaped text
func Text(name string, value any) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(fmt.Sprint(value)))
	return Element(name, sb.String())
}

// Return answers with a single return element
func Return(inner ...string) Response {
	return Response{Returns: []string{strings.Join(inner, "")}}
}

// Fault answers with a remote fault
func Fault(code string, message string) Response {
	return Response{Fault: &soap.FaultError{Code: code, Message: message}}
}

// TransferType returns a transfer type record
func TransferType(id int64, name string) string {
	return Text("id", id) + Text("name", name)
}

// TransferTypes answers a transfer type search
func TransferTypes(transferTypes ...string) Response {
	return Response{Returns: transferTypes}
}

// Transfer returns a transfer record between two members
func Transfer(id int64, from string, to string, amount string, description string) string {
	return strings.Join(
		[]string{
			Text("id", id),
			Element("transferType", TransferType(1, "Member to member payment")),
			Element("fromMember", Text("id", id*10), Text("username", from), Text("name", from)),
			Element("toMember", Text("id", id*10+1), Text("username", to), Text("name", to)),
			Text("amount", amount),
			Text("formattedAmount", amount+" units"),
			Text("date", "2024-03-01T10:00:00.000-03:00"),
			Text("formattedDate", "01/03/2024"),
			Text("description", description),
		},
		"",
	)
}

// AccountStatus returns an account status record without an upper credit limit
func AccountStatus(balance string, creditLimit string) string {
	return strings.Join(
		[]string{
			Text("balance", balance),
			Text("formattedBalance", balance+" units"),
			Text("availableBalance", balance),
			Text("formattedAvailableBalance", balance+" units"),
			Text("reservedAmount", "0"),
			Text("formattedReservedAmount", "0 units"),
			Text("creditLimit", creditLimit),
			Text("formattedCreditLimit", creditLimit+" units"),
		},
		"",
	)
}

// History answers a history search with the given transfer records
func History(totalCount int, accountStatus string, transfers ...string) Response {
	inner := []string{Text("currentPage", 0), Text("totalCount", totalCount)}
	if accountStatus != "" {
		inner = append(inner, Element("accountStatus", accountStatus))
	}
	for _, transfer := range transfers {
		inner = append(inner, Element("transfers", transfer))
	}
	return Return(inner...)
}

// Payment answers a payment with the given status and optional transfer record
func Payment(status string, transfer string) Response {
	inner := []string{Text("status", status)}
	if transfer != "" {
		inner = append(inner, Element("transfer", transfer))
	}
	return Return(inner...)
}
