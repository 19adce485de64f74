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

// Member converts a member record
func Member(m map[string]any) (ledger.Member, error) {
	var ret ledger.Member
	var err error
	if ret.ID, err = Int64(m, "id"); err != nil {
		return ledger.Member{}, err
	}
	if ret.GroupID, err = Int64(m, "groupId"); err != nil {
		return ledger.Member{}, err
	}
	if ret.Fields, err = FieldValues(m["fields"]); err != nil {
		return ledger.Member{}, err
	}
	ret.Name = String(m, "name")
	ret.Username = String(m, "username")
	ret.Email = String(m, "email")
	return ret, nil
}

// MemberSummaries converts a repeatable member element into search result entries
func MemberSummaries(raw any) ([]ledger.MemberSummary, error) {
	items := AsList(raw)
	ret := make([]ledger.MemberSummary, 0, len(items))
	for _, item := range items {
		member, err := Member(item)
		if err != nil {
			return nil, err
		}
		ret = append(ret, ledger.MemberSummary{
			ID:       member.ID,
			Name:     member.Name,
			Email:    member.Email,
			Username: member.Username,
			GroupID:  member.GroupID,
		})
	}
	return ret, nil
}

// MemberSearchResult converts the result of a member search
func MemberSearchResult(raw any) (ledger.MemberSearchResult, error) {
	m := Record(raw)
	if m == nil {
		return ledger.MemberSearchResult{Members: []ledger.MemberSummary{}}, nil
	}
	var ret ledger.MemberSearchResult
	var err error
	if ret.CurrentPage, err = Int(m, "currentPage"); err != nil {
		return ledger.MemberSearchResult{}, err
	}
	if ret.TotalCount, err = Int(m, "totalCount"); err != nil {
		return ledger.MemberSearchResult{}, err
	}
	if ret.Members, err = MemberSummaries(m["members"]); err != nil {
		return ledger.MemberSearchResult{}, err
	}
	return ret, nil
}

// NewMemberResult converts the result of a member registration.
// displayUsername is the login name as originally supplied by the caller
func NewMemberResult(raw any, displayUsername string) (ledger.NewMemberResult, error) {
	m := Record(raw)
	if m == nil {
		return ledger.NewMemberResult{DisplayUsername: displayUsername}, nil
	}
	id, err := Int64(m, "id")
	if err != nil {
		return ledger.NewMemberResult{}, err
	}
	awaiting, err := Bool(m, "awaitingEmailValidation")
	if err != nil {
		return ledger.NewMemberResult{}, err
	}
	return ledger.NewMemberResult{
		ID:                 id,
		Username:           String(m, "username"),
		DisplayUsername:    displayUsername,
		AwaitingActivation: awaiting,
	}, nil
}

// Groups converts a repeatable group element
func Groups(raw any) ([]ledger.Group, error) {
	items := AsList(raw)
	ret := make([]ledger.Group, 0, len(items))
	for _, item := range items {
		id, err := Int64(item, "id")
		if err != nil {
			return nil, err
		}
		ret = append(ret, ledger.Group{ID: id, Name: String(item, "name")})
	}
	return ret, nil
}
