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

package members

import (
	"context"
	"errors"
	"fmt"

	"github.com/blinklabs-io/gocyclos/convert"
	"github.com/blinklabs-io/gocyclos/ledger"
	"github.com/blinklabs-io/gocyclos/service"
	"github.com/blinklabs-io/gocyclos/soap"
)

// ErrEmptyUsername indicates a login name with no characters left after sanitizing
var ErrEmptyUsername = errors.New("username is empty after sanitizing")

// RegisterParams describes a new member
type RegisterParams struct {
	Username string
	Name     string
	Email    string
	GroupID  int64
	// Password and Pin are generated when empty, depending on the configured credential field
	Password string
	Pin      string
	Fields   []ledger.FieldValue
}

// UpdateParams describes changes to an existing member
type UpdateParams struct {
	ID     int64
	Name   string
	Email  string
	Fields []ledger.FieldValue
}

// SearchParams describes a member search. A non-empty Keywords selects the
// full-text search; otherwise the structured fields are used
type SearchParams struct {
	Keywords    string
	Username    string
	Email       string
	GroupIDs    []int64
	Fields      []ledger.FieldValue
	CurrentPage int
	PageSize    int
}

func (m *Members) call(ctx context.Context, operation string, params soap.Params) (any, error) {
	m.options.Log().Debug(
		"calling "+operation,
		"component", "service",
		"service", ServiceName,
	)
	return m.options.Call(ctx, ServiceName, operation, params)
}

// Register creates a new member. The login name is sanitized before it is sent;
// the result keeps the original value as DisplayUsername
func (m *Members) Register(ctx context.Context, req RegisterParams) (ledger.NewMemberResult, error) {
	username := SanitizeUsername(req.Username)
	if username == "" {
		return ledger.NewMemberResult{}, ErrEmptyUsername
	}
	params := soap.Params{}.
		Add("username", username).
		Add("name", req.Name).
		Add("email", req.Email)
	if req.GroupID != 0 {
		params = params.Add("groupId", req.GroupID)
	}
	switch m.config.CredentialField {
	case CredentialFieldPin:
		pin := req.Pin
		if pin == "" {
			var err error
			if pin, err = GeneratePin(m.config.PinLength); err != nil {
				return ledger.NewMemberResult{}, fmt.Errorf("generate pin: %w", err)
			}
		}
		params = params.Add("pin", pin)
	default:
		password := req.Password
		if password == "" {
			var err error
			if password, err = GeneratePassword(m.config.PasswordLength); err != nil {
				return ledger.NewMemberResult{}, fmt.Errorf("generate password: %w", err)
			}
		}
		params = params.Add("loginPassword", password)
	}
	params = soap.AddRepeated(params, "fields", service.FieldParams(req.Fields))
	result, err := m.call(
		ctx,
		OperationRegister,
		soap.Params{{Name: "params", Value: params}},
	)
	if err != nil {
		return ledger.NewMemberResult{}, err
	}
	ret, err := convert.NewMemberResult(result, req.Username)
	if err != nil {
		return ledger.NewMemberResult{}, err
	}
	if ret.Username == "" {
		ret.Username = username
	}
	return ret, nil
}

// Update changes the name, email and custom fields of a member
func (m *Members) Update(ctx context.Context, req UpdateParams) error {
	params := soap.Params{}.
		Add("id", req.ID).
		Add("name", req.Name).
		Add("email", req.Email)
	params = soap.AddRepeated(params, "fields", service.FieldParams(req.Fields))
	_, err := m.call(
		ctx,
		OperationUpdate,
		soap.Params{{Name: "params", Value: params}},
	)
	return err
}

// UpdateGroup moves a member to another group, recording the comments in the
// remote audit trail
func (m *Members) UpdateGroup(ctx context.Context, id int64, groupID int64, comments string) error {
	params := soap.Params{}.
		Add("id", id).
		Add("groupId", groupID).
		Add("comments", comments)
	_, err := m.call(
		ctx,
		OperationUpdateGroup,
		soap.Params{{Name: "params", Value: params}},
	)
	return err
}

// Search returns one page of members matching the search
func (m *Members) Search(ctx context.Context, req SearchParams) (ledger.MemberSearchResult, error) {
	operation := OperationSearch
	params := soap.Params{}
	if req.Keywords != "" {
		operation = OperationFullTextSearch
		params = params.Add("keywords", req.Keywords)
	} else {
		if req.Username != "" {
			params = params.Add("username", req.Username)
		}
		if req.Email != "" {
			params = params.Add("email", req.Email)
		}
	}
	params = soap.AddRepeated(params, "groupIds", req.GroupIDs)
	params = soap.AddRepeated(params, "fields", service.FieldParams(req.Fields))
	if req.PageSize > 0 {
		params = params.
			Add("currentPage", req.CurrentPage).
			Add("pageSize", req.PageSize)
	}
	result, err := m.call(
		ctx,
		operation,
		soap.Params{{Name: "params", Value: params}},
	)
	if err != nil {
		return ledger.MemberSearchResult{}, err
	}
	return convert.MemberSearchResult(result)
}

// ListManagedGroups returns the groups the web services client may manage
func (m *Members) ListManagedGroups(ctx context.Context) ([]ledger.Group, error) {
	result, err := m.call(ctx, OperationListManagedGroups, nil)
	if err != nil {
		return nil, err
	}
	return convert.Groups(result)
}
