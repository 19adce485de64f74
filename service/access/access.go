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

// Package access implements the client for the remote access service, which
// queries and changes the channels a member may use
package access

import (
	"context"
	"slices"

	"github.com/blinklabs-io/gocyclos/convert"
	"github.com/blinklabs-io/gocyclos/ledger"
	"github.com/blinklabs-io/gocyclos/service"
	"github.com/blinklabs-io/gocyclos/soap"
)

// ServiceName is the path of the access service below the services root
const ServiceName = "access"

// Remote operation names
const (
	OperationIsChannelEnabled = "isChannelEnabledForMember"
	OperationCheckChannel     = "checkChannel"
	OperationChangeChannels   = "changeChannels"
)

// Access is the access service client
type Access struct {
	options service.Options
}

// New returns a new access service client
func New(options service.Options) *Access {
	return &Access{
		options: options,
	}
}

func (a *Access) call(ctx context.Context, operation string, params soap.Params) (any, error) {
	a.options.Log().Debug(
		"calling "+operation,
		"component", "service",
		"service", ServiceName,
	)
	return a.options.Call(ctx, ServiceName, operation, params)
}

// IsChannelEnabledForMember returns true if the member may use the channel
func (a *Access) IsChannelEnabledForMember(ctx context.Context, principal string, channel string) (bool, error) {
	params := service.PrincipalParams(principal).Add("channel", channel)
	result, err := a.call(
		ctx,
		OperationIsChannelEnabled,
		soap.Params{{Name: "params", Value: params}},
	)
	if err != nil {
		return false, err
	}
	return convert.Bool(map[string]any{"enabled": result}, "enabled")
}

// CheckChannel returns the status of the member's access through the channel
func (a *Access) CheckChannel(ctx context.Context, principal string, channel string) (ledger.ChannelStatus, error) {
	params := service.PrincipalParams(principal).Add("channel", channel)
	result, err := a.call(
		ctx,
		OperationCheckChannel,
		soap.Params{{Name: "params", Value: params}},
	)
	if err != nil {
		return "", err
	}
	return convert.ChannelStatus(result), nil
}

// ChangeChannels enables or disables channels for a member. Each map entry is
// sent as one channels element, in channel name order
func (a *Access) ChangeChannels(ctx context.Context, principal string, channels map[string]bool) error {
	names := make([]string, 0, len(channels))
	for name := range channels {
		names = append(names, name)
	}
	slices.Sort(names)
	params := service.PrincipalParams(principal)
	for _, name := range names {
		params = params.Add(
			"channels",
			soap.Params{
				{Name: "channel", Value: name},
				{Name: "enabled", Value: channels[name]},
			},
		)
	}
	_, err := a.call(
		ctx,
		OperationChangeChannels,
		soap.Params{{Name: "params", Value: params}},
	)
	return err
}
