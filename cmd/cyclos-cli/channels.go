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

package main

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/blinklabs-io/gocyclos/cmd/common"
)

// runChannels checks channels, or changes them when given as +name or -name
func runChannels(f *common.GlobalFlags) {
	args := f.Flagset.Args()[1:]
	if len(args) < 2 {
		fmt.Printf("ERROR: usage: channels <username> <channel|+channel|-channel>...\n")
		os.Exit(1)
	}
	username := args[0]
	ctx := context.Background()
	l := common.CreateLedger(ctx, f)
	changes := make(map[string]bool)
	var checks []string
	for _, arg := range args[1:] {
		switch {
		case strings.HasPrefix(arg, "+"):
			changes[arg[1:]] = true
		case strings.HasPrefix(arg, "-"):
			changes[arg[1:]] = false
		default:
			checks = append(checks, arg)
		}
	}
	if len(changes) > 0 {
		if err := l.ChangeChannels(ctx, username, changes); err != nil {
			fmt.Printf("ERROR: failure changing channels: %s\n", err)
			os.Exit(1)
		}
		checks = append(checks, slices.Sorted(maps.Keys(changes))...)
	}
	for _, channel := range checks {
		status, err := l.CheckChannel(ctx, username, channel)
		if err != nil {
			fmt.Printf("ERROR: failure checking channel %s: %s\n", channel, err)
			os.Exit(1)
		}
		fmt.Printf("%s\t%s\n", channel, status)
	}
}
