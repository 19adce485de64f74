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
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/blinklabs-io/gocyclos/cmd/common"
	"github.com/blinklabs-io/gocyclos/service/members"
)

type membersFlags struct {
	flagset  *flag.FlagSet
	page     int
	pageSize int
	groups   bool
}

func newMembersFlags() *membersFlags {
	f := &membersFlags{
		flagset: flag.NewFlagSet("members", flag.ExitOnError),
	}
	f.flagset.IntVar(&f.page, "page", 0, "page number, starting at 0")
	f.flagset.IntVar(&f.pageSize, "page-size", 20, "members per page")
	f.flagset.BoolVar(&f.groups, "groups", false, "list the managed groups instead of searching")
	return f
}

func runMembers(f *common.GlobalFlags) {
	membersFlags := newMembersFlags()
	err := membersFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	ctx := context.Background()
	l := common.CreateLedger(ctx, f)
	if membersFlags.groups {
		groups, err := l.ListManagedGroups(ctx)
		if err != nil {
			fmt.Printf("ERROR: failure listing groups: %s\n", err)
			os.Exit(1)
		}
		for _, group := range groups {
			fmt.Printf("%d\t%s\n", group.ID, group.Name)
		}
		return
	}
	result, err := l.SearchMembers(ctx, members.SearchParams{
		Keywords:    strings.Join(membersFlags.flagset.Args(), " "),
		CurrentPage: membersFlags.page,
		PageSize:    membersFlags.pageSize,
	})
	if err != nil {
		fmt.Printf("ERROR: failure searching members: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("%d members found\n", result.TotalCount)
	for _, member := range result.Members {
		fmt.Printf("%d\t%s\t%s\t%s\n", member.ID, member.Username, member.Name, member.Email)
	}
}
