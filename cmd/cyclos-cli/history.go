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
	"time"

	cyclos "github.com/blinklabs-io/gocyclos"
	"github.com/blinklabs-io/gocyclos/cmd/common"
	"github.com/blinklabs-io/gocyclos/history"
)

type historyFlags struct {
	flagset  *flag.FlagSet
	page     int
	pageSize int
	desc     bool
	since    string
	currency string
}

func newHistoryFlags() *historyFlags {
	f := &historyFlags{
		flagset: flag.NewFlagSet("history", flag.ExitOnError),
	}
	f.flagset.IntVar(&f.page, "page", 0, "page number, starting at 0")
	f.flagset.IntVar(&f.pageSize, "page-size", 20, "transfers per page")
	f.flagset.BoolVar(&f.desc, "desc", false, "list the most recent transfers first")
	f.flagset.StringVar(&f.since, "since", "", "only list transfers on or after this date (YYYY-MM-DD)")
	f.flagset.StringVar(&f.currency, "currency", "", "list the transfers of every account in this currency instead of a single member")
	return f
}

func runHistory(f *common.GlobalFlags) {
	historyFlags := newHistoryFlags()
	err := historyFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	options := []cyclos.HistoryOptionFunc{
		cyclos.WithDescending(historyFlags.desc),
	}
	if historyFlags.since != "" {
		since, err := time.Parse(time.DateOnly, historyFlags.since)
		if err != nil {
			fmt.Printf("ERROR: invalid date %q: %s\n", historyFlags.since, err)
			os.Exit(1)
		}
		options = append(options, cyclos.WithDateRange(since, time.Time{}))
	}
	if historyFlags.pageSize <= 0 || historyFlags.page < 0 {
		fmt.Printf("ERROR: page size must be positive and page must not be negative\n")
		os.Exit(1)
	}

	ctx := context.Background()
	l := common.CreateLedger(ctx, f)
	var view *history.View
	switch {
	case historyFlags.currency != "":
		view = l.ListAllTransactions(historyFlags.currency, options...)
	case len(historyFlags.flagset.Args()) > 0:
		view = l.ListTransactions(historyFlags.flagset.Arg(0), options...)
	default:
		fmt.Printf("ERROR: you must specify a username or -currency\n")
		os.Exit(1)
	}

	count, err := view.Count(ctx)
	if err != nil {
		fmt.Printf("ERROR: failure counting transfers: %s\n", err)
		os.Exit(1)
	}
	start := historyFlags.page * historyFlags.pageSize
	transfers, err := view.Slice(ctx, start, start+historyFlags.pageSize)
	if err != nil {
		fmt.Printf("ERROR: failure listing transfers: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("transfers %d-%d of %d\n", start+1, start+len(transfers), count)
	for _, tr := range transfers {
		date := tr.FormattedDate
		if date == "" && !tr.Date.IsZero() {
			date = tr.Date.Format(time.DateTime)
		}
		fmt.Printf(
			"%d\t%s\t%s -> %s\t%s\t%s\n",
			tr.ID,
			date,
			tr.From,
			tr.To,
			tr.Amount,
			tr.Description,
		)
	}
}
