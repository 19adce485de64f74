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
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	cyclos "github.com/blinklabs-io/gocyclos"
	"github.com/blinklabs-io/gocyclos/cmd/common"
	"github.com/blinklabs-io/gocyclos/ledger"
)

// systemAccount names the system account in place of a member
const systemAccount = "system"

type payFlags struct {
	flagset        *flag.FlagSet
	transferTypeID int64
}

func newPayFlags() *payFlags {
	f := &payFlags{
		flagset: flag.NewFlagSet("pay", flag.ExitOnError),
	}
	f.flagset.Int64Var(&f.transferTypeID, "transfer-type-id", 0, "transfer type id, overriding the default")
	return f
}

func runPay(f *common.GlobalFlags) {
	payFlags := newPayFlags()
	err := payFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	args := payFlags.flagset.Args()
	if len(args) < 4 {
		fmt.Printf("ERROR: usage: pay [-transfer-type-id N] <from> <to> <amount> <description>\n")
		fmt.Printf("       use %q as <from> or <to> for the system account\n", systemAccount)
		os.Exit(1)
	}
	from, to := args[0], args[1]
	amount, err := decimal.NewFromString(args[2])
	if err != nil {
		fmt.Printf("ERROR: invalid amount %q: %s\n", args[2], err)
		os.Exit(1)
	}
	description := args[3]
	var options []cyclos.PaymentOptionFunc
	if payFlags.transferTypeID != 0 {
		options = append(options, cyclos.WithTransferType(payFlags.transferTypeID))
	}

	ctx := context.Background()
	l := common.CreateLedger(ctx, f)
	var tr ledger.Transfer
	switch {
	case from == systemAccount && to == systemAccount:
		fmt.Printf("ERROR: at least one side of the payment must be a member\n")
		os.Exit(1)
	case from == systemAccount:
		tr, err = l.PayFromSystem(ctx, to, amount, description, options...)
	case to == systemAccount:
		tr, err = l.PayToSystem(ctx, from, amount, description, options...)
	default:
		tr, err = l.PayBetweenMembers(ctx, from, to, amount, description, options...)
	}
	if err != nil {
		var failed *ledger.PaymentFailedError
		if errors.As(err, &failed) && failed.Status.IsRecoverable() {
			fmt.Printf("Payment not carried out: %s\n", failed.Status)
			os.Exit(2)
		}
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("Payment processed: transfer %d, %s from %s to %s\n", tr.ID, tr.Amount, tr.From, tr.To)
}
