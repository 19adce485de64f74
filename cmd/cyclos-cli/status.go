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
	"os"

	"github.com/blinklabs-io/gocyclos/cmd/common"
)

func runStatus(f *common.GlobalFlags) {
	args := f.Flagset.Args()[1:]
	if len(args) < 1 {
		fmt.Printf("ERROR: you must specify a username\n")
		os.Exit(1)
	}
	ctx := context.Background()
	l := common.CreateLedger(ctx, f)
	for _, username := range args {
		status, err := l.GetAccountStatus(ctx, username)
		if err != nil {
			fmt.Printf("ERROR: failure querying account status of %s: %s\n", username, err)
			os.Exit(1)
		}
		fmt.Printf("%s:\n", username)
		fmt.Printf("  balance:           %s\n", status.Balance)
		fmt.Printf("  available balance: %s\n", status.AvailableBalance)
		fmt.Printf("  reserved amount:   %s\n", status.ReservedAmount)
		fmt.Printf("  credit limit:      %s\n", status.CreditLimit)
		if status.UpperCreditLimit.Valid {
			fmt.Printf("  upper credit limit: %s\n", status.UpperCreditLimit.Amount)
		}
	}
}
