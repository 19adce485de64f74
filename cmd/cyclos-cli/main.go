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
	"fmt"
	"os"

	"github.com/blinklabs-io/gocyclos/cmd/common"
)

func main() {
	f := common.NewGlobalFlags(common.LoadConfig())
	f.Parse()

	if len(f.Flagset.Args()) > 0 {
		switch f.Flagset.Arg(0) {
		case "status":
			runStatus(f)
		case "history":
			runHistory(f)
		case "pay":
			runPay(f)
		case "members":
			runMembers(f)
		case "channels":
			runChannels(f)
		case "monitor":
			runMonitor(f)
		default:
			fmt.Printf("Unknown subcommand: %s\n", f.Flagset.Arg(0))
			os.Exit(1)
		}
	} else {
		fmt.Printf("You must specify a subcommand (status, history, pay, members, channels or monitor)\n")
		os.Exit(1)
	}
}
