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

package common

import (
	"context"
	"fmt"
	"os"

	cyclos "github.com/blinklabs-io/gocyclos"
	"github.com/blinklabs-io/gocyclos/service/members"
)

// CreateLedger connects to the ledger described by the global flags. Any
// failure is fatal
func CreateLedger(ctx context.Context, f *GlobalFlags, options ...cyclos.LedgerOptionFunc) *cyclos.Ledger {
	ledgerOptions := []cyclos.LedgerOptionFunc{
		cyclos.WithBaseURL(f.URL),
		cyclos.WithTrace(f.Trace),
		cyclos.WithSchemaCache(f.CacheSchema),
		cyclos.WithCredentialField(members.CredentialField(f.CredentialField)),
		cyclos.WithLogger(f.Logger()),
	}
	if f.Username != "" || f.Password != "" {
		ledgerOptions = append(ledgerOptions, cyclos.WithBasicAuth(f.Username, f.Password))
	}
	if f.TransferTypeName != "" {
		ledgerOptions = append(ledgerOptions, cyclos.WithDefaultTransferTypeName(f.TransferTypeName))
	}
	l, err := cyclos.New(ctx, append(ledgerOptions, options...)...)
	if err != nil {
		fmt.Printf("Connection failed: %s\n", err)
		os.Exit(1)
	}
	return l
}
