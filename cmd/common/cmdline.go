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
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/blinklabs-io/gocyclos/service/members"
)

type GlobalFlags struct {
	Flagset          *flag.FlagSet
	URL              string
	Username         string
	Password         string
	Trace            bool
	CacheSchema      bool
	CredentialField  string
	TransferTypeName string
	LogLevel         string
	LogFormat        string
}

// NewGlobalFlags returns the global flags, with defaults taken from cfg
func NewGlobalFlags(cfg Config) *GlobalFlags {
	f := &GlobalFlags{
		Flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.Flagset.StringVar(
		&f.URL,
		"url",
		cfg.URL,
		"base URL of the ledger web services (env "+EnvURL+")",
	)
	f.Flagset.StringVar(
		&f.Username,
		"username",
		cfg.Username,
		"web services client username for basic auth (env "+EnvUsername+")",
	)
	f.Flagset.StringVar(
		&f.Password,
		"password",
		cfg.Password,
		"web services client password for basic auth (env "+EnvPassword+")",
	)
	f.Flagset.BoolVar(
		&f.Trace,
		"trace",
		cfg.Trace,
		"log every request and response verbatim, including credentials (env "+EnvTrace+")",
	)
	f.Flagset.BoolVar(
		&f.CacheSchema,
		"cache-schema",
		cfg.CacheSchema,
		"reuse fetched schema documents between calls (env "+EnvCacheSchema+")",
	)
	f.Flagset.StringVar(
		&f.CredentialField,
		"credential-field",
		cfg.CredentialField,
		"credential generated for new members: password or pin (env "+EnvCredentialField+")",
	)
	f.Flagset.StringVar(
		&f.TransferTypeName,
		"transfer-type",
		cfg.TransferTypeName,
		"name of the transfer type for payments between members (env "+EnvTransferType+")",
	)
	f.Flagset.StringVar(
		&f.LogLevel,
		"log-level",
		cfg.Logging.Level,
		"log level: debug, info, warn or error (env "+EnvLogLevel+")",
	)
	f.Flagset.StringVar(
		&f.LogFormat,
		"log-format",
		cfg.Logging.Format,
		"log format: text or json (env "+EnvLogFormat+")",
	)
	return f
}

func (f *GlobalFlags) Parse() {
	if err := f.Flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	if f.URL == "" {
		fmt.Printf("You must specify -url or set %s\n\n", EnvURL)
		f.Flagset.PrintDefaults()
		os.Exit(1)
	}
	switch members.CredentialField(f.CredentialField) {
	case members.CredentialFieldPassword, members.CredentialFieldPin:
	default:
		fmt.Printf("Invalid credential field specified: %s\n", f.CredentialField)
		os.Exit(1)
	}
}

// Logger returns the logger selected by the log flags
func (f *GlobalFlags) Logger() *slog.Logger {
	return NewLogger(LoggingConfig{Level: f.LogLevel, Format: f.LogFormat})
}
