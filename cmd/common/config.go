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
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfig
const (
	EnvURL             = "CYCLOS_URL"
	EnvUsername        = "CYCLOS_USERNAME"
	EnvPassword        = "CYCLOS_PASSWORD"
	EnvTrace           = "CYCLOS_TRACE"
	EnvCacheSchema     = "CYCLOS_CACHE_SCHEMA"
	EnvCredentialField = "CYCLOS_CREDENTIAL_FIELD"
	EnvTransferType    = "CYCLOS_TRANSFER_TYPE"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
)

const (
	defaultCredentialField = "password"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
)

// Config holds the settings the command line flags default to
type Config struct {
	URL              string
	Username         string
	Password         string
	Trace            bool
	CacheSchema      bool
	CredentialField  string
	TransferTypeName string
	Logging          LoggingConfig
}

// LoggingConfig controls the log handler
type LoggingConfig struct {
	Level  string
	Format string // text|json
}

// LoadConfig reads the configuration from the environment. A .env file in the
// working directory is loaded first if present; variables already set take precedence
func LoadConfig() Config {
	_ = godotenv.Load()
	return Config{
		URL:              os.Getenv(EnvURL),
		Username:         os.Getenv(EnvUsername),
		Password:         os.Getenv(EnvPassword),
		Trace:            parseBoolWithDefault(EnvTrace, false),
		CacheSchema:      parseBoolWithDefault(EnvCacheSchema, true),
		CredentialField:  valueOrDefault(EnvCredentialField, defaultCredentialField),
		TransferTypeName: os.Getenv(EnvTransferType),
		Logging: LoggingConfig{
			Level:  valueOrDefault(EnvLogLevel, defaultLogLevel),
			Format: valueOrDefault(EnvLogFormat, defaultLogFormat),
		},
	}
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}
