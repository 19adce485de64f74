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

// Package convert turns decoded response trees into typed ledger records.
//
// The remote service declares most elements repeatable, and the transport
// renders a repeatable element as a single map when it occurs once and as a
// list when it occurs more than once. Every converter goes through AsList for
// such elements, so both shapes produce the same records.
package convert

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ConversionError indicates a value that could not be converted to the expected type
type ConversionError struct {
	Field string
	Value string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s: invalid value %q: %s", e.Field, e.Value, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// AsList normalizes a repeatable element. A map is one element, a list yields
// each of its map elements, and anything else is empty
func AsList(raw any) []map[string]any {
	switch v := raw.(type) {
	case map[string]any:
		return []map[string]any{v}
	case []any:
		ret := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				ret = append(ret, m)
			}
		}
		return ret
	case []map[string]any:
		return v
	}
	return []map[string]any{}
}

// Record returns a response value as a single record, or nil if it holds none.
// A list is reduced to its first element
func Record(raw any) map[string]any {
	items := AsList(raw)
	if len(items) == 0 {
		return nil
	}
	return items[0]
}

// Map returns the named child as a map, or nil if it is absent or not a map.
// A list is reduced to its first element
func Map(m map[string]any, key string) map[string]any {
	return Record(m[key])
}

// String returns the named leaf, or an empty string if it is absent
func String(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case []any:
		// A repeated leaf where one was expected, keep the first
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

func trimmed(m map[string]any, key string) string {
	return strings.TrimSpace(String(m, key))
}

// Int64 returns the named leaf as an int64. An absent or empty leaf is zero
func Int64(m map[string]any, key string) (int64, error) {
	s := trimmed(m, key)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &ConversionError{Field: key, Value: s, Err: err}
	}
	return v, nil
}

// Int returns the named leaf as an int. An absent or empty leaf is zero
func Int(m map[string]any, key string) (int, error) {
	v, err := Int64(m, key)
	return int(v), err
}

// Bool returns the named leaf as a bool. An absent or empty leaf is false
func Bool(m map[string]any, key string) (bool, error) {
	s := trimmed(m, key)
	if s == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, &ConversionError{Field: key, Value: s, Err: err}
	}
	return v, nil
}

// Decimal returns the named leaf as a decimal. An absent or empty leaf is zero
func Decimal(m map[string]any, key string) (decimal.Decimal, error) {
	v, _, err := OptionalDecimal(m, key)
	return v, err
}

// OptionalDecimal returns the named leaf as a decimal and whether it was present
func OptionalDecimal(m map[string]any, key string) (decimal.Decimal, bool, error) {
	s := trimmed(m, key)
	if s == "" {
		return decimal.Zero, false, nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false, &ConversionError{Field: key, Value: s, Err: err}
	}
	return v, true, nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000-07:00",
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Time returns the named leaf as a time. An absent or empty leaf is the zero time
func Time(m map[string]any, key string) (time.Time, error) {
	s := trimmed(m, key)
	if s == "" {
		return time.Time{}, nil
	}
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, &ConversionError{Field: key, Value: s, Err: lastErr}
}
