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

// Package utils provides random utility functions
package utils

import (
	"bytes"
	"fmt"
	"slices"
)

// DumpStructure renders a decoded response tree in an indented, stable form for
// diagnostics. Map keys are sorted so that repeated dumps of the same value are identical
func DumpStructure(data any, prefix string) string {
	var ret bytes.Buffer
	switch v := data.(type) {
	case nil:
		return fmt.Sprintf("%s<nil>,\n", prefix)
	case string:
		return fmt.Sprintf("%s%q,\n", prefix, v)
	case []any:
		ret.WriteString(fmt.Sprintf("%s[\n", prefix))
		// Add 2 more spaces to the prefix
		newPrefix := "  " + prefix
		for _, val := range v {
			ret.WriteString(DumpStructure(val, newPrefix))
		}
		ret.WriteString(fmt.Sprintf("%s],\n", prefix))
	case map[string]any:
		ret.WriteString(fmt.Sprintf("%s{\n", prefix))
		newPrefix := "  " + prefix
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			switch val := v[key].(type) {
			case map[string]any, []any:
				ret.WriteString(fmt.Sprintf("%s%s =>\n", newPrefix, key))
				ret.WriteString(DumpStructure(val, newPrefix))
			default:
				ret.WriteString(fmt.Sprintf("%s%s => %#v,\n", newPrefix, key, val))
			}
		}
		ret.WriteString(fmt.Sprintf("%s},\n", prefix))
	default:
		return fmt.Sprintf("%s%#v,\n", prefix, v)
	}
	return ret.String()
}
