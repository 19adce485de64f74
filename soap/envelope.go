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

package soap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DateTimeFormat is the layout used to send time values
const DateTimeFormat = "2006-01-02T15:04:05.000-07:00"

// Param is a single named request element. A name that appears more than once
// in a Params list produces one sibling element per occurrence, which is how
// variable-length lists are sent
type Param struct {
	Name  string
	Value any
}

// Params is an ordered list of request elements
type Params []Param

// Add appends a parameter and returns the updated list. Nil values are skipped
func (p Params) Add(name string, value any) Params {
	if value == nil {
		return p
	}
	return append(p, Param{Name: name, Value: value})
}

// AddRepeated appends one element per value
func AddRepeated[T any](p Params, name string, values []T) Params {
	for _, v := range values {
		p = append(p, Param{Name: name, Value: v})
	}
	return p
}

// Get returns the value of the first parameter with the given name
func (p Params) Get(name string) (any, bool) {
	for _, param := range p {
		if param.Name == name {
			return param.Value, true
		}
	}
	return nil, false
}

// Count returns the number of parameters with the given name
func (p Params) Count(name string) int {
	var n int
	for _, param := range p {
		if param.Name == name {
			n++
		}
	}
	return n
}

const (
	envelopePrefix = "soapenv"
	bodyPrefix     = "ns"
)

func prefixed(prefix string, local string) xml.Name {
	return xml.Name{Local: prefix + ":" + local}
}

// EncodeEnvelope builds the request envelope for an operation
func EncodeEnvelope(namespace string, operation string, params Params) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	envelope := xml.StartElement{
		Name: prefixed(envelopePrefix, "Envelope"),
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmlns:" + envelopePrefix}, Value: EnvelopeNamespace},
			{Name: xml.Name{Local: "xmlns:" + bodyPrefix}, Value: namespace},
		},
	}
	body := xml.StartElement{Name: prefixed(envelopePrefix, "Body")}
	op := xml.StartElement{Name: prefixed(bodyPrefix, operation)}
	for _, start := range []xml.StartElement{envelope, body, op} {
		if err := enc.EncodeToken(start); err != nil {
			return nil, err
		}
	}
	if err := encodeParams(enc, params); err != nil {
		return nil, fmt.Errorf("encode %s: %w", operation, err)
	}
	for _, start := range []xml.StartElement{op, body, envelope} {
		if err := enc.EncodeToken(start.End()); err != nil {
			return nil, err
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeParams(enc *xml.Encoder, params Params) error {
	for _, param := range params {
		if err := encodeParam(enc, param.Name, param.Value); err != nil {
			return err
		}
	}
	return nil
}

func encodeParam(enc *xml.Encoder, name string, value any) error {
	// Lists expand into repeated siblings
	switch v := value.(type) {
	case nil:
		return nil
	case []Params:
		for _, item := range v {
			if err := encodeParam(enc, name, item); err != nil {
				return err
			}
		}
		return nil
	case []string:
		for _, item := range v {
			if err := encodeParam(enc, name, item); err != nil {
				return err
			}
		}
		return nil
	case []int64:
		for _, item := range v {
			if err := encodeParam(enc, name, item); err != nil {
				return err
			}
		}
		return nil
	}
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if nested, ok := value.(Params); ok {
		if err := encodeParams(enc, nested); err != nil {
			return err
		}
	} else {
		text, err := formatScalar(value)
		if err != nil {
			return fmt.Errorf("parameter %s: %w", name, err)
		}
		if err := enc.EncodeToken(xml.CharData(text)); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

func formatScalar(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case decimal.Decimal:
		return v.String(), nil
	case time.Time:
		return v.Format(DateTimeFormat), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("unsupported parameter type %T", value)
	}
}
