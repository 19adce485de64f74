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
	"errors"
	"fmt"
	"io"
	"strings"
)

// decodeElement parses an XML element tree into nested generic values:
//
//   - an element with child elements becomes a map[string]any keyed by local name
//   - a child name that occurs more than once becomes a []any in document order
//   - an element without children becomes its text content as a string
//   - an element marked xsi:nil="true" becomes nil
//
// The result mirrors the ambiguity of the wire format: a repeatable element that
// happens to occur once is indistinguishable from a singular one.
func decodeElement(dec *xml.Decoder, start xml.StartElement) (any, error) {
	isNil := false
	for _, attr := range start.Attr {
		if attr.Name.Local == "nil" &&
			(attr.Name.Space == SchemaInstanceNamespace || attr.Name.Space == "xsi") &&
			attr.Value == "true" {
			isNil = true
		}
	}
	var children map[string]any
	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: unexpected end of element %s", ErrMalformedResponse, start.Name.Local)
			}
			return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeElement(dec, t)
			if err != nil {
				return nil, err
			}
			if children == nil {
				children = make(map[string]any)
			}
			addChild(children, t.Name.Local, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if isNil {
				return nil, nil
			}
			if children != nil {
				return children, nil
			}
			return text.String(), nil
		}
	}
}

func addChild(children map[string]any, name string, value any) {
	existing, ok := children[name]
	if !ok {
		children[name] = value
		return
	}
	if list, ok := existing.([]any); ok {
		children[name] = append(list, value)
		return
	}
	children[name] = []any{existing, value}
}

type envelopeBody struct {
	name  string
	value any
}

// decodeEnvelope returns the first element inside the envelope body
func decodeEnvelope(data []byte) (*envelopeBody, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	inEnvelope := false
	inBody := false
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: no body element", ErrMalformedResponse)
			}
			return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch {
		case !inEnvelope:
			if start.Name.Local != "Envelope" {
				return nil, fmt.Errorf("%w: unexpected root element %s", ErrMalformedResponse, start.Name.Local)
			}
			inEnvelope = true
		case !inBody:
			// Skip any header
			if start.Name.Local != "Body" {
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, err)
				}
				continue
			}
			inBody = true
		default:
			value, err := decodeElement(dec, start)
			if err != nil {
				return nil, err
			}
			return &envelopeBody{name: start.Name.Local, value: value}, nil
		}
	}
}

// DecodeResponse extracts the result of an operation from a response envelope.
// A fault is returned as a *FaultError
func DecodeResponse(data []byte) (any, error) {
	body, err := decodeEnvelope(data)
	if err != nil {
		return nil, err
	}
	if body.name == "Fault" {
		return nil, newFaultError(body.value)
	}
	m, ok := body.value.(map[string]any)
	if !ok {
		// Operations without a return value
		return nil, nil
	}
	return m["return"], nil
}

func newFaultError(value any) *FaultError {
	fault := &FaultError{}
	m, ok := value.(map[string]any)
	if !ok {
		if s, ok := value.(string); ok {
			fault.Message = strings.TrimSpace(s)
		}
		return fault
	}
	if code, ok := m["faultcode"].(string); ok {
		fault.Code = strings.TrimSpace(code)
	}
	if msg, ok := m["faultstring"].(string); ok {
		fault.Message = strings.TrimSpace(msg)
	}
	fault.Detail = m["detail"]
	return fault
}

// DecodeRequest returns the operation name and the parameter tree of a request
// envelope. It is the server side counterpart of EncodeEnvelope
func DecodeRequest(data []byte) (string, any, error) {
	body, err := decodeEnvelope(data)
	if err != nil {
		return "", nil, err
	}
	return body.name, body.value, nil
}
