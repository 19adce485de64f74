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
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEnvelope(t *testing.T) {
	date := time.Date(2024, time.March, 1, 10, 30, 0, 0, time.FixedZone("", -3*3600))
	params := Params{}.
		Add("amount", decimal.RequireFromString("12.50")).
		Add("date", date).
		Add("fromSystem", true).
		Add("description", "rent & <utilities>").
		Add("skipped", nil)
	params = AddRepeated(
		params,
		"customValues",
		[]Params{
			{{Name: "internalName", Value: "ref"}, {Name: "value", Value: "A1"}},
			{{Name: "internalName", Value: "note"}, {Name: "value", Value: "B2"}},
		},
	)
	data, err := EncodeEnvelope("http://example.com/ns/", "doPayment", Params{{Name: "params", Value: params}})
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "<?xml"))
	assert.Contains(t, text, `<soapenv:Envelope xmlns:soapenv="`+EnvelopeNamespace+`" xmlns:ns="http://example.com/ns/">`)
	assert.Contains(t, text, "<ns:doPayment><params>")
	assert.Contains(t, text, "<amount>12.5</amount>")
	assert.Contains(t, text, "<date>2024-03-01T10:30:00.000-03:00</date>")
	assert.Contains(t, text, "rent &amp; &lt;utilities&gt;")
	assert.NotContains(t, text, "skipped")
	assert.Equal(t, 2, strings.Count(text, "<customValues>"))

	operation, value, err := DecodeRequest(data)
	require.NoError(t, err)
	assert.Equal(t, "doPayment", operation)
	decoded := value.(map[string]any)["params"].(map[string]any)
	assert.Equal(t, "true", decoded["fromSystem"])
	assert.Equal(t, "rent & <utilities>", decoded["description"])
	assert.Equal(
		t,
		[]any{
			map[string]any{"internalName": "ref", "value": "A1"},
			map[string]any{"internalName": "note", "value": "B2"},
		},
		decoded["customValues"],
	)
}

func TestEncodeEnvelopeUnsupportedType(t *testing.T) {
	_, err := EncodeEnvelope("urn:x", "op", Params{{Name: "bad", Value: struct{}{}}})
	assert.ErrorContains(t, err, "unsupported parameter type")
}

func TestParamsLookup(t *testing.T) {
	params := AddRepeated(Params{}.Add("a", 1), "b", []string{"x", "y"})
	v, ok := params.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = params.Get("c")
	assert.False(t, ok)
	assert.Equal(t, 2, params.Count("b"))
}

const responseHead = `<?xml version="1.0"?><S:Envelope xmlns:S="http://schemas.xmlsoap.org/soap/envelope/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`

func TestDecodeResponse(t *testing.T) {
	testDefs := []struct {
		name     string
		body     string
		expected any
	}{
		{
			name:     "leaf",
			body:     `<ns2:isChannelEnabledForMemberResponse><return>true</return></ns2:isChannelEnabledForMemberResponse>`,
			expected: "true",
		},
		{
			name:     "single record",
			body:     `<r><return><id>1</id><name>A</name></return></r>`,
			expected: map[string]any{"id": "1", "name": "A"},
		},
		{
			name: "repeated returns",
			body: `<r><return><id>1</id></return><return><id>2</id></return></r>`,
			expected: []any{
				map[string]any{"id": "1"},
				map[string]any{"id": "2"},
			},
		},
		{
			name:     "nil leaf",
			body:     `<r><return><upperCreditLimit xsi:nil="true"/><balance>3</balance></return></r>`,
			expected: map[string]any{"upperCreditLimit": nil, "balance": "3"},
		},
		{
			name:     "void",
			body:     `<r/>`,
			expected: nil,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			data := responseHead + `<S:Header><h>ignored</h></S:Header><S:Body>` + testDef.body + `</S:Body></S:Envelope>`
			result, err := DecodeResponse([]byte(data))
			require.NoError(t, err)
			assert.Equal(t, testDef.expected, result)
		})
	}
}

func TestDecodeResponseFault(t *testing.T) {
	data := responseHead + `<S:Body><S:Fault><faultcode> S:Server </faultcode><faultstring>Member not found</faultstring><detail><code>42</code></detail></S:Fault></S:Body></S:Envelope>`
	_, err := DecodeResponse([]byte(data))
	var fault *FaultError
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "S:Server", fault.Code)
	assert.Equal(t, "Member not found", fault.Message)
	assert.Equal(t, map[string]any{"code": "42"}, fault.Detail)
}

func TestDecodeResponseMalformed(t *testing.T) {
	for _, data := range []string{
		"",
		"<html><body>maintenance</body></html>",
		responseHead + "<S:Body><r>",
	} {
		_, err := DecodeResponse([]byte(data))
		assert.ErrorIs(t, err, ErrMalformedResponse, data)
	}
}
