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
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `<?xml version="1.0"?>
<definitions xmlns="http://schemas.xmlsoap.org/wsdl/" xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/" name="PaymentWebService" targetNamespace="http://example.com/ns">
  <portType name="Payment">
    <operation name="doPayment"/>
    <operation name="chargeback"/>
  </portType>
  <binding name="PaymentBinding">
    <operation name="chargeback"><soap:operation soapAction="urn:chargeback"/></operation>
  </binding>
  <service name="PaymentService">
    <port name="PaymentPort" binding="PaymentBinding">
      <soap:address location="https://ledger.example.com/services/payment"/>
    </port>
  </service>
</definitions>`

func TestParseSchema(t *testing.T) {
	s, err := ParseSchema([]byte(testSchema))
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/ns", s.Namespace)
	assert.Equal(t, "PaymentService", s.Service)
	assert.Equal(t, "https://ledger.example.com/services/payment", s.Location)
	op, ok := s.Operation("doPayment")
	require.True(t, ok)
	assert.Equal(t, "http://example.com/ns/doPayment", s.ActionFor(op))
	op, ok = s.Operation("chargeback")
	require.True(t, ok)
	assert.Equal(t, "urn:chargeback", s.ActionFor(op))
}

func TestParseSchemaWithoutLocation(t *testing.T) {
	s, err := ParseSchema([]byte(`<definitions name="x"><portType><operation name="ping"/></portType><service name="x"/></definitions>`))
	require.NoError(t, err)
	assert.Empty(t, s.Location)
}

func TestParseSchemaWithoutOperations(t *testing.T) {
	_, err := ParseSchema([]byte(`<definitions name="x"/>`))
	assert.Error(t, err)
	_, err = ParseSchema([]byte(`not xml`))
	assert.Error(t, err)
}

func TestSchemaCacheSnapshots(t *testing.T) {
	PurgeSchemaCache()
	defer PurgeSchemaCache()
	s, err := ParseSchema([]byte(testSchema))
	require.NoError(t, err)
	require.NoError(t, storeSchema("http://example.com/payments", s))
	first, ok := cachedSchema("http://example.com/payments")
	require.True(t, ok)
	assert.Equal(t, s, first)
	// Each lookup decodes its own copy
	delete(first.Operations, "doPayment")
	second, ok := cachedSchema("http://example.com/payments")
	require.True(t, ok)
	assert.Contains(t, second.Operations, "doPayment")
	// Snapshots are plain CBOR
	var raw map[int]any
	require.NoError(t, cbor.Unmarshal(schemaCache.entries["http://example.com/payments"], &raw))
	assert.Equal(t, "http://example.com/ns", raw[1])
	assert.Equal(t, "https://ledger.example.com/services/payment", raw[4])
	PurgeSchemaCache()
	_, ok = cachedSchema("http://example.com/payments")
	assert.False(t, ok)
}

func TestSchemaURL(t *testing.T) {
	assert.Equal(t, "http://h/services/members?wsdl", schemaURL("http://h/services/members"))
	assert.Equal(t, "http://h/s?x=1&wsdl", schemaURL("http://h/s?x=1"))
}
