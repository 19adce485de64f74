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

package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/gocyclos/ledger"
	"github.com/blinklabs-io/gocyclos/metrics"
	"github.com/blinklabs-io/gocyclos/soap"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			matched := 0
			for _, label := range metric.GetLabel() {
				if labels[label.GetName()] == label.GetValue() {
					matched++
				}
			}
			if matched == len(labels) {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestRecordCall(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)
	m.RecordCall("accounts", "searchAccountHistory", 10*time.Millisecond, nil)
	m.RecordCall("accounts", "searchAccountHistory", 10*time.Millisecond, &soap.FaultError{Code: "soap:Server"})
	m.RecordCall("accounts", "searchAccountHistory", 10*time.Millisecond, errors.New("connection refused"))
	for _, outcome := range []string{"ok", "fault", "error"} {
		assert.Equal(
			t,
			1.0,
			counterValue(t, reg, "cyclos_calls_total", map[string]string{
				"service":   "accounts",
				"operation": "searchAccountHistory",
				"outcome":   outcome,
			}),
			outcome,
		)
	}
	assert.Equal(
		t,
		1.0,
		counterValue(t, reg, "cyclos_faults_total", map[string]string{"code": "soap:Server"}),
	)
}

func TestRecordPayments(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)
	m.RecordPaymentStatus(ledger.PaymentStatusProcessed)
	m.RecordPaymentStatus(ledger.PaymentStatusProcessed)
	m.RecordPaymentStatus(ledger.PaymentStatusNotEnoughCredits)
	m.RecordPaymentTransportFailure()
	assert.Equal(t, 2.0, counterValue(t, reg, "cyclos_payments_total", map[string]string{"status": "PROCESSED"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "cyclos_payments_total", map[string]string{"status": "NOT_ENOUGH_CREDITS"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "cyclos_payment_transport_failures_total", nil))
}

func TestDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)
	_, err = metrics.New(reg)
	assert.Error(t, err)
}

func TestNilMetrics(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.RecordCall("members", "search", time.Second, nil)
		m.RecordPaymentStatus(ledger.PaymentStatusProcessed)
		m.RecordPaymentTransportFailure()
	})
	unregistered, err := metrics.New(nil)
	require.NoError(t, err)
	assert.NotNil(t, unregistered)
}
