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

// Package metrics provides the Prometheus collectors recorded by the ledger services
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/blinklabs-io/gocyclos/ledger"
	"github.com/blinklabs-io/gocyclos/soap"
)

const namespace = "cyclos"

// Metrics tracks remote calls and payment outcomes. A nil *Metrics is valid and
// records nothing
type Metrics struct {
	calls                    *prometheus.CounterVec
	callDuration             *prometheus.HistogramVec
	faults                   *prometheus.CounterVec
	paymentStatuses          *prometheus.CounterVec
	paymentTransportFailures prometheus.Counter
}

// New creates the collectors and registers them with reg. A nil reg leaves the
// collectors unregistered
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calls_total",
			Help:      "Total remote ledger calls",
		}, []string{"service", "operation", "outcome"}),
		callDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "call_duration_seconds",
			Help:      "Remote ledger call latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "operation"}),
		faults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "faults_total",
			Help:      "Remote faults by fault code",
		}, []string{"service", "operation", "code"}),
		paymentStatuses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_total",
			Help:      "Payment attempts by resulting status",
		}, []string{"status"}),
		paymentTransportFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_transport_failures_total",
			Help:      "Payments that failed before a status could be obtained",
		}),
	}
	if reg != nil {
		for _, c := range m.collectors() {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.calls,
		m.callDuration,
		m.faults,
		m.paymentStatuses,
		m.paymentTransportFailures,
	}
}

// RecordCall records the outcome and latency of a remote call
func (m *Metrics) RecordCall(service string, operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
		var fault *soap.FaultError
		if errors.As(err, &fault) {
			outcome = "fault"
			m.faults.WithLabelValues(service, operation, fault.Code).Inc()
		}
	}
	m.calls.WithLabelValues(service, operation, outcome).Inc()
	m.callDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

// RecordPaymentStatus counts a payment result
func (m *Metrics) RecordPaymentStatus(status ledger.PaymentStatus) {
	if m == nil {
		return
	}
	m.paymentStatuses.WithLabelValues(string(status)).Inc()
}

// RecordPaymentTransportFailure counts a payment whose call failed outright
func (m *Metrics) RecordPaymentTransportFailure() {
	if m == nil {
		return
	}
	m.paymentTransportFailures.Inc()
}
