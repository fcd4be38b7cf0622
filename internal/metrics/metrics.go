// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes the Prometheus instruments of the service.
package metrics

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-user-auth/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Request outcome label values.
const (
	OutcomeSuccess       = "success"
	OutcomeBusinessError = "business_error"
	OutcomeSystemError   = "system_error"
)

// Operation label values.
const (
	OperationLogin    = "login"
	OperationRegister = "register"
	OperationVerify   = "verify"
)

// Metrics provides observability for the auth flows.
// Each instance owns its registry so tests can create as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Compensations   prometheus.Counter
}

// New creates a Metrics instance with all instruments registered on a fresh
// registry, together with the Go runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "user_auth_requests_total",
			Help: "Total number of auth requests by operation and outcome",
		}, []string{"operation", "outcome"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "user_auth_request_duration_seconds",
			Help:    "Duration of auth requests by operation",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"operation"}),
		Compensations: factory.NewCounter(prometheus.CounterOpts{
			Name: "user_auth_register_compensations_total",
			Help: "Total number of users deleted after the verification email could not be sent",
		}),
	}
}

// ObserveRequest records one finished request of operation started at start.
// The outcome label is derived from err. A nil *Metrics records nothing.
func (m *Metrics) ObserveRequest(operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(operation, Outcome(err)).Inc()
	m.RequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// IncrementCompensations records a compensating delete of a registered user.
func (m *Metrics) IncrementCompensations() {
	if m == nil {
		return
	}
	m.Compensations.Inc()
}

// Handler returns the exposition handler for the instance registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Outcome classifies err for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case models.IsBusinessError(err):
		return OutcomeBusinessError
	default:
		return OutcomeSystemError
	}
}
