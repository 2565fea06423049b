// Package metrics holds the Prometheus collectors of the contacts service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for mutations and event delivery.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Mutations        *prometheus.CounterVec
	EventsPublished  *prometheus.CounterVec
	PublishFailures  *prometheus.CounterVec
	OutboxRelayed    prometheus.Counter
	OutboxAbandoned  prometheus.Counter
	DisplayNameFails prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		Mutations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "contacts_mutations_total",
			Help: "Total number of write operations by operation and outcome",
		}, []string{"operation", "outcome"}),
		EventsPublished: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "contacts_events_published_total",
			Help: "Total number of outbound events accepted by the delivery channel",
		}, []string{"event_type", "source"}),
		PublishFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "contacts_event_publish_failures_total",
			Help: "Total number of outbound event publish attempts that failed",
		}, []string{"event_type"}),
		OutboxRelayed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "contacts_outbox_relayed_total",
			Help: "Total number of pending outbound events published by the relay",
		}),
		OutboxAbandoned: promauto.NewCounter(prometheus.CounterOpts{
			Name: "contacts_outbox_abandoned_total",
			Help: "Total number of outbound events that exhausted their publish attempts",
		}),
		DisplayNameFails: promauto.NewCounter(prometheus.CounterOpts{
			Name: "contacts_display_name_lookup_failures_total",
			Help: "Total number of user display name lookups that fell back to the username",
		}),
	}
}

// IncMutation counts a finished write operation. Outcome is "committed" or "rolled_back".
func (m *Metrics) IncMutation(operation, outcome string) {
	if m == nil {
		return
	}
	m.Mutations.WithLabelValues(operation, outcome).Inc()
}

// IncPublished counts an accepted event.
func (m *Metrics) IncPublished(eventType, source string) {
	if m == nil {
		return
	}
	m.EventsPublished.WithLabelValues(eventType, source).Inc()
}

// IncPublishFailure counts a failed publish attempt.
func (m *Metrics) IncPublishFailure(eventType string) {
	if m == nil {
		return
	}
	m.PublishFailures.WithLabelValues(eventType).Inc()
}

// IncRelayed counts an event published on retry.
func (m *Metrics) IncRelayed() {
	if m == nil {
		return
	}
	m.OutboxRelayed.Inc()
}

// IncAbandoned counts an event given up on.
func (m *Metrics) IncAbandoned() {
	if m == nil {
		return
	}
	m.OutboxAbandoned.Inc()
}

// IncDisplayNameFailure counts a display name lookup that fell back to the username.
func (m *Metrics) IncDisplayNameFailure() {
	if m == nil {
		return
	}
	m.DisplayNameFails.Inc()
}
