// Package telemetry provides Prometheus metrics for the relay and an
// optional HTTP endpoint exposing them.
package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once sync.Once

	// Counters
	ForwardsTotal     prometheus.Counter
	RepliesTotal      prometheus.Counter
	SendFailuresTotal prometheus.Counter
	UnroutedTotal     prometheus.Counter
	DailyPostsTotal   prometheus.Counter

	// Gauges
	CorrelationEntries prometheus.Gauge
)

// Init registers metrics (idempotent).
func Init() {
	once.Do(func() {
		ForwardsTotal = promauto.NewCounter(prometheus.CounterOpts{Name: "relay_forwards_total", Help: "User messages and start notices forwarded to the admin chat"})
		RepliesTotal = promauto.NewCounter(prometheus.CounterOpts{Name: "relay_replies_total", Help: "Admin replies delivered to users"})
		SendFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{Name: "relay_send_failures_total", Help: "Outbound sends that failed"})
		UnroutedTotal = promauto.NewCounter(prometheus.CounterOpts{Name: "relay_unrouted_events_total", Help: "Inbound events that matched no handler"})
		DailyPostsTotal = promauto.NewCounter(prometheus.CounterOpts{Name: "relay_daily_posts_total", Help: "Daily motivation posts delivered"})
		CorrelationEntries = promauto.NewGauge(prometheus.GaugeOpts{Name: "relay_correlation_entries", Help: "Entries across both correlation tables"})
	})
}

// The Count/Set helpers are nil-safe so callers work in tests that never
// call Init.

func CountForward() {
	if ForwardsTotal != nil {
		ForwardsTotal.Inc()
	}
}

func CountReply() {
	if RepliesTotal != nil {
		RepliesTotal.Inc()
	}
}

func CountSendFailure() {
	if SendFailuresTotal != nil {
		SendFailuresTotal.Inc()
	}
}

func CountUnrouted() {
	if UnroutedTotal != nil {
		UnroutedTotal.Inc()
	}
}

func CountDailyPost() {
	if DailyPostsTotal != nil {
		DailyPostsTotal.Inc()
	}
}

// SetCorrelationEntries records the combined correlation table size.
func SetCorrelationEntries(n int) {
	if CorrelationEntries != nil {
		CorrelationEntries.Set(float64(n))
	}
}
