package telemetry

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
)

func TestInitIsIdempotent(t *testing.T) {
	Init()
	Init()

	if ForwardsTotal == nil || RepliesTotal == nil || SendFailuresTotal == nil ||
		UnroutedTotal == nil || DailyPostsTotal == nil || CorrelationEntries == nil {
		t.Fatal("metrics not initialized after Init")
	}
}

func TestCountersIncrement(t *testing.T) {
	Init()

	before := counterValue(t)
	CountForward()
	CountForward()
	after := counterValue(t)

	if after-before != 2 {
		t.Errorf("forwards counter moved by %v, want 2", after-before)
	}
}

func counterValue(t *testing.T) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := ForwardsTotal.Write(metric); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return metric.GetCounter().GetValue()
}

func TestHelpersAreNilSafe(t *testing.T) {
	// Helpers must not panic even before Init; they are called from
	// handler tests that never register metrics.
	CountReply()
	CountSendFailure()
	CountUnrouted()
	CountDailyPost()
	SetCorrelationEntries(3)
}
