package observability

import (
	"testing"
	"time"
)

func TestMetrics_Snapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/quotes", "POST", 201, 10*time.Millisecond)
	m.RecordRequest("/quotes", "POST", 201, 30*time.Millisecond)
	m.RecordRequest("/login", "POST", 401, time.Millisecond)
	m.RecordError("/login", "POST", "INVALID_CREDENTIALS")

	snap := m.Snapshot()
	if len(snap.Requests) != 2 {
		t.Fatalf("expected 2 request stats, got %+v", snap.Requests)
	}
	if snap.Requests[0].Route != "/login" || snap.Requests[1].Route != "/quotes" {
		t.Fatalf("unexpected order %+v", snap.Requests)
	}
	quotes := snap.Requests[1]
	if quotes.Count != 2 || quotes.Status != 201 || quotes.AvgLatencyMs != 20 {
		t.Fatalf("unexpected quote stat %+v", quotes)
	}
	if len(snap.Errors) != 1 || snap.Errors[0].Code != "INVALID_CREDENTIALS" {
		t.Fatalf("unexpected errors %+v", snap.Errors)
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/x", "GET", 200, time.Millisecond)
	m.RecordError("/x", "GET", "NOT_FOUND")
	if snap := m.Snapshot(); len(snap.Requests) != 0 || len(snap.Errors) != 0 {
		t.Fatalf("expected empty snapshot")
	}
}
