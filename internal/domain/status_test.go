package domain

import "testing"

func TestQuoteStatus(t *testing.T) {
	if !QuoteStatusPending.Valid() || !QuoteStatusProcessed.Valid() {
		t.Fatalf("expected known statuses to be valid")
	}
	if QuoteStatus("archived").Valid() {
		t.Fatalf("expected unknown status to be invalid")
	}

	cases := []struct {
		from, to QuoteStatus
		want     bool
	}{
		{QuoteStatusPending, QuoteStatusProcessed, true},
		{QuoteStatusPending, QuoteStatusPending, true},
		{QuoteStatusProcessed, QuoteStatusPending, false},
		{QuoteStatusProcessed, QuoteStatusProcessed, true},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestAppointmentStatus(t *testing.T) {
	if AppointmentStatus("cancelled").Valid() {
		t.Fatalf("cancelled is not an appointment state")
	}

	cases := []struct {
		from, to AppointmentStatus
		want     bool
	}{
		{AppointmentStatusPending, AppointmentStatusConfirmed, true},
		{AppointmentStatusPending, AppointmentStatusCompleted, true},
		{AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{AppointmentStatusConfirmed, AppointmentStatusPending, false},
		{AppointmentStatusCompleted, AppointmentStatusPending, false},
		{AppointmentStatusCompleted, AppointmentStatusConfirmed, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestKnownServiceType(t *testing.T) {
	if !KnownServiceType(ServiceTreeCare) {
		t.Fatalf("expected tree-care in catalogue")
	}
	if KnownServiceType("pool-cleaning") {
		t.Fatalf("unexpected service type accepted")
	}
	if len(Catalogue) != 6 {
		t.Fatalf("expected 6 catalogue entries, got %d", len(Catalogue))
	}
}
