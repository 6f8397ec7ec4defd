package service

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/spec-kit/greentouch-site/internal/domain"
	"github.com/spec-kit/greentouch-site/internal/events"
	"github.com/spec-kit/greentouch-site/internal/repository"
	mock_worker "github.com/spec-kit/greentouch-site/internal/worker/mocks"
	apperrors "github.com/spec-kit/greentouch-site/pkg/util"
)

// eventOfType matches an events.Event by its type.
type eventOfType events.EventType

func (m eventOfType) Matches(x any) bool {
	e, ok := x.(events.Event)
	return ok && e.Type == events.EventType(m) && e.ID != "" && !e.Timestamp.IsZero()
}

func (m eventOfType) String() string {
	return "event of type " + string(m)
}

// newStoreDeps wires the services over a real store with no dispatcher.
func newStoreDeps(seeded bool) Dependencies {
	store := repository.NewStore()
	if seeded {
		store = repository.NewSeededStore()
	}
	return NewDependencies(store, nil, NoLatency(), nil)
}

// newObservedDeps also routes every event to a mock handler.
func newObservedDeps(ctrl *gomock.Controller, seeded bool) (Dependencies, *mock_worker.MockEventHandler) {
	deps := newStoreDeps(seeded)
	handler := mock_worker.NewMockEventHandler(ctrl)
	dispatcher := events.NewInMemoryDispatcher()
	for _, et := range events.AllEventTypes {
		dispatcher.Subscribe(et, handler.HandleEvent)
	}
	deps.Dispatcher = dispatcher
	return deps, handler
}

func TestQuoteService_CreateThenList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	deps, handler := newObservedDeps(ctrl, false)
	svc := NewQuoteService(deps)
	ctx := context.Background()

	handler.EXPECT().HandleEvent(gomock.Any(), eventOfType(events.EventQuoteRequested)).Return(nil)

	created, err := svc.CreateQuote(ctx, QuoteCreateInput{
		Name:        "Ana",
		Email:       "ana@example.com",
		ServiceType: domain.ServiceTreeCare,
		GardenSize:  42.5,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamp, got %+v", created)
	}
	if created.Status != domain.QuoteStatusPending || created.Name != "Ana" {
		t.Fatalf("unexpected quote %+v", created)
	}

	quotes, err := svc.ListQuotes(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(quotes) != 1 || !reflect.DeepEqual(quotes[0], *created) {
		t.Fatalf("expected created quote in list, got %+v", quotes)
	}
}

func TestQuoteService_UpdateStatusTouchesOnlyTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	deps, handler := newObservedDeps(ctrl, true)
	svc := NewQuoteService(deps)
	ctx := context.Background()

	handler.EXPECT().HandleEvent(gomock.Any(), eventOfType(events.EventQuoteStatusChanged)).Return(nil).Times(2)

	before, _ := svc.ListQuotes(ctx)

	updated, err := svc.UpdateQuoteStatus(ctx, "1", domain.QuoteStatusProcessed)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != domain.QuoteStatusProcessed {
		t.Fatalf("expected processed, got %s", updated.Status)
	}

	after, _ := svc.ListQuotes(ctx)
	if len(after) != len(before) {
		t.Fatalf("collection size changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		want := before[i]
		if want.ID == "1" {
			want.Status = domain.QuoteStatusProcessed
		}
		if !reflect.DeepEqual(after[i], want) {
			t.Fatalf("record %s: expected %+v, got %+v", want.ID, want, after[i])
		}
	}

	// Backward moves are permitted.
	if _, err := svc.UpdateQuoteStatus(ctx, "1", domain.QuoteStatusPending); err != nil {
		t.Fatalf("backward move: %v", err)
	}
}

func TestQuoteService_UpdateStatusFailuresLeaveStoreUnchanged(t *testing.T) {
	deps := newStoreDeps(true)
	svc := NewQuoteService(deps)
	ctx := context.Background()
	before, _ := svc.ListQuotes(ctx)

	_, err := svc.UpdateQuoteStatus(ctx, "missing", domain.QuoteStatusProcessed)
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	_, err = svc.UpdateQuoteStatus(ctx, "1", domain.QuoteStatus("archived"))
	if !apperrors.HasCode(err, apperrors.CodeValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}

	after, _ := svc.ListQuotes(ctx)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("failed updates mutated the store: %+v -> %+v", before, after)
	}
}

func TestAppointmentService_Lifecycle(t *testing.T) {
	deps := newStoreDeps(false)
	svc := NewAppointmentService(deps)
	ctx := context.Background()

	created, err := svc.CreateAppointment(ctx, AppointmentCreateInput{
		Name:          "Ben",
		Email:         "ben@example.com",
		Phone:         "+15550001111",
		Address:       "1 Elm Road",
		ServiceType:   domain.ServiceSeasonalCleanup,
		PreferredDate: "2030-04-01",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != domain.AppointmentStatusPending {
		t.Fatalf("expected pending, got %s", created.Status)
	}

	for _, status := range []domain.AppointmentStatus{domain.AppointmentStatusConfirmed, domain.AppointmentStatusCompleted} {
		updated, err := svc.UpdateAppointmentStatus(ctx, created.ID, status)
		if err != nil {
			t.Fatalf("update to %s: %v", status, err)
		}
		if updated.Status != status {
			t.Fatalf("expected %s, got %s", status, updated.Status)
		}
	}
}

func TestAppointmentService_UnknownIDLeavesCollectionUnchanged(t *testing.T) {
	deps := newStoreDeps(true)
	svc := NewAppointmentService(deps)
	ctx := context.Background()
	before, _ := svc.ListAppointments(ctx)

	_, err := svc.UpdateAppointmentStatus(ctx, "nope", domain.AppointmentStatusConfirmed)
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	after, _ := svc.ListAppointments(ctx)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("collection changed: %+v -> %+v", before, after)
	}
}

func TestTestimonialService_ModerationControlsVisibility(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	deps, handler := newObservedDeps(ctrl, false)
	svc := NewTestimonialService(deps)
	ctx := context.Background()

	gomock.InOrder(
		handler.EXPECT().HandleEvent(gomock.Any(), eventOfType(events.EventTestimonialSubmitted)).Return(nil),
		handler.EXPECT().HandleEvent(gomock.Any(), eventOfType(events.EventTestimonialModerated)).Return(nil),
		handler.EXPECT().HandleEvent(gomock.Any(), eventOfType(events.EventTestimonialModerated)).Return(nil),
	)

	created, err := svc.CreateTestimonial(ctx, TestimonialCreateInput{Name: "Cara", Text: "Lovely work", Rating: 5})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Approved {
		t.Fatalf("new testimonials must start unapproved")
	}

	approved, _ := svc.ListApprovedTestimonials(ctx)
	if len(approved) != 0 {
		t.Fatalf("unapproved testimonial leaked: %+v", approved)
	}

	if _, err := svc.UpdateTestimonialApproval(ctx, created.ID, true); err != nil {
		t.Fatalf("approve: %v", err)
	}
	approved, _ = svc.ListApprovedTestimonials(ctx)
	if len(approved) != 1 || approved[0].ID != created.ID {
		t.Fatalf("approved testimonial missing: %+v", approved)
	}

	if _, err := svc.UpdateTestimonialApproval(ctx, created.ID, false); err != nil {
		t.Fatalf("unapprove: %v", err)
	}
	approved, _ = svc.ListApprovedTestimonials(ctx)
	if len(approved) != 0 {
		t.Fatalf("expected empty approved list after hiding")
	}
	all, _ := svc.ListTestimonials(ctx)
	if len(all) != 1 {
		t.Fatalf("hidden testimonial should remain in admin list")
	}

	_, err = svc.UpdateTestimonialApproval(ctx, "ghost", true)
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGalleryService_CreateAndDelete(t *testing.T) {
	deps := newStoreDeps(true)
	svc := NewGalleryService(deps)
	ctx := context.Background()

	item, err := svc.CreateGalleryItem(ctx, GalleryCreateInput{
		Title:    "Hedge sculpture",
		ImageURL: "https://example.com/hedge.jpg",
		Category: domain.ServiceTreeCare,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !item.Approved {
		t.Fatalf("gallery items start approved")
	}

	approved, _ := svc.ListApprovedGalleryItems(ctx)
	if len(approved) != 5 || approved[4].ID != item.ID {
		t.Fatalf("expected new item last in approved list, got %d items", len(approved))
	}

	if err := svc.DeleteGalleryItem(ctx, item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	all, _ := svc.ListGalleryItems(ctx)
	if len(all) != 4 {
		t.Fatalf("expected 4 items after delete, got %d", len(all))
	}
	for _, g := range all {
		if g.ID == item.ID {
			t.Fatalf("deleted item still listed")
		}
	}

	err = svc.DeleteGalleryItem(ctx, item.ID)
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestDashboardService_PendingQuotesTrackMutations(t *testing.T) {
	deps := newStoreDeps(true)
	dashboard := NewDashboardService(deps)
	quotes := NewQuoteService(deps)
	ctx := context.Background()

	stats, err := dashboard.GetDashboardStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	want := domain.DashboardStats{TotalAppointments: 2, PendingQuotes: 1, ApprovedTestimonials: 2, GalleryItems: 4}
	if stats != want {
		t.Fatalf("expected %+v, got %+v", want, stats)
	}

	newQuote := func() QuoteCreateInput {
		return QuoteCreateInput{Name: "Dee", Email: "dee@example.com", ServiceType: domain.ServiceGardenDesign, GardenSize: 10}
	}
	var createdIDs []string

	steps := []struct {
		name string
		run  func(t *testing.T)
	}{
		{"create", func(t *testing.T) {
			q, err := quotes.CreateQuote(ctx, newQuote())
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			createdIDs = append(createdIDs, q.ID)
		}},
		{"create again", func(t *testing.T) {
			q, err := quotes.CreateQuote(ctx, newQuote())
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			createdIDs = append(createdIDs, q.ID)
		}},
		{"process seeded", func(t *testing.T) {
			if _, err := quotes.UpdateQuoteStatus(ctx, "1", domain.QuoteStatusProcessed); err != nil {
				t.Fatalf("update: %v", err)
			}
		}},
		{"process first created", func(t *testing.T) {
			if _, err := quotes.UpdateQuoteStatus(ctx, createdIDs[0], domain.QuoteStatusProcessed); err != nil {
				t.Fatalf("update: %v", err)
			}
		}},
		{"process already processed", func(t *testing.T) {
			if _, err := quotes.UpdateQuoteStatus(ctx, "2", domain.QuoteStatusProcessed); err != nil {
				t.Fatalf("update: %v", err)
			}
		}},
		{"reopen seeded", func(t *testing.T) {
			if _, err := quotes.UpdateQuoteStatus(ctx, "2", domain.QuoteStatusPending); err != nil {
				t.Fatalf("update: %v", err)
			}
		}},
		{"create third", func(t *testing.T) {
			if _, err := quotes.CreateQuote(ctx, newQuote()); err != nil {
				t.Fatalf("create: %v", err)
			}
		}},
		{"failed update", func(t *testing.T) {
			if _, err := quotes.UpdateQuoteStatus(ctx, "missing", domain.QuoteStatusProcessed); err == nil {
				t.Fatalf("expected not found")
			}
		}},
	}

	for _, step := range steps {
		step.run(t)

		all, _ := quotes.ListQuotes(ctx)
		pending := 0
		for _, q := range all {
			if q.Status == domain.QuoteStatusPending {
				pending++
			}
		}
		stats, err := dashboard.GetDashboardStats(ctx)
		if err != nil {
			t.Fatalf("%s: stats: %v", step.name, err)
		}
		if stats.PendingQuotes != pending {
			t.Fatalf("%s: expected %d pending quotes, got %d", step.name, pending, stats.PendingQuotes)
		}
	}
}

func TestCancelledContextCommitsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	deps, _ := newObservedDeps(ctrl, false)
	deps.Latency = FixedLatency(time.Hour)
	svc := NewQuoteService(deps)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	// No HandleEvent expectation: a cancelled create must not publish.
	_, err := svc.CreateQuote(ctx, QuoteCreateInput{Name: "Eve", Email: "eve@example.com", ServiceType: domain.ServiceGardenDesign, GardenSize: 1})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}

	deps.Latency = NoLatency()
	quotes, _ := NewQuoteService(deps).ListQuotes(context.Background())
	if len(quotes) != 0 {
		t.Fatalf("cancelled create must not be stored, got %d", len(quotes))
	}
}

func TestConcurrentCreatesProduceDistinctIDs(t *testing.T) {
	deps := newStoreDeps(false)
	svc := NewTestimonialService(deps)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.CreateTestimonial(ctx, TestimonialCreateInput{Name: "Fay", Text: "Great", Rating: 4}); err != nil {
				t.Errorf("create: %v", err)
			}
		}()
	}
	wg.Wait()

	all, _ := svc.ListTestimonials(ctx)
	if len(all) != n {
		t.Fatalf("expected %d testimonials, got %d", n, len(all))
	}
	seen := make(map[string]struct{}, n)
	for _, tm := range all {
		if _, dup := seen[tm.ID]; dup {
			t.Fatalf("duplicate id %s", tm.ID)
		}
		seen[tm.ID] = struct{}{}
	}
}
