package persistence

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/greentouch-site/internal/config"
	"github.com/spec-kit/greentouch-site/internal/events"
)

func TestMigrationNames(t *testing.T) {
	names, err := MigrationNames()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) == 0 || names[0] != "001_site_events.sql" {
		t.Fatalf("unexpected migrations %v", names)
	}
}

func TestDisabledSideChannels(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	pg, err := NewPostgres(ctx, config.PostgresConfig{}, logger)
	if err != nil {
		t.Fatalf("disabled postgres should not error: %v", err)
	}
	if pg.Enabled() {
		t.Fatalf("expected postgres disabled")
	}
	if err := pg.Ping(ctx); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
	pg.Close()

	rdb := NewRedis(ctx, config.RedisConfig{}, logger)
	if rdb.Enabled() {
		t.Fatalf("expected redis disabled")
	}
	if err := rdb.Ping(ctx); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
	rdb.Close()

	if err := RunMigrations(ctx, nil, logger); err != nil {
		t.Fatalf("migrations without pool should be skipped: %v", err)
	}
	if err := NewEventJournal(nil).Append(ctx, events.Event{ID: "x"}); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled from journal, got %v", err)
	}
	if err := NewRedisEventBus(nil, "c").Publish(ctx, events.Event{ID: "x"}); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled from bus, got %v", err)
	}
}

func TestEncodePayload(t *testing.T) {
	raw, err := encodePayload(nil)
	if err != nil || string(raw) != "{}" {
		t.Fatalf("expected empty object, got %s %v", raw, err)
	}
	raw, err = encodePayload(events.TestimonialModeratedPayload{Approved: true})
	if err != nil || string(raw) != `{"approved":true}` {
		t.Fatalf("unexpected payload %s %v", raw, err)
	}
}
