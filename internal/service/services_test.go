package service

import (
	"testing"
	_ "time/tzdata"

	"github.com/xolan/timewext/internal/config"
	"github.com/xolan/timewext/internal/entry"
	"github.com/xolan/timewext/internal/protocol"
)

func TestNewServices(t *testing.T) {
	services := NewServices(config.DefaultConfig(), &recordingTracker{})

	if services.Current == nil {
		t.Error("expected Current service to be initialized")
	}
	if services.Export == nil {
		t.Error("expected Export service to be initialized")
	}
}

func TestNewServices_UsesConfiguredTimezone(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Timezone = "Europe/Berlin"

	services := NewServices(cfg, &recordingTracker{})
	plan, err := services.Export.Plan(protocol.Config{KeyProject: "acme"},
		[]entry.Entry{closed("20240115T090000Z", "20240115T100000Z", "acme")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := plan.Items[0].Record.Start; got != "2024-01-15-1000" {
		t.Errorf("expected start converted to Berlin time, got %q", got)
	}
}
