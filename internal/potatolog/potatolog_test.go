package potatolog_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/ja-he/alight/internal/potatolog"
)

func TestMemoryLog(t *testing.T) {
	w := potatolog.NewMemoryLogReaderWriter(3)
	logger := zerolog.New(w)

	logger.Info().Str("component", "annotator").Msg("enabled")
	logger.Debug().Msg("selected tool")
	logger.Info().Str("component", "annotator").Msg("copied")
	logger.Warn().Msg("could not undo")

	entries := w.Get()
	if len(entries) != 3 {
		t.Fatalf("expected capacity of 3 entries, got %d", len(entries))
	}
	if entries[0]["message"] != "selected tool" || entries[2]["message"] != "could not undo" {
		t.Error("unexpected entries kept", entries)
	}

	latest, ok := w.Latest(func(e potatolog.LogEntry) bool { return e["component"] == "annotator" })
	if !ok || latest["message"] != "copied" {
		t.Error("unexpected latest annotator entry", latest)
	}
	if _, ok := w.Latest(func(e potatolog.LogEntry) bool { return e["level"] == "error" }); ok {
		t.Error("found nonexistent error entry")
	}

	if _, err := w.Write([]byte("not json")); err == nil {
		t.Error("expected error for non-JSON entry")
	}
}
