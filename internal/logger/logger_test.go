package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/samvad-hq/apex-legends-go/internal/config"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestZapLoggerWritesObjectField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := New(zap.New(core))

	log.WarnObj("rate limited", "rate_limit", map[string]any{"resource": "user"})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "rate limited" || entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("unexpected entry %+v", entries[0].Entry)
	}
	if _, ok := entries[0].ContextMap()["rate_limit"]; !ok {
		t.Fatalf("expected rate_limit field, got %v", entries[0].ContextMap())
	}
}

func TestInitAndClose(t *testing.T) {
	log, err := Init(&config.Config{LogLevel: "error"})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	log.InfoObj("suppressed", "k", 1)
	if S == nil {
		t.Fatalf("expected package logger to be set")
	}
	_ = Close()
}

func TestNewNilReturnsNop(t *testing.T) {
	if _, ok := New(nil).(*NopLogger); !ok {
		t.Fatalf("expected NopLogger for nil zap logger")
	}
}
