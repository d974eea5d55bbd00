package config

import (
	"slices"
	"testing"

	"github.com/gofiber/fiber/v2/log"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CHESS_ADDR", "CHESS_ALLOW_ORIGINS", "CHESS_LOG_LEVEL", "CHESS_WS_BUFFER"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{Addr: ":3000", AllowOrigins: "http://localhost:5173", LogLevel: log.LevelInfo, WSBufferSize: 1024}
	if cfg != want {
		t.Fatalf("got %+v want %+v", cfg, want)
	}
}

func TestLoadEnvironmentAndFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHESS_ADDR", ":8080")
	t.Setenv("CHESS_LOG_LEVEL", "debug")
	t.Setenv("CHESS_WS_BUFFER", "4096")

	cfg, err := Load([]string{"-addr", ":9090"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("flag should override env: addr %q", cfg.Addr)
	}
	if cfg.LogLevel != log.LevelDebug || cfg.WSBufferSize != 4096 {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "unknown level", args: []string{"-log-level", "loud"}},
		{name: "buffer not a number", env: map[string]string{"CHESS_WS_BUFFER": "big"}},
		{name: "buffer not positive", args: []string{"-ws-buffer", "0"}},
		{name: "unknown flag", args: []string{"-port", "80"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(tt.args); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestOrigins(t *testing.T) {
	cfg := Config{AllowOrigins: " http://a.test, ,http://b.test "}
	if got, want := cfg.Origins(), []string{"http://a.test", "http://b.test"}; !slices.Equal(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]log.Level{
		"debug":   log.LevelDebug,
		"INFO":    log.LevelInfo,
		"warning": log.LevelWarn,
		" error ": log.LevelError,
	} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
}
