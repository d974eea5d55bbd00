package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

// Config holds the server settings. Each flag falls back to an environment variable.
type Config struct {
	Addr         string
	AllowOrigins string
	LogLevel     log.Level
	WSBufferSize int
}

func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	addr := fs.String("addr", getenv("CHESS_ADDR", ":3000"), "listen address")
	origins := fs.String("allow-origins", getenv("CHESS_ALLOW_ORIGINS", "http://localhost:5173"), "comma-separated origins allowed for CORS and websockets")
	level := fs.String("log-level", getenv("CHESS_LOG_LEVEL", "info"), "log level: debug, info, warn or error")
	bufSize, err := getenvInt("CHESS_WS_BUFFER", 1024)
	if err != nil {
		return Config{}, err
	}
	wsBuffer := fs.Int("ws-buffer", bufSize, "websocket read and write buffer size in bytes")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	lvl, err := ParseLevel(*level)
	if err != nil {
		return Config{}, err
	}
	if *wsBuffer <= 0 {
		return Config{}, fmt.Errorf("ws-buffer must be positive, got %d", *wsBuffer)
	}
	return Config{
		Addr:         *addr,
		AllowOrigins: *origins,
		LogLevel:     lvl,
		WSBufferSize: *wsBuffer,
	}, nil
}

// Origins splits AllowOrigins into trimmed, non-empty entries.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warn", "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	}
	return log.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
