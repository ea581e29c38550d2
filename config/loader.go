package config

// loader.go - option loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. Defaults   (defaults.go)

import (
	"os"
	"strconv"
	"strings"
)

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the FT_ prefix.  Boolean values accept
// "1", "true", "yes" (case-insensitive).

// LoadFromEnv overlays environment variables onto opts.  Only non-empty
// env vars override the existing value.  This should be called BEFORE
// CLI flag parsing so that flags take precedence.
func LoadFromEnv(opts *Options) {
	if v, ok := envInt("FT_VERBOSE"); ok {
		opts.Verbose = v
	}
	if v := os.Getenv("FT_FORMAT"); v != "" {
		opts.Format = strings.ToLower(v)
	}
	if envBool("FT_TIMESTAMPS") {
		opts.Timestamps = true
	}
	if envBool("FT_DRY_RUN") {
		opts.DryRun = true
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}
