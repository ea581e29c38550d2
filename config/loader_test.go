package config

import (
	"testing"
)

func TestLoadFromEnv_Verbose(t *testing.T) {
	t.Setenv("FT_VERBOSE", "3")
	opts := DefaultOptions()
	LoadFromEnv(opts)
	if opts.Verbose != 3 {
		t.Errorf("Verbose = %d, want 3", opts.Verbose)
	}
}

func TestLoadFromEnv_VerboseZero(t *testing.T) {
	t.Setenv("FT_VERBOSE", "0")
	opts := DefaultOptions()
	LoadFromEnv(opts)
	if opts.Verbose != 0 {
		t.Errorf("Verbose = %d, want 0 (quiet must be selectable)", opts.Verbose)
	}
}

func TestLoadFromEnv_InvalidVerbose(t *testing.T) {
	t.Setenv("FT_VERBOSE", "loud")
	opts := DefaultOptions()
	LoadFromEnv(opts)
	if opts.Verbose != DefaultVerbose {
		t.Errorf("invalid value should be ignored, got %d", opts.Verbose)
	}
}

func TestLoadFromEnv_Format(t *testing.T) {
	t.Setenv("FT_FORMAT", "JSON")
	opts := DefaultOptions()
	LoadFromEnv(opts)
	if opts.Format != FormatJSON {
		t.Errorf("Format = %q, want %q", opts.Format, FormatJSON)
	}
}

func TestLoadFromEnv_Booleans(t *testing.T) {
	tests := []struct {
		key    string
		values []string
	}{
		{"FT_TIMESTAMPS", []string{"1", "true", "yes", "TRUE", "Yes"}},
		{"FT_DRY_RUN", []string{"1", "true"}},
	}

	for _, tt := range tests {
		for _, v := range tt.values {
			t.Run(tt.key+"="+v, func(t *testing.T) {
				t.Setenv(tt.key, v)
				opts := DefaultOptions()
				LoadFromEnv(opts)

				switch tt.key {
				case "FT_TIMESTAMPS":
					if !opts.Timestamps {
						t.Error("Timestamps should be true")
					}
				case "FT_DRY_RUN":
					if !opts.DryRun {
						t.Error("DryRun should be true")
					}
				}
			})
		}
	}
}

func TestLoadFromEnv_FalseBooleans(t *testing.T) {
	t.Setenv("FT_TIMESTAMPS", "no")
	opts := DefaultOptions()
	LoadFromEnv(opts)
	if opts.Timestamps {
		t.Error("Timestamps should stay false for \"no\"")
	}
}

func TestLoadFromEnv_Empty(t *testing.T) {
	opts := DefaultOptions()
	LoadFromEnv(opts)
	if *opts != *DefaultOptions() {
		t.Errorf("empty environment changed options: %+v", opts)
	}
}
