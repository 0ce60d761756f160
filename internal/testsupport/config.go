package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"kord/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// Isolate points HOME at a fresh temp directory, clears KORD_* overrides and
// changes into the temp directory so no user or project config is picked up.
// It returns the temp directory.
func Isolate(t testing.TB) string {
	t.Helper()

	base := t.TempDir()
	home := filepath.Join(base, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("KORD_LOG_LEVEL", "")
	t.Setenv("KORD_API_TOKEN", "")
	t.Chdir(base)
	return base
}

// NewConfig produces a validated default config and applies any options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.API.Bind = "127.0.0.1:0"
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithMaxCandidates caps resolver output.
func WithMaxCandidates(n int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Resolver.MaxCandidates = n
	}
}

// WithToken enables bearer authentication on the API.
func WithToken(token string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.API.Token = token
	}
}

// WithChromaThreshold sets the chroma activation threshold.
func WithChromaThreshold(threshold float64) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Chroma.Threshold = threshold
	}
}

// WriteConfig encodes cfg as TOML at path.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()

	encoded, err := cfg.Encode()
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(encoded), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}
