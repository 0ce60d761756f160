package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"kord/internal/config"
)

func TestLoadDefaultConfig(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "kord", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.Resolver.MaxCandidates != 8 || cfg.Resolver.Workers != 0 {
		t.Fatalf("unexpected resolver defaults: %+v", cfg.Resolver)
	}
	if cfg.Chroma.Threshold != 0.5 {
		t.Fatalf("unexpected chroma threshold: %v", cfg.Chroma.Threshold)
	}
	if cfg.API.Bind != "127.0.0.1:7490" {
		t.Fatalf("unexpected api bind: %q", cfg.API.Bind)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" || cfg.Logging.Output != "stderr" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "kord.toml")

	type payload struct {
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
		Resolver struct {
			MaxCandidates int `toml:"max_candidates"`
			Workers       int `toml:"workers"`
		} `toml:"resolver"`
		API struct {
			Bind string `toml:"bind"`
		} `toml:"api"`
	}
	custom := payload{}
	custom.Logging.Format = " JSON "
	custom.Logging.Level = "Debug"
	custom.Resolver.MaxCandidates = 16
	custom.Resolver.Workers = 1
	custom.API.Bind = "  0.0.0.0:9000 "

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
	if cfg.Resolver.MaxCandidates != 16 || cfg.Resolver.Workers != 1 {
		t.Fatalf("unexpected resolver: %+v", cfg.Resolver)
	}
	if cfg.API.Bind != "0.0.0.0:9000" {
		t.Fatalf("unexpected api bind: %q", cfg.API.Bind)
	}
	if cfg.MIDI.Tempo != 120 {
		t.Fatalf("expected untouched sections to keep defaults, got tempo %v", cfg.MIDI.Tempo)
	}
}

func TestLoadProjectConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile("kord.toml", []byte("[chroma]\nthreshold = 0.0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(resolved) != "kord.toml" {
		t.Fatalf("expected project config, got %q exists=%v", resolved, exists)
	}
	if cfg.Chroma.Threshold != 0 {
		t.Fatalf("unexpected threshold: %v", cfg.Chroma.Threshold)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("KORD_LOG_LEVEL", "WARN")
	t.Setenv("KORD_API_TOKEN", "secret")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected level from env, got %q", cfg.Logging.Level)
	}
	if cfg.API.Token != "secret" {
		t.Fatalf("expected token from env, got %q", cfg.API.Token)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"level", func(c *config.Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"override", func(c *config.Config) {
			c.Logging.ComponentOverrides = map[string]string{"server": "chatty"}
		}, "logging.component_overrides.server"},
		{"candidates", func(c *config.Config) { c.Resolver.MaxCandidates = 33 }, "resolver.max_candidates"},
		{"workers", func(c *config.Config) { c.Resolver.Workers = -1 }, "resolver.workers"},
		{"threshold", func(c *config.Config) { c.Chroma.Threshold = 1.2 }, "chroma.threshold"},
		{"velocity", func(c *config.Config) { c.MIDI.Velocity = 0 }, "midi.velocity"},
		{"channel", func(c *config.Config) { c.MIDI.Channel = 16 }, "midi.channel"},
		{"shutdown", func(c *config.Config) { c.API.ShutdownTimeoutSeconds = 0 }, "api.shutdown_timeout_seconds"},
	}
	for _, tt := range tests {
		cfg := config.Default()
		tt.mutate(&cfg)
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Fatalf("%s: expected error mentioning %q, got %v", tt.name, tt.want, err)
		}
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kord.toml")
	if err := os.WriteFile(path, []byte("[resolver]\nmax_candidate = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected unknown key to fail")
	}
}

func TestCreateSampleLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	def := config.Default()
	if cfg.Resolver != def.Resolver || cfg.Chroma != def.Chroma || cfg.MIDI != def.MIDI || cfg.API != def.API {
		t.Fatalf("sample config diverges from defaults: %+v", cfg)
	}
	if err := config.CreateSample(path); err == nil {
		t.Fatal("expected CreateSample to refuse overwriting")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := config.Default()
	text, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if !strings.Contains(text, "[resolver]") || !strings.Contains(text, "max_candidates = 8") {
		t.Fatalf("unexpected encoding:\n%s", text)
	}
}
