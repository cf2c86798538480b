package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"skyrings/internal/flight"
)

// clearEnv unsets the variables Load reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvSeed, EnvConfig, EnvMute} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	// Equivalent of t.Chdir (Go 1.24+) for older toolchains.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.Tuning != flight.DefaultTuning() {
		t.Fatalf("defaults changed: %+v", cfg.Tuning)
	}
	if cfg.Path != "" || cfg.Mute {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSeed, "4242")
	t.Setenv(EnvMute, "true")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed != 4242 || !cfg.Mute {
		t.Fatalf("env not applied: seed=%d mute=%v", cfg.Seed, cfg.Mute)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	clearEnv(t)
	if err := os.WriteFile(".env", []byte(EnvSeed+"=99\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed != 99 {
		t.Fatalf("seed from .env: got=%d want=99", cfg.Seed)
	}
}

func TestLoadBadSeed(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSeed, "not-a-number")
	if _, err := Load(""); err == nil || !strings.Contains(err.Error(), EnvSeed) {
		t.Fatalf("expected seed error, got %v", err)
	}
}

func TestLoadTuningFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	doc := `
motion:
  forward_speed: 0.8
rings:
  count: 20
  collision: hole
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfig, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Path != path {
		t.Fatalf("path: got=%q want=%q", cfg.Path, path)
	}
	tun := cfg.Tuning
	if tun.Motion.ForwardSpeed != 0.8 || tun.Rings.Count != 20 || tun.Rings.Collision != flight.CollisionHole {
		t.Fatalf("file values not applied: %+v", tun)
	}
	// Untouched keys keep defaults.
	if tun.Motion.Smoothing != flight.MoveSmoothing || tun.Input != flight.DefaultTuning().Input {
		t.Fatalf("defaults lost: %+v", tun)
	}
}

func TestLoadRejectsInvalidTuning(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rings:\n  collision: cube\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "collision") {
		t.Fatalf("expected collision error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing tuning file")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	want := flight.DefaultTuning()
	want.Rings.Spacing = 55
	out, err := MarshalTuning(want)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "spacing: 55") {
		t.Fatalf("yaml missing spacing:\n%s", out)
	}
	got, err := ParseTuning(out, flight.Tuning{})
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("round trip: got=%+v want=%+v", got, want)
	}
}
