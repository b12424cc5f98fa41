package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Logging.Level != "info" {
		t.Errorf("expected logging level 'info', got %q", cfg.Logging.Level)
	}
	if cfg.Invariant.Log || cfg.Invariant.Stack {
		t.Errorf("expected invariant reporting off by default, got %+v", cfg.Invariant)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		errMsg  string
	}{
		{"defaults", func() Config { var c Config; c.ApplyDefaults(); return c }(), false, ""},
		{"invalid level", Config{}, true, "config.logging"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tc.errMsg) {
					t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestLoadWithYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guard.yml")
	writeFile(t, path, `
logging:
  level: debug
  format: console
invariant:
  log: true
  stack: true
`)

	var cfg Config
	if err := Load("guard", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level 'debug', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("expected default output 'stderr', got %q", cfg.Logging.Output)
	}
	if !cfg.Invariant.Log || !cfg.Invariant.Stack {
		t.Errorf("expected invariant log and stack, got %+v", cfg.Invariant)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guard.yml")
	writeFile(t, path, `
invariant:
  log: true
`)
	t.Setenv("GUARD_INVARIANT_STACK", "true")
	t.Setenv("GUARD_LOGGING_LEVEL", "warn")

	var cfg Config
	if err := Load("guard", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !cfg.Invariant.Log {
		t.Error("expected file value invariant.log to survive")
	}
	if !cfg.Invariant.Stack {
		t.Error("expected GUARD_INVARIANT_STACK to set invariant.stack")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level 'warn' from env, got %q", cfg.Logging.Level)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	writeFile(t, envPath, "GUARDTEST_LOGGING_FORMAT=console\n")
	t.Cleanup(func() { os.Unsetenv("GUARDTEST_LOGGING_FORMAT") })

	var cfg Config
	err := Load("guardtest", &cfg,
		WithConfigFile(filepath.Join(dir, "missing.yml")),
		WithEnvFile(envPath),
	)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("expected format 'console' from .env, got %q", cfg.Logging.Format)
	}
}

func TestLoadMissingFile(t *testing.T) {
	var cfg Config
	err := Load("nonexistent", &cfg, WithConfigFile("/nonexistent/path.yml"))
	if err != nil {
		t.Fatalf("expected Load to succeed with missing file, got %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected defaults applied, got level %q", cfg.Logging.Level)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guard.yml")
	writeFile(t, path, `
logging:
  level: loud
`)

	var cfg Config
	err := Load("guard", &cfg, WithConfigFile(path))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "logging.level") {
		t.Errorf("unexpected error %q", err.Error())
	}
}

func TestLoadEmptyNameUsesDefault(t *testing.T) {
	fs := &mockFS{files: map[string]bool{}}
	var cfg Config
	if err := Load("", &cfg, WithFileSystem(fs)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !fs.checked["./guard.yml"] {
		t.Error("expected ./guard.yml to be searched")
	}
}

type mockFS struct {
	files   map[string]bool
	checked map[string]bool
}

func (m *mockFS) Exists(path string) bool {
	if m.checked == nil {
		m.checked = map[string]bool{}
	}
	m.checked[path] = true
	return m.files[path]
}

func (m *mockFS) LoadEnv(string) error { return nil }

func TestResolverWithMockFS(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]bool
		wantConf string
		wantEnv  string
	}{
		{
			"config dir",
			map[string]bool{"./config/guard.yml": true, "../.env": true},
			"./config/guard.yml", "../.env",
		},
		{
			"working dir wins",
			map[string]bool{"./guard.yml": true, "./config/guard.yml": true},
			"./guard.yml", "",
		},
		{
			"service env file before plain",
			map[string]bool{"./.env": true, "../.env.guard": true},
			"", "../.env.guard",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resolver := &Resolver{FileSystem: &mockFS{files: tc.files}}
			files := resolver.ResolveFiles("guard", LoaderConfig{})
			if files.ConfigFile != tc.wantConf {
				t.Errorf("ConfigFile = %q, want %q", files.ConfigFile, tc.wantConf)
			}
			if files.EnvFile != tc.wantEnv {
				t.Errorf("EnvFile = %q, want %q", files.EnvFile, tc.wantEnv)
			}
		})
	}
}

func TestResolverExplicitPaths(t *testing.T) {
	resolver := &Resolver{FileSystem: &mockFS{}}
	files := resolver.ResolveFiles("guard", LoaderConfig{ConfigFile: "a.yml", EnvFile: "b.env"})
	if files.ConfigFile != "a.yml" || files.EnvFile != "b.env" {
		t.Errorf("explicit paths not kept: %+v", files)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	got := envKeyVariants("INVARIANT_STACK")
	want := []string{"invariant_stack", "invariant.stack"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("variant %d = %q, want %q", i, got[i], want[i])
		}
	}

	found := false
	for _, v := range envKeyVariants("LOGGING_NO_COLOR") {
		if v == "logging.no_color" {
			found = true
		}
	}
	if !found {
		t.Error("expected logging.no_color variant")
	}
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	WithFileSystem(fs)(&lc)
	WithConfigFile("/path/to/guard.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)

	if lc.FileSystem == nil {
		t.Error("expected FileSystem to be set")
	}
	if lc.ConfigFile != "/path/to/guard.yml" {
		t.Errorf("expected config file path, got %q", lc.ConfigFile)
	}
	if lc.EnvFile != "/path/to/.env" {
		t.Errorf("expected env file path, got %q", lc.EnvFile)
	}
}
