package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// chdir isolates godotenv from any .env in the package directory.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "EXPORT_DIR", "LOG_FORMAT", "LOG_LEVEL", "REQUEST_TIMEOUT_SECONDS", "SHUTDOWN_TIMEOUT_SECONDS", "MAX_BODY_BYTES", EnvConfigPath} {
		t.Setenv(k, "") // restores the original value after the test
		_ = os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != defaults() {
		t.Fatalf("cfg = %+v, want %+v", cfg, defaults())
	}
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	path := writeFile(t, dir, "custom.yaml", `
server:
  port: "9000"
  request_timeout_seconds: 10
export:
  dir: /tmp/from-yaml
log:
  level: debug
  format: json
`)
	writeFile(t, dir, ".env", "SHUTDOWN_TIMEOUT_SECONDS=3\nPORT=7000\n")
	t.Setenv("PORT", "9100")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9100" {
		t.Fatalf("environment should win over .env and yaml, port = %s", cfg.Port)
	}
	if cfg.RequestTimeout != 10*time.Second || cfg.ExportDir != "/tmp/from-yaml" {
		t.Fatalf("yaml values not applied: %+v", cfg)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf(".env value not applied: %s", cfg.ShutdownTimeout)
	}
	if cfg.LogLevel != slog.LevelDebug || cfg.LogFormat != "json" {
		t.Fatalf("log settings = %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"MAX_BODY_BYTES":          "-1",
		"REQUEST_TIMEOUT_SECONDS": "soon",
		"LOG_LEVEL":               "loud",
		"LOG_FORMAT":              "xml",
	}
	for key, value := range cases {
		clearEnv(t)
		chdir(t, t.TempDir())
		t.Setenv(key, value)
		if _, err := Load(""); err == nil {
			t.Fatalf("%s=%s: expected error", key, value)
		}
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)
	path := writeFile(t, dir, "bad.yaml", "server: [unterminated")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
