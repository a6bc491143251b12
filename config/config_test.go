package config

import (
	"os"
	"os/exec"
	"reflect"
	"testing"
	"time"
)

// TestLoadConfig_Defaults verifies that defaults are loaded when nothing is set.
func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "GIN_MODE", "RATE_LIMIT_PER_MINUTE", "REQUEST_TIMEOUT", "DATA_PATH", "DASHBOARD_TITLE", "CHART_TITLE", "LOG_LEVEL", "LOG_PRETTY"} {
		_ = os.Unsetenv(k)
	}

	LoadConfig()

	if AppConfig.Server.Port != "8050" {
		t.Fatalf("expected default SERVER_PORT=8050, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Server.Mode != "release" || AppConfig.Server.RateLimitPerMinute != 120 || AppConfig.Server.RequestTimeout != 10*time.Second {
		t.Fatalf("unexpected server defaults: %+v", AppConfig.Server)
	}
	if AppConfig.Data.Path != "data.csv" {
		t.Fatalf("unexpected data path %q", AppConfig.Data.Path)
	}
	if AppConfig.Dashboard.Title == "" || AppConfig.Dashboard.ChartTitle == "" {
		t.Fatalf("expected default titles, got %+v", AppConfig.Dashboard)
	}
	if AppConfig.Log.Level != "info" || AppConfig.Log.Pretty {
		t.Fatalf("unexpected log defaults: %+v", AppConfig.Log)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DATA_PATH", "/tmp/awards.csv")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("LOG_PRETTY", "true")

	LoadConfig()

	if AppConfig.Server.Port != "9999" {
		t.Fatalf("port override ignored: %q", AppConfig.Server.Port)
	}
	if AppConfig.Data.Path != "/tmp/awards.csv" {
		t.Fatalf("data path override ignored: %q", AppConfig.Data.Path)
	}
	if AppConfig.Server.RequestTimeout != 3*time.Second {
		t.Fatalf("timeout override ignored: %v", AppConfig.Server.RequestTimeout)
	}
	if !AppConfig.Log.Pretty {
		t.Fatalf("LOG_PRETTY override ignored")
	}
}

func TestMissingKeys(t *testing.T) {
	got := missingKeys(Config{})
	want := []string{"SERVER_PORT", "RATE_LIMIT_PER_MINUTE", "REQUEST_TIMEOUT", "DATA_PATH"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("missingKeys=%v want %v", got, want)
	}

	ok := Config{
		Server: ServerConfig{Port: "1", RateLimitPerMinute: 1, RequestTimeout: time.Second},
		Data:   DataConfig{Path: "x.csv"},
	}
	if m := missingKeys(ok); len(m) != 0 {
		t.Fatalf("expected no missing keys, got %v", m)
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig triggers a fatal exit
// when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	if err := cmd.Run(); err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
