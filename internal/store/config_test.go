package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nakachan-ing/lifeos-cli/internal/model"
	"gopkg.in/yaml.v3"
)

func writeTestConfig(t *testing.T, config model.Config) string {
	t.Helper()
	data, err := yaml.Marshal(config)
	if err != nil {
		t.Fatalf("failed to marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestGetConfigPathEnvOverride(t *testing.T) {
	t.Setenv("LIFEOS_CONFIG", "/tmp/custom/config.yaml")
	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if path != "/tmp/custom/config.yaml" {
		t.Errorf("expected env override, got %s", path)
	}
}

func TestLoadConfigDefaultBaseURL(t *testing.T) {
	t.Setenv("LIFEOS_CONFIG", writeTestConfig(t, model.DefaultConfig()))
	t.Setenv("LIFEOS_API_URL", "")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.API.BaseURL != "http://localhost:8000" {
		t.Errorf("unexpected base URL: %s", config.API.BaseURL)
	}
}

func TestLoadConfigAPIURLOverride(t *testing.T) {
	t.Setenv("LIFEOS_CONFIG", writeTestConfig(t, model.DefaultConfig()))
	t.Setenv("LIFEOS_API_URL", "http://backend.example:9000")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.API.BaseURL != "http://backend.example:9000" {
		t.Errorf("env override not applied: %s", config.API.BaseURL)
	}
}

func TestLoadConfigExpandsHome(t *testing.T) {
	config := model.DefaultConfig()
	config.JsonDataDir = "~/lifeos-data"
	t.Setenv("LIFEOS_CONFIG", writeTestConfig(t, config))

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir available: %v", err)
	}
	if loaded.JsonDataDir != filepath.Join(home, "lifeos-data") {
		t.Errorf("`~` not expanded: %s", loaded.JsonDataDir)
	}
}
