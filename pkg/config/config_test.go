package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.MaxRackLen != 15 {
		t.Errorf("default max_rack_len = %d, want 15", cfg.Server.MaxRackLen)
	}
	if !cfg.Server.EnableFilter {
		t.Error("default enable_filter should be true")
	}
	if cfg.CLI.DefaultSort != "score" {
		t.Errorf("default sort = %q, want %q", cfg.CLI.DefaultSort, "score")
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rackserve.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Server.MaxRackLen != 15 {
		t.Errorf("created config max_rack_len = %d, want 15", cfg.Server.MaxRackLen)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rackserve.toml")
	content := `
[server]
max_limit = 100
max_rack_len = 7
enable_filter = false

[dict]
path = "custom.txt"
max_words = 1000

[cli]
default_sort = "length"
default_limit = 10
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.MaxLimit != 100 || cfg.Server.MaxRackLen != 7 || cfg.Server.EnableFilter {
		t.Errorf("server section not loaded: %+v", cfg.Server)
	}
	if cfg.Dict.Path != "custom.txt" || cfg.Dict.MaxWords != 1000 {
		t.Errorf("dict section not loaded: %+v", cfg.Dict)
	}
	if cfg.CLI.DefaultSort != "length" || cfg.CLI.DefaultLimit != 10 {
		t.Errorf("cli section not loaded: %+v", cfg.CLI)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	// Only one section present; the rest keeps defaults.
	path := filepath.Join(t.TempDir(), "rackserve.toml")
	content := `
[cli]
default_sort = "length"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.CLI.DefaultSort != "length" {
		t.Errorf("cli override lost: %+v", cfg.CLI)
	}
	if cfg.Server.MaxRackLen != 15 {
		t.Errorf("missing sections should keep defaults: %+v", cfg.Server)
	}
}

func TestUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rackserve.toml")
	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}

	maxLimit := 32
	enableFilter := false
	if err := cfg.Update(path, &maxLimit, nil, &enableFilter); err != nil {
		t.Fatalf("Update: %v", err)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig after update: %v", err)
	}
	if reloaded.Server.MaxLimit != 32 || reloaded.Server.EnableFilter {
		t.Errorf("update not persisted: %+v", reloaded.Server)
	}
	if reloaded.Server.MaxRackLen != 15 {
		t.Errorf("untouched setting changed: %+v", reloaded.Server)
	}
}
