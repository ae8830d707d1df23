package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	cfg := &Config{
		Servers: []Server{
			{URL: "https://api.shop.example.com", Alias: "production"},
			{URL: "https://staging.shop.example.com", Alias: "staging"},
		},
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if len(loaded.Servers) != 2 {
		t.Fatalf("expected 2 servers, got %d", len(loaded.Servers))
	}
	if loaded.Servers[0].URL != "https://api.shop.example.com" {
		t.Errorf("unexpected first server URL: %s", loaded.Servers[0].URL)
	}
	if loaded.Servers[1].Alias != "staging" {
		t.Errorf("unexpected second server alias: %s", loaded.Servers[1].Alias)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestGetServerByAlias(t *testing.T) {
	cfg := &Config{
		Servers: []Server{
			{URL: "https://one.example.com", Alias: "one"},
			{URL: "https://two.example.com", Alias: "two"},
		},
	}

	server, err := cfg.GetServerByAlias("two")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if server.URL != "https://two.example.com" {
		t.Errorf("unexpected server: %+v", server)
	}

	if _, err := cfg.GetServerByAlias("missing"); err == nil {
		t.Error("expected error for unknown alias")
	}
}

func TestGetDefaultServer(t *testing.T) {
	empty := &Config{}
	if _, err := empty.GetDefaultServer(); err == nil {
		t.Error("expected error for empty server list")
	}

	cfg := &Config{Servers: []Server{{URL: "https://one.example.com", Alias: "one"}}}
	server, err := cfg.GetDefaultServer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if server.Alias != "one" {
		t.Errorf("unexpected default server: %+v", server)
	}
}

func TestFindConfigFileSearchesParents(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := Save(filepath.Join(root, ConfigFileName), DefaultConfig()); err != nil {
		t.Fatal(err)
	}

	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(originalDir)
	if err := os.Chdir(nested); err != nil {
		t.Fatal(err)
	}

	found, err := FindConfigFile()
	if err != nil {
		t.Fatalf("expected config found in parent, got: %v", err)
	}
	if filepath.Base(found) != ConfigFileName {
		t.Errorf("unexpected path: %s", found)
	}
}
