package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.API.BaseURL != "http://localhost:8000" {
			t.Errorf("expected base URL http://localhost:8000, got %s", config.API.BaseURL)
		}

		if config.Database.Path != "./buzznews.db" {
			t.Errorf("expected database path ./buzznews.db, got %s", config.Database.Path)
		}

		if len(config.Admin.Emails) == 0 {
			t.Error("expected a default admin allow-list")
		}

		if len(config.Categories) == 0 {
			t.Fatal("expected default category entries")
		}
		if config.Categories[0].Lookup != "newsapi" || config.Categories[0].Label != "Technology" {
			t.Errorf("expected newsapi/Technology first, got %+v", config.Categories[0])
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[api]
base_url = "https://news.example.com"
timeout_seconds = 5
requests_per_sec = 2.0
feed_limit = 10

[admin]
emails = ["boss@example.com"]

[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[[categories]]
lookup = "example"
label = "Examples"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.API.BaseURL != "https://news.example.com" {
			t.Errorf("expected custom base URL, got %s", config.API.BaseURL)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}

		if len(config.Admin.Emails) != 1 || config.Admin.Emails[0] != "boss@example.com" {
			t.Errorf("expected admin allow-list from file, got %v", config.Admin.Emails)
		}

		if len(config.Categories) != 1 || config.Categories[0].Label != "Examples" {
			t.Errorf("expected one category entry, got %v", config.Categories)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("category order is preserved", func(t *testing.T) {
		config := DefaultConfig()
		for i, want := range []string{"newsapi", "livemint", "iphoneincanada.ca"} {
			if config.Categories[i].Lookup != want {
				t.Errorf("expected %s at position %d, got %s", want, i, config.Categories[i].Lookup)
			}
		}
	})
}
