package config

import (
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:    "Defaults",
			envVars: map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
					t.Errorf("Unexpected defaults: %+v", cfg)
				}
				if cfg.NotionRetries != 3 {
					t.Errorf("Expected 3 retries, got %d", cfg.NotionRetries)
				}
			},
		},
		{
			name: "Overrides",
			envVars: map[string]string{
				"LOG_LEVEL":             "debug",
				"LOG_FORMAT":            "json",
				"PLACEHOLDER_TEXT":      "Einleitung",
				"NOTION_API_KEY":        "key",
				"NOTION_PARENT_PAGE_ID": "page",
				"NOTION_RETRIES":        "5",
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.LogLevel != "debug" || cfg.LogFormat != "json" || cfg.PlaceholderText != "Einleitung" {
					t.Errorf("Unexpected config: %+v", cfg)
				}
				if cfg.NotionRetries != 5 {
					t.Errorf("Expected 5 retries, got %d", cfg.NotionRetries)
				}
				if err := cfg.RequireNotion(); err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
			},
		},
		{
			name:        "Invalid retries",
			envVars:     map[string]string{"NOTION_RETRIES": "many"},
			expectError: true,
		},
		{
			name:        "Zero retries",
			envVars:     map[string]string{"NOTION_RETRIES": "0"},
			expectError: true,
		},
	}

	keys := []string{"LOG_LEVEL", "LOG_FORMAT", "PLACEHOLDER_TEXT", "NOTION_API_KEY", "NOTION_PARENT_PAGE_ID", "NOTION_RETRIES"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range keys {
				t.Setenv(k, "")
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.expectError {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestRequireNotion(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		expectError bool
	}{
		{"Complete", Config{NotionAPIKey: "k", NotionParentPageID: "p"}, false},
		{"Missing API key", Config{NotionParentPageID: "p"}, true},
		{"Missing parent page ID", Config{NotionAPIKey: "k"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.RequireNotion()
			if tt.expectError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
