package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestGetEnvOrDefault verifies env lookup with fallback
func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("CHATBOT_TEST_KEY", "set")
	if got := getEnvOrDefault("CHATBOT_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("Expected 'set', got %q", got)
	}
	if got := getEnvOrDefault("CHATBOT_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("Expected 'fallback', got %q", got)
	}
}

// TestGetEnvDuration verifies duration parsing with fallback on bad values
func TestGetEnvDuration(t *testing.T) {
	t.Setenv("CHATBOT_TEST_TIMEOUT", "30s")
	if got := getEnvDuration("CHATBOT_TEST_TIMEOUT", time.Minute); got != 30*time.Second {
		t.Errorf("Expected 30s, got %v", got)
	}

	t.Setenv("CHATBOT_TEST_TIMEOUT", "not-a-duration")
	if got := getEnvDuration("CHATBOT_TEST_TIMEOUT", time.Minute); got != time.Minute {
		t.Errorf("Expected fallback of 1m, got %v", got)
	}
}

// TestValidateMissingRequired verifies every absent credential is named
func TestValidateMissingRequired(t *testing.T) {
	config := &Config{}

	err := config.validate()
	if err == nil {
		t.Fatal("Expected an error for empty config")
	}
	for _, key := range []string{
		"OPENAI_API_ENDPOINT",
		"OPENAI_API_KEY",
		"OPENAI_API_VERSION",
		"OPENAI_DEPLOYED_MODEL",
	} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("Error should name %s, got: %v", key, err)
		}
	}
}

// TestValidatePartiallyMissing verifies only absent values are named
func TestValidatePartiallyMissing(t *testing.T) {
	config := &Config{
		Endpoint: "https://example.openai.azure.com",
		APIKey:   "key",
	}

	err := config.validate()
	if err == nil {
		t.Fatal("Expected an error for partial config")
	}
	if strings.Contains(err.Error(), "OPENAI_API_ENDPOINT") {
		t.Errorf("Error should not name supplied values: %v", err)
	}
	if !strings.Contains(err.Error(), "OPENAI_API_VERSION") {
		t.Errorf("Error should name OPENAI_API_VERSION: %v", err)
	}
}

// TestValidateComplete verifies a fully supplied config passes
func TestValidateComplete(t *testing.T) {
	config := &Config{
		Endpoint:   "https://example.openai.azure.com",
		APIKey:     "key",
		APIVersion: "2024-02-01",
		Model:      "gpt-4o",
	}

	if err := config.validate(); err != nil {
		t.Errorf("Expected valid config, got: %v", err)
	}
}

// TestLoadConfigFile verifies YAML parsing including the timeout string
func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatbot.yaml")
	content := `system_prompt: custom prompt
transcript: custom_log.txt
timeout: 45s
debug: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	override, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile failed: %v", err)
	}
	if override.SystemPrompt != "custom prompt" {
		t.Errorf("Expected custom prompt, got %q", override.SystemPrompt)
	}
	if override.TranscriptPath != "custom_log.txt" {
		t.Errorf("Expected custom_log.txt, got %q", override.TranscriptPath)
	}
	if override.Timeout != 45*time.Second {
		t.Errorf("Expected 45s timeout, got %v", override.Timeout)
	}
	if !override.Debug {
		t.Error("Expected debug to be set")
	}
	if override.LogPath != "" {
		t.Errorf("Unset fields should stay zero, got %q", override.LogPath)
	}
}

// TestLoadConfigFileBadTimeout verifies an unparseable timeout is an error
func TestLoadConfigFileBadTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatbot.yaml")
	if err := os.WriteFile(path, []byte("timeout: soon\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := loadConfigFile(path); err == nil {
		t.Error("Expected an error for a bad timeout value")
	}
}
