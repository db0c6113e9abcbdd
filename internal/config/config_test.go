package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestParseConfigDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"telegram": {"enable": true, "api_key": "key", "chat_id": 42}
	}`)

	config, err := ParseConfig(path)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if config.LogDir != "logs" {
		t.Errorf("LogDir = %q, want logs", config.LogDir)
	}
	if got := config.Network.Address(false); got != "0.0.0.0:8080" {
		t.Errorf("background address = %q, want 0.0.0.0:8080", got)
	}
	if got := config.Network.Address(true); got != "127.0.0.1:8000" {
		t.Errorf("foreground address = %q, want 127.0.0.1:8000", got)
	}
	if config.Retry.SendRetryNum != 3 {
		t.Errorf("SendRetryNum = %d, want 3", config.Retry.SendRetryNum)
	}
	if time.Duration(config.Retry.SendRetrySleep) != 5*time.Second {
		t.Errorf("SendRetrySleep = %v, want 5s", time.Duration(config.Retry.SendRetrySleep))
	}
	if config.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want sqlite", config.Database.Driver)
	}
	if config.Broker.Driver != "channel" {
		t.Errorf("Broker.Driver = %q, want channel", config.Broker.Driver)
	}
	if config.Telegram.ChatId != 42 {
		t.Errorf("Telegram.ChatId = %d, want 42", config.Telegram.ChatId)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	path := writeConfig(t, `{
		"webhook_secret": "s3cret",
		"log_dir": "/tmp/wh",
		"network": {"background_port": 9090},
		"telegram": {"enable": true, "api_key": "key", "chat_id": 1},
		"retry": {"send_retry_num": 5, "send_retry_sleep": "250ms"}
	}`)

	config, err := ParseConfig(path)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if config.WebhookSecret != "s3cret" {
		t.Errorf("WebhookSecret = %q", config.WebhookSecret)
	}
	if config.LogDir != "/tmp/wh" {
		t.Errorf("LogDir = %q", config.LogDir)
	}
	if got := config.Network.Address(false); got != "0.0.0.0:9090" {
		t.Errorf("background address = %q, want 0.0.0.0:9090", got)
	}
	if config.Retry.SendRetryNum != 5 {
		t.Errorf("SendRetryNum = %d, want 5", config.Retry.SendRetryNum)
	}
	if time.Duration(config.Retry.SendRetrySleep) != 250*time.Millisecond {
		t.Errorf("SendRetrySleep = %v, want 250ms", time.Duration(config.Retry.SendRetrySleep))
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	if _, err := ParseConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestParseConfigMalformed(t *testing.T) {
	path := writeConfig(t, `{"telegram": `)
	if _, err := ParseConfig(path); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestParseConfigBadDuration(t *testing.T) {
	path := writeConfig(t, `{
		"telegram": {"enable": true, "api_key": "key", "chat_id": 1},
		"retry": {"send_retry_sleep": "five seconds"}
	}`)
	if _, err := ParseConfig(path); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestParseConfigNoPlatformEnabled(t *testing.T) {
	path := writeConfig(t, `{"log_dir": "logs"}`)
	if _, err := ParseConfig(path); err == nil {
		t.Fatal("expected error when no platform is enabled")
	}
}

func TestParseConfigEnabledWithoutCredentials(t *testing.T) {
	path := writeConfig(t, `{"telegram": {"enable": true, "chat_id": 1}}`)
	if _, err := ParseConfig(path); err == nil {
		t.Fatal("expected error for enabled telegram without api_key")
	}
}

func TestParseConfigEnvOverride(t *testing.T) {
	t.Setenv("WEBHOOK_SECRET", "from-env")
	t.Setenv("TELEGRAM_API_KEY", "env-key")

	path := writeConfig(t, `{
		"webhook_secret": "from-file",
		"telegram": {"enable": true, "api_key": "file-key", "chat_id": 1}
	}`)

	config, err := ParseConfig(path)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if config.WebhookSecret != "from-env" {
		t.Errorf("WebhookSecret = %q, want from-env", config.WebhookSecret)
	}
	if config.Telegram.ApiKey != "env-key" {
		t.Errorf("Telegram.ApiKey = %q, want env-key", config.Telegram.ApiKey)
	}
}

func TestParseConfigEnvFromFile(t *testing.T) {
	keyFile := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(keyFile, []byte("secret-token\n"), 0o600); err != nil {
		t.Fatalf("failed to write token file: %v", err)
	}
	t.Setenv("TELEGRAM_API_KEY_FILE", keyFile)

	path := writeConfig(t, `{
		"telegram": {"enable": true, "api_key": "file-key", "chat_id": 1}
	}`)

	config, err := ParseConfig(path)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if config.Telegram.ApiKey != "secret-token" {
		t.Errorf("Telegram.ApiKey = %q, want secret-token", config.Telegram.ApiKey)
	}
}
