package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type Config struct {
	WebhookSecret string         `json:"webhook_secret"`
	LogDir        string         `json:"log_dir"`
	DebugPrint    bool           `json:"debug_print"`
	Network       NetworkConfig  `json:"network"`
	Telegram      TelegramConfig `json:"telegram"`
	Discord       DiscordConfig  `json:"discord"`
	Retry         RetryConfig    `json:"retry"`
	Email         EmailConfig    `json:"email"`
	Database      DatabaseConfig `json:"database"`
	Broker        BrokerConfig   `json:"broker"`
}

func ParseConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := Config{
		LogDir:   "logs",
		Network:  NewNetworkConfig(),
		Telegram: NewTelegramConfig(),
		Discord:  NewDiscordConfig(),
		Retry:    NewRetryConfig(),
		Database: NewDatabaseConfig(),
		Broker:   NewBrokerConfig(),
	}
	if err := json.Unmarshal(content, &config); err != nil {
		return nil, err
	}

	config.applyEnv()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// applyEnv overrides secrets from the environment so they can stay out of
// the config file.
func (c *Config) applyEnv() {
	c.WebhookSecret = getEnv("WEBHOOK_SECRET", c.WebhookSecret)
	c.Telegram.ApiKey = getEnvFromFile("TELEGRAM_API_KEY_FILE",
		getEnv("TELEGRAM_API_KEY", c.Telegram.ApiKey))
	c.Discord.BotToken = getEnvFromFile("DISCORD_BOT_TOKEN_FILE",
		getEnv("DISCORD_BOT_TOKEN", c.Discord.BotToken))
	c.Email.Password = getEnv("SMTP_PASSWORD", c.Email.Password)
}

func (c *Config) validate() error {
	if !c.Telegram.Enable && !c.Discord.Enable {
		return fmt.Errorf("no delivery platform is enabled")
	}
	if c.Telegram.Enable && c.Telegram.ApiKey == "" {
		return fmt.Errorf("telegram is enabled but api_key is empty")
	}
	if c.Discord.Enable && c.Discord.BotToken == "" {
		return fmt.Errorf("discord is enabled but bot_token is empty")
	}
	if c.Retry.SendRetryNum < 1 {
		return fmt.Errorf("send_retry_num must be at least 1")
	}
	return nil
}
