package config

type TelegramConfig struct {
	Enable bool   `json:"enable"`
	ApiUrl string `json:"api_url"`
	ApiKey string `json:"api_key"`
	ChatId int64  `json:"chat_id"`
}

func NewTelegramConfig() TelegramConfig {
	// empty ApiUrl makes the bot library use the public Bot API
	return TelegramConfig{}
}
