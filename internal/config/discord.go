package config

type DiscordConfig struct {
	Enable    bool   `json:"enable"`
	ApiUrl    string `json:"api_url"`
	BotToken  string `json:"bot_token"`
	ChannelId string `json:"channel_id"`
}

func NewDiscordConfig() DiscordConfig {
	return DiscordConfig{
		ApiUrl: "https://discord.com/api/v10",
	}
}
