package config

type EmailConfig struct {
	Enable    bool   `json:"enable"`
	Server    string `json:"server"`
	Port      int    `json:"port"`
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}
