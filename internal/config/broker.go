package config

type BrokerConfig struct {
	Driver   string         `json:"driver"`
	RabbitMQ RabbitMQConfig `json:"rabbitmq"`
}

type RabbitMQConfig struct {
	User string `json:"user"`
	Pass string `json:"pass"`
	Host string `json:"host"`
	Port string `json:"port"`
}

func NewBrokerConfig() BrokerConfig {
	return BrokerConfig{
		Driver: "channel",
		RabbitMQ: RabbitMQConfig{
			User: "guest",
			Pass: "guest",
			Host: "rabbitmq",
			Port: "5672",
		},
	}
}
