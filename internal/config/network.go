package config

import (
	"net"
	"strconv"
)

type NetworkConfig struct {
	ForegroundIp   string `json:"foreground_ip"`
	ForegroundPort int    `json:"foreground_port"`
	BackgroundIp   string `json:"background_ip"`
	BackgroundPort int    `json:"background_port"`
}

func NewNetworkConfig() NetworkConfig {
	return NetworkConfig{
		ForegroundIp:   "127.0.0.1",
		ForegroundPort: 8000,
		BackgroundIp:   "0.0.0.0",
		BackgroundPort: 8080,
	}
}

func (n NetworkConfig) Address(foreground bool) string {
	if foreground {
		return net.JoinHostPort(n.ForegroundIp, strconv.Itoa(n.ForegroundPort))
	}
	return net.JoinHostPort(n.BackgroundIp, strconv.Itoa(n.BackgroundPort))
}
