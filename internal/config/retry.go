package config

import "time"

type RetryConfig struct {
	SendRetryNum   int      `json:"send_retry_num"`
	SendRetrySleep Duration `json:"send_retry_sleep"`
	SendRetryWait  Duration `json:"send_retry_wait"`
	PollInterval   Duration `json:"poll_interval"`
}

func NewRetryConfig() RetryConfig {
	return RetryConfig{
		SendRetryNum:   3,
		SendRetrySleep: Duration(5 * time.Second),
		SendRetryWait:  Duration(60 * time.Second),
		PollInterval:   Duration(5 * time.Second),
	}
}
