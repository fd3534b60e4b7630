package config

import (
	"os"
	"strconv"
	"time"
)

type ConfigStruct struct {
	Server    ServerConfig
	Responder ResponderConfig
	Sentry    SentryConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Port string
}

type ResponderConfig struct {
	// ThinkDelay is the simulated processing delay before a chat reply.
	ThinkDelay time.Duration
}

type SentryConfig struct {
	DSN string
}

type LoggingConfig struct {
	Level string
}

func (s *SentryConfig) IsEnabled() bool {
	return s.DSN != ""
}

var Config *ConfigStruct

func NewConfig() {
	config := &ConfigStruct{
		Server: ServerConfig{
			Port: os.Getenv("PORT"),
		},
		Responder: ResponderConfig{
			ThinkDelay: getThinkDelay(),
		},
		Sentry: SentryConfig{
			DSN: os.Getenv("SENTRY_DSN"),
		},
		Logging: LoggingConfig{
			Level: os.Getenv("LOG_LEVEL"),
		},
	}

	Config = config
}

func getThinkDelay() time.Duration {
	delayStr := os.Getenv("RESPONSE_DELAY_MS")
	if delayStr == "" {
		return 800 * time.Millisecond
	}
	delay, err := strconv.Atoi(delayStr)
	if err != nil || delay < 0 {
		return 800 * time.Millisecond
	}
	if delay > 10000 {
		return 10 * time.Second // Cap so a typo can't hang every chat for minutes
	}
	return time.Duration(delay) * time.Millisecond
}
