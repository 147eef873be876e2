package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/openmq/wirekit/internal/transport"
)

// wireping config.toml key mapping to client runtime settings.
type fileConfig struct {
	Host              string `toml:"host"`
	Port              int    `toml:"port"`
	ClientID          string `toml:"client_id"`
	UserName          string `toml:"user_name"`
	Password          string `toml:"password"`
	ConnectTimeoutSec int    `toml:"connect_timeout_sec"`
	RequestTimeoutSec int    `toml:"request_timeout_sec"`
	KeepAliveSec      int    `toml:"keep_alive_sec"`
	PingCount         int    `toml:"ping_count"`
	TrafficClass      int    `toml:"traffic_class"`

	TLS transport.TLSConfig `toml:"tls"`
}

type clientConfig struct {
	Host           string
	Port           int
	ClientID       string
	UserName       string
	Password       string
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
	KeepAlive      time.Duration
	PingCount      int
	TrafficClass   int
	TLS            transport.TLSConfig
}

func defaultClientConfig() clientConfig {
	return clientConfig{
		Host:           "127.0.0.1",
		Port:           61616,
		ConnectTimeout: 10 * time.Second,
		RequestTimeout: 30 * time.Second,
		KeepAlive:      30 * time.Second,
		PingCount:      3,
	}
}

func loadClientConfig(path string) (clientConfig, error) {
	cfg := defaultClientConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return clientConfig{}, fmt.Errorf("load wireping config: %w", err)
	}

	if meta.IsDefined("host") {
		cfg.Host = strings.TrimSpace(raw.Host)
	}
	if meta.IsDefined("port") {
		cfg.Port = raw.Port
	}
	if meta.IsDefined("client_id") {
		cfg.ClientID = strings.TrimSpace(raw.ClientID)
	}
	if meta.IsDefined("user_name") {
		cfg.UserName = raw.UserName
	}
	if meta.IsDefined("password") {
		cfg.Password = raw.Password
	}
	if meta.IsDefined("connect_timeout_sec") {
		cfg.ConnectTimeout = time.Duration(raw.ConnectTimeoutSec) * time.Second
	}
	if meta.IsDefined("request_timeout_sec") {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeoutSec) * time.Second
	}
	if meta.IsDefined("keep_alive_sec") {
		cfg.KeepAlive = time.Duration(raw.KeepAliveSec) * time.Second
	}
	if meta.IsDefined("ping_count") {
		cfg.PingCount = raw.PingCount
	}
	if meta.IsDefined("traffic_class") {
		cfg.TrafficClass = raw.TrafficClass
	}
	if meta.IsDefined("tls") {
		cfg.TLS = raw.TLS
	}

	if err := validateClientConfig(cfg); err != nil {
		return clientConfig{}, err
	}
	return cfg, nil
}

func validateClientConfig(cfg clientConfig) error {
	if strings.TrimSpace(cfg.Host) == "" {
		return fmt.Errorf("wireping config: host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("wireping config: port %d out of range", cfg.Port)
	}
	if cfg.ConnectTimeout <= 0 {
		return fmt.Errorf("wireping config: connect timeout must be positive")
	}
	if cfg.PingCount < 0 {
		return fmt.Errorf("wireping config: ping count must not be negative")
	}
	return nil
}
