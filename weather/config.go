package main

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultBaseURL        = "https://restapi.amap.com/v3/weather"
	defaultHost           = "0.0.0.0"
	defaultPort           = 8000
	defaultTimeoutSeconds = 10
)

// Config is read once at startup and treated as immutable afterwards.
type Config struct {
	APIKey  string
	BaseURL string
	Host    string
	Port    int
	Timeout time.Duration
}

// LoadConfig reads configuration from the environment:
//
//	AMAP_KEY      - Gaode API key (required)
//	AMAP_BASE_URL - weather API base URL
//	AMAP_TIMEOUT  - per-request timeout in seconds
//	HOST, PORT    - bind address for the sse/http transports
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetDefault("amap_base_url", defaultBaseURL)
	v.SetDefault("amap_timeout", defaultTimeoutSeconds)
	v.SetDefault("host", defaultHost)
	v.SetDefault("port", defaultPort)
	v.AutomaticEnv()

	key := v.GetString("amap_key")
	if key == "" {
		return nil, fmt.Errorf("AMAP_KEY is not set; get a key at https://lbs.amap.com and export it")
	}

	return &Config{
		APIKey:  key,
		BaseURL: v.GetString("amap_base_url"),
		Host:    v.GetString("host"),
		Port:    v.GetInt("port"),
		Timeout: time.Duration(v.GetInt("amap_timeout")) * time.Second,
	}, nil
}
