package commands

import (
	"errors"
	"os"
	"time"

	"playstore-scraper/internal/components/configutil"
	"playstore-scraper/internal/scrapers/playstore"
)

type ThrottleConfig struct {
	IntervalMs int `json:"interval_ms"`
	Limit      int `json:"limit"`
}

// Config is read from playstore.json5 (and playstore.local.json5), flags take
// precedence over it.
type Config struct {
	Lang             string         `json:"lang"`
	Sort             string         `json:"sort"`
	UserAgent        string         `json:"user_agent"`
	TimeoutSeconds   int            `json:"timeout_seconds"`
	CloudflareBypass *bool          `json:"cloudflare_bypass"`
	Throttle         ThrottleConfig `json:"throttle"`
}

// readConfig returns an empty config when there is no config file.
func readConfig(path string) (Config, error) {
	cfg, err := configutil.ReadConfig[Config](path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	return cfg, err
}

func (c Config) transportOptions() playstore.RestyTransportOptions {
	bypass := true
	if c.CloudflareBypass != nil {
		bypass = *c.CloudflareBypass
	}
	return playstore.RestyTransportOptions{
		Timeout:          time.Duration(c.TimeoutSeconds) * time.Second,
		CloudflareBypass: bypass,
	}
}

func (c Config) throttle() *playstore.ThrottleConfig {
	if c.Throttle.Limit <= 0 || c.Throttle.IntervalMs <= 0 {
		return nil
	}
	return &playstore.ThrottleConfig{
		Interval: time.Duration(c.Throttle.IntervalMs) * time.Millisecond,
		Limit:    c.Throttle.Limit,
	}
}

func (c Config) overrides() *playstore.RequestOverrides {
	if c.UserAgent == "" {
		return nil
	}
	return &playstore.RequestOverrides{
		Headers: map[string]string{"User-Agent": c.UserAgent},
	}
}
