package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env               string   `mapstructure:"ENV"`
	Rooms             []string `mapstructure:"ROOMS"`
	ScheduleLatencyMS int      `mapstructure:"SCHEDULE_LATENCY_MS"`
	Currency          string   `mapstructure:"CURRENCY"`
	OperatorUser      string   `mapstructure:"OPERATOR_USER"`
	OperatorPass      string   `mapstructure:"OPERATOR_PASS"`
	SeedDemoData      bool     `mapstructure:"SEED_DEMO_DATA"`
	DemoSeed          int64    `mapstructure:"DEMO_SEED"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("ROOMS", "101,102,103,104,105")
	v.SetDefault("SCHEDULE_LATENCY_MS", 150)
	v.SetDefault("CURRENCY", "$")
	v.SetDefault("OPERATOR_USER", "admin")
	v.SetDefault("OPERATOR_PASS", "admin")
	v.SetDefault("SEED_DEMO_DATA", true)
	v.SetDefault("DEMO_SEED", 1)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("ROOMS")
	v.BindEnv("SCHEDULE_LATENCY_MS")
	v.BindEnv("CURRENCY")
	v.BindEnv("OPERATOR_USER")
	v.BindEnv("OPERATOR_PASS")
	v.BindEnv("SEED_DEMO_DATA")
	v.BindEnv("DEMO_SEED")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Rooms == nil {
		rooms := v.GetString("ROOMS")
		if rooms != "" {
			cfg.Rooms = strings.Split(rooms, ",")
		}
	}
	for i := range cfg.Rooms {
		cfg.Rooms[i] = strings.TrimSpace(cfg.Rooms[i])
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// ScheduleLatency returns the simulated backing-store latency for
// appointment booking.
func (c *Config) ScheduleLatency() time.Duration {
	return time.Duration(c.ScheduleLatencyMS) * time.Millisecond
}

// Validate checks that the configuration is usable: the room
// inventory must be non-empty with no blank or duplicate ids, and the
// latency must not be negative.
func (c *Config) Validate() error {
	if len(c.Rooms) == 0 {
		return fmt.Errorf("ROOMS must list at least one room id")
	}
	seen := make(map[string]bool, len(c.Rooms))
	for _, r := range c.Rooms {
		if r == "" {
			return fmt.Errorf("ROOMS contains an empty room id")
		}
		if seen[r] {
			return fmt.Errorf("ROOMS contains duplicate room id %q", r)
		}
		seen[r] = true
	}
	if c.ScheduleLatencyMS < 0 {
		return fmt.Errorf("SCHEDULE_LATENCY_MS must not be negative, got %d", c.ScheduleLatencyMS)
	}
	if c.OperatorUser == "" {
		return fmt.Errorf("OPERATOR_USER is required")
	}
	return nil
}
