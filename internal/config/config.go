package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/service"
	"github.com/spf13/viper"
)

const (
	PlatformDiscord = "discord"
	PlatformSlack   = "slack"

	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

type Config struct {
	Platform string

	DiscordBotToken string
	CommandPrefix   string

	SlackBotToken      string
	SlackSigningSecret string

	Port string

	StoreDriver  string
	DBFile       string
	DatabasePath string

	ReferenceTimezone string
	SourceTimezone    string
	TickSchedule      string
	SendTimeout       time.Duration
	MorningHour       int

	CampaignRoles []string
	OneshotRoles  []string
	AdminRoles    []string

	LogLevel string
	LogFile  string
}

// Load reads the configuration from the environment and, when CONFIG_FILE is set, from that file.
// Environment values win over the file.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PLATFORM", PlatformDiscord)
	v.SetDefault("PREFIX", "$")
	v.SetDefault("PORT", "3000")
	v.SetDefault("STORE_DRIVER", StoreJSON)
	v.SetDefault("DB_FILE", "db.json")
	v.SetDefault("DATABASE_PATH", "./events.db")
	v.SetDefault("REFERENCE_TIMEZONE", "Europe/Berlin")
	v.SetDefault("SOURCE_TIMEZONE", "Europe/Berlin")
	v.SetDefault("TICK_SCHEDULE", domain.DefaultTickSchedule)
	v.SetDefault("SEND_TIMEOUT", "10s")
	v.SetDefault("MORNING_HOUR", domain.DefaultMorningHour)
	v.SetDefault("LOG_LEVEL", "info")

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg := &Config{
		Platform:           strings.ToLower(v.GetString("PLATFORM")),
		DiscordBotToken:    v.GetString("BOT_TOKEN"),
		CommandPrefix:      v.GetString("PREFIX"),
		SlackBotToken:      v.GetString("SLACK_BOT_TOKEN"),
		SlackSigningSecret: v.GetString("SLACK_SIGNING_SECRET"),
		Port:               v.GetString("PORT"),
		StoreDriver:        strings.ToLower(v.GetString("STORE_DRIVER")),
		DBFile:             v.GetString("DB_FILE"),
		DatabasePath:       v.GetString("DATABASE_PATH"),
		ReferenceTimezone:  v.GetString("REFERENCE_TIMEZONE"),
		SourceTimezone:     v.GetString("SOURCE_TIMEZONE"),
		TickSchedule:       v.GetString("TICK_SCHEDULE"),
		SendTimeout:        v.GetDuration("SEND_TIMEOUT"),
		MorningHour:        v.GetInt("MORNING_HOUR"),
		CampaignRoles:      splitList(v.GetString("CAMPAIGN_ROLES")),
		OneshotRoles:       splitList(v.GetString("ONESHOT_ROLES")),
		AdminRoles:         splitList(v.GetString("ADMIN_ROLES")),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFile:            v.GetString("LOG_FILE"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Platform {
	case PlatformDiscord:
		if c.DiscordBotToken == "" {
			return fmt.Errorf("BOT_TOKEN is required for the discord platform")
		}
	case PlatformSlack:
		if c.SlackBotToken == "" || c.SlackSigningSecret == "" {
			return fmt.Errorf("SLACK_BOT_TOKEN and SLACK_SIGNING_SECRET are required for the slack platform")
		}
	default:
		return fmt.Errorf("unknown platform %q, use %q or %q", c.Platform, PlatformDiscord, PlatformSlack)
	}

	switch c.StoreDriver {
	case StoreJSON, StoreSQLite:
	default:
		return fmt.Errorf("unknown store driver %q, use %q or %q", c.StoreDriver, StoreJSON, StoreSQLite)
	}

	if _, err := c.ReferenceLocation(); err != nil {
		return err
	}
	if _, err := c.SourceLocation(); err != nil {
		return err
	}

	if c.MorningHour < 0 || c.MorningHour > 23 {
		return fmt.Errorf("MORNING_HOUR must be between 0 and 23, got %d", c.MorningHour)
	}

	if c.SendTimeout <= 0 {
		return fmt.Errorf("SEND_TIMEOUT must be positive")
	}

	if err := service.ValidateTickSpec(c.TickSchedule); err != nil {
		return fmt.Errorf("invalid TICK_SCHEDULE: %w", err)
	}

	return nil
}

// ReferenceLocation is the zone "now" is evaluated in.
func (c *Config) ReferenceLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.ReferenceTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid REFERENCE_TIMEZONE %q: %w", c.ReferenceTimezone, err)
	}
	return loc, nil
}

// SourceLocation is the zone stored session times are written in.
func (c *Config) SourceLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.SourceTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid SOURCE_TIMEZONE %q: %w", c.SourceTimezone, err)
	}
	return loc, nil
}

func splitList(value string) []string {
	var items []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
