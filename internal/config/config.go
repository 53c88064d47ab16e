package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/exile7/ExileBot_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	DiscordToken string `validate:"required"`
	DiscordAppID string `validate:"required"`
	GuildID      string `validate:"required"`

	// Channel configuration
	SpamChannelName  string // messages here never earn XP
	LevelChannelName string // level-up announcements go here

	// Leveling
	BaseXP              int     `validate:"gt=0"`
	LevelMultiplierRate float64 `validate:"gte=0"`

	// Giveaways
	GiveawayManagerRole string
	GiveawaySweepEvery  time.Duration `validate:"gt=0"`
	GiveawayRetention   time.Duration `validate:"gte=0"`

	// Storage
	DataDir string `validate:"required"`

	// Internal HTTP server (health + metrics)
	Port int `validate:"gt=0,lt=65536"`

	LogLevel  string
	LogFormat string

	// Immutable XP lookup tables, assembled once at startup
	XPTables domain.XPTables `validate:"-"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		DiscordToken:        os.Getenv("DISCORD_TOKEN"),
		DiscordAppID:        os.Getenv("DISCORD_APP_ID"),
		GuildID:             os.Getenv("DISCORD_GUILD_ID"),
		SpamChannelName:     getEnv("SPAM_CHANNEL_NAME", "bot-spam"),
		LevelChannelName:    getEnv("LEVEL_CHANNEL_NAME", "levels"),
		GiveawayManagerRole: getEnv("GIVEAWAY_MANAGER_ROLE", "giveaway manager"),
		DataDir:             getEnv("DATA_DIR", "data"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "text"),
	}

	baseXP, err := getEnvInt("BASE_XP", DefaultBaseXP)
	if err != nil {
		return nil, err
	}
	cfg.BaseXP = baseXP

	rate, err := getEnvFloat("LEVEL_MULTIPLIER_RATE", DefaultLevelMultiplierRate)
	if err != nil {
		return nil, err
	}
	cfg.LevelMultiplierRate = rate

	port, err := getEnvInt("PORT", DefaultPort)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	sweep, err := getEnvDuration("GIVEAWAY_SWEEP_INTERVAL", DefaultGiveawaySweep)
	if err != nil {
		return nil, err
	}
	cfg.GiveawaySweepEvery = sweep

	retention, err := getEnvDuration("GIVEAWAY_RETENTION", DefaultGiveawayRetention)
	if err != nil {
		return nil, err
	}
	cfg.GiveawayRetention = retention

	cfg.XPTables = defaultXPTables(cfg.LevelMultiplierRate)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return f, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return d, nil
}
