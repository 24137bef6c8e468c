package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	DB         DBConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Scheduling SchedulingConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// SchedulingConfig carries the clinic booking policy. The only hard
// constraint is that appointments must be in the future; opening hours,
// slot granularity, the cancellation notice period and the re-cancel guard
// are tunable per deployment.
type SchedulingConfig struct {
	OpeningHour    int
	ClosingHour    int
	SlotMinutes    int
	MinCancelLead  time.Duration
	ForbidRecancel bool
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	viper.SetDefault("SCHED_OPENING_HOUR", 7)
	viper.SetDefault("SCHED_CLOSING_HOUR", 19)
	viper.SetDefault("SCHED_SLOT_MINUTES", 30)
	viper.SetDefault("SCHED_FORBID_RECANCEL", true)

	minCancelLead, err := time.ParseDuration(viper.GetString("SCHED_MIN_CANCEL_LEAD"))
	if err != nil {
		minCancelLead = 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Scheduling: SchedulingConfig{
			OpeningHour:    viper.GetInt("SCHED_OPENING_HOUR"),
			ClosingHour:    viper.GetInt("SCHED_CLOSING_HOUR"),
			SlotMinutes:    viper.GetInt("SCHED_SLOT_MINUTES"),
			MinCancelLead:  minCancelLead,
			ForbidRecancel: viper.GetBool("SCHED_FORBID_RECANCEL"),
		},
	}

	return config, nil
}
