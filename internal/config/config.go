package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type AppCfg struct{ Env, Port, LogLevel string }

type BackendCfg struct {
	BaseURL      string
	TimeoutSec   int
	ReadyMaxWait time.Duration
}

type RedisCfg struct{ Addr string }
type DBCfg struct{ DSN string }

type SecurityCfg struct {
	AdminToken string // guards /console and /admin when set
}

type ListingCfg struct {
	PageSize   int
	SessionTTL time.Duration
}

type Cfg struct {
	App     AppCfg
	Backend BackendCfg
	Redis   RedisCfg
	DB      DBCfg
	Sec     SecurityCfg
	Listing ListingCfg
}

// ErrMissingBaseURL is returned by Parse when API_BASE_URL is not set.
var ErrMissingBaseURL = errors.New("API_BASE_URL is required")

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BACKEND_TIMEOUT_SEC", 30)
	v.SetDefault("READY_MAX_WAIT", "30s")
	v.SetDefault("PAGE_SIZE", 9)
	v.SetDefault("SESSION_TTL", "30m")
	v.SetDefault("ADMIN_TOKEN", "")
}

// Parse reads configuration from the process environment (and .env when
// present) without exiting on errors.
func Parse() (Cfg, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return fromViper(v)
}

func fromViper(v *viper.Viper) (Cfg, error) {
	cfg := Cfg{
		App: AppCfg{
			Env:      v.GetString("APP_ENV"),
			Port:     v.GetString("APP_PORT"),
			LogLevel: strings.ToLower(v.GetString("LOG_LEVEL")),
		},
		Backend: BackendCfg{
			BaseURL:      strings.TrimRight(strings.TrimSpace(v.GetString("API_BASE_URL")), "/"),
			TimeoutSec:   v.GetInt("BACKEND_TIMEOUT_SEC"),
			ReadyMaxWait: v.GetDuration("READY_MAX_WAIT"),
		},
		Redis: RedisCfg{Addr: v.GetString("REDIS_ADDR")},
		DB:    DBCfg{DSN: v.GetString("DB_DSN")},
		Sec:   SecurityCfg{AdminToken: strings.TrimSpace(v.GetString("ADMIN_TOKEN"))},
		Listing: ListingCfg{
			PageSize:   v.GetInt("PAGE_SIZE"),
			SessionTTL: v.GetDuration("SESSION_TTL"),
		},
	}

	if cfg.Backend.BaseURL == "" {
		return cfg, ErrMissingBaseURL
	}
	if cfg.Listing.PageSize <= 0 {
		cfg.Listing.PageSize = 9
	}
	if cfg.Listing.SessionTTL <= 0 {
		cfg.Listing.SessionTTL = 30 * time.Minute
	}
	return cfg, nil
}

// Load is Parse for the server binary: it fails fast on invalid settings.
func Load() Cfg {
	cfg, err := Parse()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	ConfigureLogging(cfg.App.LogLevel)
	return cfg
}

// ConfigureLogging sets the global zerolog level; unknown levels fall back to info.
func ConfigureLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
