// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all process configuration. Everything is supplied at
// startup and held in memory only; the conversion rate is the single
// value that changes afterwards (via /setrate).
type Config struct {
	TelegramToken string `mapstructure:"telegram_token"`
	AdminID       int64  `mapstructure:"admin_id"`

	ConversionRate float64 `mapstructure:"conversion_rate"`
	DecimalLimit   int     `mapstructure:"decimal_limit"`
	MaxTRXPerSwap  float64 `mapstructure:"max_trx_per_swap"`

	FullNodeURL       string `mapstructure:"full_node_url"`
	USDTContract      string `mapstructure:"usdt_contract"`
	PayoutSource      string `mapstructure:"payout_source"`
	PayoutDestination string `mapstructure:"payout_destination"`
	PrivateKey        string `mapstructure:"private_key"`
	FeeLimitSun       int64  `mapstructure:"fee_limit_sun"`

	ConfirmTimeout   time.Duration `mapstructure:"-"`
	ConfirmTimeoutMS int           `mapstructure:"confirm_timeout"`
	PollInterval     time.Duration `mapstructure:"-"`
	PollIntervalMS   int           `mapstructure:"poll_interval"`

	DebugLogging bool   `mapstructure:"debug_logging"`
	LogFile      string `mapstructure:"log_file"`
}

const (
	DefaultConversionRate = 40.0
	DefaultDecimalLimit   = 3
	DefaultMaxTRXPerSwap  = 1000.0
	DefaultFullNodeURL    = "https://api.trongrid.io"
	DefaultUSDTContract   = "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"
	DefaultFeeLimitSun    = 10_000_000
	DefaultConfirmTimeout = 60_000 // ms
	DefaultPollInterval   = 3_000  // ms
	DefaultLogFile        = "logs/bot.log"
)

// LoadConfig reads configuration from the specified file path and
// performs validation. Secrets can be supplied via TRON_BOT_* env
// variables instead of the file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := map[string]interface{}{
		"conversion_rate":  DefaultConversionRate,
		"decimal_limit":    DefaultDecimalLimit,
		"max_trx_per_swap": DefaultMaxTRXPerSwap,
		"full_node_url":    DefaultFullNodeURL,
		"usdt_contract":    DefaultUSDTContract,
		"fee_limit_sun":    DefaultFeeLimitSun,
		"confirm_timeout":  DefaultConfirmTimeout,
		"poll_interval":    DefaultPollInterval,
		"debug_logging":    false,
		"log_file":         DefaultLogFile,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	loadEnvironmentVariables(v, &cfg)

	cfg.ConfirmTimeout = time.Duration(cfg.ConfirmTimeoutMS) * time.Millisecond
	cfg.PollInterval = time.Duration(cfg.PollIntervalMS) * time.Millisecond

	return &cfg, validateConfig(&cfg)
}

func validateConfig(cfg *Config) error {
	if cfg.TelegramToken == "" {
		return errors.New("missing telegram_token in configuration")
	}
	if cfg.AdminID == 0 {
		return errors.New("missing admin_id in configuration")
	}
	if cfg.PrivateKey == "" {
		return errors.New("missing private_key in configuration")
	}
	if cfg.USDTContract == "" {
		return errors.New("missing usdt_contract in configuration")
	}
	if cfg.PayoutSource == "" || cfg.PayoutDestination == "" {
		return errors.New("payout_source and payout_destination are required")
	}
	if err := validateURL(cfg.FullNodeURL); err != nil {
		return errors.New("invalid full node URL")
	}
	return validateNumericParams(cfg)
}

func validateNumericParams(cfg *Config) error {
	if cfg.ConversionRate <= 0 {
		return errors.New("invalid conversion_rate")
	}
	if cfg.DecimalLimit < 0 {
		return errors.New("invalid decimal_limit")
	}
	if cfg.MaxTRXPerSwap <= 0 {
		return errors.New("invalid max_trx_per_swap")
	}
	if cfg.FeeLimitSun <= 0 {
		return errors.New("invalid fee_limit_sun")
	}
	if cfg.ConfirmTimeoutMS <= 0 {
		return errors.New("invalid confirm_timeout")
	}
	if cfg.PollIntervalMS <= 0 {
		return errors.New("invalid poll_interval")
	}
	return nil
}

func validateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.New("invalid URL format")
	}
	if !strings.HasPrefix(parsed.Scheme, "http") {
		return errors.New("invalid URL protocol")
	}
	return nil
}

func loadEnvironmentVariables(v *viper.Viper, cfg *Config) {
	v.AutomaticEnv()
	v.SetEnvPrefix("TRON_BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if token := v.GetString("TELEGRAM_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if key := v.GetString("PRIVATE_KEY"); key != "" {
		cfg.PrivateKey = key
	}
}
