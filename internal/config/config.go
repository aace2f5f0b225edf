// Package config загружает конфигурацию carddavsync.
//
// Источники в порядке приоритета: флаги командной строки, переменные
// окружения с префиксом CARDDAVSYNC_, файл конфигурации, значения по умолчанию.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iudanet/carddavsync/internal/carddav"
)

// EnvPrefix префикс переменных окружения
const EnvPrefix = "CARDDAVSYNC"

// Storage drivers
const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
)

// ErrInvalidConfig некорректная конфигурация
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the application configuration.
type Config struct {
	UserID  string        `mapstructure:"user_id"` // пользователь хоста для команд CLI
	Storage StorageConfig `mapstructure:"storage"`
	Secret  SecretConfig  `mapstructure:"secret"`
	Log     LogConfig     `mapstructure:"log"`
	Server  ServerConfig  `mapstructure:"server"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Sync    SyncConfig    `mapstructure:"sync"`
}

// StorageConfig локальный кэш
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

// SecretConfig ключ для шифрования паролей коллекций.
// Ключ выводится из Passphrase и Salt через argon2id.
type SecretConfig struct {
	Passphrase string `mapstructure:"passphrase"`
	Salt       string `mapstructure:"salt"` // base64
}

// HTTPConfig исходящие запросы к CardDAV серверам
type HTTPConfig struct {
	UserAgent          string        `mapstructure:"user_agent"`
	Timeout            time.Duration `mapstructure:"timeout"`
	RateLimit          float64       `mapstructure:"rate_limit"` // запросов в секунду, 0 без ограничения
	RateBurst          int           `mapstructure:"rate_burst"`
	InsecureSkipVerify bool          `mapstructure:"insecure_skip_verify"`
}

// SyncConfig параметры синхронизации
type SyncConfig struct {
	ListMode      string `mapstructure:"list_mode"` // auto, propfind, report
	Workers       int    `mapstructure:"workers"`
	MaxIDAttempts int    `mapstructure:"max_id_attempts"`
}

// ServerConfig HTTP точки входа
type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	JWTSecret    string        `mapstructure:"jwt_secret"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	RequestRate  float64       `mapstructure:"request_rate"` // запросов в секунду на клиента
	RequestBurst int           `mapstructure:"request_burst"`
}

// LogConfig логирование
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // text, json
	File       string `mapstructure:"file"`   // пусто: stderr
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// SetDefaults регистрирует значения по умолчанию
func SetDefaults(v *viper.Viper) {
	v.SetDefault("user_id", "")

	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.path", "carddavsync.db")

	// ключи без значения регистрируются, чтобы их подхватывал AutomaticEnv
	v.SetDefault("secret.passphrase", "")
	v.SetDefault("secret.salt", "")

	v.SetDefault("http.timeout", carddav.DefaultTimeout)
	v.SetDefault("http.user_agent", carddav.DefaultUserAgent)
	v.SetDefault("http.insecure_skip_verify", false)
	v.SetDefault("http.rate_limit", 0)
	v.SetDefault("http.rate_burst", 1)

	v.SetDefault("sync.workers", 4)
	v.SetDefault("sync.max_id_attempts", carddav.DefaultMaxIDAttempts)
	v.SetDefault("sync.list_mode", "auto")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.jwt_secret", "")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 5*time.Minute)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.request_rate", 5)
	v.SetDefault("server.request_burst", 10)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
}

// Load читает конфигурацию. Пустой path означает поиск carddavsync.{yaml,toml,json}
// в текущем каталоге; отсутствие файла в этом случае не ошибка.
// flags может быть nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("carddavsync")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// flagKeys имена флагов CLI и соответствующие ключи конфигурации
var flagKeys = map[string]string{
	"db":        "storage.path",
	"driver":    "storage.driver",
	"log-level": "log.level",
	"log-file":  "log.file",
	"workers":   "sync.workers",
	"insecure":  "http.insecure_skip_verify",
	"addr":      "server.addr",
	"user-id":   "user_id",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite, DriverBolt:
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalidConfig, c.Storage.Driver)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("%w: storage path is empty", ErrInvalidConfig)
	}
	if c.Sync.Workers < 1 {
		return fmt.Errorf("%w: sync.workers must be positive", ErrInvalidConfig)
	}
	if c.Sync.MaxIDAttempts < 1 {
		return fmt.Errorf("%w: sync.max_id_attempts must be positive", ErrInvalidConfig)
	}
	if _, err := carddav.ParseListMode(c.Sync.ListMode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("%w: http.timeout must be positive", ErrInvalidConfig)
	}
	if c.HTTP.RateLimit < 0 {
		return fmt.Errorf("%w: http.rate_limit must not be negative", ErrInvalidConfig)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// ListMode разобранный режим листинга
func (c *Config) ListMode() carddav.ListMode {
	mode, _ := carddav.ParseListMode(c.Sync.ListMode)
	return mode
}
