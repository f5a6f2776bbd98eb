package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Redis        RedisConfig        `toml:"redis"`
	Line         LineConfig         `toml:"line"`
	Cache        CacheConfig        `toml:"cache"`
	RateLimit    RateLimitConfig    `toml:"rate_limit"`
	Seats        SeatsConfig        `toml:"seats"`
	Reservations ReservationsConfig `toml:"reservations"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig настройки блокировки слотов в redis
// При Enabled = false используется блокировка в памяти процесса
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	LockTTL  int    `toml:"lock_ttl"` // секунды
}

// LineConfig настройки LINE Messaging API
// Пустой токен отключает отправку сообщений, пустой секрет отключает webhook
type LineConfig struct {
	BaseURL        string `toml:"base_url"`
	ChannelToken   string `toml:"channel_token"`
	ChannelSecret  string `toml:"channel_secret"`
	ReservationURL string `toml:"reservation_url"` // ссылка на LIFF страницу в ответах бота
	Timeout        int    `toml:"timeout"`         // секунды
}

// CacheConfig настройки кэша правил, в секундах
type CacheConfig struct {
	RuleTTL       int `toml:"rule_ttl"`
	EvictInterval int `toml:"evict_interval"`
}

// RateLimitConfig настройки ограничения публичных эндпоинтов
type RateLimitConfig struct {
	Enabled         bool `toml:"enabled"`
	Requests        int  `toml:"requests"`
	Window          int  `toml:"window"`           // секунды
	CleanupInterval int  `toml:"cleanup_interval"` // секунды
	TrustForwarded  bool `toml:"trust_forwarded"`  // X-Forwarded-For только за доверенным прокси
}

// SeatsConfig настройки подбора мест
type SeatsConfig struct {
	// FallbackOnStoreError отдавать резервный набор мест, если реестр недоступен
	FallbackOnStoreError bool `toml:"fallback_on_store_error"`
}

// ReservationsConfig настройки создания бронирований
type ReservationsConfig struct {
	LockWait int    `toml:"lock_wait"` // секунды ожидания блокировки слота
	Timezone string `toml:"timezone"`  // часовой пояс магазинов, по нему определяется "сегодня"
}

// Location часовой пояс магазинов
func (c ReservationsConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: invalid reservations.timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Load читает .env (если есть) и TOML файл, применяет значения по умолчанию и переменные окружения
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load .env: %w", err)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 10)
	setDefault(&c.Server.WriteTimeout, 10)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 15)

	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.MaxOpenConns, 25)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "reservation_service"
	}

	setDefault(&c.Redis.LockTTL, 10)
	setDefault(&c.Line.Timeout, 5)

	setDefault(&c.Cache.RuleTTL, 30)
	setDefault(&c.Cache.EvictInterval, 60)

	setDefault(&c.RateLimit.Requests, 60)
	setDefault(&c.RateLimit.Window, 60)
	setDefault(&c.RateLimit.CleanupInterval, 300)

	setDefault(&c.Reservations.LockWait, 5)
	if c.Reservations.Timezone == "" {
		c.Reservations.Timezone = "Asia/Tokyo"
	}
}

// applyEnv секреты из окружения перекрывают значения из файла
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv("REDIS_PASSWORD"); ok {
		c.Redis.Password = v
	}
	if v, ok := os.LookupEnv("LINE_CHANNEL_TOKEN"); ok {
		c.Line.ChannelToken = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv("LINE_CHANNEL_SECRET"); ok {
		c.Line.ChannelSecret = strings.TrimSpace(v)
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return errors.New("config: database.host is required")
	}
	if c.Database.User == "" {
		return errors.New("config: database.user is required")
	}
	if c.Database.DBName == "" {
		return errors.New("config: database.dbname is required")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return errors.New("config: redis.addr is required when redis is enabled")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("config: metrics.path must start with '/', got %q", c.Metrics.Path)
	}
	if _, err := c.Reservations.Location(); err != nil {
		return err
	}
	return nil
}

// Seconds переводит значение из конфигурации в time.Duration
func Seconds(v int) time.Duration {
	return time.Duration(v) * time.Second
}

func setDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}
