package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Telegram     TelegramConfig     `yaml:"telegram"`
	Lookup       LookupConfig       `yaml:"lookup"`
	Subscription SubscriptionConfig `yaml:"subscription"`
	Log          LogConfig          `yaml:"log"`
}

// ToolConfig is the subset of Config needed by maintenance commands such as
// cmd/migrate.
type ToolConfig struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds settings of the operational HTTP server
// (health probes and metrics).
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
	TraceQueries    bool          `yaml:"trace_queries"      env:"DATABASE_TRACE_QUERIES"      env-default:"false"`
}

// TelegramConfig holds Bot API settings.
type TelegramConfig struct {
	Token          string        `yaml:"token"           env:"TELEGRAM_TOKEN"           env-required:"true"`
	PollTimeout    int           `yaml:"poll_timeout"    env:"TELEGRAM_POLL_TIMEOUT"    env-default:"60"`
	Debug          bool          `yaml:"debug"           env:"TELEGRAM_DEBUG"           env-default:"false"`
	Workers        int           `yaml:"workers"         env:"TELEGRAM_WORKERS"         env-default:"8"`
	HandlerTimeout time.Duration `yaml:"handler_timeout" env:"TELEGRAM_HANDLER_TIMEOUT" env-default:"30s"`
}

// LookupConfig holds settings of the product card API client.
type LookupConfig struct {
	BaseURL  string        `yaml:"base_url" env:"LOOKUP_BASE_URL" env-default:"https://card.wb.ru/cards/v1/detail"`
	Currency string        `yaml:"currency" env:"LOOKUP_CURRENCY" env-default:"rub"`
	Dest     string        `yaml:"dest"     env:"LOOKUP_DEST"     env-default:"-1257786"`
	Timeout  time.Duration `yaml:"timeout"  env:"LOOKUP_TIMEOUT"  env-default:"10s"`
}

// SubscriptionConfig holds notification scheduler settings.
type SubscriptionConfig struct {
	Interval    time.Duration `yaml:"interval"     env:"SUBSCRIPTION_INTERVAL"     env-default:"5m"`
	TickTimeout time.Duration `yaml:"tick_timeout" env:"SUBSCRIPTION_TICK_TIMEOUT" env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
