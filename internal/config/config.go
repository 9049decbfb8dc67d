package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	GRPCAddr        string
	ShutdownTimeout time.Duration
	LogLevel        string

	DB DBConfig

	// Политика слотов: точные дубли (тот же провайдер, то же начало)
	// отклоняются всегда; пересечения — только при включённом флаге.
	RejectOverlappingSlots bool

	// Сколько живёт неподтверждённое бронирование до авто-отмены джанитором.
	PendingBookingTTL time.Duration
	// Cron-выражение джанитора; пустое — джанитор выключен.
	JanitorSchedule string
}

type DBConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifeTime time.Duration
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BOOKING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("grpc.addr", ":50051")
	v.SetDefault("shutdown.timeout", "10s")
	v.SetDefault("log.level", "info")

	v.SetDefault("db.host", "postgres")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "booking")
	v.SetDefault("db.password", "booking")
	v.SetDefault("db.name", "booking_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")

	v.SetDefault("slots.reject_overlapping", false)
	v.SetDefault("bookings.pending_ttl", "30m")
	v.SetDefault("bookings.janitor_schedule", "* * * * *")

	_ = v.BindEnv("grpc.addr", "BOOKING_GRPC_ADDR", "GRPC_ADDR")
	_ = v.BindEnv("log.level", "BOOKING_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("db.host", "BOOKING_DB_HOST", "DB_HOST")
	_ = v.BindEnv("db.port", "BOOKING_DB_PORT", "DB_PORT")
	_ = v.BindEnv("db.user", "BOOKING_DB_USER", "DB_USER")
	_ = v.BindEnv("db.password", "BOOKING_DB_PASSWORD", "DB_PASSWORD")
	_ = v.BindEnv("db.name", "BOOKING_DB_NAME", "DB_NAME")
	_ = v.BindEnv("db.sslmode", "BOOKING_DB_SSLMODE", "DB_SSLMODE")
	_ = v.BindEnv("db.timezone", "BOOKING_DB_TIMEZONE", "DB_TIMEZONE")

	shutdown, err := time.ParseDuration(v.GetString("shutdown.timeout"))
	if err != nil {
		return nil, fmt.Errorf("shutdown.timeout: %w", err)
	}
	connLifetime, err := time.ParseDuration(v.GetString("db.conn_max_lifetime"))
	if err != nil {
		return nil, fmt.Errorf("db.conn_max_lifetime: %w", err)
	}
	pendingTTL, err := time.ParseDuration(v.GetString("bookings.pending_ttl"))
	if err != nil {
		return nil, fmt.Errorf("bookings.pending_ttl: %w", err)
	}

	cfg := &Config{
		GRPCAddr:        v.GetString("grpc.addr"),
		ShutdownTimeout: shutdown,
		LogLevel:        v.GetString("log.level"),
		DB: DBConfig{
			Host:            v.GetString("db.host"),
			Port:            v.GetInt("db.port"),
			User:            v.GetString("db.user"),
			Password:        v.GetString("db.password"),
			Name:            v.GetString("db.name"),
			SSLMode:         v.GetString("db.sslmode"),
			TimeZone:        v.GetString("db.timezone"),
			MaxOpenConns:    v.GetInt("db.max_open_conns"),
			MaxIdleConns:    v.GetInt("db.max_idle_conns"),
			ConnMaxLifeTime: connLifetime,
		},
		RejectOverlappingSlots: v.GetBool("slots.reject_overlapping"),
		PendingBookingTTL:      pendingTTL,
		JanitorSchedule:        v.GetString("bookings.janitor_schedule"),
	}

	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
		return nil, fmt.Errorf("invalid DB config: host/user/name must not be empty")
	}

	return cfg, nil
}
