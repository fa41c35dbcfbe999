// Package config предоставляет структуры и функцию для парсинга и загрузки конфига.
//
// Конфигурация читается из YAML-файла по пути CONFIG_PATH, при его
// отсутствии — напрямую из переменных окружения. Секрет подписи токенов
// обязателен только логически: если он не задан, генерируется случайный
// ключ на время жизни процесса с предупреждением в лог.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек.
type Config struct {
	Env                     string `yaml:"env" env:"FC_ENV" env-default:"local"`
	Debug                   bool   `yaml:"debug" env:"FC_DEBUG" env-default:"false"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"FC_DATABASE_URL" env-required:"true"`
	MigrationsPath          string `yaml:"migrations_path" env:"FC_MIGRATIONS_PATH" env-default:"./migrations"`
	RedisConnection         `yaml:"redis_connection"`
	HTTPServer              `yaml:"http_server"`
	JWTToken                `yaml:"jwt_token"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"address" env:"FC_HTTP_ADDRESS" env-default:"0.0.0.0:8080"`
	TimeoutHTTP time.Duration `yaml:"timeout" env:"FC_HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"FC_HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis.
type RedisConnection struct {
	AddressRedis string        `yaml:"address" env:"FC_REDIS_ADDRESS" env-default:"localhost:6379"`
	Password     string        `yaml:"password" env:"FC_REDIS_PASSWORD"`
	User         string        `yaml:"user" env:"FC_REDIS_USER"`
	DB           int           `yaml:"db" env:"FC_REDIS_DB" env-default:"0"`
	MaxRetries   int           `yaml:"max_retries" env:"FC_REDIS_MAX_RETRIES" env-default:"3"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env:"FC_REDIS_DIAL_TIMEOUT" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeout" env:"FC_REDIS_TIMEOUT" env-default:"3s"`
}

// JWTToken структура для работы с jwt-токеном.
type JWTToken struct {
	SecretKey string        `yaml:"secret_key" env:"FC_SECRET_KEY"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"FC_TOKEN_TTL" env-default:"30m"`
}

// MustLoad загружает конфиг из CONFIG_PATH либо из окружения.
// Завершает процесс при некорректной конфигурации.
func MustLoad() *Config {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			log.Fatalf("file: %s - does not exist", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("cannot read config: %s", err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err)
		}
	}

	if cfg.SecretKey == "" {
		key := make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			log.Fatalf("cannot generate signing key: %s", err)
		}
		cfg.SecretKey = hex.EncodeToString(key)
		log.Println("WARN: FC_SECRET_KEY is not set, a random signing key was generated " +
			"for this session; all issued tokens become invalid after restart")
	}

	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"Debug: %t\n"+
			"StorageConnectionString: %s\n"+
			"MigrationsPath: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  User: %s\n"+
			"  DB: %d\n"+
			"  MaxRetries: %d\n"+
			"  DialTimeout: %s\n"+
			"  Timeout: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"JWTToken:\n"+
			"  TokenTTL: %s\n",
		c.Env,
		c.Debug,
		c.StorageConnectionString,
		c.MigrationsPath,
		c.AddressRedis,
		c.User,
		c.DB,
		c.MaxRetries,
		c.DialTimeout,
		c.TimeoutRedis,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.TokenTTL,
	)
}
