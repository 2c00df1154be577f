package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

const (
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

type Config struct {
	Env        string `env:"ENV" env-required:"true"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	HttpServer HttpServer
	Database   Database
	Limiter    Limiter
	Auth       AuthConfig
	Cache      Cache
	Queue      Queue
}

type HttpServer struct {
	Port           string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout        time.Duration `env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout    time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	SwaggerEnabled bool          `env:"HTTP_SWAGGER_ENABLED" env-default:"false"`
	AllowedOrigins []string      `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" env-separator:","`
}

type Database struct {
	Driver             string        `env:"DB_DRIVER" env-default:"mysql" env-description:"one of mysql/memory"`
	Net                string        `env:"DB_NET" env-default:"tcp"`
	Server             string        `env:"DB_SERVER" env-default:"localhost:3306"`
	DBName             string        `env:"DB_NAME" env-default:"nzwalks"`
	User               string        `env:"DB_USER" env-default:"root"`
	Password           string        `env:"DB_PASSWORD"`
	TimeZone           string        `env:"DB_TIMEZONE"`
	Timeout            time.Duration `env:"DB_TIMEOUT" env-default:"2s"`
	MaxIdleConnections int           `env:"DB_MAX_IDLE_CONNECTIONS" env-default:"40"`
	MaxOpenConnections int           `env:"DB_MAX_OPEN_CONNECTIONS" env-default:"40"`
	AutoMigrate        bool          `env:"DB_AUTO_MIGRATE" env-default:"false" env-description:"create the region table on start"`
}

type Limiter struct {
	RPS   int           `env:"LIMITER_RPS" env-default:"10"`
	Burst int           `env:"LIMITER_BURST" env-default:"20"`
	TTL   time.Duration `env:"LIMITER_TTL" env-default:"10m"`
}

type AuthConfig struct {
	JWT JWTConfig
}

type JWTConfig struct {
	AccessTokenTTL time.Duration `env:"JWT_ACCESS_TOKEN_TTL" env-default:"15m"`
	SigningKey     string        `env:"JWT_SIGNING_KEY" env-required:"true"`
	Issuer         string        `env:"JWT_ISSUER" env-default:"nzwalks"`
}

type Cache struct {
	Type  string `env:"REDIS_TYPE" env-default:"redis" env-description:"specifies provider, one of redis/redisCluster"`
	Redis struct {
		Address  string `env:"REDIS_ADDR" env-default:"" env-description:"redis host:port single instance"`
		Password string `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize int    `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
	RedisCluster struct {
		Addresses []string `env:"REDIS_CLUSTER_ADDRS" env-separator:"," env-description:"redis cluster nodes: ['172.27.29.90:7000','172.27.29.91:7001'', '172.27.29.92:7002'']"`
		Password  string   `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize  int      `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
}

// Enabled reports whether any redis endpoint is configured.
func (c Cache) Enabled() bool {
	return c.Redis.Address != "" || len(c.RedisCluster.Addresses) > 0
}

type Queue struct {
	Enabled     bool `env:"QUEUE_ENABLED" env-default:"false" env-description:"publish region change events through asynq, requires redis"`
	Concurrency int  `env:"QUEUE_CONCURRENCY" env-default:"5"`
}

var ErrQueueWithoutRedis = errors.New("QUEUE_ENABLED requires REDIS_ADDR or REDIS_CLUSTER_ADDRS")

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	return cfg
}

func Load() (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	if cfg.Queue.Enabled && !cfg.Cache.Enabled() {
		return nil, ErrQueueWithoutRedis
	}

	return &cfg, nil
}
