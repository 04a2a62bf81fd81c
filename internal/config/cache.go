package config

import "time"

type FactCache struct {
	Enabled bool          `env:"FACT_CACHE_ENABLED" envDefault:"true"`
	TTL     time.Duration `env:"FACT_CACHE_TTL" envDefault:"24h" validate:"gt=0"`
}

type Redis struct {
	Address            string `env:"REDIS_ADDRESS"`
	Username           string `env:"REDIS_USERNAME"`
	Password           string `env:"REDIS_PASSWORD" json:"-"`
	DatabaseNumber     int    `env:"REDIS_DB" envDefault:"0" validate:"gte=0"`
	PoolSize           int    `env:"REDIS_POOL_SIZE" envDefault:"10" validate:"gte=1"`
	MinIdleConnections int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"1" validate:"gte=0"`
	MaxIdleConnections int    `env:"REDIS_MAX_IDLE_CONNS" envDefault:"5" validate:"gte=0"`
}

func (r Redis) Enabled() bool {
	return r.Address != ""
}

type FactRefresh struct {
	Enabled     bool          `env:"FACT_REFRESH_ENABLED" envDefault:"false"`
	Queue       string        `env:"FACT_REFRESH_QUEUE" envDefault:"facts" validate:"required"`
	UniqueTTL   time.Duration `env:"FACT_REFRESH_UNIQUE_TTL" envDefault:"10m" validate:"gt=0"`
	MaxRetry    int           `env:"FACT_REFRESH_MAX_RETRY" envDefault:"5" validate:"gte=0"`
	Concurrency int           `env:"FACT_REFRESH_CONCURRENCY" envDefault:"2" validate:"gte=1"`
}
