package config

import "time"

type NumbersAPI struct {
	BaseURL         string        `env:"NUMBERS_API_BASE_URL" envDefault:"http://numbersapi.com" validate:"required,url"`
	Category        string        `env:"NUMBERS_API_CATEGORY" envDefault:"math" validate:"oneof=math trivia date year"`
	APIKey          string        `env:"NUMBERS_API_KEY" json:"-"`
	AttemptTimeout  time.Duration `env:"NUMBERS_API_ATTEMPT_TIMEOUT" envDefault:"3s" validate:"gt=0"`
	TotalTimeout    time.Duration `env:"NUMBERS_API_TOTAL_TIMEOUT" envDefault:"8s" validate:"gt=0"`
	MaxAttempts     int           `env:"NUMBERS_API_MAX_ATTEMPTS" envDefault:"3" validate:"gte=1,lte=10"`
	BackoffInitial  time.Duration `env:"NUMBERS_API_BACKOFF_INITIAL" envDefault:"200ms" validate:"gt=0"`
	BackoffMax      time.Duration `env:"NUMBERS_API_BACKOFF_MAX" envDefault:"2s" validate:"gt=0"`
	BackoffMultiple float64       `env:"NUMBERS_API_BACKOFF_MULTIPLE" envDefault:"2" validate:"gte=1"`
}
