package config

import "time"

type HTTP struct {
	ListenAddress     string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080" validate:"required"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s" validate:"gt=0"`
	HandlerTimeout    time.Duration `env:"HTTP_HANDLER_TIMEOUT" envDefault:"15s" validate:"gt=0"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}
