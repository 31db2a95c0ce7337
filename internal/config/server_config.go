package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Addr                 string  `mapstructure:"addr" validate:"required"`
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second" validate:"gt=0"`
}

func (config ServerConfig) validate() error {
	return validator.New().Struct(config)
}

func (config ServerConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("server.addr", "SERVER_ADDR"); err != nil {
		return err
	}

	return viper.BindEnv("server.max_requests_per_second", "HTTP_MAX_REQUESTS_PER_SECOND")
}
