package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv      string `mapstructure:"APP_ENV"`
	Port        string `mapstructure:"PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_KEY"`
	UploadsDir  string `mapstructure:"UPLOADS_DIR"`
}

// ErrMissingJWTSecret is returned when JWT_KEY is not set. Tokens must never
// be signed with an empty key, so startup fails instead.
var ErrMissingJWTSecret = errors.New("JWT_KEY is not set")

func LoadConfig() (config Config, err error) {
	viper.SetDefault("APP_ENV", "local")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_URL", "sqlite://fishstories.db")
	viper.SetDefault("UPLOADS_DIR", "uploads")
	// No usable default on purpose; registering the key lets AutomaticEnv see it.
	viper.SetDefault("JWT_KEY", "")

	viper.AutomaticEnv()

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	if config.JWTSecret == "" {
		err = ErrMissingJWTSecret
		return
	}

	return
}
