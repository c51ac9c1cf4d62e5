package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
)

/*
адрес и порт запуска дашборда: переменная окружения RUN_ADDRESS или флаг -a;
адрес удалённого REST API: переменная окружения API_ADDRESS или флаг -r;
адрес redis для состояния сессии: переменная окружения REDIS_ADDRESS или флаг -s.
*/

type ServerConfig struct {
	RunAddress     string `env:"RUN_ADDRESS"`
	APIAddress     string `env:"API_ADDRESS"`
	RedisAddress   string `env:"REDIS_ADDRESS"`
	AllowedOrigin  string `env:"ALLOWED_ORIGIN"`
	SecretKey      string `env:"SECRET_KEY"`
	AlertSoundCmd  string `env:"ALERT_SOUND_CMD"`
	AlertSoundPath string `env:"ALERT_SOUND_PATH"`

	Secret              []byte
	AuthCookieExpiresIn int
}

func NewConfig() (*ServerConfig, error) {
	var params ServerConfig
	err := env.Parse(&params)
	if err != nil {
		return nil, err
	}

	var commandLineParams ServerConfig

	flag.StringVar(&commandLineParams.RunAddress, "a", "localhost:8081", "Base address to listen on")
	flag.StringVar(&commandLineParams.APIAddress, "r", "http://localhost:8080", "Remote delivery API address")
	flag.StringVar(&commandLineParams.RedisAddress, "s", "", "Redis address for session state (empty keeps state in memory)")
	flag.StringVar(&commandLineParams.AllowedOrigin, "o", "http://localhost:3000", "Allowed browser origin")
	flag.StringVar(&commandLineParams.SecretKey, "k", "dashboard-secret", "Session cookie signing key")
	flag.StringVar(&commandLineParams.AlertSoundCmd, "p", "", "Command used to play the new order sound (empty disables audio)")
	flag.StringVar(&commandLineParams.AlertSoundPath, "f", "assets/new-order.mp3", "Path to the new order sound")
	flag.Parse()

	if params.RunAddress == "" {
		params.RunAddress = commandLineParams.RunAddress
	}
	if params.APIAddress == "" {
		params.APIAddress = commandLineParams.APIAddress
	}
	if params.RedisAddress == "" {
		params.RedisAddress = commandLineParams.RedisAddress
	}
	if params.AllowedOrigin == "" {
		params.AllowedOrigin = commandLineParams.AllowedOrigin
	}
	if params.SecretKey == "" {
		params.SecretKey = commandLineParams.SecretKey
	}
	if params.AlertSoundCmd == "" {
		params.AlertSoundCmd = commandLineParams.AlertSoundCmd
	}
	if params.AlertSoundPath == "" {
		params.AlertSoundPath = commandLineParams.AlertSoundPath
	}

	params.Secret = []byte(params.SecretKey)
	params.AuthCookieExpiresIn = 24 * 60 * 60

	return &params, nil
}
