package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	Data        DataConfig
}

type DataConfig struct {
	Dir string // каталог статических JSON таблиц
}

const envDataDir = "DATA_DIR"

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")
	viper.WatchConfig()

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	// каталог данных можно переопределить через env
	if dir := os.Getenv(envDataDir); dir != "" {
		cfg.Data.Dir = dir
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "data"
	}

	log.Info("config parsed")

	return cfg, nil
}
