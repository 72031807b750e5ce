package config

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidPort = errors.New("server port must be in range 1..65535")

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type config struct {
	Server ServerConfig `yaml:"server"`
}

func New(cfgPath string) (config, error) {
	file, err := os.Open(cfgPath)
	if err != nil {
		return config{}, err
	}
	defer func() {
		_ = file.Close()
	}()
	cfg := config{}
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return config{}, err
	}
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return config{}, ErrInvalidPort
	}
	return cfg, nil
}
