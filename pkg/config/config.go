/*
Package config holds the client configuration loaded from a YAML file.
It is consumed by the CLI; library users pass rpcclient.Options directly.
*/
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/nimiq-community/nimiq-go/pkg/rpcclient"
	"gopkg.in/yaml.v3"
)

// Config describes the node connection: endpoint, optional HTTP Basic
// credentials and transport timeouts.
type Config struct {
	Endpoint       string        `yaml:"Endpoint"`
	Username       string        `yaml:"Username"`
	Password       string        `yaml:"Password"`
	DialTimeout    time.Duration `yaml:"DialTimeout"`
	RequestTimeout time.Duration `yaml:"RequestTimeout"`
}

// LoadFile reads the configuration from the given YAML file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unable to unmarshal config YAML: %w", err)
	}
	if cfg.Endpoint == "" {
		return Config{}, fmt.Errorf("config %s has no endpoint", path)
	}
	return cfg, nil
}

// Options converts the configuration into client options.
func (c Config) Options() rpcclient.Options {
	return rpcclient.Options{
		Username:       c.Username,
		Password:       c.Password,
		DialTimeout:    c.DialTimeout,
		RequestTimeout: c.RequestTimeout,
	}
}
