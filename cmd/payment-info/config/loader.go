package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/quantumauth-io/payment-info/internal/constants"
	"github.com/quantumauth-io/payment-info/internal/payment"
)

//go:embed config.yaml
var EmbeddedConfigYAML []byte

type ClientSettings struct {
	LocalHost        string
	Port             string
	UIAllowedOrigins []string
	ViewTTL          time.Duration
	SweepInterval    time.Duration
}

type Name struct {
	First string
	Last  string
}

type Config struct {
	ClientSettings *ClientSettings
	Name           Name
	Payment        payment.Addresses
}

func searchPaths() []string {
	home, _ := os.UserHomeDir()
	return []string{
		filepath.Join(home, ".config", constants.AppName),
		filepath.Join(home, "config"),
		".",
	}
}

// Load layers the embedded defaults, an optional config file and
// PAYMENT_INFO_* environment overrides. An explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(EmbeddedConfigYAML)); err != nil {
		return nil, fmt.Errorf("read embedded config: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		for _, p := range searchPaths() {
			v.AddConfigPath(p)
		}
	}

	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.ClientSettings == nil {
		cfg.ClientSettings = &ClientSettings{}
	}
	cfg.ClientSettings.applyDefaults()

	return &cfg, nil
}

func (s *ClientSettings) applyDefaults() {
	s.LocalHost = strings.TrimSpace(s.LocalHost)
	if s.LocalHost == "" {
		s.LocalHost = constants.DefaultHost
	}
	s.Port = strings.TrimSpace(s.Port)
	if s.Port == "" {
		s.Port = constants.DefaultPort
	}
	if s.ViewTTL <= 0 {
		s.ViewTTL = constants.DefaultViewTTL
	}
	if s.SweepInterval <= 0 {
		s.SweepInterval = constants.DefaultSweepInterval
	}
}

func (s *ClientSettings) Addr() string {
	return net.JoinHostPort(s.LocalHost, s.Port)
}
