package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultEmailFile is where the gate keeps its marker record.
const DefaultEmailFile = "/var/www/appdata/email"

// ServerConfig holds the web server settings.
type ServerConfig struct {
	HTTPAddr   string `env:"CAFE_HTTP_ADDR" envDefault:":8080"`
	EmailFile  string `env:"CAFE_EMAIL_FILE" envDefault:"/var/www/appdata/email"`
	LogFile    string `env:"CAFE_LOG_FILE"`
	Stylesheet string `env:"CAFE_STYLESHEET" envDefault:"/styles/midnight.css"`
}

// ChainerConfig holds the secret chainer settings.
type ChainerConfig struct {
	EmailFile    string `env:"CAFE_EMAIL_FILE" envDefault:"/var/www/appdata/email"`
	MappingFile  string `env:"CHAINER_MAPPING_FILE" envDefault:"/root/mapping.gpg"`
	KeyringFile  string `env:"CHAINER_KEYRING_FILE" envDefault:"/root/.gnupg/mapping_key.asc"`
	Passphrase   string `env:"CHAINER_PASSPHRASE"`
	Debug        bool   `env:"DEBUG_MODE"`
	LogFile      string `env:"CHAINER_LOG_FILE" envDefault:"/tmp/chainer.log"`
	SelfDestruct bool   `env:"CHAINER_SELF_DESTRUCT" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServer returns the server configuration with defaults applied.
func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

// LoadChainer returns the chainer configuration with defaults applied.
func LoadChainer() (ChainerConfig, error) {
	var cfg ChainerConfig
	if err := ParseEnv(&cfg); err != nil {
		return ChainerConfig{}, err
	}
	return cfg, nil
}
