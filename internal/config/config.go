package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port      string `yaml:"port" env:"SERVER_PORT"`
		Mode      string `yaml:"mode" env:"SERVER_MODE"`
		PublicDir string `yaml:"public_dir" env:"SERVER_PUBLIC_DIR"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Backup struct {
		// FilePath is the JSON mirror of the student database. Every write to
		// Postgres is also applied here; reads fall back to it when the
		// primary store is unavailable.
		FilePath string `yaml:"file_path" env:"BACKUP_FILE_PATH"`
	} `yaml:"backup"`

	Chain struct {
		RPCURL          string `yaml:"rpc_url" env:"CHAIN_RPC_URL"`
		ContractAddress string `yaml:"contract_address" env:"CHAIN_CONTRACT_ADDRESS"`
		PrivateKey      string `yaml:"private_key" env:"CHAIN_PRIVATE_KEY"`
		ChainID         int64  `yaml:"chain_id" env:"CHAIN_ID"`
		ConfirmTimeout  string `yaml:"confirm_timeout" env:"CHAIN_CONFIRM_TIMEOUT"`
	} `yaml:"chain"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "3000"
	config.Server.Mode = "development"
	config.Server.PublicDir = "public"

	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "certichain"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	// Backup defaults
	config.Backup.FilePath = "student_db.json"

	// Chain defaults (local Ganache-style node)
	config.Chain.RPCURL = "http://127.0.0.1:7545"
	config.Chain.ChainID = 1337
	config.Chain.ConfirmTimeout = "90s"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Chain.RPCURL == "" {
		return fmt.Errorf("chain RPC URL is required")
	}

	if config.Chain.ContractAddress == "" {
		return fmt.Errorf("registry contract address is required")
	}

	if config.Chain.PrivateKey == "" {
		return fmt.Errorf("issuer private key is required")
	}

	if _, err := time.ParseDuration(config.Chain.ConfirmTimeout); err != nil {
		return fmt.Errorf("invalid chain confirm timeout format: %w", err)
	}

	return nil
}

// ChainConfirmTimeout returns the parsed confirmation timeout.
func (c *Config) ChainConfirmTimeout() time.Duration {
	d, err := time.ParseDuration(c.Chain.ConfirmTimeout)
	if err != nil {
		return 90 * time.Second
	}
	return d
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
