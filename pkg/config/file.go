package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ContextConfig represents one named manager endpoint.
type ContextConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access-key,omitempty"`
}

// Config represents the entire configuration file.
type Config struct {
	Contexts       map[string]*ContextConfig `yaml:"contexts"`
	CurrentContext string                    `yaml:"current-context,omitempty"`
	LogLevel       string                    `yaml:"log-level,omitempty"`
	DefaultFormat  string                    `yaml:"default-format,omitempty"`
	PageSize       int                       `yaml:"page-size,omitempty"`
	StrictFields   bool                      `yaml:"strict-fields,omitempty"`
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	if envPath := os.Getenv("NEXCTLCONFIG"); envPath != "" {
		return envPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "nexctl")
	return filepath.Join(configDir, "config.yaml"), nil
}

// LoadConfig loads the configuration from the config file. A missing
// file yields an empty config, not an error.
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	info, statErr := os.Stat(configPath)
	if os.IsNotExist(statErr) {
		return &Config{
			Contexts: make(map[string]*ContextConfig),
		}, nil
	}
	if statErr != nil {
		return nil, fmt.Errorf("failed to stat config file %s: %w", configPath, statErr)
	}

	// The access key is a credential; nag about loose permissions.
	mode := info.Mode().Perm()
	if mode&0077 != 0 {
		fmt.Fprintf(os.Stderr, "Warning: Config file %s has permissions %o. Consider changing to 0600 for better security.\n",
			configPath, mode)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Contexts == nil {
		cfg.Contexts = make(map[string]*ContextConfig)
	}
	return &cfg, nil
}

// SaveConfig saves the configuration to the config file.
func SaveConfig(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if mkdirErr := os.MkdirAll(configDir, 0700); mkdirErr != nil {
		return fmt.Errorf("failed to create config directory: %w", mkdirErr)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write with restricted permissions (0600 = rw-------)
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
