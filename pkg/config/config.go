// Package config manages the nexctl configuration file: named manager
// contexts plus output and paging defaults.
package config

import (
	"fmt"
	"time"

	"github.com/nexhub-io/nexctl/pkg/api"
)

// GetManagerConfig resolves the transport configuration for the
// current context.
func GetManagerConfig() (*api.Config, error) {
	return GetManagerConfigWithContext("")
}

// GetManagerConfigWithContext resolves the transport configuration,
// with an optional context name overriding the current context.
func GetManagerConfigWithContext(contextName string) (*api.Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	name := contextName
	if name == "" {
		name = cfg.CurrentContext
	}
	if name == "" {
		return nil, fmt.Errorf("no current context set - use 'nexctl login' to configure a manager endpoint")
	}

	ctx, ok := cfg.Contexts[name]
	if !ok || ctx == nil {
		return nil, fmt.Errorf("context %q not found in config - use 'nexctl login' to add it", name)
	}
	if ctx.Endpoint == "" {
		return nil, fmt.Errorf("context %q has no manager endpoint - use 'nexctl login' to fix it", name)
	}

	return &api.Config{
		Endpoint:  ctx.Endpoint,
		AccessKey: ctx.AccessKey,
		Timeout:   30 * time.Second,
	}, nil
}

// GetCurrentContext returns the current context's config and name, or
// nil if none is set.
func GetCurrentContext() (*ContextConfig, string, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, "", err
	}
	if cfg.CurrentContext == "" {
		return nil, "", nil
	}
	ctx, ok := cfg.Contexts[cfg.CurrentContext]
	if !ok {
		return nil, "", fmt.Errorf("current context %q not found in config", cfg.CurrentContext)
	}
	return ctx, cfg.CurrentContext, nil
}
