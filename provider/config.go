package provider

import "fmt"

// Config holds the connection parameters for an Ember node's JSON-RPC
// interface.
type Config struct {
	URL      string `json:"url"`
	User     string `json:"user"`
	Password string `json:"password"`
	Network  string `json:"network"`
}

// NetworkPresets contains default RPC configurations for known networks.
// Mainnet is intentionally omitted to require explicit configuration.
var NetworkPresets = map[string]Config{
	"devnet":  {URL: "http://localhost:4000"},
	"testnet": {URL: "http://localhost:4000"},
}

// ResolveConfig merges connection configuration from three sources with
// decreasing priority:
//  1. explicit overrides (highest priority)
//  2. environment variables (EMBER_RPC_URL, EMBER_RPC_USER, EMBER_RPC_PASS)
//  3. network presets (lowest priority, devnet/testnet only)
//
// For mainnet, explicit configuration is required -- there is no preset.
func ResolveConfig(overrides *Config, env map[string]string, network string) (*Config, error) {
	result := Config{Network: network}

	// Layer 1: start with preset defaults if available.
	if preset, ok := NetworkPresets[network]; ok {
		result = preset
		result.Network = network
	}

	// Layer 2: environment variables override preset defaults.
	if env != nil {
		if v, ok := env["EMBER_RPC_URL"]; ok && v != "" {
			result.URL = v
		}
		if v, ok := env["EMBER_RPC_USER"]; ok && v != "" {
			result.User = v
		}
		if v, ok := env["EMBER_RPC_PASS"]; ok && v != "" {
			result.Password = v
		}
	}

	// Layer 3: explicit overrides have highest priority.
	if overrides != nil {
		if overrides.URL != "" {
			result.URL = overrides.URL
		}
		if overrides.User != "" {
			result.User = overrides.User
		}
		if overrides.Password != "" {
			result.Password = overrides.Password
		}
	}

	if result.URL == "" {
		return nil, fmt.Errorf("%w: %q has no preset and no URL was provided", ErrInvalidNetwork, network)
	}

	return &result, nil
}
