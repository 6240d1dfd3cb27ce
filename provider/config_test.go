package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigPreset(t *testing.T) {
	cfg, err := ResolveConfig(nil, nil, "devnet")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000", cfg.URL)
	assert.Equal(t, "devnet", cfg.Network)
}

func TestResolveConfigEnvOverridesPreset(t *testing.T) {
	env := map[string]string{
		"EMBER_RPC_URL":  "http://node.example:4000",
		"EMBER_RPC_USER": "envuser",
	}
	cfg, err := ResolveConfig(nil, env, "testnet")
	require.NoError(t, err)
	assert.Equal(t, "http://node.example:4000", cfg.URL)
	assert.Equal(t, "envuser", cfg.User)
}

func TestResolveConfigOverridesWin(t *testing.T) {
	env := map[string]string{
		"EMBER_RPC_URL":  "http://env.example:4000",
		"EMBER_RPC_PASS": "envpass",
	}
	overrides := &Config{URL: "http://explicit.example:4000", User: "cliuser"}

	cfg, err := ResolveConfig(overrides, env, "devnet")
	require.NoError(t, err)
	assert.Equal(t, "http://explicit.example:4000", cfg.URL)
	assert.Equal(t, "cliuser", cfg.User)
	assert.Equal(t, "envpass", cfg.Password, "lower layers fill fields overrides leave empty")
}

func TestResolveConfigMainnetRequiresURL(t *testing.T) {
	_, err := ResolveConfig(nil, nil, "mainnet")
	assert.ErrorIs(t, err, ErrInvalidNetwork)

	cfg, err := ResolveConfig(&Config{URL: "https://mainnet.example"}, nil, "mainnet")
	require.NoError(t, err)
	assert.Equal(t, "https://mainnet.example", cfg.URL)
}

func TestResolveConfigEmptyEnvValuesIgnored(t *testing.T) {
	env := map[string]string{"EMBER_RPC_URL": ""}
	cfg, err := ResolveConfig(nil, env, "devnet")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000", cfg.URL)
}
