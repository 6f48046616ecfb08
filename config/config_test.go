// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	yamlContent := `
network: "preview"
logLevel: "debug"
`
	tmpFile := filepath.Join(t.TempDir(), "test-wallet.yaml")
	err := os.WriteFile(tmpFile, []byte(yamlContent), 0o644)
	require.NoError(t, err)
	cfg, err := Load(tmpFile)
	require.NoError(t, err)
	assert.Equal(
		t,
		&Config{Network: "preview", LogLevel: "debug"},
		cfg,
	)
	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test-wallet.yaml")
	err := os.WriteFile(tmpFile, []byte("network: testnet\n"), 0o644)
	require.NoError(t, err)
	cfg, err := Load(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, "testnet", cfg.Network)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test-wallet.yaml")
	err := os.WriteFile(tmpFile, []byte("network: preview\nlogLevel: info\n"), 0o644)
	require.NoError(t, err)
	t.Setenv("WALLET_NETWORK", "preprod")
	t.Setenv("WALLET_LOG_LEVEL", "warn")
	cfg, err := Load(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, "preprod", cfg.Network)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadBadYaml(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test-wallet.yaml")
	err := os.WriteFile(tmpFile, []byte("network: [unterminated\n"), 0o644)
	require.NoError(t, err)
	_, err = Load(tmpFile)
	assert.ErrorContains(t, err, "error parsing config file")
}

func TestValidate(t *testing.T) {
	testDefs := []struct {
		name        string
		cfg         Config
		expectError bool
	}{
		{name: "defaults", cfg: *Default()},
		{name: "empty log level", cfg: Config{Network: "mainnet"}},
		{name: "upper case level", cfg: Config{Network: "mainnet", LogLevel: "ERROR"}},
		{name: "no network", cfg: Config{LogLevel: "info"}, expectError: true},
		{name: "unknown level", cfg: Config{Network: "mainnet", LogLevel: "trace"}, expectError: true},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			err := testDef.cfg.Validate()
			if testDef.expectError {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContext(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))
	cfg := Default()
	ctx := WithContext(context.Background(), cfg)
	assert.Same(t, cfg, FromContext(ctx))
}
