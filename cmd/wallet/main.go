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

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/blinklabs-io/wallet"
	"github.com/blinklabs-io/wallet/config"
	"github.com/spf13/cobra"
)

const (
	programName = "wallet"
)

var (
	globalFlags = struct {
		debug      bool
		configFile string
		network    string
	}{}
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           programName,
		Short:         "Build and inspect Cardano addresses, stake certificates and asset fingerprints",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().
		BoolVarP(&globalFlags.debug, "debug", "D", false, "enable debug logging")
	rootCmd.PersistentFlags().
		StringVar(&globalFlags.configFile, "config", "", "path to config file")
	rootCmd.PersistentFlags().
		StringVarP(&globalFlags.network, "network", "n", "", "network name (overrides config)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(globalFlags.configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if globalFlags.network != "" {
			cfg.Network = globalFlags.network
		}
		if globalFlags.debug {
			cfg.LogLevel = "debug"
		}
		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	}

	// Subcommands
	rootCmd.AddCommand(addressCommand())
	rootCmd.AddCommand(inspectCommand())
	rootCmd.AddCommand(rewardAddressCommand())
	rootCmd.AddCommand(fingerprintCommand())
	rootCmd.AddCommand(certsCommand())
	return rootCmd
}

// newService builds a wallet service from the config stored on the command context
func newService(cmd *cobra.Command) (*wallet.Service, error) {
	cfg := config.FromContext(cmd.Context())
	if cfg == nil {
		return nil, fmt.Errorf("no config found in context")
	}
	logLevel, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	logger := slog.New(
		slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: logLevel,
		}),
	)
	return wallet.New(
		wallet.WithConfig(cfg),
		wallet.WithLogger(logger),
	)
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error(err.Error(), "component", programName)
		os.Exit(1)
	}
}
