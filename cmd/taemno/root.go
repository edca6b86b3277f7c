package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taemno/taemno/keyring"
	"github.com/taemno/taemno/secret"
)

// Global flags
var (
	backendName  string
	refPrefix    string
	refSuffix    string
	configFile   string
	telemetryOut string
)

// store is built once in PersistentPreRunE and shared by all commands.
var store *secret.Store

// shutdownTelemetry flushes exporters; set only when telemetry is enabled.
var shutdownTelemetry func() error

var rootCmd = &cobra.Command{
	Use:   "taemno",
	Short: "Store secrets in the OS keychain and resolve them into environments",
	Long: `taemno stores secrets in the operating system's native secure storage
(macOS Keychain, Linux Secret Service, Windows Credential Manager) and
resolves references to them embedded in environment values.

A reference looks like $(taemno os://service/account). "resolve" replaces
every reference with its secret; "verify" reports references whose secrets
are missing without retrieving anything.

Environment variables:
  TAEMNO_BACKEND   Backend: system, memory (default: system)
  TAEMNO_PREFIX    Reference prefix (default: "$(taemno os://")
  TAEMNO_SUFFIX    Reference suffix (default: ")")
  TAEMNO_CONFIG    Config file path (default: ~/.taemno/config.yaml)`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" ||
			(cmd.Parent() != nil && cmd.Parent().Name() == "completion") {
			return nil
		}

		cfg, err := LoadConfig(configFile)
		if err != nil {
			// A missing config file is fine; flags and defaults cover it.
			cfg = &Config{}
		}

		// Precedence: flag > env > config > default.
		backend := firstOf(backendName, os.Getenv("TAEMNO_BACKEND"), cfg.Backend, "system")
		prefix := firstOf(refPrefix, os.Getenv("TAEMNO_PREFIX"), cfg.Prefix, secret.DefaultPrefix)
		suffix := firstOf(refSuffix, os.Getenv("TAEMNO_SUFFIX"), cfg.Suffix, secret.DefaultSuffix)

		provider, err := newProvider(backend)
		if err != nil {
			return err
		}
		if telemetryOut != "" && telemetryOut != "none" {
			shutdown, err := setupTelemetry(cmd.Context(), telemetryOut)
			if err != nil {
				return err
			}
			shutdownTelemetry = shutdown
			provider = secret.Instrument(provider)
		}

		store = secret.NewStore(provider, secret.Syntax{Prefix: prefix, Suffix: suffix})
		return nil
	},
}

// newProvider selects the backend once, at the composition point.
func newProvider(name string) (secret.Provider, error) {
	switch name {
	case "system":
		return keyring.System()
	case "memory":
		return keyring.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (expected system or memory)", name)
	}
}

// firstOf returns the first non-empty value.
func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Execute runs the root command, printing any error to stderr. Telemetry
// flushes after every run, including failed ones.
func Execute() error {
	err := rootCmd.Execute()
	if shutdownTelemetry != nil {
		if flushErr := shutdownTelemetry(); flushErr != nil && err == nil {
			err = flushErr
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendName, "backend", "", "secret backend: system or memory")
	rootCmd.PersistentFlags().StringVar(&refPrefix, "prefix", "", "secret reference prefix")
	rootCmd.PersistentFlags().StringVar(&refSuffix, "suffix", "", "secret reference suffix")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&telemetryOut, "telemetry", "none", "telemetry exporter: none, stdout, or otlp")

	rootCmd.AddCommand(setCmd, getCmd, existsCmd, deleteCmd, resolveCmd, verifyCmd, versionCmd)
}
