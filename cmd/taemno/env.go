package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taemno/taemno/secret"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [file]",
	Short: "Resolve secret references in the environment",
	Long: `Resolve every secret reference in the process environment, or in a
KEY=value file when one is given, and print the resolved KEY=value lines
in their original order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment(args)
		if err != nil {
			return err
		}
		resolved, err := store.ResolveEnvironment(cmd.Context(), env)
		if err != nil {
			return err
		}
		for _, v := range resolved {
			fmt.Printf("%s=%s\n", v.Key, v.Value)
		}
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify [file]",
	Short: "Check that every referenced secret exists",
	Long: `Scan the process environment, or a KEY=value file when one is given,
and report every secret reference whose backing secret is absent. No
secret value is retrieved.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment(args)
		if err != nil {
			return err
		}
		result, err := store.VerifyEnvironment(cmd.Context(), env)
		if err != nil {
			return err
		}
		if !result.Success {
			fmt.Fprintln(os.Stderr, "Missing secrets:")
			for _, m := range result.Missing {
				fmt.Fprintf(os.Stderr, "  %s: %s/%s\n", m.Key, m.Service, m.Account)
			}
			return fmt.Errorf("%d missing secret reference(s)", len(result.Missing))
		}
		fmt.Println("All secret references are present")
		return nil
	},
}

// loadEnvironment returns the env file named in args, or a snapshot of the
// process environment when no file is given.
func loadEnvironment(args []string) (secret.Environment, error) {
	if len(args) == 1 {
		return loadEnvFile(args[0])
	}
	return environFromProcess(), nil
}
