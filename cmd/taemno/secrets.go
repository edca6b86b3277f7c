package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var setValue string

var setCmd = &cobra.Command{
	Use:   "set <service> <account>",
	Short: "Store a secret in the backend",
	Long: `Store a secret under (service, account). The secret is read from stdin
unless --value is given; a trailing newline is trimmed.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value := setValue
		if value == "" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read secret from stdin: %w", err)
			}
			value = strings.TrimRight(string(data), "\r\n")
		}
		if err := store.Set(cmd.Context(), args[0], args[1], value); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Stored %s/%s\n", args[0], args[1])
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <service> <account>",
	Short: "Print a secret",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := store.Get(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

var existsCmd = &cobra.Command{
	Use:   "exists <service> <account>",
	Short: "Check whether a secret exists (exit status 1 if absent)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		present, err := store.Exists(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		if !present {
			return fmt.Errorf("secret %s/%s does not exist", args[0], args[1])
		}
		fmt.Printf("Secret %s/%s exists\n", args[0], args[1])
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <service> <account>",
	Short: "Delete a secret",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.Delete(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Deleted %s/%s\n", args[0], args[1])
		return nil
	},
}

func init() {
	setCmd.Flags().StringVarP(&setValue, "value", "v", "", "secret value (reads stdin when omitted)")
}
