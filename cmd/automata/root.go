package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/geange/automata/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "automata",
	Short: "automata transforms finite automata",
	Long: `automata builds finite automata from postfix regular expressions or YAML
definitions, runs them through determinization, completion and minimization,
and answers word chaining and matching queries.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	name, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(name)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return logging.New(level), nil
}
