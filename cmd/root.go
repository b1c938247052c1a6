package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "guesswho",
	Short: "Serverless two-player guessing game over a shared roster",
	Long: `Guesswho is a two-player guessing game played without any server.
Both players run an identical copy, share the roster as a copy-pasteable game
key, agree on a seed out-of-band, and get the exact same shuffled board.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
