package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KonarRetronex/Customaize-GuessWho/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and change player settings",
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		name := cfg.PlayerName
		if name == "" {
			name = "(not set)"
		}
		fmt.Printf("player name:   %s\n", name)
		fmt.Printf("board variant: %s\n", cfg.BoardVariant)
		return nil
	},
}

// configSetNameCmd represents the config set-name command
var configSetNameCmd = &cobra.Command{
	Use:   "set-name [name]",
	Short: "Set the player name shown when a match starts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg.PlayerName = args[0]
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Player name set to %s.\n", cfg.PlayerName)
		return nil
	},
}

// configSetVariantCmd represents the config set-variant command
var configSetVariantCmd = &cobra.Command{
	Use:   "set-variant [seeded|fixed]",
	Short: "Set the default board variant for play",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		variant := args[0]
		if variant != config.VariantSeeded && variant != config.VariantFixed {
			return fmt.Errorf("variant must be %q or %q", config.VariantSeeded, config.VariantFixed)
		}
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg.BoardVariant = variant
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Board variant set to %s.\n", cfg.BoardVariant)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetNameCmd)
	configCmd.AddCommand(configSetVariantCmd)
}
