package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KonarRetronex/Customaize-GuessWho/internal/character"
	"github.com/KonarRetronex/Customaize-GuessWho/internal/imaging"
)

// rosterCmd represents the roster command group
var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage the character roster",
	Long:  `Commands for building and inspecting the character roster used for matches.`,
}

// rosterAddCmd represents the roster add command
var rosterAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a character to the roster",
	Long: `Add appends a character to the end of the roster. The portrait is
transcoded to a small fixed-size thumbnail before it is stored, so game keys
stay reasonably short.

Examples:
  guesswho roster add "Uncle Bob" --image bob.png
  guesswho roster add Mysterio`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		image := character.PlaceholderImage
		if imagePath, _ := cmd.Flags().GetString("image"); imagePath != "" {
			image, err = imaging.TranscodeFile(imagePath)
			if err != nil {
				return fmt.Errorf("error processing portrait: %v", err)
			}
		}

		entry, err := a.roster.Add(args[0], image)
		if err != nil {
			return err
		}
		fmt.Printf("Added %s (%d characters on the roster)\n",
			colorize.HiWhiteString(entry.Name), a.roster.Len())
		return nil
	},
}

// rosterLsCmd represents the roster ls command
var rosterLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the roster in board order",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		defer a.close()

		entries := a.roster.Entries()
		if len(entries) == 0 {
			fmt.Println("The roster is empty. Add characters with 'guesswho roster add'.")
			return
		}
		for i, e := range entries {
			portrait := "portrait"
			if character.IsPlaceholderImage(e.Image) {
				portrait = "no portrait"
			}
			fmt.Printf("%2d  %s (%s)\n", i+1, colorize.HiWhiteString(e.Name), portrait)
		}
	},
}

// rosterClearCmd represents the roster clear command
var rosterClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every character from the roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Print("Clear all characters? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
				fmt.Println("Keeping the roster.")
				return nil
			}
		}
		if err := a.roster.RemoveAll(); err != nil {
			return err
		}
		fmt.Println("Roster cleared.")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(rosterCmd)
	rosterCmd.AddCommand(rosterAddCmd)
	rosterCmd.AddCommand(rosterLsCmd)
	rosterCmd.AddCommand(rosterClearCmd)

	rosterAddCmd.Flags().StringP("image", "i", "", "Path to a portrait image (png, jpeg or gif)")
	rosterClearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
