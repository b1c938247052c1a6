package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KonarRetronex/Customaize-GuessWho/internal/keycodec"
)

// keyCmd represents the key command group
var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Exchange the roster as a copy-pasteable game key",
	Long: `The game key is a single printable string that round-trips to an exact
copy of the roster, including portraits. One player exports it, sends it over
any text channel, and the other player imports it.`,
}

// keyExportCmd represents the key export command
var keyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the roster as a game key",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if a.roster.Len() == 0 {
			return fmt.Errorf("the roster is empty, nothing to export")
		}
		key, err := keycodec.Encode(a.roster.Entries())
		if err != nil {
			return err
		}
		fmt.Println(key)
		return nil
	},
}

// keyImportCmd represents the key import command
var keyImportCmd = &cobra.Command{
	Use:   "import [key]",
	Short: "Replace the roster with one decoded from a game key",
	Long: `Import decodes a game key and atomically replaces the roster with its
contents. A malformed key is rejected and the current roster is left
untouched. Reads the key from stdin when no argument is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		var key string
		if len(args) == 1 {
			key = args[0]
		} else {
			raw, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("error reading key from stdin: %v", err)
			}
			key = string(raw)
		}
		key = strings.TrimSpace(key)

		entries, err := keycodec.Decode(key)
		if err != nil {
			return err
		}
		// Imported rosters arrive fully named, so the batch-naming cursor is
		// pinned to the end alongside the swap.
		if err := a.editor.ImportPack(entries); err != nil {
			return err
		}
		fmt.Printf("Roster imported: %d characters. Agree on a seed and start a match.\n", a.roster.Len())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(keyCmd)
	keyCmd.AddCommand(keyExportCmd)
	keyCmd.AddCommand(keyImportCmd)
}
