package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KonarRetronex/Customaize-GuessWho/internal/pack"
)

// packCmd represents the pack command group
var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Export or import the roster as a character pack file",
	Long: `A character pack is a TOML file carrying the full ordered name and
portrait lists of a roster, for file-based sharing.`,
}

// packExportCmd represents the pack export command
var packExportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Write the roster to a character pack file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if a.roster.Len() == 0 {
			return fmt.Errorf("the roster is empty, nothing to export")
		}
		name, _ := cmd.Flags().GetString("name")
		if err := pack.Export(args[0], name, a.roster.Entries()); err != nil {
			return err
		}
		fmt.Printf("Wrote %d characters to %s\n", a.roster.Len(), args[0])
		return nil
	},
}

// packImportCmd represents the pack import command
var packImportCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Replace the roster with a character pack file",
	Long: `Import validates the pack before touching anything: both the name and
image lists must be present and of equal length, or the file is rejected and
the current roster stays as it is.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		entries, err := pack.Import(args[0])
		if err != nil {
			return err
		}
		if err := a.editor.ImportPack(entries); err != nil {
			return err
		}
		fmt.Printf("Pack imported: %d characters.\n", a.roster.Len())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(packCmd)
	packCmd.AddCommand(packExportCmd)
	packCmd.AddCommand(packImportCmd)

	packExportCmd.Flags().StringP("name", "n", "", "Display name stored in the pack file")
}
