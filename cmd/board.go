package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KonarRetronex/Customaize-GuessWho/internal/imaging"
	"github.com/KonarRetronex/Customaize-GuessWho/internal/render"
	"github.com/KonarRetronex/Customaize-GuessWho/internal/session"
)

// boardCmd represents the board command group
var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Edit and preview the board in setup mode",
}

// boardNamesCmd represents the board names command
var boardNamesCmd = &cobra.Command{
	Use:   "names [comma-separated names]",
	Short: "Batch-assign names to the next unnamed slots",
	Long: `Names are assigned in order starting at a persisted cursor, so repeated
batches append rather than overwrite. The cursor rewinds only on
'board reset-names'; importing a pack pins it to the end.

Example:
  guesswho board names "Ada, Blaise, Kurt"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		assigned, err := a.editor.ApplyNames(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Assigned %d names; next batch starts at slot %d.\n", assigned, a.editor.Cursor()+1)
		return nil
	},
}

// boardRenameCmd represents the board rename command
var boardRenameCmd = &cobra.Command{
	Use:   "rename [slot] [name]",
	Short: "Rename a single board slot",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		slot, err := parseSlot(args[0], a.roster.Len())
		if err != nil {
			return err
		}
		return a.editor.Rename(slot-1, args[1])
	},
}

// boardImageCmd represents the board image command
var boardImageCmd = &cobra.Command{
	Use:   "image [slot] [path]",
	Short: "Replace a single slot's portrait",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		slot, err := parseSlot(args[0], a.roster.Len())
		if err != nil {
			return err
		}

		// The transcode runs off the control goroutine and lands through the
		// session's staleness gate, so a load completing after the slot or
		// session moved on is dropped rather than applied.
		sess := session.New(a.roster, a.log)
		entry := a.roster.Entries()[slot-1]
		done := imaging.TranscodeFileAsync(args[1], entry.ID, a.roster.Generation())
		if err := sess.ApplyImageResult(<-done); err != nil {
			return fmt.Errorf("error processing portrait: %v", err)
		}
		return nil
	},
}

// boardResetNamesCmd represents the board reset-names command
var boardResetNamesCmd = &cobra.Command{
	Use:   "reset-names",
	Short: "Reset every slot to its default name and rewind the naming cursor",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()
		return a.editor.ResetNames()
	},
}

// boardResetImagesCmd represents the board reset-images command
var boardResetImagesCmd = &cobra.Command{
	Use:   "reset-images",
	Short: "Reset every slot to the placeholder portrait, keeping names",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()
		return a.editor.ResetImages()
	},
}

// boardInitCmd represents the board init command
var boardInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Replace the roster with the fixed-size placeholder board",
	Long: `Init builds the fixed board variant: a grid of placeholder slots to be
named and given portraits one by one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.editor.InitFixedBoard(session.BoardSize); err != nil {
			return err
		}
		fmt.Printf("Board initialized with %d placeholder slots.\n", session.BoardSize)
		return nil
	},
}

// boardShowCmd represents the board show command
var boardShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Preview the board in roster order",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		defer a.close()
		render.Board(os.Stdout, a.roster.Entries(), nil)
	},
}

func parseSlot(arg string, size int) (int, error) {
	var slot int
	if _, err := fmt.Sscanf(arg, "%d", &slot); err != nil || slot < 1 || slot > size {
		return 0, fmt.Errorf("slot must be a number between 1 and %d", size)
	}
	return slot, nil
}

func init() {
	RootCmd.AddCommand(boardCmd)
	boardCmd.AddCommand(boardNamesCmd)
	boardCmd.AddCommand(boardRenameCmd)
	boardCmd.AddCommand(boardImageCmd)
	boardCmd.AddCommand(boardResetNamesCmd)
	boardCmd.AddCommand(boardResetImagesCmd)
	boardCmd.AddCommand(boardInitCmd)
	boardCmd.AddCommand(boardShowCmd)
}
