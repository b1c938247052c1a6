package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KonarRetronex/Customaize-GuessWho/internal/config"
	"github.com/KonarRetronex/Customaize-GuessWho/internal/render"
	"github.com/KonarRetronex/Customaize-GuessWho/internal/session"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match against your opponent",
	Long: `Play starts a match over the current roster. Both players must have
imported the same roster (same game key) and must type the same seed,
character for character; the board order is then identical on both sides.

During the match, flip cards down as you rule them out. When you are ready,
guess your opponent's character out loud; the result is on the honor system.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		sess := session.New(a.roster, a.log)
		in := bufio.NewReader(os.Stdin)

		if a.cfg.PlayerName != "" {
			fmt.Printf("Good luck, %s!\n\n", colorize.HiWhiteString(a.cfg.PlayerName))
		}

		fixed, _ := cmd.Flags().GetBool("fixed")
		if !fixed && a.cfg.BoardVariant == config.VariantFixed {
			fixed = true
		}

		if err := pickTarget(cmd, sess, in); err != nil {
			return err
		}
		if err := launch(cmd, sess, in, fixed); err != nil {
			return err
		}

		render.Board(os.Stdout, sess.Board(), sess.IsEliminated)
		if t, ok := sess.Target(); ok {
			fmt.Println("Your secret character. Don't show your screen!")
			render.Card(os.Stdout, t, t.Name)
			fmt.Println()
		}
		return matchLoop(sess, in)
	},
}

// pickTarget runs the secret-pick flow before the board is launched.
func pickTarget(cmd *cobra.Command, sess *session.Session, in *bufio.Reader) error {
	if random, _ := cmd.Flags().GetBool("random-target"); random {
		_, err := sess.PickRandomTarget()
		return err
	}

	entries := sess.Roster().Entries()
	for i, e := range entries {
		fmt.Printf("%2d  %s\n", i+1, e.Name)
	}
	if err := sess.BeginSecretPick(); err != nil {
		return err
	}
	for {
		fmt.Print("Pick your secret character (number): ")
		line, err := in.ReadString('\n')
		if err != nil {
			return fmt.Errorf("error reading input: %v", err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 1 || n > len(entries) {
			fmt.Println("Enter a number from the list.")
			continue
		}
		if _, err := sess.HandleCardClick(entries[n-1].ID); err != nil {
			return err
		}
		return nil
	}
}

func launch(cmd *cobra.Command, sess *session.Session, in *bufio.Reader, fixed bool) error {
	if fixed {
		return sess.LaunchFixed()
	}
	seed, _ := cmd.Flags().GetString("seed")
	if seed == "" {
		// The seed is taken verbatim: differing whitespace between the two
		// players legitimately produces different boards.
		fmt.Print("Seed (agree on it with your opponent, type it exactly): ")
		line, err := in.ReadString('\n')
		if err != nil {
			return fmt.Errorf("error reading seed: %v", err)
		}
		seed = strings.TrimRight(line, "\r\n")
	}
	return sess.Launch(seed)
}

func matchLoop(sess *session.Session, in *bufio.Reader) error {
	fmt.Println("Commands: board, flip <n>, guess, reset, quit")
	for {
		fmt.Print("> ")
		line, err := in.ReadString('\n')
		if err != nil {
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "board", "b":
			render.Board(os.Stdout, sess.Board(), sess.IsEliminated)
		case "flip", "f":
			if len(fields) != 2 {
				fmt.Println("Usage: flip <n>")
				continue
			}
			flip(sess, fields[1])
		case "guess", "g":
			done, err := promptGuess(sess, in)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		case "reset":
			sess.Reset()
			fmt.Println("Back to setup. The roster is kept and editable again.")
			return nil
		case "quit", "q":
			return nil
		default:
			fmt.Println("Commands: board, flip <n>, guess, reset, quit")
		}
	}
}

func flip(sess *session.Session, arg string) {
	board := sess.Board()
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(board) {
		fmt.Printf("Enter a card number between 1 and %d.\n", len(board))
		return
	}
	e := board[n-1]
	result, err := sess.ToggleEliminated(e.ID)
	if err != nil {
		fmt.Println(err)
		return
	}
	if result == session.ClickEliminated {
		fmt.Printf("%s flipped down (%d eliminated).\n", e.Name, sess.EliminatedCount())
	} else {
		fmt.Printf("%s back up (%d eliminated).\n", e.Name, sess.EliminatedCount())
	}
}

// promptGuess runs the honor-system endgame: the guess is checked with the
// opponent out loud, not by the program.
func promptGuess(sess *session.Session, in *bufio.Reader) (bool, error) {
	fmt.Print("Who is your opponent's character? ")
	line, err := in.ReadString('\n')
	if err != nil {
		return false, nil
	}
	guess := strings.TrimSpace(line)
	if guess == "" {
		return false, nil
	}

	fmt.Printf("You guessed %s. Ask your opponent if that's correct!\n", colorize.HiWhiteString(guess))
	fmt.Print("Did your opponent say you were right? [y/N] ")
	answer, err := in.ReadString('\n')
	if err != nil {
		return false, nil
	}
	won := strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y")
	outcome := sess.DeclareResult(won, guess)

	if outcome.ClaimedWin {
		colorize.HiGreen("\nVICTORY!")
	} else {
		colorize.HiRed("\nGAME OVER")
	}
	fmt.Printf("The character was %s\n", outcome.OpponentCharacter)
	return true, nil
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().StringP("seed", "s", "", "Seed shared with your opponent (prompted if omitted)")
	playCmd.Flags().Bool("fixed", false, "Play the fixed-size board variant (no shuffle)")
	playCmd.Flags().Bool("random-target", false, "Pick your secret character at random")
}
