// Package render draws the board in the terminal with ANSI half-block art.
// It is a presentation collaborator only: no game state lives here.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
	"golang.org/x/term"

	"github.com/KonarRetronex/Customaize-GuessWho/internal/character"
	"github.com/KonarRetronex/Customaize-GuessWho/internal/imaging"
)

// Card art dimensions in terminal cells.
const (
	cardWidth  = 16
	cardHeight = 8
)

// Board draws the cards in order with 1-based slot numbers. Eliminated cards
// are drawn crossed out.
func Board(w io.Writer, entries []character.Entry, isEliminated func(id string) bool) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "The board is empty.")
		return
	}
	if isEliminated == nil {
		isEliminated = func(string) bool { return false }
	}

	perRow := boardColumns()
	for start := 0; start < len(entries); start += perRow {
		end := start + perRow
		if end > len(entries) {
			end = len(entries)
		}
		printRow(w, entries[start:end], start, isEliminated)
	}
}

// Card draws a single card with its caption.
func Card(w io.Writer, e character.Entry, caption string) {
	art := cardArt(e, false)
	for _, line := range art {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, colorize.HiWhiteString(caption))
}

func boardColumns() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}
	cols := width / (cardWidth + 2)
	if cols < 1 {
		cols = 1
	}
	return cols
}

func printRow(w io.Writer, row []character.Entry, offset int, isEliminated func(string) bool) {
	arts := make([][]string, len(row))
	for i, e := range row {
		arts[i] = cardArt(e, isEliminated(e.ID))
	}

	for line := 0; line < cardHeight; line++ {
		for i := range row {
			fmt.Fprint(w, arts[i][line], "  ")
		}
		fmt.Fprintln(w)
	}
	for i, e := range row {
		caption := fmt.Sprintf("%2d %s", offset+i+1, e.Name)
		caption = padCaption(caption, cardWidth)
		if isEliminated(e.ID) {
			fmt.Fprint(w, colorize.RedString(caption), "  ")
		} else {
			fmt.Fprint(w, colorize.HiWhiteString(caption), "  ")
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)
}

func padCaption(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// cardArt converts a card portrait into half-block ANSI lines. Eliminated
// cards are drawn as a crossed-out frame instead of their portrait.
func cardArt(e character.Entry, eliminated bool) []string {
	if eliminated {
		return crossedOutArt()
	}
	img, err := imaging.DecodeDataURI(e.Image)
	if err != nil || character.IsPlaceholderImage(e.Image) {
		return blankArt()
	}
	return imageToAnsi(img, cardWidth, cardHeight)
}

// imageToAnsi renders an image as ANSI art, two pixels per character cell via
// the upper half block.
func imageToAnsi(img image.Image, width, height int) []string {
	resized := resize.Resize(uint(width), uint(height*2), img, resize.Lanczos3)

	lines := make([]string, 0, height)
	for y := 0; y < height*2; y += 2 {
		var buffer strings.Builder
		for x := 0; x < width; x++ {
			top, _ := colorful.MakeColor(opaque(getColorAt(resized, x, y)))
			bottom, _ := colorful.MakeColor(opaque(getColorAt(resized, x, y+1)))
			buffer.WriteString(ansiColorString('▀', top, bottom))
		}
		lines = append(lines, buffer.String())
	}
	return lines
}

func blankArt() []string {
	lines := make([]string, cardHeight)
	for i := range lines {
		lines[i] = strings.Repeat("░", cardWidth)
	}
	return lines
}

func crossedOutArt() []string {
	lines := make([]string, cardHeight)
	for i := range lines {
		row := []rune(strings.Repeat(" ", cardWidth))
		left := i * (cardWidth - 1) / (cardHeight - 1)
		row[left] = '╲'
		row[cardWidth-1-left] = '╱'
		if row[left] == row[cardWidth-1-left] {
			row[left] = '╳'
		}
		lines[i] = colorize.RedString(string(row))
	}
	return lines
}

// getColorAt returns the color at a specific coordinate
func getColorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255}
}

// opaque drops the alpha channel; colorful.MakeColor requires it.
func opaque(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
}

// ansiColorString formats a character with truecolor foreground/background.
func ansiColorString(char rune, fg, bg colorful.Color) string {
	r1, g1, b1 := fg.RGB255()
	r2, g2, b2 := bg.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1, g1, b1, r2, g2, b2, char)
}

// StripAnsi removes ANSI escape sequences from a string.
func StripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
