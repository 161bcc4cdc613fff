package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-maze/internal/games/tiltmaze"
	"github.com/vovakirdan/tilt-maze/internal/games/tiltmaze/core"
)

var (
	flagGenDate  string
	flagGenSize  int
	flagGenHoles int
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Print a maze to stdout",
	Long: `Generate a maze and print it as ASCII, without playing it.

By default generates today's daily puzzle. Legend: @ start, * goal, O hole.

Examples:
  tiltmaze gen
  tiltmaze gen --date 2026-08-23
  tiltmaze gen --seed 77 --size 12 --holes 10`,
	Args: cobra.NoArgs,
	Run:  runGen,
}

func init() {
	genCmd.Flags().StringVar(&flagGenDate, "date", "", "Generate the daily puzzle for a date (YYYY-MM-DD)")
	genCmd.Flags().IntVar(&flagGenSize, "size", 8, "Board size in cells")
	genCmd.Flags().IntVar(&flagGenHoles, "holes", 6, "Number of holes")
}

func runGen(cmd *cobra.Command, args []string) {
	seed := int32(flagSeed)
	switch {
	case flagGenDate != "":
		day, err := time.Parse("2006-01-02", flagGenDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: bad date %q (want YYYY-MM-DD)\n", flagGenDate)
			os.Exit(1)
		}
		seed = tiltmaze.DailySeed(day)
	case flagSeed == 0:
		seed = tiltmaze.DailySeed(time.Now())
	}

	m, err := core.Generate(seed, flagGenSize, flagGenHoles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating maze: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Maze #%d (%dx%d, %d holes)\n\n", seed, m.Size, m.Size, len(m.Holes))
	fmt.Print(renderASCII(m))
}

// renderASCII draws the maze in the classic +---+ style.
func renderASCII(m *core.Maze) string {
	marks := make(map[[2]int]byte)
	for _, h := range m.Holes {
		marks[[2]int{h.X, h.Y}] = 'O'
	}
	marks[[2]int{0, 0}] = '@'
	marks[[2]int{m.Goal.X, m.Goal.Y}] = '*'

	var b strings.Builder
	for y := 0; y < m.Size; y++ {
		// Wall line above this row
		for x := 0; x < m.Size; x++ {
			b.WriteByte('+')
			if m.At(x, y).North {
				b.WriteString("---")
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString("+\n")

		// Cell line
		for x := 0; x < m.Size; x++ {
			if m.At(x, y).West {
				b.WriteByte('|')
			} else {
				b.WriteByte(' ')
			}
			mark, ok := marks[[2]int{x, y}]
			if !ok {
				mark = ' '
			}
			b.WriteByte(' ')
			b.WriteByte(mark)
			b.WriteByte(' ')
		}
		if m.At(m.Size-1, y).East {
			b.WriteByte('|')
		}
		b.WriteByte('\n')
	}

	// Bottom wall line
	for x := 0; x < m.Size; x++ {
		b.WriteByte('+')
		if m.At(x, m.Size-1).South {
			b.WriteString("---")
		} else {
			b.WriteString("   ")
		}
	}
	b.WriteString("+\n")

	return b.String()
}
