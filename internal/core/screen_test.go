package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3,2) = %q, expected '@'", got)
	}

	// Out of bounds writes are ignored, reads return space
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1,0) = %q, expected space", got)
	}
	if got := s.Get(99, 99); got != ' ' {
		t.Errorf("Get(99,99) = %q, expected space", got)
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(8, 4)

	s.SetColored(1, 1, '●', ColorBrightYellow)
	cell := s.GetCell(1, 1)
	if cell.Rune != '●' || cell.Color != ColorBrightYellow {
		t.Errorf("GetCell(1,1) = %+v, expected ● in bright yellow", cell)
	}

	// Plain Set uses the default color
	s.Set(2, 1, '#')
	if got := s.GetCell(2, 1).Color; got != ColorDefault {
		t.Errorf("Set should use ColorDefault, got %v", got)
	}

	// Clear resets colors too
	s.Clear()
	if cell := s.GetCell(1, 1); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear, GetCell(1,1) = %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText did not place runes, row = %q", s.Row(1))
	}

	// Text extending past the edge is clipped, not wrapped
	s.DrawText(8, 0, "long")
	if s.Get(0, 1) == 'n' || s.Get(1, 1) == 'g' {
		t.Error("DrawText should clip, not wrap")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColored(0, 0, "ok", ColorGreen)

	for i := 0; i < 2; i++ {
		if got := s.GetCell(i, 0).Color; got != ColorGreen {
			t.Errorf("cell %d color = %v, expected ColorGreen", i, got)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.SetColored(1, 1, 'x', ColorCyan)

	s.Resize(10, 8)
	if s.Width() != 10 || s.Height() != 8 {
		t.Fatalf("Resize dimensions = %dx%d", s.Width(), s.Height())
	}
	if cell := s.GetCell(1, 1); cell.Rune != 'x' || cell.Color != ColorCyan {
		t.Errorf("Resize lost content: %+v", cell)
	}

	// Shrinking drops off-screen content without panicking
	s.Resize(2, 2)
	if cell := s.GetCell(1, 1); cell.Rune != 'x' {
		t.Errorf("shrink lost in-bounds content: %+v", cell)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Errorf("DrawBox corners wrong:\n%s", s.String())
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Errorf("DrawBox edges wrong:\n%s", s.String())
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")

	if got := s.Row(0); got != "abcd" {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(7); got != strings.Repeat(" ", 4) {
		t.Errorf("Row out of bounds = %q, expected blanks", got)
	}
}
