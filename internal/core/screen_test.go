package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("NewScreen size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		if row := s.Row(y); row != strings.Repeat(" ", 12) {
			t.Errorf("Row(%d) = %q, expected blanks", y, row)
		}
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	// Writes outside the buffer must not panic
	s.Set(-1, 0, 'A')
	s.Set(4, 0, 'A')
	s.SetColored(0, -1, 'A', ColorRed)
	s.SetColored(0, 4, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' || s.Get(0, 9) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenTextClipping(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawText(3, 0, "Lives")

	if row := s.Row(0); row != "   Liv" {
		t.Errorf("Row(0) = %q, expected clipped text", row)
	}

	s.DrawTextCentered(1, "ok")
	if row := s.Row(1); row != "  ok  " {
		t.Errorf("Row(1) = %q, expected centered text", row)
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(1, 1, "ab", ColorRed)

	if c := s.GetCell(1, 1); c.Rune != 'a' || c.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, expected 'a' in red", c)
	}
	if c := s.GetCell(3, 1); c.Color != ColorDefault {
		t.Errorf("Untouched cell should keep default color, got %v", c.Color)
	}

	s.FillRect(NewRect(0, 0, 2, 1), '~', ColorBlue)
	if c := s.GetCell(1, 0); c.Rune != '~' || c.Color != ColorBlue {
		t.Errorf("FillRect cell = %+v, expected '~' in blue", c)
	}

	s.Clear()
	if c := s.GetCell(1, 1); c != blankCell {
		t.Errorf("Clear should reset colors, got %+v", c)
	}
}

func TestScreenBoxAndLines(t *testing.T) {
	s := NewScreen(8, 5)
	s.DrawBox(NewRect(0, 0, 6, 4))
	s.DrawHLine(0, 4, 8, '═')

	expected := []string{
		"┌────┐  ",
		"│    │  ",
		"│    │  ",
		"└────┘  ",
		"════════",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawTextColored(0, 0, "Score", ColorYellow)

	s.Resize(4, 2)
	if row := s.Row(0); row != "Scor" {
		t.Errorf("After shrink Row(0) = %q, expected \"Scor\"", row)
	}

	s.Resize(8, 3)
	if !strings.HasPrefix(s.Row(0), "Scor") {
		t.Errorf("After grow Row(0) = %q, expected prefix \"Scor\"", s.Row(0))
	}
	if c := s.GetCell(0, 0); c.Color != ColorYellow {
		t.Errorf("Resize should keep colors, got %v", c.Color)
	}
	if s.String() != "Scor    \n        \n        " {
		t.Errorf("String() = %q", s.String())
	}
}
