package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

func mustBoard(t *testing.T, rows [][]int) engine.Board {
	t.Helper()
	b, err := engine.BoardFromRows(rows)
	if err != nil {
		t.Fatalf("BoardFromRows() failed: %v", err)
	}
	return b
}

func TestPlain(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 0},
		{0, 16},
	})

	want := strings.Join([]string{
		"┌──────┬──────┐",
		"│  2   │      │",
		"├──────┼──────┤",
		"│      │  16  │",
		"└──────┴──────┘",
	}, "\n")

	if got := Plain(b); got != want {
		t.Errorf("Plain() =\n%s\nwant\n%s", got, want)
	}
}

func TestLayoutFor(t *testing.T) {
	tests := []struct {
		name      string
		rows      [][]int
		wantInner int
		wantW     int
		wantH     int
	}{
		{"empty 4x4", [][]int{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}, 6, 29, 9},
		{"2048 fits default", [][]int{{2048, 0}, {0, 0}}, 6, 15, 5},
		{"wide tile grows cells", [][]int{{131072, 0}, {0, 0}}, 8, 19, 5},
		{"3x3", [][]int{{2, 0, 0}, {0, 0, 0}, {0, 0, 0}}, 6, 22, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := LayoutFor(mustBoard(t, tt.rows))
			if l.Inner != tt.wantInner || l.Width != tt.wantW || l.Height != tt.wantH {
				t.Errorf("LayoutFor() = %+v, want inner=%d width=%d height=%d", l, tt.wantInner, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestPlainDimensions(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 4, 8, 16, 32},
		{64, 128, 256, 512, 1024},
		{2048, 4096, 8192, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 2},
	})
	l := LayoutFor(b)

	lines := strings.Split(Plain(b), "\n")
	if len(lines) != l.Height {
		t.Fatalf("got %d lines, want %d", len(lines), l.Height)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != l.Width {
			t.Errorf("line %d width = %d, want %d", i, w, l.Width)
		}
	}
	if !strings.Contains(Plain(b), "8192") {
		t.Error("Plain() should contain every tile value")
	}
}

func TestBoardMatchesPlainLayout(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 4, 0},
		{0, 64, 0},
		{0, 0, 1024},
	})

	styled := strings.Split(Board(b), "\n")
	plain := strings.Split(Plain(b), "\n")
	if len(styled) != len(plain) {
		t.Fatalf("Board() has %d lines, Plain() has %d", len(styled), len(plain))
	}
	for i := range plain {
		if lipgloss.Width(styled[i]) != lipgloss.Width(plain[i]) {
			t.Errorf("line %d: styled width %d, plain width %d", i, lipgloss.Width(styled[i]), lipgloss.Width(plain[i]))
		}
	}
}

func TestToneFor(t *testing.T) {
	tests := []struct {
		value int
		want  Tone
	}{
		{0, 0},
		{2, 1},
		{4, 2},
		{2048, 11},
		{65536, 16},
	}

	for _, tt := range tests {
		if got := toneFor(tt.value); got != tt.want {
			t.Errorf("toneFor(%d) = %d, want %d", tt.value, got, tt.want)
		}
	}

	// Tones past the palette reuse its last style.
	_ = styleFor(toneFor(1 << 20))
}

func TestCanvasClipsOutOfBounds(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(-1, 0, 'x', 0)
	c.Set(3, 0, 'x', 0)
	c.Set(0, 2, 'x', 0)
	c.DrawText(1, 1, "abcdef", 0)

	want := "   \n ab"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := c.Get(5, 5); got != ' ' {
		t.Errorf("Get() out of bounds = %q, want space", got)
	}
}

func TestCanvasStyledWithoutStyles(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawText(0, 0, "ab", 1)
	c.DrawText(2, 0, "cd", 2)

	got := c.Styled(func(Tone) lipgloss.Style { return lipgloss.NewStyle() })
	if got != "abcd" {
		t.Errorf("Styled() = %q, want %q", got, "abcd")
	}
}

func TestHUD(t *testing.T) {
	ongoing := HUD(120, 4000, engine.StatusOngoing)
	if !strings.Contains(ongoing, "120") || !strings.Contains(ongoing, "4000") {
		t.Errorf("HUD() = %q, want score and best", ongoing)
	}
	if strings.Contains(ongoing, "GAME OVER") {
		t.Error("ongoing HUD should not announce game over")
	}

	over := HUD(120, 4000, engine.StatusNoMovesAvailable)
	if !strings.Contains(over, "GAME OVER") || !strings.Contains(over, "score 120") {
		t.Errorf("HUD() = %q, want game over line with score", over)
	}
}

func TestSummary(t *testing.T) {
	want := "score 2048  max tile 256  moves 190"
	if got := Summary(2048, 256, 190); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}
