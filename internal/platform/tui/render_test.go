package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-gorillas/internal/core"
)

func TestPainterPlainOutput(t *testing.T) {
	// A non-terminal writer gets the ASCII profile, so no escapes are emitted
	p := NewPainter(lipgloss.NewRenderer(io.Discard))

	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ANSI(130))
	s.DrawText(0, 1, "plain")

	if got, want := p.Render(s), s.String(); got != want {
		t.Errorf("Render() = %q, expected %q", got, want)
	}
}

func TestPainterStyles(t *testing.T) {
	p := NewPainter(lipgloss.NewRenderer(io.Discard))

	tests := []struct {
		color core.Color
		want  lipgloss.TerminalColor
	}{
		{core.ColorRed, lipgloss.Color("1")},
		{core.ColorGray, lipgloss.Color("245")},
		{core.ANSI(196), lipgloss.Color("196")},
		{core.ANSI(16), lipgloss.Color("16")},
	}

	for _, tc := range tests {
		if got := p.style(tc.color).GetForeground(); got != tc.want {
			t.Errorf("style(%d) foreground = %v, expected %v", tc.color, got, tc.want)
		}
	}

	if _, ok := p.styles[core.ANSI(196)]; !ok {
		t.Error("Styles should be cached after first use")
	}
}

func TestNewPainterDefaultRenderer(t *testing.T) {
	if p := NewPainter(nil); p.renderer != lipgloss.DefaultRenderer() {
		t.Error("NewPainter(nil) should use the default renderer")
	}
}
