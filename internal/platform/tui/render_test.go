package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "hello")
	s.DrawTextColored(0, 1, "2048", core.ColorBrightCyan)
	s.DrawTextColored(5, 1, "16", core.ColorBrightRed)

	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("rendered %d line breaks, want 2", got)
	}
	for _, want := range []string{"hello", "2048", "16"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestStyleFallback(t *testing.T) {
	def := Style(core.ColorDefault).Render("x")
	if got := Style(core.Color(200)).Render("x"); got != def {
		t.Errorf("unknown color rendered %q, want default %q", got, def)
	}
}

func TestEveryColorHasAStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
