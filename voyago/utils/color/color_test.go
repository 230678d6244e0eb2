package color

import (
	"strings"
	"testing"
)

func TestPaletteRendersText(t *testing.T) {
	for _, theme := range []Theme{ThemeDark, ThemeLight} {
		p := NewPalette(theme)
		for name, fn := range map[string]func(string) string{
			"Prompt":  p.Prompt,
			"Bot":     p.Bot,
			"Info":    p.Info,
			"Warning": p.Warning,
			"Error":   p.Error,
		} {
			if got := fn("voyago"); !strings.Contains(got, "voyago") {
				t.Errorf("%s/%s: text dropped from styled output: %q", theme, name, got)
			}
		}
	}
}
