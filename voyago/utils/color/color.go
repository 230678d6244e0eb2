package color

import (
	"github.com/fatih/color"
)

// Theme selects the terminal palette. It is passed explicitly to the
// renderer instead of living in mutable package state.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type Palette struct {
	prompt  *color.Color
	bot     *color.Color
	info    *color.Color
	warning *color.Color
	errc    *color.Color
}

func NewPalette(theme Theme) *Palette {
	if theme == ThemeLight {
		return &Palette{
			prompt:  color.New(color.FgBlue, color.Bold),
			bot:     color.New(color.FgBlack),
			info:    color.New(color.FgMagenta),
			warning: color.New(color.FgRed),
			errc:    color.New(color.FgRed, color.Bold),
		}
	}
	return &Palette{
		prompt:  color.New(color.FgCyan, color.Bold),
		bot:     color.New(color.FgHiYellow),
		info:    color.New(color.FgGreen),
		warning: color.New(color.FgYellow, color.Bold),
		errc:    color.New(color.FgRed, color.Bold),
	}
}

func (p *Palette) Prompt(s string) string {
	return p.prompt.Sprint(s)
}

func (p *Palette) Bot(s string) string {
	return p.bot.Sprint(s)
}

func (p *Palette) Info(s string) string {
	return p.info.Sprint(s)
}

func (p *Palette) Warning(s string) string {
	return p.warning.Sprint(s)
}

func (p *Palette) Error(s string) string {
	return p.errc.Sprint(s)
}
