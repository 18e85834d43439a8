package theme

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

var theme = catppuccin.Mocha

func Red() lipgloss.Color      { return lipgloss.Color(theme.Red().Hex) }
func Peach() lipgloss.Color    { return lipgloss.Color(theme.Peach().Hex) }
func Yellow() lipgloss.Color   { return lipgloss.Color(theme.Yellow().Hex) }
func Green() lipgloss.Color    { return lipgloss.Color(theme.Green().Hex) }
func Sky() lipgloss.Color      { return lipgloss.Color(theme.Sky().Hex) }
func Blue() lipgloss.Color     { return lipgloss.Color(theme.Blue().Hex) }
func Lavender() lipgloss.Color { return lipgloss.Color(theme.Lavender().Hex) }
func Text() lipgloss.Color     { return lipgloss.Color(theme.Text().Hex) }
func Subtext1() lipgloss.Color { return lipgloss.Color(theme.Subtext1().Hex) }
func Overlay0() lipgloss.Color { return lipgloss.Color(theme.Overlay0().Hex) }
func Surface0() lipgloss.Color { return lipgloss.Color(theme.Surface0().Hex) }
func Mantle() lipgloss.Color   { return lipgloss.Color(theme.Mantle().Hex) }

// StateColor maps artifact states to the pallete.
func StateColor(state string) lipgloss.Color {
	switch state {
	case "ENABLED":
		return Green()
	case "DISABLED":
		return Yellow()
	case "DEPRECATED":
		return Red()
	default:
		return Text()
	}
}
