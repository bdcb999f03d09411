package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Tones of command output. Each checks color.NoColor when called.
var (
	formatHeader = color.New(color.Bold).SprintFunc()
	formatOK     = color.New(color.FgGreen).SprintFunc()
	formatWarn   = color.New(color.FgYellow).SprintFunc()
	formatMuted  = color.New(color.FgWhite, color.Faint).SprintFunc()
)

const fallbackWidth = 80

// termWidth returns the width of stdout, or 80 when it is not a terminal.
func termWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackWidth
}

// DisableColor turns off color in both plain output and lipgloss tables.
func DisableColor() {
	color.NoColor = true
	lipgloss.SetColorProfile(termenv.Ascii)
}
