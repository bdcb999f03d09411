package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func containsPlain(s, substr string) bool {
	return strings.Contains(ansi.Strip(s), substr)
}
