package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestRender(t *testing.T) {
	base := strings.Repeat(".....\n", 2) + "....."

	tests := []struct {
		name   string
		screen Screen
		want   string
	}{
		{name: "no size yet", screen: Screen{Base: base}, want: "Loading..."},
		{name: "no dialog", screen: Screen{Width: 5, Height: 3, Base: base}, want: base},
		{
			name:   "dialog centered",
			screen: Screen{Width: 5, Height: 3, Base: base, Dialog: "X", DialogBg: lipgloss.Color("")},
			want:   ".....\n..X..\n.....",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ansi.Strip(Render(tt.screen)); got != tt.want {
				t.Fatalf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}
