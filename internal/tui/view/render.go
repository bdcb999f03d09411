// Package view draws the table editor screen from plain values.
package view

import "github.com/charmbracelet/lipgloss"

// Screen is everything needed to draw one frame.
type Screen struct {
	Width    int
	Height   int
	Base     string
	Dialog   string // centered over Base when not empty
	DialogBg lipgloss.Color
}

// Render composes the frame.
func Render(s Screen) string {
	if s.Width <= 0 || s.Height <= 0 {
		return "Loading..."
	}
	if s.Dialog == "" {
		return s.Base
	}
	return Overlay(s.Base, s.Dialog, s.Width, s.Height, s.DialogBg)
}
