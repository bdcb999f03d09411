package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Fill pads every line of content to width and the block to exactly height
// lines, painting the padding with bg. Lines wider than width are kept.
func Fill(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	pad := lipgloss.NewStyle().Background(bg)
	lines := strings.Split(content, "\n")
	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		if gap := width - lipgloss.Width(line); gap > 0 {
			line += pad.Render(strings.Repeat(" ", gap))
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}

// Box places content in a width x height area aligned to the left and to
// vAlign, with bg behind it.
func Box(width, height int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(width, height, lipgloss.Left, vAlign, content,
		lipgloss.WithWhitespaceBackground(bg))
	return Fill(placed, width, height, bg)
}

// Overlay centers box over base within a width x height screen.
func Overlay(base, box string, width, height int, bg lipgloss.Color) string {
	boxW := min(lipgloss.Width(box), width)
	if box == "" || boxW <= 0 {
		return base
	}
	boxLines := strings.Split(box, "\n")
	top := max(0, (height-len(boxLines))/2)
	left := max(0, (width-boxW)/2)

	rows := strings.Split(Fill(base, width, height, lipgloss.Color("")), "\n")
	for i, line := range boxLines {
		y := top + i
		if y >= len(rows) {
			break
		}
		row := rows[y]
		rows[y] = ansi.Cut(row, 0, left) + fitLine(line, boxW, bg) + ansi.Cut(row, left+boxW, width)
	}
	return strings.Join(rows, "\n")
}

// fitLine cuts or pads line to exactly width cells and keeps bg under it.
func fitLine(line string, width int, bg lipgloss.Color) string {
	switch w := lipgloss.Width(line); {
	case w > width:
		line = ansi.Cut(line, 0, width)
	case w < width:
		line += lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", width-w))
	}
	return keepBackground(line, bg) + ansi.ResetStyle
}

// keepBackground re-applies bg after every reset inside line, so styled
// spans in a dialog do not punch holes into its background.
func keepBackground(line string, bg lipgloss.Color) string {
	if bg == "" {
		return line
	}
	seq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(bg))).String()
	return strings.NewReplacer(
		ansi.ResetStyle, ansi.ResetStyle+seq,
		"\x1b[0m", "\x1b[0m"+seq,
		"\x1b[49m", "\x1b[49m"+seq,
	).Replace(line)
}
