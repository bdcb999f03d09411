// Package input parses and completes the TUI command line.
package input

import "strings"

// Command describes a command line entry.
type Command struct {
	Name        string // including the leading slash
	Description string
}

// Matches returns the commands whose name starts with the typed prefix.
// Input that is not a command, or already has arguments, matches nothing.
func Matches(input string, commands []Command) []Command {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, "/") || strings.Contains(trimmed, " ") {
		return nil
	}

	prefix := strings.ToLower(trimmed)
	matches := make([]Command, 0, len(commands))
	for _, cmd := range commands {
		if strings.HasPrefix(strings.ToLower(cmd.Name), prefix) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// Complete returns the first matching command name and whether one exists.
func Complete(input string, commands []Command) (string, bool) {
	matches := Matches(input, commands)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Name, true
}

// Parse splits a submitted line into a lower-cased command name and its
// argument. It reports false when the line is not a command.
func Parse(line string) (name, arg string, ok bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "/") || len(line) == 1 {
		return "", "", false
	}
	name, arg, _ = strings.Cut(line, " ")
	return strings.ToLower(name), strings.TrimSpace(arg), true
}
