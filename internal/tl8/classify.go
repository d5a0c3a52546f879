package tl8

import (
	"strings"
	"unicode"
)

type Class int

const (
	Structural Class = iota
	Wrappable
)

func (c Class) String() string {
	switch c {
	case Structural:
		return "Structural"
	case Wrappable:
		return "Wrappable"
	default:
		return "Unknown"
	}
}

// Classify decides whether line is translatable prose. The rules are checked
// in order and the first match wins.
//
// A line starting with a command is kept verbatim even when prose follows
// the command on the same line.
func (c Config) Classify(line string) Class {
	trimmed := strings.TrimSpace(line)
	left := strings.TrimLeftFunc(line, unicode.IsSpace)
	switch {
	case trimmed == "":
		return Structural
	case commandRe.MatchString(trimmed):
		return Structural
	case strings.HasPrefix(left, "%"):
		return Structural
	case c.onlyBraces(line):
		return Structural
	case c.verbatimBoundary(left):
		return Structural
	}
	return Wrappable
}

func (c Config) onlyBraces(line string) bool {
	if c.OnlyBraces == nil {
		return false
	}
	return c.OnlyBraces.MatchString(line)
}

// verbatimBoundary only looks at the line itself: the body of a verbatim
// environment is not recognized and is classified like any other line.
func (c Config) verbatimBoundary(left string) bool {
	for _, marker := range c.VerbatimMarkers {
		if marker != "" && strings.HasPrefix(left, marker) {
			return true
		}
	}
	return false
}
