// Package tl8 prepares LaTeX chapter files for manual translation: prose is
// wrapped into a two-argument macro (source, translation) while markup is
// passed through unchanged.
package tl8

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultMacro is the wrapper macro name. Downstream main files redefine
	// \Trans to switch between source and translation rendering.
	DefaultMacro = "Trans"

	DefaultAnnotationPrefix = "% EN: "

	// OnlyBracesPattern matches lines made of braces, backslashes and
	// whitespace. \s alone is ASCII-only; \pZ adds ideographic and other
	// Unicode spaces.
	OnlyBracesPattern = `^[{}\\\s\v\x{85}\pZ]*$`
)

// DefaultVerbatimMarkers are the boundary lines of environments whose
// boundaries must never be wrapped.
var DefaultVerbatimMarkers = []string{`\begin{code}`, `\end{code}`}

var commandRe = regexp.MustCompile(`^\\[a-zA-Z@]+`)

type Config struct {
	Macro            string
	AnnotationPrefix string
	VerbatimMarkers  []string
	OnlyBraces       *regexp.Regexp

	// CommentContinuations prefixes every continuation line of a
	// multi-line annotation with "% ". When false, continuation lines are
	// emitted bare, which is what existing prepared files contain.
	CommentContinuations bool
}

func DefaultConfig() Config {
	return Config{
		Macro:            DefaultMacro,
		AnnotationPrefix: DefaultAnnotationPrefix,
		VerbatimMarkers:  append([]string(nil), DefaultVerbatimMarkers...),
		OnlyBraces:       regexp.MustCompile(OnlyBracesPattern),
	}
}

// Decode drops invalid UTF-8 sequences instead of failing.
func Decode(source []byte) string {
	return strings.ToValidUTF8(string(source), "")
}

// Lines splits text into lines at \n, \r\n, \r, \v, \f, \x1c-\x1e, U+0085,
// U+2028 and U+2029. A trailing line break does not yield an extra empty
// line.
func Lines(text string) []string {
	var lines []string
	start := 0
	for i, r := range text {
		if !lineBreak(r) {
			continue
		}
		if r == '\n' && i > 0 && text[i-1] == '\r' {
			// second half of \r\n, already split at \r
			start = i + 1
			continue
		}
		lines = append(lines, text[start:i])
		start = i + utf8.RuneLen(r)
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func lineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// Transform returns the translation-ready form of a chapter file. The result
// always ends with exactly one newline.
func (c Config) Transform(source []byte) []byte {
	var out []string
	for _, b := range c.Paragraphs(Lines(Decode(source))) {
		out = append(out, c.Emit(b)...)
	}
	return []byte(strings.Join(out, "\n") + "\n")
}

// Transform is Config.Transform with DefaultConfig.
func Transform(source []byte) []byte {
	return DefaultConfig().Transform(source)
}
