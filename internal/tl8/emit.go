package tl8

import "strings"

// Emit renders a block. Structural lines are returned unchanged. A paragraph
// becomes an annotation carrying the source text followed by the wrapper
// macro with an empty translation argument:
//
//	% EN: Hello world.
//	\Trans{Hello world.}{}
//
// Paragraphs merged from more than one line are followed by a blank line.
func (c Config) Emit(b Block) []string {
	if b.Class == Structural {
		return append([]string(nil), b.Lines...)
	}
	en := b.Text()
	out := []string{c.annotation(en), c.Wrap(en)}
	if len(b.Lines) > 1 {
		out = append(out, "")
	}
	return out
}

// Wrap returns the wrapper macro around the whitespace-collapsed text.
func (c Config) Wrap(en string) string {
	return `\` + c.Macro + "{" + Flatten(en) + "}{}"
}

// Flatten collapses every run of whitespace, newlines included, into a single
// space and trims the result.
func Flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// annotation may contain newlines when the paragraph spans several lines.
func (c Config) annotation(en string) string {
	en = strings.ReplaceAll(en, "}", " }")
	if c.CommentContinuations {
		en = strings.ReplaceAll(en, "\n", "\n% ")
	}
	return c.AnnotationPrefix + en
}
