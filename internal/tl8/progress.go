package tl8

import (
	"strings"
	"unicode"
)

// Progress counts wrapper macros in a prepared file.
type Progress struct {
	Total   int
	Pending int
}

func (p Progress) Translated() int { return p.Total - p.Pending }

func (p *Progress) Add(o Progress) {
	p.Total += o.Total
	p.Pending += o.Pending
}

// ScanProgress counts the lines of a prepared file that hold a wrapper macro
// and how many of those still have an empty translation argument.
func ScanProgress(source []byte, macro string) Progress {
	var p Progress
	prefix := `\` + macro + "{"
	for _, line := range Lines(Decode(source)) {
		line = strings.TrimLeftFunc(line, unicode.IsSpace)
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		rest := line[len(prefix)-1:]
		end := closingBrace(rest)
		if end < 0 {
			continue
		}
		p.Total++
		rest = rest[end+1:]
		if !strings.HasPrefix(rest, "{") {
			// \Trans{...} without a second group yet.
			p.Pending++
			continue
		}
		end = closingBrace(rest)
		if end < 0 {
			continue
		}
		if strings.TrimSpace(rest[1:end]) == "" {
			p.Pending++
		}
	}
	return p
}

// closingBrace returns the index of the brace closing the group s starts
// with, or -1. Escaped braces do not count.
func closingBrace(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
