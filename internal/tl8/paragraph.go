package tl8

import "strings"

// Block is either exactly one Structural line or one or more consecutive
// Wrappable lines forming a paragraph.
type Block struct {
	Class Class
	Lines []string
}

// Text returns the block's lines joined by newlines.
func (b Block) Text() string {
	return strings.Join(b.Lines, "\n")
}

type assemblerState int

const (
	idle assemblerState = iota
	accumulating
)

// Assembler merges consecutive Wrappable lines into paragraph blocks. Feed
// lines in order with Add and collect the result with Finish.
type Assembler struct {
	state   assemblerState
	pending []string
	blocks  []Block
}

func (a *Assembler) Accumulating() bool { return a.state == accumulating }

func (a *Assembler) Add(line string, class Class) {
	if class == Wrappable {
		a.pending = append(a.pending, line)
		a.state = accumulating
		return
	}
	a.flush()
	a.blocks = append(a.blocks, Block{Class: Structural, Lines: []string{line}})
}

func (a *Assembler) flush() {
	if a.state != accumulating {
		return
	}
	a.blocks = append(a.blocks, Block{Class: Wrappable, Lines: a.pending})
	a.pending = nil
	a.state = idle
}

// Finish flushes the pending paragraph, if any, and returns all blocks. The
// Assembler is reset afterwards.
func (a *Assembler) Finish() []Block {
	a.flush()
	blocks := a.blocks
	a.blocks = nil
	return blocks
}

// Paragraphs classifies lines and groups them into blocks. Concatenating the
// lines of all returned blocks yields lines again.
func (c Config) Paragraphs(lines []string) []Block {
	var a Assembler
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\n")
		a.Add(line, c.Classify(line))
	}
	return a.Finish()
}
