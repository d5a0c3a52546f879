package tl8

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/Kunde21/markdownfmt/v2/markdown"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

func NewGoldmark() goldmark.Markdown {
	return goldmark.New(
		// GFM is GitHub Flavored Markdown, which we need for the report
		// table.
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
}

type FileProgress struct {
	Path string
	Progress
}

// WriteReport writes a Markdown table with one row per file and a total row.
func WriteReport(w io.Writer, files []FileProgress) error {
	var buf bytes.Buffer
	var total Progress
	fmt.Fprintf(&buf, "| file | total | translated | pending |\n")
	fmt.Fprintf(&buf, "|------|------:|-----------:|--------:|\n")
	for _, f := range files {
		total.Add(f.Progress)
		fmt.Fprintf(&buf, "| %s | %d | %d | %d |\n", filepath.Base(f.Path), f.Total, f.Translated(), f.Pending)
	}
	fmt.Fprintf(&buf, "| **total** | %d | %d | %d |\n", total.Total, total.Translated(), total.Pending)
	_, err := w.Write(buf.Bytes())
	return err
}

// RenderReport converts a Markdown report to HTML.
func RenderReport(w io.Writer, md []byte) error {
	return NewGoldmark().Convert(md, w)
}

// FormatReport re-renders a Markdown report as Markdown with the table
// columns padded to equal width.
func FormatReport(w io.Writer, md []byte) error {
	fmtr := goldmark.New(
		goldmark.WithRenderer(markdown.NewRenderer()),
		goldmark.WithExtensions(extension.GFM),
	)
	return fmtr.Convert(md, w)
}
