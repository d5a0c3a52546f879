package tl8

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScanProgress(t *testing.T) {
	source := []byte(`\chapter{Intro}
% EN: Hello world.
\Trans{Hello world.}{}
\Trans{Good {\em day} to you.}{Guten Tag.}
  \Trans{Escaped \} brace.}{ }
% EN: \Trans{commented}{}
\Trans{Unfinished}
\Trans{Spans lines.}{Erste Zeile,
zweite Zeile.}
\Translate{other macro}{}
`)
	got := ScanProgress(source, DefaultMacro)
	want := Progress{Total: 5, Pending: 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected progress: diff (-want +got):\n%s", diff)
	}
	if got, want := got.Translated(), 2; got != want {
		t.Errorf("Translated() = %d, want %d", got, want)
	}
}

func TestScanProgressPrepared(t *testing.T) {
	prepared := Transform([]byte("One.\nTwo\nlines.\n\\section{S}\nThree.\n"))
	got := ScanProgress(prepared, DefaultMacro)
	want := Progress{Total: 3, Pending: 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected progress: diff (-want +got):\n%s", diff)
	}
}

func TestReport(t *testing.T) {
	files := []FileProgress{
		{Path: "chapters_cn/ch01.tex", Progress: Progress{Total: 4, Pending: 1}},
		{Path: "chapters_cn/ch02.tex", Progress: Progress{Total: 2, Pending: 2}},
	}
	var buf bytes.Buffer
	if err := WriteReport(&buf, files); err != nil {
		t.Fatal(err)
	}
	want := `| file | total | translated | pending |
|------|------:|-----------:|--------:|
| ch01.tex | 4 | 3 | 1 |
| ch02.tex | 2 | 0 | 2 |
| **total** | 6 | 3 | 3 |
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("unexpected report: diff (-want +got):\n%s", diff)
	}

	var formatted bytes.Buffer
	if err := FormatReport(&formatted, buf.Bytes()); err != nil {
		t.Fatal(err)
	}
	wantRows := [][]string{
		{"file", "total", "translated", "pending"},
		{"ch01.tex", "4", "3", "1"},
		{"ch02.tex", "2", "0", "2"},
		{"**total**", "6", "3", "3"},
	}
	if diff := cmp.Diff(wantRows, tableRows(t, formatted.String())); diff != "" {
		t.Errorf("unexpected formatted rows: diff (-want +got):\n%s", diff)
	}

	var html bytes.Buffer
	if err := RenderReport(&html, buf.Bytes()); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<table>", "<td>ch01.tex</td>", "<strong>total</strong>"} {
		if !strings.Contains(html.String(), want) {
			t.Errorf("HTML report does not contain %q:\n%s", want, html.String())
		}
	}
}

// tableRows returns the cells of a Markdown table, skipping the delimiter
// row, and fails unless every row has the same width.
func tableRows(t *testing.T, md string) [][]string {
	t.Helper()
	var rows [][]string
	width := -1
	for _, line := range strings.Split(strings.TrimSpace(md), "\n") {
		line = strings.TrimRight(line, " ")
		if width == -1 {
			width = len(line)
		} else if len(line) != width {
			t.Errorf("table not aligned: %q has width %d, want %d\n%s", line, len(line), width, md)
		}
		if strings.Trim(line, "|-: ") == "" {
			continue
		}
		var cells []string
		for _, cell := range strings.Split(strings.Trim(line, "|"), "|") {
			cells = append(cells, strings.TrimSpace(cell))
		}
		rows = append(rows, cells)
	}
	return rows
}
