// tl8-status reports how many \Trans{EN}{ZH} macros in prepared chapters
// still lack a translation.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"textl8/internal/tl8"

	"github.com/google/renameio"
)

func status(fns []string, macro string) ([]tl8.FileProgress, error) {
	files := make([]tl8.FileProgress, 0, len(fns))
	for _, fn := range fns {
		b, err := os.ReadFile(fn)
		if err != nil {
			return nil, err
		}
		files = append(files, tl8.FileProgress{
			Path:     fn,
			Progress: tl8.ScanProgress(b, macro),
		})
	}
	return files, nil
}

func writeHTML(outfn string, markdown []byte) error {
	out, err := renameio.TempFile("", outfn)
	if err != nil {
		return err
	}
	defer out.Cleanup()

	if err := tl8.RenderReport(out, markdown); err != nil {
		return err
	}

	return out.CloseAtomicallyReplace()
}

func report(w io.Writer, fns []string, macro, htmlPath string, check bool) error {
	files, err := status(fns, macro)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := tl8.WriteReport(&buf, files); err != nil {
		return err
	}
	if err := tl8.FormatReport(w, buf.Bytes()); err != nil {
		return err
	}
	if htmlPath != "" {
		if err := writeHTML(htmlPath, buf.Bytes()); err != nil {
			return err
		}
	}
	if check {
		var total tl8.Progress
		for _, f := range files {
			total.Add(f.Progress)
		}
		if total.Pending > 0 {
			return fmt.Errorf("%d of %d paragraphs are not translated yet", total.Pending, total.Total)
		}
	}
	return nil
}

func tl8status() error {
	var (
		dir = flag.String("dir",
			"chapters_cn",
			"directory with prepared chapters (ignored when files are given as arguments)")
		ext = flag.String("ext",
			".tex",
			"extension of the chapter files")
		macro = flag.String("macro",
			tl8.DefaultMacro,
			"name of the wrapper macro")
		htmlPath = flag.String("html",
			"",
			"if non-empty, also write the report as HTML to this path")
		check = flag.Bool("check",
			false,
			"exit with an error if any paragraph is not translated yet")
	)
	flag.Parse()

	fns := flag.Args()
	if len(fns) == 0 {
		var err error
		fns, err = filepath.Glob(filepath.Join(*dir, "*"+*ext))
		if err != nil {
			return err
		}
		if len(fns) == 0 {
			return fmt.Errorf("no %s files found in %s", *ext, *dir)
		}
	}

	return report(os.Stdout, fns, *macro, *htmlPath, *check)
}

func main() {
	if err := tl8status(); err != nil {
		log.Fatal(err)
	}
}
