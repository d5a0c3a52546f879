// tl8-prepare copies a directory of LaTeX chapters, wrapping prose into
// \Trans{EN}{} so that the translation can be filled in by hand.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"textl8/internal/tl8"

	"github.com/google/renameio"
	"golang.org/x/sync/errgroup"
)

func prepare1(src, dst string, cfg tl8.Config) error {
	source, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return renameio.WriteFile(dst, cfg.Transform(source), 0644)
}

// sources returns the files in dir with extension ext, sorted by name.
func sources(dir, ext string) ([]string, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	// filepath.Glob returns matches in lexical order.
	return filepath.Glob(filepath.Join(dir, "*"+ext))
}

// prepare stops scheduling files once one of them fails.
func prepare(ctx context.Context, srcDir, dstDir, ext string, jobs int, cfg tl8.Config) error {
	fns, err := sources(srcDir, ext)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return err
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)
	for _, fn := range fns {
		if gctx.Err() != nil {
			break
		}
		dst := filepath.Join(dstDir, filepath.Base(fn))
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := prepare1(fn, dst, cfg); err != nil {
				return fmt.Errorf("%s: %w", fn, err)
			}
			log.Printf("Prepared %s", dst)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func splitMarkers(s string) []string {
	var markers []string
	for _, m := range strings.Split(s, ",") {
		if m = strings.TrimSpace(m); m != "" {
			markers = append(markers, m)
		}
	}
	return markers
}

func tl8prepare() error {
	var (
		source = flag.String("source",
			"chapters_new",
			"directory with the original chapters")
		target = flag.String("target",
			"chapters_cn",
			"output directory for translation-ready files (created if missing)")
		ext = flag.String("ext",
			".tex",
			"extension of the chapter files to process")
		macro = flag.String("macro",
			tl8.DefaultMacro,
			"name of the wrapper macro")
		verbatim = flag.String("verbatim",
			strings.Join(tl8.DefaultVerbatimMarkers, ","),
			"comma-separated boundary lines of environments which are never wrapped")
		commentContinuations = flag.Bool("comment_continuations",
			false,
			"prefix every continuation line of a multi-line EN annotation with %")
		jobs = flag.Int("jobs",
			runtime.NumCPU(),
			"number of files to process in parallel")
	)
	flag.Parse()
	if flag.NArg() != 0 {
		return fmt.Errorf("syntax: %s [-source <dir>] [-target <dir>]", filepath.Base(os.Args[0]))
	}
	if *jobs < 1 {
		return fmt.Errorf("-jobs must be at least 1")
	}

	cfg := tl8.DefaultConfig()
	cfg.Macro = *macro
	cfg.VerbatimMarkers = splitMarkers(*verbatim)
	cfg.CommentContinuations = *commentContinuations
	if err := prepare(context.Background(), *source, *target, *ext, *jobs, cfg); err != nil {
		return err
	}
	log.Printf(`Done. Now edit each \%s{EN}{ZH} to add the translation.`, cfg.Macro)
	return nil
}

func main() {
	if err := tl8prepare(); err != nil {
		log.Fatal(err)
	}
}
