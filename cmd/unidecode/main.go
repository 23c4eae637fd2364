// unidecode - transliterate Unicode text to ASCII
//
// Usage:
//
//	unidecode [flags] [file...]
//
// Reads the given files (or stdin) line by line and writes the ASCII
// transliteration of every line to stdout. Files are processed concurrently,
// output appears in argument order.
//
// Flags:
//
//	-slug            print URL-safe slugs instead of transliterations
//	-explain         print the substitution of every code point
//	-lenient         drop malformed UTF-8 instead of failing
//	-overrides file  apply single code point overrides ("U+00E4 \"ae\"" per line)
//	-j n             number of files processed in parallel
//	-trace level     trace level: Error, Info or Debug
//
// The exit code is 1 if any input is not well-formed UTF-8 (unless -lenient is
// given) or cannot be read.
package main

import (
	"bufio"
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/npillmayer/unidecode"
	"github.com/npillmayer/unidecode/slug"
	"github.com/npillmayer/unidecode/tablefile"
	"github.com/npillmayer/unidecode/tables"
	"golang.org/x/sync/errgroup"
)

type options struct {
	slug      bool
	explain   bool
	lenient   bool
	overrides string
	jobs      int
	trace     string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("unidecode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.slug, "slug", false, "print URL-safe slugs")
	fs.BoolVar(&opts.explain, "explain", false, "print the substitution of every code point")
	fs.BoolVar(&opts.lenient, "lenient", false, "drop malformed UTF-8 instead of failing")
	fs.StringVar(&opts.overrides, "overrides", "", "file with code point overrides")
	fs.IntVar(&opts.jobs, "j", runtime.GOMAXPROCS(0), "number of files processed in parallel")
	fs.StringVar(&opts.trace, "trace", "Error", "trace level (Error, Info, Debug)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if opts.slug && opts.explain {
		fmt.Fprintln(stderr, "unidecode: -slug and -explain are mutually exclusive")
		return 2
	}
	setupTracing(opts.trace)
	p, err := newProcessor(opts)
	if err != nil {
		fmt.Fprintf(stderr, "unidecode: %v\n", err)
		return 1
	}
	if fs.NArg() == 0 {
		w := bufio.NewWriter(stdout)
		err = p.process(context.Background(), "<stdin>", stdin, w)
		w.Flush()
	} else {
		err = processFiles(p, fs.Args(), opts.jobs, stdout)
	}
	if err != nil {
		fmt.Fprintf(stderr, "unidecode: %v\n", err)
		return 1
	}
	return 0
}

// processFiles transliterates files concurrently, buffering the output of each
// file, and writes the buffers in argument order. Output stops in front of the
// first file which did not complete.
func processFiles(p *processor, files []string, jobs int, stdout io.Writer) error {
	results := make([]bytes.Buffer, len(files))
	errs := make([]error, len(files))
	g, ctx := errgroup.WithContext(context.Background())
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, name := range files {
		g.Go(func() error {
			errs[i] = processFile(ctx, p, name, &results[i])
			return errs[i]
		})
	}
	err := g.Wait()
	for i := range results {
		if errs[i] != nil {
			break
		}
		if _, werr := stdout.Write(results[i].Bytes()); werr != nil {
			if err == nil {
				err = werr
			}
			break
		}
	}
	return err
}

func processFile(ctx context.Context, p *processor, name string, w io.Writer) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return p.process(ctx, name, f, w)
}

type processor struct {
	opts options
	tr   *unidecode.Transliterator
	slug *slug.Slugifier
}

func newProcessor(opts options) (*processor, error) {
	table := tables.Default()
	if opts.overrides != "" {
		f, err := os.Open(opts.overrides)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if table, err = tablefile.ApplyOverrides(table, tables.Name+"+overrides", f); err != nil {
			return nil, fmt.Errorf("%s: %w", opts.overrides, err)
		}
	}
	trOpts := []unidecode.Option{unidecode.WithTable(table)}
	if opts.lenient {
		trOpts = append(trOpts, unidecode.SkipMalformed(""))
	}
	p := &processor{opts: opts, tr: unidecode.New(trOpts...)}
	if opts.slug {
		p.slug = slug.New(slug.WithTransliterator(p.tr))
	}
	return p, nil
}

// process handles the input of one file, line by line. Errors carry the name
// of the input and the line number.
func (p *processor) process(ctx context.Context, name string, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineno := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineno++
		if err := p.line(scanner.Text(), w); err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (p *processor) line(text string, w io.Writer) error {
	switch {
	case p.slug != nil:
		s, err := p.slug.Slugify(text)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	case p.opts.explain:
		subst, err := p.tr.Explain(text)
		if err != nil {
			return err
		}
		for _, s := range subst {
			if _, err = fmt.Fprintf(w, "%4d  %s\n", s.Offset, s); err != nil {
				return err
			}
		}
		return nil
	}
	out, err := p.tr.Decode(text)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
