// mktable - generate the embedded transliteration table
//
// Usage:
//
//	mktable [-o file] [-z=false]
//
// Reads the transliteration data of github.com/mozillazg/go-unidecode and writes
// it in tablefile format, gzip-compressed unless -z=false is given. Called by
// `go generate` in package tables.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sort"

	"github.com/klauspost/compress/gzip"
	"github.com/mozillazg/go-unidecode/table"
	"github.com/npillmayer/unidecode/blocks"
	"github.com/npillmayer/unidecode/tablefile"
)

const sourceModule = "github.com/mozillazg/go-unidecode"

func main() {
	out := flag.String("o", "", "output file (default stdout)")
	compress := flag.Bool("z", true, "gzip-compress the output")
	flag.Parse()
	if err := run(*out, *compress); err != nil {
		fmt.Fprintf(os.Stderr, "mktable: %v\n", err)
		os.Exit(1)
	}
}

func run(out string, compress bool) error {
	t, err := referenceTable()
	if err != nil {
		return err
	}
	if out == "" {
		return emit(os.Stdout, t, compress)
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err = emit(f, t, compress); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// emit writes t to w, gzip-compressed if compress is set.
func emit(w io.Writer, t *blocks.Table, compress bool) error {
	if !compress {
		return write(w, t)
	}
	zw, err := gzip.NewWriterLevel(w, gzip.BestCompression)
	if err != nil {
		return err
	}
	if err = write(zw, t); err != nil {
		return err
	}
	return zw.Close()
}

// referenceTable collects the blocks of the reference data into a table.
// Building the table validates every entry.
func referenceTable() (*blocks.Table, error) {
	ids := make([]int, 0, len(table.Tables))
	for id := range table.Tables {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	b := blocks.NewBuilder("reference")
	for _, id := range ids {
		if err := b.SetBlock(id, table.Tables[rune(id)]); err != nil {
			return nil, err
		}
	}
	return b.Freeze(), nil
}

func write(w io.Writer, t *blocks.Table) error {
	tw := tablefile.NewWriter(w)
	if err := tw.WriteHeader(sourceModule + " " + sourceVersion()); err != nil {
		return err
	}
	if err := tw.WriteTable(t); err != nil {
		return err
	}
	return tw.Flush()
}

// sourceVersion finds the version of the reference module from the build info.
func sourceVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			if dep.Path == sourceModule {
				return dep.Version
			}
		}
	}
	return "(devel)"
}
