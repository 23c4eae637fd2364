/*
Package tables provides the transliteration table shipped with this module.

The table is derived from the data of github.com/mozillazg/go-unidecode, which
in turn descends from Sean M. Burke's Text::Unidecode. It covers 190 blocks with
48,597 entries and is embedded gzip-compressed in the table file format of
package tablefile. Run `go generate` in this directory to re-create it.
*/
package tables

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/unidecode/blocks"
	"github.com/npillmayer/unidecode/tablefile"
)

//go:generate go run ../internal/cmd/mktable -o unidecode.tab.gz

// Name is the name of the shipped table.
const Name = "unidecode"

//go:embed unidecode.tab.gz
var compressed []byte

// Load decompresses and parses the embedded table. Every call creates a new
// table; most clients will want to use Default instead.
func Load() (*blocks.Table, error) {
	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("embedded table %q: %w", Name, err)
	}
	defer zr.Close()
	t, err := tablefile.LoadTable(Name, zr)
	if err != nil {
		return nil, fmt.Errorf("embedded table %q: %w", Name, err)
	}
	return t, nil
}

var loadOnce = sync.OnceValues(Load)

// Default returns the shipped table. It is loaded on first use and shared
// afterwards. Default panics if the embedded data is corrupt.
func Default() *blocks.Table {
	t, err := loadOnce()
	if err != nil {
		panic(err)
	}
	tracer().Debugf("using table %s", t)
	return t
}

// tracer writes to trace with key 'unidecode.tables'
func tracer() tracing.Trace {
	return tracing.Select("unidecode.tables")
}
