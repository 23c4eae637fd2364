package tablefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/unidecode/blocks"
)

// OverrideReader streams single code point substitutions of the form
//
//	U+00E4 "ae"
//
// Empty lines and lines starting with '#' are ignored.
type OverrideReader struct {
	scanner *bufio.Scanner
	line    int
}

func NewOverrideReader(reader io.Reader) *OverrideReader {
	return &OverrideReader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next override as (code point, entry).
// It returns io.EOF when exhausted.
func (r *OverrideReader) Next() (rune, string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cpField, quoted, found := strings.Cut(line, " ")
		if !found || !strings.HasPrefix(cpField, "U+") {
			return 0, "", &SyntaxError{Line: r.line, Msg: fmt.Sprintf("expected override, have %q", line)}
		}
		cp, err := strconv.ParseUint(cpField[2:], 16, 32)
		if err != nil {
			return 0, "", &SyntaxError{Line: r.line, Msg: "invalid code point", Err: err}
		}
		entry, err := strconv.Unquote(strings.TrimSpace(quoted))
		if err != nil {
			return 0, "", &SyntaxError{Line: r.line, Msg: "invalid entry", Err: err}
		}
		return rune(cp), entry, nil
	}
	if err := r.scanner.Err(); err != nil {
		return 0, "", err
	}
	return 0, "", io.EOF
}

// LoadOverrides reads all overrides from reader. Later lines win over earlier
// ones for the same code point.
func LoadOverrides(reader io.Reader) (map[rune]string, error) {
	overrides := make(map[rune]string)
	r := NewOverrideReader(reader)
	for {
		cp, entry, err := r.Next()
		if err == io.EOF {
			return overrides, nil
		} else if err != nil {
			return nil, err
		}
		overrides[cp] = entry
	}
}

// ApplyOverrides reads overrides and returns a new table called name, which is
// base with the overrides applied. base is not modified.
//
// Example usage:
//
//	f, _ := os.Open("path/to/de.overrides")
//	defer f.Close()
//
//	german, err := tablefile.ApplyOverrides(tables.Default(), "de", f)
func ApplyOverrides(base *blocks.Table, name string, reader io.Reader) (*blocks.Table, error) {
	overrides, err := LoadOverrides(reader)
	if err != nil {
		return nil, err
	}
	t, err := base.WithOverrides(name, overrides)
	if err != nil {
		return nil, err
	}
	tracer().Infof("table %q: %d overrides applied to %q", name, len(overrides), base.Name())
	return t, nil
}
