package tablefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/unidecode/blocks"
)

// SyntaxError reports a malformed line of a table or override file.
type SyntaxError struct {
	Line int
	Msg  string
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Reader streams blocks from a table file.
type Reader struct {
	scanner    *bufio.Scanner
	identifier string
	line       int
	entries    []string
}

var _ blocks.BlockReader = (*Reader)(nil)

// NewReader creates a block reader for table data in r.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
		entries: make([]string, 0, blocks.BlockSize),
	}
}

// Identifier returns the data source named in a "# source:" comment, if the
// reader has seen one yet.
func (r *Reader) Identifier() string {
	return r.identifier
}

// Next returns the next block as (id, entries).
// It returns io.EOF when exhausted.
// The returned slice is reused by subsequent calls.
func (r *Reader) Next() (int, []string, error) {
	for r.scan() {
		line := r.scanner.Text()
		if strings.HasPrefix(line, sourcePrefix) {
			r.identifier = strings.TrimSpace(line[len(sourcePrefix):])
			continue
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		id, count, err := r.decodeHeader(line)
		if err != nil {
			return 0, nil, err
		}
		if err = r.readEntries(count); err != nil {
			return 0, nil, err
		}
		return id, r.entries, nil
	}
	if err := r.scanner.Err(); err != nil {
		return 0, nil, err
	}
	return 0, nil, io.EOF
}

func (r *Reader) scan() bool {
	if r.scanner.Scan() {
		r.line++
		return true
	}
	return false
}

func (r *Reader) decodeHeader(line string) (id int, count int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 || !strings.HasPrefix(fields[0], "@") {
		return 0, 0, &SyntaxError{Line: r.line, Msg: fmt.Sprintf("expected block header, have %q", line)}
	}
	blockID, err := strconv.ParseUint(fields[0][1:], 16, 16)
	if err != nil || blockID >= blocks.NumBlocks {
		return 0, 0, &SyntaxError{Line: r.line, Msg: "invalid block id", Err: err}
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 0 || n > blocks.BlockSize {
		return 0, 0, &SyntaxError{Line: r.line, Msg: "invalid entry count", Err: err}
	}
	return int(blockID), n, nil
}

func (r *Reader) readEntries(count int) error {
	r.entries = r.entries[:0]
	for len(r.entries) < count {
		if !r.scan() {
			if err := r.scanner.Err(); err != nil {
				return err
			}
			return &SyntaxError{Line: r.line, Msg: fmt.Sprintf("unexpected end of file (block has %d of %d entries)",
				len(r.entries), count)}
		}
		entry, err := strconv.Unquote(r.scanner.Text())
		if err != nil {
			return &SyntaxError{Line: r.line, Msg: "invalid entry", Err: err}
		}
		r.entries = append(r.entries, entry)
	}
	return nil
}

// LoadTable parses table data and returns a frozen table.
func LoadTable(name string, reader io.Reader) (*blocks.Table, error) {
	r := NewReader(reader)
	t, err := blocks.LoadTable(name, r)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("loaded table %q from source %q", name, r.Identifier())
	return t, nil
}
