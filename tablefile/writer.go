package tablefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/unidecode/blocks"
)

const (
	titleLine    = "# unidecode transliteration table"
	sourcePrefix = "# source:"
)

// Writer writes table data in the format understood by Reader.
// Errors are sticky; check the result of Flush.
type Writer struct {
	w   *bufio.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteHeader writes the title comment and names the data source.
func (w *Writer) WriteHeader(source string) error {
	w.printf("%s\n%s %s\n", titleLine, sourcePrefix, source)
	return w.err
}

// WriteBlock writes one block with its entries, one Go-quoted string per line.
func (w *Writer) WriteBlock(id int, entries []string) error {
	if id < 0 || id >= blocks.NumBlocks || len(entries) > blocks.BlockSize {
		return fmt.Errorf("cannot write block %#x with %d entries", id, len(entries))
	}
	w.printf("@%03x %d\n", id, len(entries))
	for _, e := range entries {
		w.printf("%s\n", strconv.Quote(e))
	}
	return w.err
}

// WriteTable writes all blocks of t in ascending order.
func (w *Writer) WriteTable(t *blocks.Table) error {
	for _, id := range t.BlockIDs() {
		entries, _ := t.Block(id)
		if err := w.WriteBlock(id, entries); err != nil {
			return err
		}
	}
	return w.err
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}

func (w *Writer) printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}
