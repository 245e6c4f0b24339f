// Package input reads line commands from a stream.
package input

import (
	"bufio"
	"io"
	"strings"
)

// Reader yields one submitted command line at a time
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader creates a line reader over the given stream
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// ReadLine blocks for the next line and returns it without its line ending.
// Returns io.EOF when the stream ends.
func (r *Reader) ReadLine() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(r.scanner.Text(), "\r"), nil
}
