package console

import (
	"bufio"
	"fmt"
	"io"
)

// Stdio is a RawConsole backed by a bufio.Scanner over an io.Reader and an
// io.Writer, the concrete binding used by `calc run` against os.Stdin and
// os.Stdout.
type Stdio struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewStdio wraps r and w as a RawConsole.
func NewStdio(r io.Reader, w io.Writer) *Stdio {
	return &Stdio{
		scanner: bufio.NewScanner(r),
		out:     w,
	}
}

// ReadLine reads the next line. It returns io.EOF when the input is
// exhausted.
func (c *Stdio) ReadLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("read line: %w", err)
		}
		return "", io.EOF
	}
	return c.scanner.Text(), nil
}

// WriteLine writes s followed by a newline.
func (c *Stdio) WriteLine(s string) error {
	if _, err := fmt.Fprintln(c.out, s); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return nil
}
