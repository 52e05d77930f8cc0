// Package lineio reads integers from line oriented input.
package lineio

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/cint/integer"
)

// Error is the error class for this package.
var Error = errs.Class("lineio")

// Strip removes a single trailing newline (\n or \r\n) from s. It reports
// whether a newline was found.
func Strip(s string) (_ string, ok bool) {
	s, ok = strings.CutSuffix(s, "\n")
	if !ok {
		return s, false
	}

	return strings.TrimSuffix(s, "\r"), true
}

// ReadLine reads the next line from r without its newline. A final line
// without a newline is trimmed the same way; io.EOF is only returned once no
// input is left.
func ReadLine(r *bufio.Reader) (line string, err error) {
	line, err = r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}

		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}

		return "", Error.Wrap(err)
	}

	line, _ = Strip(line)

	return line, nil
}

// ReadInteger reads one line from r and parses it as an integer. Surrounding
// blanks are ignored.
func ReadInteger(r *bufio.Reader) (x *integer.Integer, err error) {
	line, err := ReadLine(r)
	if err != nil {
		return nil, err
	}

	x, err = integer.New(strings.TrimSpace(line))
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return x, nil
}
