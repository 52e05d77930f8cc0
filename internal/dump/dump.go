// Package dump renders raw byte buffers for debugging.
package dump

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("dump")

// Format selects how each byte is rendered.
type Format byte

// Formats
const (
	Char    Format = 'c'
	Decimal Format = 'd'
	Binary  Format = 'b'
	Hex     Format = 'x'
	Packed  Format = 'i'
	Spew    Format = 's'
)

// Formats lists every supported format.
var Formats = []Format{Char, Decimal, Binary, Hex, Packed, Spew}

func (f Format) String() string {
	if f == Spew {
		return "spew"
	}

	return string(rune(f))
}

// ParseFormat parses the name of a format. The empty string selects Decimal.
func ParseFormat(s string) (f Format, err error) {
	switch s {
	case "":
		return Decimal, nil
	case "spew":
		return Spew, nil
	}

	if len(s) == 1 {
		for _, f := range Formats {
			if f != Spew && byte(f) == s[0] {
				return f, nil
			}
		}
	}

	return 0, Error.New("unknown format %q", s)
}

// Dump writes data to w in the given format. Bytes are separated by a single
// space and the output ends in a newline. Data is never modified.
//
// The Packed format treats data as a packed integer buffer and shows each
// byte in binary next to the decimal digits it holds.
func Dump(w io.Writer, data []byte, f Format) (err error) {
	defer Error.WrapP(&err)

	if f == Spew {
		spew.Fdump(w, data)

		return nil
	}

	odd := len(data) > 0 && data[0] < 10

	for i, b := range data {
		if i > 0 {
			_, err = io.WriteString(w, " ")
			if err != nil {
				return err
			}
		}

		switch f {
		case Char:
			_, err = fmt.Fprintf(w, "%q", rune(b))
		case Decimal:
			_, err = fmt.Fprintf(w, "%d", b)
		case Binary:
			_, err = fmt.Fprintf(w, "%08b", b)
		case Hex:
			_, err = fmt.Fprintf(w, "%02x", b)
		case Packed:
			if i == 0 && odd {
				_, err = fmt.Fprintf(w, "%08b(%d)", b, b)
			} else {
				_, err = fmt.Fprintf(w, "%08b(%02d)", b, b)
			}
		default:
			return Error.New("unknown format %q", rune(f))
		}
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, "\n")

	return err
}
