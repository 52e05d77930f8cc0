// Package archive stores lists of integers in files.
//
// Three container formats are supported:
//
//  bsv      a control block stream with one data block per integer
//  cbor     a CBOR map {version, integers} using core deterministic encoding
//  msgpack  a MessagePack map {version, integers}
//
// In every format an integer is stored as its packed buffer, which is
// validated on read.
package archive

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zeebo/errs"

	"github.com/calebcase/cint/control"
	"github.com/calebcase/cint/integer"
)

// Error is the error class for this package.
var Error = errs.Class("archive")

// Version of the cbor and msgpack documents.
const Version = 1

// Format of an archive.
type Format string

// Formats
const (
	BSV     Format = "bsv"
	CBOR    Format = "cbor"
	MsgPack Format = "msgpack"
)

// Formats lists every supported format.
var Formats = []Format{BSV, CBOR, MsgPack}

// ParseFormat parses a format name. The empty string selects BSV.
func ParseFormat(s string) (f Format, err error) {
	if s == "" {
		return BSV, nil
	}

	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}

	return "", Error.New("unknown format %q", s)
}

type document struct {
	Version  int      `cbor:"version" msgpack:"version"`
	Integers [][]byte `cbor:"integers" msgpack:"integers"`
}

var encMode cbor.EncMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("archive: CBOR encoder initialization failed: " + err.Error())
	}
}

// Write writes xs to w in format f.
func Write(w io.Writer, f Format, xs []*integer.Integer) (err error) {
	defer Error.WrapP(&err)

	if f == BSV {
		enc := integer.NewEncoder(integer.Schema{}, control.NewEncoder(w))

		for _, x := range xs {
			err = enc.Encode(x)
			if err != nil {
				return err
			}
		}

		return nil
	}

	doc := document{
		Version:  Version,
		Integers: make([][]byte, 0, len(xs)),
	}

	for _, x := range xs {
		if x == nil {
			return Error.New("nil integer")
		}

		data, err := x.MarshalBinary()
		if err != nil {
			return err
		}

		doc.Integers = append(doc.Integers, data)
	}

	switch f {
	case CBOR:
		return encMode.NewEncoder(w).Encode(doc)
	case MsgPack:
		return msgpack.NewEncoder(w).Encode(doc)
	}

	return Error.New("unknown format %q", f)
}

// Read reads all integers from r in format f.
func Read(r io.Reader, f Format) (xs []*integer.Integer, err error) {
	defer Error.WrapP(&err)

	if f == BSV {
		dec := integer.NewDecoder(integer.Schema{}, control.NewDecoder(r))

		for {
			x, err := dec.Decode()
			if errors.Is(err, io.EOF) {
				return xs, nil
			}
			if err != nil {
				return nil, err
			}

			xs = append(xs, x)
		}
	}

	var doc document

	switch f {
	case CBOR:
		err = cbor.NewDecoder(r).Decode(&doc)
	case MsgPack:
		err = msgpack.NewDecoder(r).Decode(&doc)
	default:
		return nil, Error.New("unknown format %q", f)
	}
	if err != nil {
		return nil, err
	}

	if doc.Version != Version {
		return nil, Error.New("unsupported version %d", doc.Version)
	}

	xs = make([]*integer.Integer, 0, len(doc.Integers))

	for _, data := range doc.Integers {
		x := &integer.Integer{}

		err = x.UnmarshalBinary(data)
		if err != nil {
			return nil, err
		}

		xs = append(xs, x)
	}

	return xs, nil
}

// WriteFile writes xs to the named file. The file is replaced atomically.
func WriteFile(name string, f Format, xs []*integer.Integer) (err error) {
	defer Error.WrapP(&err)

	tmp, err := os.CreateTemp(filepath.Dir(name), ".cint-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	err = Write(tmp, f, xs)
	if err != nil {
		return err
	}

	err = tmp.Close()
	if err != nil {
		return err
	}

	return os.Rename(tmp.Name(), name)
}

// ReadFile reads all integers from the named file.
func ReadFile(name string, f Format) (xs []*integer.Integer, err error) {
	defer Error.WrapP(&err)

	fh, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errs.Combine(err, fh.Close())
	}()

	return Read(fh, f)
}
