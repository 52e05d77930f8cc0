package integer

import (
	"io"

	"github.com/calebcase/cint/control"
)

// Schema for a stream of integers.
type Schema struct {
	// Nullable allows nil integers, written as Null blocks.
	Nullable bool
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode reads the next integer from the stream. It returns io.EOF once the
// stream is exhausted. A Null block decodes to a nil integer. Blocks larger
// than MaxSize fail with ErrAllocationFailure before any data is read.
func (d *Decoder) Decode() (x *Integer, err error) {
	if !d.cd.Next() {
		err = d.cd.Err()
		if err != nil {
			return nil, Error.Wrap(err)
		}

		return nil, io.EOF
	}

	t := d.cd.Type()

	switch {
	case t == control.Null && d.schema.Nullable:
		return nil, nil
	case !control.IsData(t):
		return nil, Error.New("unexpected %s block at offset %d", t, d.cd.Consumed()-1)
	}

	size, err := d.cd.Size()
	if err != nil {
		return nil, Error.Wrap(err)
	}

	if size > MaxSize {
		return nil, Error.New("%w: data at offset %d holds %d bytes, limit is %d",
			ErrAllocationFailure, d.cd.Consumed(), size, MaxSize)
	}

	data, err := d.cd.Data()
	if err != nil {
		return nil, Error.Wrap(err)
	}

	x = &Integer{}

	err = x.UnmarshalBinary(data)
	if err != nil {
		return nil, err
	}

	return x, nil
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes x as a single data block.
func (e *Encoder) Encode(x *Integer) (err error) {
	defer Error.WrapP(&err)

	if x == nil {
		if !e.schema.Nullable {
			return Error.New("nil integer in non-nullable stream")
		}

		return e.ce.Null()
	}

	data, err := x.MarshalBinary()
	if err != nil {
		return err
	}

	return e.ce.Data(data)
}
