package control

import (
	"errors"
	"io"
	"math/big"

	"fortio.org/safecast"
	"github.com/calebcase/oops"
)

// Decoder reads control blocks.
type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
}

type decoder struct {
	r io.Reader
	s io.Seeker

	consumed uint64

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

// NewDecoder returns a decoder reading from r. If r is also an io.Seeker
// unread data is skipped by seeking.
func NewDecoder(r io.Reader) Decoder {
	d := &decoder{
		r: r,
	}

	d.s, _ = r.(io.Seeker)

	return d
}

// seek moves the input stream's current position using an io.Seeker if
// available otherwise it falls back to a discarding copy.
func (d *decoder) seek(size uint64) (err error) {
	offset, err := safecast.Conv[int64](size)
	if err != nil {
		return Error.New("seek of %d bytes: %w", size, err)
	}

	if d.s != nil {
		_, err := d.s.Seek(offset, io.SeekCurrent)
		if err != nil {
			return Error.Wrap(err)
		}

		d.consumed += size

		return nil
	}

	n, err := io.CopyN(io.Discard, d.r, offset)
	d.consumed += uint64(n)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

// skip moves past whatever is left of the current block.
func (d *decoder) skip() (err error) {
	if d.consumed == 0 || d.finished {
		return nil
	}

	size, err := d.Size()
	if err != nil {
		return err
	}

	switch d.t {
	case Data1:
		size -= 1
	case Data2:
		size -= 1
	}

	err = d.seek(size)
	if err != nil {
		return err
	}

	d.finished = true

	return nil
}

// Next advances to the next block. It returns false at the end of the input
// or on error, which is then available from Err.
func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current field was fully read before moving on...
	d.err = d.skip()
	if d.err != nil {
		return false
	}

	// Reset state for next field.
	d.value[0] = 0
	d.t = Unknown
	d.size = 0
	d.data = nil
	d.finished = false

	_, d.err = io.ReadFull(d.r, d.value[:])
	if d.err != nil {
		if errors.Is(d.err, io.EOF) {
			d.err = nil

			return false
		}

		d.err = Error.Wrap(d.err)

		return false
	}

	d.consumed += 1

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	switch t {
	case Data, Empty, Null:
		d.finished = true
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the number of data bytes in the current block. If the block
// does not carry data it returns 0 and ErrInvalidOperation.
func (d *decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.size = 0
			d.err = err
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch d.t {
	case Data:
		d.size = 1
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	case DataSizeSize:
		sizeSize := uint64(d.value[0]&d.t.Mask) + 1

		sizeBytes := make([]byte, sizeSize)
		_, err = io.ReadFull(d.r, sizeBytes)
		if err != nil {
			return 0, Error.Wrap(err)
		}

		d.consumed += sizeSize

		size := new(big.Int).SetBytes(sizeBytes)
		size.Add(size, big.NewInt(1))
		if !size.IsUint64() {
			return 0, Error.New("unimplemented: size >= 2^64")
		}

		d.size = size.Uint64()
	default:
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return d.size, nil
}

// Data reads the data bytes of the current block. If the block does not carry
// data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = nil
			d.err = err
		}
	}()

	if !IsData(d.t) {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if d.data != nil {
		return d.data, nil
	}

	if d.finished && d.t != Data {
		return nil, Error.New("data already skipped")
	}

	size, err := d.Size()
	if err != nil {
		return nil, err
	}

	n, err := safecast.Conv[int](size)
	if err != nil {
		return nil, Error.New("data of %d bytes: %w", size, err)
	}

	d.data = make([]byte, n)

	switch d.t {
	case Data:
		d.data[0] = d.value[0] & d.t.Mask

		return d.data, nil
	case Data1, Data2:
		d.data[0] = d.value[0] & d.t.Mask

		_, err = io.ReadFull(d.r, d.data[1:])
	default:
		_, err = io.ReadFull(d.r, d.data)
	}
	if err != nil {
		return nil, Error.Wrap(err)
	}

	d.consumed += uint64(len(d.data))
	if d.t == Data1 || d.t == Data2 {
		d.consumed--
	}

	d.finished = true

	return d.data, nil
}
