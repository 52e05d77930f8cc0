package control

import (
	"io"
	"math/big"
)

// Encoder writes control blocks.
type Encoder interface {
	Data(data []byte) (err error)
	Empty() (err error)
	Null() (err error)
}

type encoder struct {
	w io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return &encoder{
		w: w,
	}
}

// Data writes data using the smallest block that can hold it. Zero length
// data must be written with Empty.
func (e *encoder) Data(data []byte) (err error) {
	defer Error.WrapP(&err)

	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		return e.write([]byte{Data.Prefix | data[0]})
	case size == 2 && data[0]&Data1.Mask == data[0]:
		return e.write([]byte{Data1.Prefix | data[0], data[1]})
	case size == 3 && data[0]&Data2.Mask == data[0]:
		return e.write([]byte{Data2.Prefix | data[0], data[1], data[2]})
	case size <= 64:
		return e.write([]byte{DataSize.Prefix | byte(size-1)}, data)
	}

	// size > 64 so the size bytes are never empty.
	sb := new(big.Int).SetUint64(uint64(size - 1)).Bytes()

	return e.write([]byte{DataSizeSize.Prefix | byte(len(sb)-1)}, sb, data)
}

// Empty writes an empty block.
func (e *encoder) Empty() (err error) {
	defer Error.WrapP(&err)

	return e.write([]byte{Empty.Prefix})
}

// Null writes a null block.
func (e *encoder) Null() (err error) {
	defer Error.WrapP(&err)

	return e.write([]byte{Null.Prefix})
}

func (e *encoder) write(bs ...[]byte) (err error) {
	for _, b := range bs {
		_, err = e.w.Write(b)
		if err != nil {
			return err
		}
	}

	return nil
}
