package integer

import (
	"fortio.org/safecast"
)

// MaxSize is the largest packed buffer, in bytes, that will be allocated.
// Requests beyond it fail with ErrAllocationFailure instead of exhausting
// memory.
var MaxSize uint64 = 1 << 32

// alloc returns a zeroed buffer of size bytes.
func alloc(size uint64) (buf []byte, err error) {
	if size > MaxSize {
		return nil, Error.New("%w: %d bytes exceeds limit of %d", ErrAllocationFailure, size, MaxSize)
	}

	n, err := safecast.Conv[int](size)
	if err != nil {
		return nil, Error.New("%w: %d bytes: %v", ErrAllocationFailure, size, err)
	}

	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = Error.New("%w: %d bytes: %v", ErrAllocationFailure, size, r)
		}
	}()

	return make([]byte, n), nil
}

// resize copies value into a new buffer of size bytes. Growing adds bytes on
// the most significant side; shrinking removes them from the same side.
// Added bytes are zero, but callers must not rely on that to form a valid
// number.
func resize(value []byte, size uint64) (buf []byte, err error) {
	if size == 0 {
		return nil, Error.New("%w: size 0", ErrIndexOutOfRange)
	}

	buf, err = alloc(size)
	if err != nil {
		return nil, err
	}

	if n := len(buf); n >= len(value) {
		copy(buf[n-len(value):], value)
	} else {
		copy(buf, value[len(value)-n:])
	}

	return buf, nil
}

// trim drops superfluous leading zero bytes, keeping at least one byte.
func trim(value []byte) (_ []byte, err error) {
	lead := 0
	for lead < len(value)-1 && value[lead] == 0 {
		lead++
	}

	if lead == 0 {
		return value, nil
	}

	return resize(value, uint64(len(value)-lead))
}

// Resize reallocates the buffer of x to exactly size bytes. Growing adds
// bytes on the most significant side and shrinking removes them from that
// side. The content of added bytes is unspecified: Len and the numeric value
// of x are only meaningful again once the caller has written them. Shrinking
// is only safe when the removed bytes hold no significant digits.
func (x *Integer) Resize(size uint64) (err error) {
	buf, err := resize(x.value, size)
	if err != nil {
		return err
	}

	x.value = buf

	return nil
}

// Relen reallocates the buffer of x to hold length decimal digits. It has the
// same contract as Resize.
func (x *Integer) Relen(length uint64) (err error) {
	if length == 0 {
		return Error.New("%w: length 0", ErrIndexOutOfRange)
	}

	return x.Resize(length/2 + length%2)
}
