package integer

import (
	"fmt"
)

// Integer is an arbitrary precision non-negative integer stored as packed
// decimal digit pairs. Each Integer exclusively owns its buffer.
//
// The zero value holds no buffer. It reads as 0 in arithmetic and reports a
// Len and Size of 0.
type Integer struct {
	value []byte
}

// zero and one are shared read-only operands.
var (
	zero = []byte{0}
	one  = &Integer{value: []byte{1}}
)

// Copy returns an independent copy of x.
func (x *Integer) Copy() (_ *Integer, err error) {
	if len(x.value) == 0 {
		return &Integer{}, nil
	}

	value, err := alloc(uint64(len(x.value)))
	if err != nil {
		return nil, err
	}

	copy(value, x.value)

	return &Integer{value: value}, nil
}

// Free releases the buffer of x. x must not be used again until it is
// assigned a new value.
func (x *Integer) Free() {
	x.value = nil
}

// Len returns the number of decimal digits in x.
func (x *Integer) Len() uint64 {
	return uint64(digitLen(x.value))
}

// Size returns the number of bytes in the packed buffer of x.
func (x *Integer) Size() uint64 {
	return uint64(len(x.value))
}

// Bytes returns a copy of the packed buffer of x.
func (x *Integer) Bytes() []byte {
	return append([]byte(nil), x.value...)
}

// IsZero reports whether x is zero.
func (x *Integer) IsZero() bool {
	v := x.limbs()

	return len(v) == 1 && v[0] == 0
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Integer) Cmp(y *Integer) int {
	return cmpLimbs(x.limbs(), y.limbs())
}

// limbs returns the buffer of x without leading zero bytes. Buffers left
// unnormalized by Resize and the zero value both read correctly through it.
func (x *Integer) limbs() []byte {
	v := x.value
	for len(v) > 1 && v[0] == 0 {
		v = v[1:]
	}

	if len(v) == 0 {
		return zero
	}

	return v
}

// Format implements fmt.Formatter. The verbs s, v and d write the decimal
// digits of x in chunks.
func (x *Integer) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v', 'd':
		if x == nil {
			fmt.Fprint(f, "<nil>")

			return
		}

		_, _ = x.WriteTo(f)
	default:
		fmt.Fprintf(f, "%%!%c(*integer.Integer=%s)", verb, x.String())
	}
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is the
// packed buffer itself.
func (x *Integer) MarshalBinary() (data []byte, err error) {
	if len(x.value) == 0 {
		return []byte{0}, nil
	}

	return x.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. data must be a
// canonical packed buffer: at least one byte, every byte below 100 and no
// leading zero byte unless data is the single byte zero.
func (x *Integer) UnmarshalBinary(data []byte) (err error) {
	switch {
	case len(data) == 0:
		return Error.New("%w: empty", ErrMalformed)
	case len(data) > 1 && data[0] == 0:
		return Error.New("%w: leading zero byte", ErrMalformed)
	}

	for i, b := range data {
		if b > 99 {
			return Error.New("%w: byte %d at index %d exceeds 99", ErrMalformed, b, i)
		}
	}

	value, err := alloc(uint64(len(data)))
	if err != nil {
		return err
	}

	copy(value, data)
	x.value = value

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (x *Integer) MarshalText() (text []byte, err error) {
	if len(x.value) == 0 {
		return []byte("0"), nil
	}

	return appendDigits(nil, x.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Integer) UnmarshalText(text []byte) (err error) {
	y, err := New(string(text))
	if err != nil {
		return err
	}

	x.value = y.value

	return nil
}
