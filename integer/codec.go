package integer

import (
	"io"
	"iter"
)

// DefaultChunk is the number of digits written per chunk by WriteTo.
const DefaultChunk = 64

// packedSize returns the number of bytes needed to hold n decimal digits.
func packedSize(n int) int {
	return (n + 1) / 2
}

// packDigits fills dst with the ASCII decimal digits in src. Pairs are taken
// from the least significant end so that an odd digit count leaves a single
// digit in dst[0]. len(dst) must equal packedSize(len(src)).
func packDigits[T string | []byte](dst []byte, src T) {
	j := len(src)
	for i := len(dst) - 1; i >= 0; i-- {
		if j >= 2 {
			dst[i] = (src[j-2]-'0')*10 + src[j-1] - '0'
			j -= 2
		} else {
			dst[i] = src[j-1] - '0'
			j--
		}
	}
}

// packFunc packs the n digits produced by digit into a new buffer, skipping
// leading zero digits. The result is the canonical zero if every digit is
// zero or n is zero.
func packFunc(n int, digit func(i int) byte) (value []byte, err error) {
	first := 0
	for first < n-1 && digit(first) == 0 {
		first++
	}

	if n == 0 || (first == n-1 && digit(first) == 0) {
		return alloc(1)
	}

	count := n - first

	value, err = alloc(uint64(packedSize(count)))
	if err != nil {
		return nil, err
	}

	j := n
	for i := len(value) - 1; i >= 0; i-- {
		if j-first >= 2 {
			value[i] = digit(j-2)*10 + digit(j-1)
			j -= 2
		} else {
			value[i] = digit(j - 1)
			j--
		}
	}

	return value, nil
}

// appendDigits appends the ASCII decimal digits of a packed buffer to dst.
func appendDigits(dst, value []byte) []byte {
	for i, b := range value {
		if i == 0 && b < 10 {
			dst = append(dst, '0'+b)

			continue
		}

		dst = append(dst, '0'+b/10, '0'+b%10)
	}

	return dst
}

// digitLen returns the number of decimal digits held by a packed buffer.
func digitLen(value []byte) int {
	if len(value) == 0 {
		return 0
	}

	n := 2 * len(value)
	if value[0] < 10 {
		n--
	}

	return n
}

// digitAt returns decimal digit i of a packed buffer, where digit 0 is the
// most significant.
func digitAt(value []byte, i int) byte {
	if value[0] < 10 {
		if i == 0 {
			return value[0]
		}

		i++
	}

	b := value[i/2]
	if i%2 == 0 {
		return b / 10
	}

	return b % 10
}

// New parses a string of decimal digits. Leading zeros are dropped and the
// empty string is zero.
func New(s string) (x *Integer, err error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, Error.New("%w: %q at index %d", ErrInvalidDigit, s[i], i)
		}
	}

	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	s = s[i:]

	if s == "" {
		s = "0"
	}

	value, err := alloc(uint64(packedSize(len(s))))
	if err != nil {
		return nil, err
	}

	packDigits(value, s)

	return &Integer{value: value}, nil
}

// String returns the decimal digits of x.
func (x *Integer) String() string {
	if x == nil {
		return "<nil>"
	}

	if len(x.value) == 0 {
		return "0"
	}

	return string(appendDigits(make([]byte, 0, digitLen(x.value)), x.value))
}

// Chunks returns the decimal digits of x as a sequence of strings holding
// at most size digits each. Only the final chunk may be shorter. The
// sequence can be ranged over any number of times and starts from the most
// significant digit each time. A size below one uses DefaultChunk.
func (x *Integer) Chunks(size int) iter.Seq[string] {
	if size < 1 {
		size = DefaultChunk
	}

	value := x.value
	if len(value) == 0 {
		value = zero
	}

	return func(yield func(string) bool) {
		buf := make([]byte, 0, size+1)

		for i, b := range value {
			if i == 0 && b < 10 {
				buf = append(buf, '0'+b)
			} else {
				buf = append(buf, '0'+b/10, '0'+b%10)
			}

			for len(buf) >= size {
				if !yield(string(buf[:size])) {
					return
				}

				buf = append(buf[:0], buf[size:]...)
			}
		}

		if len(buf) > 0 {
			yield(string(buf))
		}
	}
}

// WriteTo writes the decimal digits of x to w in chunks of DefaultChunk
// digits. It implements io.WriterTo.
func (x *Integer) WriteTo(w io.Writer) (n int64, err error) {
	for chunk := range x.Chunks(DefaultChunk) {
		m, err := io.WriteString(w, chunk)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}

	return n, nil
}
