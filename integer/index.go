package integer

import (
	"fortio.org/safecast"
)

// Slice returns a new Integer holding the digits of x in the half-open range
// [start, end), where digit 0 is the most significant. Leading zeros of the
// range are dropped and an empty range is zero.
func (x *Integer) Slice(start, end uint64) (_ *Integer, err error) {
	length := x.Len()
	if start > end || end > length {
		return nil, Error.New("%w: [%d, %d) of %d digits", ErrIndexOutOfRange, start, end, length)
	}

	s, err := safecast.Conv[int](start)
	if err != nil {
		return nil, Error.New("%w: start %d: %v", ErrIndexOutOfRange, start, err)
	}

	e, err := safecast.Conv[int](end)
	if err != nil {
		return nil, Error.New("%w: end %d: %v", ErrIndexOutOfRange, end, err)
	}

	value, err := packFunc(e-s, func(i int) byte {
		return digitAt(x.value, s+i)
	})
	if err != nil {
		return nil, err
	}

	return &Integer{value: value}, nil
}

// Cat returns a new Integer whose digits are the digits of a followed by the
// digits of b. This is concatenation, not addition: Cat(12, 34) is 1234.
func Cat(a, b *Integer) (_ *Integer, err error) {
	av, bv := a.limbs(), b.limbs()

	if len(av) == 1 && av[0] == 0 {
		av = nil
	}

	// b is packed from its least significant end, so when it has an even
	// number of digits both buffers keep their byte alignment.
	if bv[0] >= 10 || av == nil {
		value, err := alloc(uint64(len(av)) + uint64(len(bv)))
		if err != nil {
			return nil, err
		}

		copy(value, av)
		copy(value[len(av):], bv)

		return &Integer{value: value}, nil
	}

	an, bn := digitLen(av), digitLen(bv)

	value, err := packFunc(an+bn, func(i int) byte {
		if i < an {
			return digitAt(av, i)
		}

		return digitAt(bv, i-an)
	})
	if err != nil {
		return nil, err
	}

	return &Integer{value: value}, nil
}
