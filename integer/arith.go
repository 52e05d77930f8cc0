package integer

import "bytes"

// The functions in this file operate on big-endian base 100 limbs. Inputs
// are normalized (no leading zero limb) unless stated otherwise.

// cmpLimbs compares x and y and returns -1, 0 or +1.
func cmpLimbs(x, y []byte) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}

	return bytes.Compare(x, y)
}

// addLimbs sets z = x + y and returns the carry out of z[0]. len(z) must be
// at least max(len(x), len(y)).
func addLimbs(z, x, y []byte) (carry byte) {
	i, j := len(x)-1, len(y)-1
	for k := len(z) - 1; k >= 0; k-- {
		s := carry
		if i >= 0 {
			s += x[i]
			i--
		}
		if j >= 0 {
			s += y[j]
			j--
		}

		z[k], carry = s%100, s/100
	}

	return carry
}

// subLimbs sets z = x - y. len(z) must equal len(x) and x must be at least
// y. z may alias x.
func subLimbs(z, x, y []byte) {
	borrow := 0
	j := len(y) - 1
	for k := len(x) - 1; k >= 0; k-- {
		d := int(x[k]) - borrow
		if j >= 0 {
			d -= int(y[j])
			j--
		}

		borrow = 0
		if d < 0 {
			d += 100
			borrow = 1
		}

		z[k] = byte(d)
	}
}

// mulLimbs sets z = x * y. len(z) must equal len(x)+len(y) and z must be
// zero on entry.
func mulLimbs(z, x, y []byte) {
	for j := len(y) - 1; j >= 0; j-- {
		if y[j] == 0 {
			continue
		}

		carry := 0
		for i := len(x) - 1; i >= 0; i-- {
			t := int(x[i])*int(y[j]) + int(z[i+j+1]) + carry
			z[i+j+1], carry = byte(t%100), t/100
		}

		z[j] = byte(carry)
	}
}

// mulSmall sets z = x * m for a single limb m. len(z) must equal len(x)+1.
func mulSmall(z, x []byte, m byte) {
	carry := 0
	for i := len(x) - 1; i >= 0; i-- {
		t := int(x[i])*int(m) + carry
		z[i+1], carry = byte(t%100), t/100
	}

	z[0] = byte(carry)
}

// estimate returns an upper bound, off by at most two, of the quotient limb
// rem / y where rem < 100*y. rem holds exactly len(y)+1 limbs and may start
// with zeros.
func estimate(rem, y []byte) byte {
	t := min(len(y), 2)

	var d, r uint64
	for _, b := range y[:t] {
		d = d*100 + uint64(b)
	}
	for _, b := range rem[:t+1] {
		r = r*100 + uint64(b)
	}

	return byte(min(r/d, 99))
}

// quoRemLimbs divides x by y using long division one limb at a time and
// returns the normalized quotient and remainder. y must not be zero.
func quoRemLimbs(x, y []byte) (q, r []byte, err error) {
	q, err = alloc(uint64(len(x)))
	if err != nil {
		return nil, nil, err
	}

	if len(y) == 1 {
		d := int(y[0])
		rem := 0
		for i, b := range x {
			t := rem*100 + int(b)
			q[i], rem = byte(t/d), t%d
		}

		q, err = trim(q)
		if err != nil {
			return nil, nil, err
		}

		return q, []byte{byte(rem)}, nil
	}

	// rem always stays below 100*y, so len(y)+1 limbs hold it.
	rem, err := alloc(uint64(len(y)) + 1)
	if err != nil {
		return nil, nil, err
	}

	prod, err := alloc(uint64(len(y)) + 1)
	if err != nil {
		return nil, nil, err
	}

	for i, b := range x {
		copy(rem, rem[1:])
		rem[len(rem)-1] = b

		digit := estimate(rem, y)
		if digit > 0 {
			mulSmall(prod, y, digit)
			for bytes.Compare(prod, rem) > 0 {
				digit--
				mulSmall(prod, y, digit)
			}

			subLimbs(rem, rem, prod)
		}

		q[i] = digit
	}

	q, err = trim(q)
	if err != nil {
		return nil, nil, err
	}

	r, err = trim(rem)
	if err != nil {
		return nil, nil, err
	}

	return q, r, nil
}
