package integer

// Add sets x to x + y and returns x.
func (x *Integer) Add(y *Integer) (_ *Integer, err error) {
	a, b := x.limbs(), y.limbs()

	z, err := alloc(uint64(max(len(a), len(b))))
	if err != nil {
		return nil, err
	}

	if carry := addLimbs(z, a, b); carry > 0 {
		z, err = resize(z, uint64(len(z))+1)
		if err != nil {
			return nil, err
		}

		z[0] = carry
	}

	x.value = z

	return x, nil
}

// Sub sets x to x - y and returns x. It fails with ErrNegativeResult if y is
// greater than x.
func (x *Integer) Sub(y *Integer) (_ *Integer, err error) {
	a, b := x.limbs(), y.limbs()

	if cmpLimbs(a, b) < 0 {
		return nil, Error.New("%w: subtracting %d digits from %d digits",
			ErrNegativeResult, digitLen(b), digitLen(a))
	}

	z, err := alloc(uint64(len(a)))
	if err != nil {
		return nil, err
	}

	subLimbs(z, a, b)

	z, err = trim(z)
	if err != nil {
		return nil, err
	}

	x.value = z

	return x, nil
}

// Mul sets x to x * y and returns x.
func (x *Integer) Mul(y *Integer) (_ *Integer, err error) {
	a, b := x.limbs(), y.limbs()

	z, err := alloc(uint64(len(a)) + uint64(len(b)))
	if err != nil {
		return nil, err
	}

	mulLimbs(z, a, b)

	z, err = trim(z)
	if err != nil {
		return nil, err
	}

	x.value = z

	return x, nil
}

// QuoRem returns the quotient and remainder of x / y as new Integers,
// leaving x unchanged. The remainder is always less than y.
func (x *Integer) QuoRem(y *Integer) (q, r *Integer, err error) {
	qv, rv, err := quoRem(x, y)
	if err != nil {
		return nil, nil, err
	}

	return &Integer{value: qv}, &Integer{value: rv}, nil
}

// Div sets x to the quotient of x / y, rounded down, and returns x.
func (x *Integer) Div(y *Integer) (_ *Integer, err error) {
	q, _, err := quoRem(x, y)
	if err != nil {
		return nil, err
	}

	x.value = q

	return x, nil
}

// Mod sets x to the remainder of x / y and returns x.
func (x *Integer) Mod(y *Integer) (_ *Integer, err error) {
	_, r, err := quoRem(x, y)
	if err != nil {
		return nil, err
	}

	x.value = r

	return x, nil
}

// Inc sets x to x + 1 and returns x.
func (x *Integer) Inc() (_ *Integer, err error) {
	return x.Add(one)
}

// Dec sets x to x - 1 and returns x. It fails with ErrNegativeResult if x is
// zero.
func (x *Integer) Dec() (_ *Integer, err error) {
	return x.Sub(one)
}

func quoRem(x, y *Integer) (q, r []byte, err error) {
	a, b := x.limbs(), y.limbs()

	if len(b) == 1 && b[0] == 0 {
		return nil, nil, Error.New("%w", ErrDivideByZero)
	}

	if cmpLimbs(a, b) < 0 {
		q, err = alloc(1)
		if err != nil {
			return nil, nil, err
		}

		r, err = alloc(uint64(len(a)))
		if err != nil {
			return nil, nil, err
		}

		copy(r, a)

		return q, r, nil
	}

	return quoRemLimbs(a, b)
}
