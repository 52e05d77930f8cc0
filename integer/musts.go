package integer

import "fmt"

// MustNew is like [New] but panics if the string is not a decimal number.
func MustNew(s string) *Integer {
	x, err := New(s)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%q) failed: %v", s, err))
	}
	return x
}

// MustAdd is like [Integer.Add] but panics on failure.
func (x *Integer) MustAdd(y *Integer) *Integer {
	z, err := x.Add(y)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", y, err))
	}
	return z
}

// MustSub is like [Integer.Sub] but panics on failure.
func (x *Integer) MustSub(y *Integer) *Integer {
	z, err := x.Sub(y)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", y, err))
	}
	return z
}

// MustMul is like [Integer.Mul] but panics on failure.
func (x *Integer) MustMul(y *Integer) *Integer {
	z, err := x.Mul(y)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", y, err))
	}
	return z
}

// MustDiv is like [Integer.Div] but panics on failure.
func (x *Integer) MustDiv(y *Integer) *Integer {
	z, err := x.Div(y)
	if err != nil {
		panic(fmt.Sprintf("MustDiv(%v) failed: %v", y, err))
	}
	return z
}

// MustMod is like [Integer.Mod] but panics on failure.
func (x *Integer) MustMod(y *Integer) *Integer {
	z, err := x.Mod(y)
	if err != nil {
		panic(fmt.Sprintf("MustMod(%v) failed: %v", y, err))
	}
	return z
}

// MustCopy is like [Integer.Copy] but panics on failure.
func (x *Integer) MustCopy() *Integer {
	z, err := x.Copy()
	if err != nil {
		panic(fmt.Sprintf("MustCopy() failed: %v", err))
	}
	return z
}
