package integer

import (
	"fmt"
	"math/big"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// randomDigits returns a canonical decimal string of 1 to n digits.
func randomDigits(rng *rand.Rand, n int) string {
	l := 1 + rng.IntN(n)

	sb := &strings.Builder{}
	sb.WriteByte(byte('1' + rng.IntN(9)))
	for i := 1; i < l; i++ {
		sb.WriteByte(byte('0' + rng.IntN(10)))
	}

	if rng.IntN(16) == 0 {
		return "0"
	}

	return sb.String()
}

func bigInt(t *testing.T, s string) *big.Int {
	t.Helper()

	i, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, s)

	return i
}

func TestNew(t *testing.T) {
	type TC struct {
		input  string
		digits string
		value  []byte
		err    error
		Mark   error
	}

	tcs := []TC{
		{
			input:  "0",
			digits: "0",
			value:  []byte{0},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "",
			digits: "0",
			value:  []byte{0},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "0000",
			digits: "0",
			value:  []byte{0},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "7",
			digits: "7",
			value:  []byte{7},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "42",
			digits: "42",
			value:  []byte{42},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "345",
			digits: "345",
			value:  []byte{3, 45},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "00345",
			digits: "345",
			value:  []byte{3, 45},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "123456",
			digits: "123456",
			value:  []byte{12, 34, 56},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "1000000",
			digits: "1000000",
			value:  []byte{1, 0, 0, 0},
			Mark:   oops.New("unexpected"),
		},
		{
			input:  "10",
			digits: "10",
			value:  []byte{10},
			Mark:   oops.New("unexpected"),
		},
		{
			input: "12a4",
			err:   ErrInvalidDigit,
			Mark:  oops.New("unexpected"),
		},
		{
			input: "-1",
			err:   ErrInvalidDigit,
			Mark:  oops.New("unexpected"),
		},
		{
			input: " 1",
			err:   ErrInvalidDigit,
			Mark:  oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.input), func(t *testing.T) {
			x, err := New(tc.input)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err, tc.Mark)
				require.Nil(t, x, tc.Mark)

				return
			}

			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.value, x.Bytes(), tc.Mark)
			require.Equal(t, tc.digits, x.String(), tc.Mark)
			require.Equal(t, uint64(len(tc.digits)), x.Len(), tc.Mark)
			require.Equal(t, uint64(len(tc.value)), x.Size(), tc.Mark)
		})
	}
}

func TestRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 500; i++ {
		digits := randomDigits(rng, 200)

		x, err := New(digits)
		require.NoError(t, err, digits)
		require.Equal(t, digits, x.String())
		require.Equal(t, uint64(len(digits)), x.Len(), digits)
		require.Equal(t, uint64((len(digits)+1)/2), x.Size(), digits)

		// Every byte is a base 100 digit and only zero has a leading zero
		// byte.
		value := x.Bytes()
		for _, b := range value {
			require.Less(t, b, byte(100), spew.Sdump(value))
		}
		if len(value) > 1 {
			require.NotZero(t, value[0], spew.Sdump(value))
		}
	}
}

func TestCopy(t *testing.T) {
	x := MustNew("123456789")

	y, err := x.Copy()
	require.NoError(t, err)
	require.Equal(t, x.String(), y.String())

	_, err = y.Inc()
	require.NoError(t, err)
	require.Equal(t, "123456789", x.String())
	require.Equal(t, "123456790", y.String())

	z, err := (&Integer{}).Copy()
	require.NoError(t, err)
	require.True(t, z.IsZero())
}

func TestFree(t *testing.T) {
	x := MustNew("98765")
	x.Free()

	require.Equal(t, uint64(0), x.Len())
	require.Equal(t, uint64(0), x.Size())
	require.True(t, x.IsZero())

	// A freed integer can be assigned again.
	_, err := x.Add(MustNew("5"))
	require.NoError(t, err)
	require.Equal(t, "5", x.String())
}

func TestCmp(t *testing.T) {
	type TC struct {
		a, b string
		cmp  int
	}

	tcs := []TC{
		{"0", "0", 0},
		{"0", "1", -1},
		{"9", "10", -1},
		{"100", "99", 1},
		{"12345", "12345", 0},
		{"12345", "12346", -1},
		{"54321", "12345", 1},
	}

	for _, tc := range tcs {
		t.Run(tc.a+"?"+tc.b, func(t *testing.T) {
			require.Equal(t, tc.cmp, MustNew(tc.a).Cmp(MustNew(tc.b)))
			require.Equal(t, -tc.cmp, MustNew(tc.b).Cmp(MustNew(tc.a)))
		})
	}
}

func TestFormat(t *testing.T) {
	x := MustNew("1234567890")

	require.Equal(t, "1234567890", fmt.Sprintf("%v", x))
	require.Equal(t, "1234567890", fmt.Sprintf("%s", x))
	require.Equal(t, "1234567890", fmt.Sprintf("%d", x))
	require.Equal(t, "%!x(*integer.Integer=1234567890)", fmt.Sprintf("%x", x))

	var n *Integer
	require.Equal(t, "<nil>", fmt.Sprintf("%v", n))
}

func TestMarshalUnmarshal(t *testing.T) {
	t.Run("binary", func(t *testing.T) {
		type TC struct {
			name string
			data []byte
			err  bool
			Mark error
		}

		tcs := []TC{
			{name: "0", data: []byte{0}, Mark: oops.New("unexpected")},
			{name: "99", data: []byte{99}, Mark: oops.New("unexpected")},
			{name: "345", data: []byte{3, 45}, Mark: oops.New("unexpected")},
			{name: "1000", data: []byte{10, 0}, Mark: oops.New("unexpected")},
			{name: "empty", data: []byte{}, err: true, Mark: oops.New("unexpected")},
			{name: "leading zero", data: []byte{0, 12}, err: true, Mark: oops.New("unexpected")},
			{name: "not a pair", data: []byte{1, 100}, err: true, Mark: oops.New("unexpected")},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
				x := &Integer{}
				err := x.UnmarshalBinary(tc.data)
				if tc.err {
					require.ErrorIs(t, err, ErrMalformed, tc.Mark)

					return
				}
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.name, x.String(), tc.Mark)

				data, err := x.MarshalBinary()
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.data, data, tc.Mark)
			})
		}
	})

	t.Run("text", func(t *testing.T) {
		x := &Integer{}
		require.NoError(t, x.UnmarshalText([]byte("0042")))
		require.Equal(t, "42", x.String())

		text, err := x.MarshalText()
		require.NoError(t, err)
		require.Equal(t, []byte("42"), text)

		require.ErrorIs(t, x.UnmarshalText([]byte("4x2")), ErrInvalidDigit)
		require.Equal(t, "42", x.String())

		text, err = (&Integer{}).MarshalText()
		require.NoError(t, err)
		require.Equal(t, []byte("0"), text)
	})
}

func TestChunks(t *testing.T) {
	type TC struct {
		digits string
		size   int
		chunks []string
	}

	tcs := []TC{
		{"0", 4, []string{"0"}},
		{"12345", 2, []string{"12", "34", "5"}},
		{"12345", 5, []string{"12345"}},
		{"123456", 3, []string{"123", "456"}},
		{"1234567", 1, []string{"1", "2", "3", "4", "5", "6", "7"}},
		{"1234567", 100, []string{"1234567"}},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%s/%d", tc.digits, tc.size), func(t *testing.T) {
			x := MustNew(tc.digits)

			var chunks []string
			for chunk := range x.Chunks(tc.size) {
				chunks = append(chunks, chunk)
			}
			require.Equal(t, tc.chunks, chunks)

			// The sequence restarts from the most significant digit.
			chunks = chunks[:0]
			for chunk := range x.Chunks(tc.size) {
				chunks = append(chunks, chunk)
			}
			require.Equal(t, tc.chunks, chunks)
		})
	}

	t.Run("stop early", func(t *testing.T) {
		var chunks []string
		for chunk := range MustNew("123456789").Chunks(2) {
			chunks = append(chunks, chunk)
			if len(chunks) == 2 {
				break
			}
		}
		require.Equal(t, []string{"12", "34"}, chunks)
	})

	t.Run("write to", func(t *testing.T) {
		digits := strings.Repeat("9876543210", 30)

		sb := &strings.Builder{}
		n, err := MustNew(digits).WriteTo(sb)
		require.NoError(t, err)
		require.Equal(t, int64(len(digits)), n)
		require.Equal(t, digits, sb.String())
	})
}
