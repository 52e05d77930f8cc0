package integer_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/cint/control"
	"github.com/calebcase/cint/integer"
)

func TestEncodeDecode(t *testing.T) {
	type TC struct {
		name   string
		schema integer.Schema
		input  []*integer.Integer
		data   []byte
		Mark   error
	}

	tcs := []TC{
		{
			name:  "0",
			input: []*integer.Integer{integer.MustNew("0")},
			data: []byte{
				0b1000_0000,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name:  "99",
			input: []*integer.Integer{integer.MustNew("99")},
			data: []byte{
				0b1110_0011,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name:  "3199",
			input: []*integer.Integer{integer.MustNew("3199")},
			data: []byte{
				0b0011_1111, 99,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name:  "3299",
			input: []*integer.Integer{integer.MustNew("3299")},
			data: []byte{
				0b0100_0001, 32, 99,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name:  "12345",
			input: []*integer.Integer{integer.MustNew("12345")},
			data: []byte{
				0b0001_0001, 23, 45,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name:   "nullable",
			schema: integer.Schema{Nullable: true},
			input: []*integer.Integer{
				integer.MustNew("7"),
				nil,
				integer.MustNew("8"),
			},
			data: []byte{
				0b1000_0111,
				0b0000_0000,
				0b1000_1000,
			},
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			buf := &bytes.Buffer{}
			enc := integer.NewEncoder(tc.schema, control.NewEncoder(buf))

			for _, x := range tc.input {
				err := enc.Encode(x)
				require.NoError(t, err, tc.Mark)
			}
			require.Equal(t, tc.data, buf.Bytes(), tc.Mark)

			dec := integer.NewDecoder(tc.schema, control.NewDecoder(buf))

			for _, x := range tc.input {
				y, err := dec.Decode()
				require.NoError(t, err, tc.Mark)

				if x == nil {
					require.Nil(t, y, tc.Mark)

					continue
				}
				require.Equal(t, x.String(), y.String(), tc.Mark)
			}

			_, err := dec.Decode()
			require.ErrorIs(t, err, io.EOF, tc.Mark)
		})
	}
}

func TestEncodeDecodeLarge(t *testing.T) {
	digits := []string{
		strings.Repeat("9", 128),
		strings.Repeat("1234567890", 13),
		strings.Repeat("7", 1001),
	}

	buf := &bytes.Buffer{}
	enc := integer.NewEncoder(integer.Schema{}, control.NewEncoder(buf))

	for _, d := range digits {
		require.NoError(t, enc.Encode(integer.MustNew(d)))
	}

	dec := integer.NewDecoder(integer.Schema{}, control.NewDecoder(buf))

	for _, d := range digits {
		x, err := dec.Decode()
		require.NoError(t, err)
		require.Equal(t, d, x.String())
	}

	_, err := dec.Decode()
	require.True(t, errors.Is(err, io.EOF))
}

func TestEncodeDecodeErrors(t *testing.T) {
	t.Run("nil not nullable", func(t *testing.T) {
		enc := integer.NewEncoder(integer.Schema{}, control.NewEncoder(io.Discard))
		require.Error(t, enc.Encode(nil))
	})

	t.Run("null not nullable", func(t *testing.T) {
		dec := integer.NewDecoder(integer.Schema{}, control.NewDecoder(bytes.NewReader([]byte{0b0000_0000})))

		_, err := dec.Decode()
		require.Error(t, err)
	})

	t.Run("empty block", func(t *testing.T) {
		dec := integer.NewDecoder(integer.Schema{}, control.NewDecoder(bytes.NewReader([]byte{0b0000_0001})))

		_, err := dec.Decode()
		require.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		// A data size block holding the bytes 0 and 12.
		dec := integer.NewDecoder(integer.Schema{}, control.NewDecoder(bytes.NewReader([]byte{
			0b0100_0001, 0, 12,
		})))

		_, err := dec.Decode()
		require.ErrorIs(t, err, integer.ErrMalformed)
	})

	t.Run("oversized", func(t *testing.T) {
		// A data size size block declaring 2^56 bytes.
		data := append([]byte{control.DataSizeSize.Prefix | 6}, bytes.Repeat([]byte{0xff}, 7)...)

		dec := integer.NewDecoder(integer.Schema{}, control.NewDecoder(bytes.NewReader(data)))

		x, err := dec.Decode()
		require.ErrorIs(t, err, integer.ErrAllocationFailure)
		require.Nil(t, x)
	})

	t.Run("over limit", func(t *testing.T) {
		prev := integer.MaxSize
		integer.MaxSize = 2
		t.Cleanup(func() {
			integer.MaxSize = prev
		})

		buf := &bytes.Buffer{}
		enc := integer.NewEncoder(integer.Schema{}, control.NewEncoder(buf))
		require.NoError(t, enc.Encode(integer.MustNew("1234")))
		require.NoError(t, enc.Encode(integer.MustNew("12")))

		// Raw block of three bytes, past the limit of two.
		buf.Write([]byte{0b_0100_0010, 1, 23, 45})

		dec := integer.NewDecoder(integer.Schema{}, control.NewDecoder(buf))

		x, err := dec.Decode()
		require.NoError(t, err)
		require.Equal(t, "1234", x.String())

		x, err = dec.Decode()
		require.NoError(t, err)
		require.Equal(t, "12", x.String())

		_, err = dec.Decode()
		require.ErrorIs(t, err, integer.ErrAllocationFailure)
	})

	t.Run("unexpected block offset", func(t *testing.T) {
		dec := integer.NewDecoder(integer.Schema{}, control.NewDecoder(bytes.NewReader([]byte{
			0b_1000_0111, 0b_0000_0001,
		})))

		_, err := dec.Decode()
		require.NoError(t, err)

		_, err = dec.Decode()
		require.Error(t, err)
		require.Contains(t, err.Error(), "unexpected e block at offset 1")
	})

	t.Run("truncated", func(t *testing.T) {
		dec := integer.NewDecoder(integer.Schema{}, control.NewDecoder(bytes.NewReader([]byte{
			0b0100_0011, 12, 34,
		})))

		_, err := dec.Decode()
		require.Error(t, err)
		require.False(t, errors.Is(err, io.EOF))
	})
}
