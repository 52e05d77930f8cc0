// Package integer provides an arbitrary precision non-negative integer stored
// as packed decimal digit pairs.
//
// Each byte of the packed buffer holds one base 100 digit (two decimal
// digits). The buffer is big-endian: the most significant pair comes first.
// When the number of decimal digits is odd the first byte instead holds a
// single base 10 digit. No length or parity field is stored; both are derived
// from the buffer on demand.
//
// Packed Buffer
//
//  Digits      | Bytes                   | Len | Size
//  ------------|-------------------------|-----|-----
//  0           | [ 0 ]                   | 1   | 1
//  7           | [ 7 ]                   | 1   | 1
//  42          | [ 42 ]                  | 2   | 1
//  345         | [ 3 ][ 45 ]             | 3   | 2
//  123456      | [ 12 ][ 34 ][ 56 ]      | 6   | 3
//  1000000     | [ 1 ][ 0 ][ 0 ][ 0 ]    | 7   | 4
//  ------------|-------------------------|-----|-----
//
// A leading byte below 10 can only be a single digit: a base 100 pair below
// 10 would start with a zero digit, and leading zero digits are never
// stored. This is what makes the parity derivable:
//
//  Len  = 2 * Size - 1   if buffer[0] < 10
//  Len  = 2 * Size       otherwise
//
// The only buffer whose leading byte is zero is the canonical zero, [ 0 ].
//
// Arithmetic
//
// Since the leading single digit is just a base 100 digit below 10, the
// buffer is also a plain big-endian base 100 number. Add, Sub, Mul, Div and
// Mod work limb by limb directly on the packed bytes, aligned from the least
// significant byte, and never expand the value back into decimal text.
// Results are normalized by dropping superfluous leading zero bytes, which
// may flip the parity of the result.
//
// Operations that produce a result "in place" replace the receiver's buffer
// and return the receiver. When they fail the receiver keeps its previous
// value.
//
// Slicing and Concatenation
//
// Slice and Cat address decimal digits, not bytes. Digit i of a number is
// found in byte (i+1)/2 when the digit count is odd and in byte i/2 when it
// is even. Digit runs that do not start on a byte boundary are re-packed one
// digit at a time.
//
//  Cat(12, 34)   [ 12 ] + [ 34 ]       -> [ 12 ][ 34 ]        (copied)
//  Cat(12, 345)  [ 12 ] + [ 3 ][ 45 ]  -> [ 1 ][ 23 ][ 45 ]   (re-packed)
//
// Integers are not safe for concurrent mutation. Concurrent reads of an
// Integer that is not being mutated are fine.
package integer
