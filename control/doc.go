// Package control provides the blocking structure used to frame packed
// integers in a byte stream.
//
// Control blocks use a prefix coding scheme to indicate the type of the
// current byte (which then further indicates how many bytes the field
// contains). The intention is to minimize signaling overhead and pack as much
// data directly into the control block as possible.
//
// Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks). Data and size information is expected
// to be extracted by masking off the fixed bits. This is only the first byte
// (several control block types are multi-byte sequences).
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           |                                                                            |
//  |---------------|---------------||----------------|----------------------------------------------------------------------------|
//  | 1 |                           || Data           | 2^7 = 128 values                                                           |
//  | 0 . 1 |                       || Data Size      | 2^6 = 64 bytes; 2^(64*8) values                                            |
//  | 0 . 0 . 1 |                   || Data + 1       | 2^(5+8) = 2^13 = 8192 values                                               |
//  | 0 . 0 . 0 . 1 |               || Data + 2       | 2^(4+8+8) = 2^20 = 1048576 values                                          |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size | 2^3 = 8 bytes size; 2^(8*8) bytes                                          |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty          | Empty value                                                                |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null           | Null value (for nullable fields)                                           |
//  |---------------|---------------||----------------|----------------------------------------------------------------------------|
//
// The remaining byte patterns (0b0000_0010 through 0b0000_0111) are reserved
// and rejected by the decoder.
//
// All sizes are indexed starting at 1 to maximize their effective range. To
// encode zero length data use the Empty block.
//
// Every byte of a packed integer is below 100, so any integer of up to two
// digits fits in a single Data block:
//
//  42      | 1 . 0 . 1 . 0 . 1 . 0 . 1 . 0 |        Data, value 42
//
// Data + 1 blocks hold two byte integers whose leading byte is below 32 and
// Data + 2 blocks three byte integers whose leading byte is below 16. Larger
// integers use Data Size blocks with up to 64 bytes (128 digits) and Data Size
// Size blocks beyond that.
//
//  12345   | 0 . 0 . 0 . 1 . 0 . 0 . 0 . 1 |        Data + 2, leading byte 1
//          | 0 . 0 . 0 . 1 . 0 . 1 . 1 . 1 |        23
//          | 0 . 0 . 1 . 0 . 1 . 1 . 0 . 1 |        45
package control
