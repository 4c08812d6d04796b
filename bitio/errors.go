package bitio

import "errors"

// ErrBufferEndOfData is returned when a write would exceed the
// caller-supplied buffer's capacity, or a read needs more bits than
// remain in it. Per spec.md §4.1 this is terminal for the in-progress
// message: callers must not continue using the stream afterwards.
var ErrBufferEndOfData = errors.New("bitio: buffer end of data")

// ErrBitcountOutOfRange is returned when a caller asks to read or
// write a bit count this implementation does not support (outside
// 1..32).
var ErrBitcountOutOfRange = errors.New("bitio: bitcount out of range")
