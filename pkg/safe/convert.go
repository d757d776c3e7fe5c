// Package safe converts between integer types and fails instead of wrapping around.
package safe

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is wrapped by every failed conversion.
var ErrOutOfRange = errors.New("value out of range")

// Integer is any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Uint32 converts v to uint32.
func Uint32[T Integer](v T) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, outOfRange(v, "uint32")
	}
	return uint32(v), nil
}

// Uint64 converts v to uint64. Only negative values fail.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, outOfRange(v, "uint64")
	}
	return uint64(v), nil
}

// Int converts v to int.
func Int[T Integer](v T) (int, error) {
	if v >= 0 {
		if uint64(v) > math.MaxInt {
			return 0, outOfRange(v, "int")
		}
		return int(v), nil
	}
	if int64(v) < math.MinInt {
		return 0, outOfRange(v, "int")
	}
	return int(v), nil
}

func outOfRange[T Integer](v T, target string) error {
	return fmt.Errorf("%w: %d does not fit %s", ErrOutOfRange, v, target)
}
