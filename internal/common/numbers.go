package common

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ParseInt parses one base-10 integer that must fit in T.
func ParseInt[T constraints.Integer](s string) (T, error) {
	var zero T

	bits := bitSize[T]()

	if isSigned[T]() {
		v, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return zero, fmt.Errorf("invalid integer %q: %w", s, err)
		}

		return T(v), nil
	}

	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return zero, fmt.Errorf("invalid integer %q: %w", s, err)
	}

	return T(v), nil
}

// ParseInts parses whitespace separated base-10 integers.
func ParseInts[T constraints.Integer](s string) ([]T, error) {
	fields := strings.Fields(s)

	out := make([]T, 0, len(fields))
	for _, f := range fields {
		v, err := ParseInt[T](f)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, nil
}

// GCD returns the greatest common divisor of a and b.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of a and b. LCM(0, x) is 0.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}

	return a / GCD(a, b) * b
}

func isSigned[T constraints.Integer]() bool {
	var zero T
	return zero-1 < zero
}

func bitSize[T constraints.Integer]() int {
	var v T = 1

	bits := 1
	for v<<1 != 0 {
		v <<= 1
		bits++
	}

	return bits
}
