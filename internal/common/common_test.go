package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInts(t *testing.T) {
	got, err := ParseInts[uint64]("  79 14\t55 13 ")
	require.NoError(t, err)
	assert.Equal(t, []uint64{79, 14, 55, 13}, got)

	neg, err := ParseInts[int]("10 -3 0")
	require.NoError(t, err)
	assert.Equal(t, []int{10, -3, 0}, neg)

	empty, err := ParseInts[int]("   ")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestParseIntsRejects(t *testing.T) {
	_, err := ParseInts[int]("1 two 3")
	assert.Error(t, err, "not a number")

	_, err = ParseInts[uint64]("-1")
	assert.Error(t, err, "negative unsigned")

	_, err = ParseInts[uint8]("256")
	assert.Error(t, err, "overflow uint8")

	_, err = ParseInts[int8]("-129")
	assert.Error(t, err, "overflow int8")
}

func TestParseIntFitsType(t *testing.T) {
	v, err := ParseInt[uint8]("255")
	require.NoError(t, err)
	assert.Equal(t, uint8(255), v)

	w, err := ParseInt[int8]("-128")
	require.NoError(t, err)
	assert.Equal(t, int8(-128), w)

	big, err := ParseInt[uint64]("18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, ^uint64(0), big)
}

func TestPairs(t *testing.T) {
	got, ok := Pairs([]int{1, 2, 3, 4})
	require.True(t, ok)
	assert.Equal(t, [][2]int{{1, 2}, {3, 4}}, got)

	_, ok = Pairs([]int{1, 2, 3})
	assert.False(t, ok)

	none, ok := Pairs([]int(nil))
	assert.True(t, ok)
	assert.Empty(t, none)
}

func TestFirstLast(t *testing.T) {
	f, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", f)

	l, ok := Last([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "b", l)

	_, ok = First([]string{})
	assert.False(t, ok)

	_, ok = Last([]int(nil))
	assert.False(t, ok)
}

func TestGCDLCM(t *testing.T) {
	assert.Equal(t, 6, GCD(12, 18))
	assert.Equal(t, 36, LCM(12, 18))
	assert.Equal(t, int64(0), LCM(int64(0), 5))
	assert.Equal(t, uint64(2*3*5*7), LCM(LCM(uint64(6), 10), 14))
}
