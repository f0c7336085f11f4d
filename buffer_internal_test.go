package strsafe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapacityLimits(t *testing.T) {
	for _, cch := range []int{0, -1, MaxCch + 1} {
		dest := []byte("keep\x00")
		end, remaining, hr := stringCopyEx("test", dest, cch, []byte("x"), MaxCch, false, Options{FillOnFailure: true, Fill: '@'})
		assert.Equal(t, STRSAFE_E_INVALID_PARAMETER, hr, "cch=%d", cch)
		assert.Zero(t, end)
		assert.Zero(t, remaining)
		assert.Equal(t, []byte("keep\x00"), dest, "an invalid capacity never touches the buffer")

		_, _, hr = stringCopyEx("test", dest, cch, []byte("x"), MaxCch, true, Options{})
		assert.Equal(t, STRSAFE_E_INVALID_PARAMETER, hr, "cch=%d", cch)
	}

	_, _, hr := stringCopyEx("test", []byte("ab"), 3, []byte("x"), MaxCch, false, Options{})
	assert.Equal(t, STRSAFE_E_INVALID_PARAMETER, hr, "capacity beyond the slice")

	_, _, hr = stringCopyEx("test", make([]byte, 8), MaxCch, []byte("x"), MaxCch, false, Options{})
	assert.Equal(t, STRSAFE_E_INVALID_PARAMETER, hr, "capacity at the limit but beyond the slice")
}

func TestCchFromCb(t *testing.T) {
	assert.Equal(t, 3, cchFromCb[uint16](7))
	assert.Equal(t, 0, cchFromCb[uint16](1))
	assert.Equal(t, 7, cchFromCb[byte](7))
	assert.Equal(t, 2, cchFromCb[uint32](11))
	assert.Equal(t, 0, cchFromCb[uint16](-2))
	assert.Equal(t, MaxCch/2, cchFromCb[uint16](MaxCch))

	// The range check applies to characters, after the divide.
	assert.Equal(t, 1<<30, cchFromCb[uint16](1<<31))
	assert.True(t, validCapacity(cchFromCb[uint16](1<<31)))
	assert.False(t, validCapacity(cchFromCb[byte](MaxCch+1)))
	assert.False(t, validCapacity(cchFromCb[uint16](1<<32)))

	assert.Equal(t, 1<<30, limitFromCb[uint16](MaxCch+1))
	assert.Equal(t, -1, limitFromCb[byte](-4))
	assert.Equal(t, 2, limitFromCb[uint16](5))
}

func TestByteLimitsCheckedInCharacters(t *testing.T) {
	dest := make([]uint16, 4)
	_, _, hr := cbCopyEx("test", dest, []uint16{'a', 'b'}, limitFromCb[uint16](1<<31), false, Options{})
	assert.Equal(t, S_OK, hr)
	assert.Equal(t, []uint16{'a', 'b', 0, 0}, dest)

	_, _, hr = cbCopyEx("test", make([]byte, 4), []byte("ab"), limitFromCb[byte](MaxCch+1), false, Options{})
	assert.Equal(t, STRSAFE_E_INVALID_PARAMETER, hr)

	_, _, hr = cbCopyEx("test", dest, []uint16{'a'}, limitFromCb[uint16](1<<32), false, Options{})
	assert.Equal(t, STRSAFE_E_INVALID_PARAMETER, hr)
}

func TestFillUnit(t *testing.T) {
	assert.Equal(t, byte('@'), fillUnit[byte]('@'))
	assert.Equal(t, uint16(0x4040), fillUnit[uint16]('@'))
	assert.Equal(t, uint32(0x40404040), fillUnit[uint32]('@'))
	assert.Equal(t, uint16(0), fillUnit[uint16](0))
}

func TestSourceLength(t *testing.T) {
	assert.Equal(t, 3, sourceLength([]byte("abc"), MaxCch))
	assert.Equal(t, 1, sourceLength([]byte("a\x00c"), MaxCch))
	assert.Equal(t, 2, sourceLength([]byte("abc"), 2))
	assert.Equal(t, 0, sourceLength([]byte(nil), MaxCch))
}

func TestWideUnitsWithFourBytes(t *testing.T) {
	dest := make([]uint32, 6)
	end, remaining, hr := cbCopyEx("test", dest, []uint32{'a', 'b', 'c'}, MaxCch, false, Options{FillBehindNull: true, Fill: 1})
	assert.Equal(t, S_OK, hr)
	assert.Equal(t, 3, end)
	assert.Equal(t, 12, remaining)
	assert.Equal(t, []uint32{'a', 'b', 'c', 0, 0x01010101, 0x01010101}, dest)
}
