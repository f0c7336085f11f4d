package strsafe_test

import (
	"testing"

	"github.com/GPA-Gruppo-Progetti-Avanzati-SRL/go-strsafe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringCchLengthA(t *testing.T) {
	tests := []struct {
		name   string
		psz    []byte
		cchMax int
		want   int
		hr     strsafe.HRESULT
	}{
		{"terminated", []byte("hello\x00world"), 11, 5, strsafe.S_OK},
		{"empty", []byte("\x00"), 1, 0, strsafe.S_OK},
		{"terminator at the limit is not seen", []byte("hello\x00"), 5, 0, strsafe.STRSAFE_E_INVALID_PARAMETER},
		{"terminator inside the limit", []byte("hello\x00"), 6, 5, strsafe.S_OK},
		{"limit larger than buffer", []byte("hi\x00"), 100, 2, strsafe.S_OK},
		{"no terminator in buffer", []byte("hello"), 100, 0, strsafe.STRSAFE_E_INVALID_PARAMETER},
		{"zero limit", []byte("\x00"), 0, 0, strsafe.STRSAFE_E_INVALID_PARAMETER},
		{"negative limit", []byte("\x00"), -1, 0, strsafe.STRSAFE_E_INVALID_PARAMETER},
		{"limit above maximum", []byte("\x00"), strsafe.MaxCch + 1, 0, strsafe.STRSAFE_E_INVALID_PARAMETER},
		{"limit at maximum", []byte("ab\x00"), strsafe.MaxCch, 2, strsafe.S_OK},
		{"nil string", nil, 10, 0, strsafe.STRSAFE_E_INVALID_PARAMETER},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, hr := strsafe.StringCchLengthA(tt.psz, tt.cchMax)
			assert.Equal(t, tt.hr, hr)
			if strsafe.Succeeded(hr) {
				assert.Equal(t, tt.want, n)
			}

			cb, hr := strsafe.StringCbLengthA(tt.psz, tt.cchMax)
			assert.Equal(t, tt.hr, hr)
			if strsafe.Succeeded(hr) {
				assert.Equal(t, n, cb)
			}
		})
	}
}

func TestStringCchLengthW(t *testing.T) {
	psz := append(wide("wide"), 0, 'x')

	n, hr := strsafe.StringCchLengthW(psz, len(psz))
	require.Equal(t, strsafe.S_OK, hr)
	assert.Equal(t, 4, n)

	_, hr = strsafe.StringCchLengthW(psz, 4)
	assert.Equal(t, strsafe.STRSAFE_E_INVALID_PARAMETER, hr)
}

func TestStringCbLengthWMatchesCch(t *testing.T) {
	psz := append(wide("hello"), 0)

	for cch := 1; cch <= len(psz)+2; cch++ {
		nCch, hrCch := strsafe.StringCchLengthW(psz, cch)
		nCb, hrCb := strsafe.StringCbLengthW(psz, cch*2)
		assert.Equal(t, hrCch, hrCb, "cch=%d", cch)
		if strsafe.Succeeded(hrCch) {
			assert.Equal(t, nCch*2, nCb, "cch=%d", cch)
		}
	}
}

func TestStringCbLengthWLargeLimit(t *testing.T) {
	psz := append(wide("abc"), 0)

	nCch, hrCch := strsafe.StringCchLengthW(psz, 1<<30)
	require.Equal(t, strsafe.S_OK, hrCch)
	nCb, hrCb := strsafe.StringCbLengthW(psz, 1<<31)
	require.Equal(t, strsafe.S_OK, hrCb)
	assert.Equal(t, nCch*2, nCb)

	_, hr := strsafe.StringCbLengthW(psz, 1<<32)
	assert.Equal(t, strsafe.STRSAFE_E_INVALID_PARAMETER, hr, "2^31 characters exceed MaxCch")

	_, hr = strsafe.StringCbLengthA([]byte("abc\x00"), strsafe.MaxCch+1)
	assert.Equal(t, strsafe.STRSAFE_E_INVALID_PARAMETER, hr)
}

func TestStringCbLengthWTruncatesOddByteCounts(t *testing.T) {
	psz := append(wide("hello"), 0)

	n, hr := strsafe.StringCbLengthW(psz, 12)
	require.Equal(t, strsafe.S_OK, hr)
	assert.Equal(t, 10, n)

	_, hr = strsafe.StringCbLengthW(psz, 11)
	assert.Equal(t, strsafe.STRSAFE_E_INVALID_PARAMETER, hr, "11 bytes cover only 5 units")

	n, hr = strsafe.StringCbLengthW(psz, 13)
	require.Equal(t, strsafe.S_OK, hr)
	assert.Equal(t, 10, n)

	_, hr = strsafe.StringCbLengthW(psz, 1)
	assert.Equal(t, strsafe.STRSAFE_E_INVALID_PARAMETER, hr)
}
