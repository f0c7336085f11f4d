package strsafe_test

import (
	"bytes"
	"unicode/utf16"
)

func wide(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func wideString(b []uint16) string {
	n := 0
	for n < len(b) && b[n] != 0 {
		n++
	}
	return string(utf16.Decode(b[:n]))
}

// dirty returns a buffer of n bytes with no terminator in it.
func dirty(n int) []byte {
	return bytes.Repeat([]byte{'x'}, n)
}

func dirtyW(n int) []uint16 {
	b := make([]uint16, n)
	for i := range b {
		b[i] = 'x'
	}
	return b
}
