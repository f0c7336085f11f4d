// Package strsafe provides bounds-checked copy, concatenate and length
// operations over fixed-capacity, NUL-terminated character buffers.
//
// Destinations are caller-owned slices; the capacity of a buffer is its
// length. The A functions work on narrow (byte) strings and the W functions
// on wide (uint16) strings. Cch functions count capacity in characters and
// Cb functions in bytes. The Ex functions additionally report where the
// terminator was written and how much capacity is left, and accept Options
// that control null handling, fill behavior and truncation.
//
// Every function returns an HRESULT:
//
//	dest := make([]byte, 11)
//	if hr := strsafe.StringCchCopyA(dest, []byte("too long string")); strsafe.Failed(hr) {
//		// dest holds "too long s" and hr is STRSAFE_E_INSUFFICIENT_BUFFER
//	}
package strsafe
