package strsafe

func stringLength[T Char](op string, psz []T, cchMax int) (int, HRESULT) {
	if psz == nil || !validCapacity(cchMax) {
		return 0, traceResult(op, STRSAFE_E_INVALID_PARAMETER, cchMax)
	}
	n := indexNull(psz, cchMax)
	if n < 0 {
		return 0, traceResult(op, STRSAFE_E_INVALID_PARAMETER, cchMax)
	}
	return n, S_OK
}

// StringCchLengthA returns the number of characters before the first NUL in
// psz, scanning at most cchMax characters and never past len(psz).
// STRSAFE_E_INVALID_PARAMETER is returned for a nil psz, a cchMax outside
// [1, MaxCch], or when no terminator is found in range.
func StringCchLengthA(psz []byte, cchMax int) (int, HRESULT) {
	return stringLength("StringCchLengthA", psz, cchMax)
}

func StringCchLengthW(psz []uint16, cchMax int) (int, HRESULT) {
	return stringLength("StringCchLengthW", psz, cchMax)
}

// StringCbLengthA is StringCchLengthA: a narrow character is one byte.
func StringCbLengthA(psz []byte, cbMax int) (int, HRESULT) {
	return stringLength("StringCbLengthA", psz, cbMax)
}

// StringCbLengthW measures psz in bytes. cbMax is divided by the unit size
// first, so an odd cbMax is truncated rather than rejected.
func StringCbLengthW(psz []uint16, cbMax int) (int, HRESULT) {
	n, hr := stringLength("StringCbLengthW", psz, cchFromCb[uint16](cbMax))
	return n * unitSize[uint16](), hr
}
