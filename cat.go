package strsafe

// StringCchCatA appends src to the NUL-terminated string already in dest.
//
// It returns S_OK when the whole source fits, STRSAFE_E_INSUFFICIENT_BUFFER
// when only a prefix of src could be appended, and
// STRSAFE_E_INVALID_PARAMETER when dest is empty, oversized, holds no
// terminator, or src is nil.
func StringCchCatA(dest, src []byte) HRESULT {
	_, _, hr := cchCopyEx("StringCchCatA", dest, src, MaxCch, true, Options{})
	return hr
}

func StringCchCatW(dest, src []uint16) HRESULT {
	_, _, hr := cchCopyEx("StringCchCatW", dest, src, MaxCch, true, Options{})
	return hr
}

func StringCbCatA(dest, src []byte) HRESULT {
	_, _, hr := cbCopyEx("StringCbCatA", dest, src, MaxCch, true, Options{})
	return hr
}

func StringCbCatW(dest, src []uint16) HRESULT {
	_, _, hr := cbCopyEx("StringCbCatW", dest, src, MaxCch, true, Options{})
	return hr
}

// StringCchCatExA is StringCchCatA with options. With NoTruncation an
// overflow leaves the original content of dest in place.
func StringCchCatExA(dest, src []byte, opts Options) (end, remaining int, hr HRESULT) {
	return cchCopyEx("StringCchCatExA", dest, src, MaxCch, true, opts)
}

func StringCchCatExW(dest, src []uint16, opts Options) (end, remaining int, hr HRESULT) {
	return cchCopyEx("StringCchCatExW", dest, src, MaxCch, true, opts)
}

func StringCbCatExA(dest, src []byte, opts Options) (end, remaining int, hr HRESULT) {
	return cbCopyEx("StringCbCatExA", dest, src, MaxCch, true, opts)
}

func StringCbCatExW(dest, src []uint16, opts Options) (end, remaining int, hr HRESULT) {
	return cbCopyEx("StringCbCatExW", dest, src, MaxCch, true, opts)
}

// StringCchCatNA appends at most cchToAppend characters of src.
func StringCchCatNA(dest, src []byte, cchToAppend int) HRESULT {
	_, _, hr := cchCopyEx("StringCchCatNA", dest, src, cchToAppend, true, Options{})
	return hr
}

func StringCchCatNW(dest, src []uint16, cchToAppend int) HRESULT {
	_, _, hr := cchCopyEx("StringCchCatNW", dest, src, cchToAppend, true, Options{})
	return hr
}

func StringCbCatNA(dest, src []byte, cbToAppend int) HRESULT {
	_, _, hr := cbCopyEx("StringCbCatNA", dest, src, limitFromCb[byte](cbToAppend), true, Options{})
	return hr
}

func StringCbCatNW(dest, src []uint16, cbToAppend int) HRESULT {
	_, _, hr := cbCopyEx("StringCbCatNW", dest, src, limitFromCb[uint16](cbToAppend), true, Options{})
	return hr
}

func StringCchCatNExA(dest, src []byte, cchToAppend int, opts Options) (end, remaining int, hr HRESULT) {
	return cchCopyEx("StringCchCatNExA", dest, src, cchToAppend, true, opts)
}

func StringCchCatNExW(dest, src []uint16, cchToAppend int, opts Options) (end, remaining int, hr HRESULT) {
	return cchCopyEx("StringCchCatNExW", dest, src, cchToAppend, true, opts)
}

func StringCbCatNExA(dest, src []byte, cbToAppend int, opts Options) (end, remaining int, hr HRESULT) {
	return cbCopyEx("StringCbCatNExA", dest, src, limitFromCb[byte](cbToAppend), true, opts)
}

func StringCbCatNExW(dest, src []uint16, cbToAppend int, opts Options) (end, remaining int, hr HRESULT) {
	return cbCopyEx("StringCbCatNExW", dest, src, limitFromCb[uint16](cbToAppend), true, opts)
}
