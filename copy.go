package strsafe

// stringCopyEx is the worker behind every copy and concatenate variant.
// cchDest is the capacity in characters, cchToCopy caps the source length.
// When cat is set the write starts at the destination's existing terminator.
func stringCopyEx[T Char](op string, dest []T, cchDest int, src []T, cchToCopy int, cat bool, opts Options) (int, int, HRESULT) {
	if dest == nil && opts.IgnoreNulls {
		return 0, 0, S_OK
	}
	if !validCapacity(cchDest) || cchDest > len(dest) {
		return 0, 0, traceResult(op, STRSAFE_E_INVALID_PARAMETER, cchDest)
	}
	d := newDestination(op, dest, cchDest)
	if cchToCopy < 0 || cchToCopy > MaxCch {
		return d.fail(STRSAFE_E_INVALID_PARAMETER, 0, opts)
	}
	if src == nil && !opts.IgnoreNulls {
		return d.fail(STRSAFE_E_INVALID_PARAMETER, 0, opts)
	}

	start := 0
	if cat {
		if start = indexNull(d.buf, cchDest); start < 0 {
			return d.fail(STRSAFE_E_INVALID_PARAMETER, 0, opts)
		}
	}

	n := sourceLength(src, cchToCopy)
	if start+n < cchDest {
		return d.succeed(d.writeAt(start, src[:n]), opts)
	}
	if opts.failurePolicy() {
		return d.fail(STRSAFE_E_INSUFFICIENT_BUFFER, start, opts)
	}
	return d.truncated(d.writeAt(start, src[:n]))
}

func cchCopyEx[T Char](op string, dest, src []T, cchToCopy int, cat bool, opts Options) (int, int, HRESULT) {
	return stringCopyEx(op, dest, len(dest), src, cchToCopy, cat, opts)
}

// cbCopyEx runs the worker on a byte capacity and reports the remaining
// capacity in bytes.
func cbCopyEx[T Char](op string, dest, src []T, cchToCopy int, cat bool, opts Options) (int, int, HRESULT) {
	end, remaining, hr := stringCopyEx(op, dest, cchFromCb[T](cbOf(dest)), src, cchToCopy, cat, opts)
	return end, remaining * unitSize[T](), hr
}

// limitFromCb converts a byte count of source data to characters. A
// negative count maps to -1; the worker rejects that and any character
// count above MaxCch.
func limitFromCb[T Char](cb int) int {
	if cb < 0 {
		return -1
	}
	return cb / unitSize[T]()
}

// StringCchCopyA copies src into dest, which always ends up NUL-terminated
// within len(dest) characters.
//
// It returns S_OK when the whole source fits, STRSAFE_E_INSUFFICIENT_BUFFER
// when dest holds a truncated copy, and STRSAFE_E_INVALID_PARAMETER for an
// empty or oversized dest or a nil src.
func StringCchCopyA(dest, src []byte) HRESULT {
	_, _, hr := cchCopyEx("StringCchCopyA", dest, src, MaxCch, false, Options{})
	return hr
}

func StringCchCopyW(dest, src []uint16) HRESULT {
	_, _, hr := cchCopyEx("StringCchCopyW", dest, src, MaxCch, false, Options{})
	return hr
}

func StringCbCopyA(dest, src []byte) HRESULT {
	_, _, hr := cbCopyEx("StringCbCopyA", dest, src, MaxCch, false, Options{})
	return hr
}

func StringCbCopyW(dest, src []uint16) HRESULT {
	_, _, hr := cbCopyEx("StringCbCopyW", dest, src, MaxCch, false, Options{})
	return hr
}

// StringCchCopyExA is StringCchCopyA with options. end is the offset of the
// terminator written, remaining is len(dest)-end, the terminator slot
// included.
func StringCchCopyExA(dest, src []byte, opts Options) (end, remaining int, hr HRESULT) {
	return cchCopyEx("StringCchCopyExA", dest, src, MaxCch, false, opts)
}

func StringCchCopyExW(dest, src []uint16, opts Options) (end, remaining int, hr HRESULT) {
	return cchCopyEx("StringCchCopyExW", dest, src, MaxCch, false, opts)
}

// StringCbCopyExA is StringCchCopyExA with remaining counted in bytes.
func StringCbCopyExA(dest, src []byte, opts Options) (end, remaining int, hr HRESULT) {
	return cbCopyEx("StringCbCopyExA", dest, src, MaxCch, false, opts)
}

func StringCbCopyExW(dest, src []uint16, opts Options) (end, remaining int, hr HRESULT) {
	return cbCopyEx("StringCbCopyExW", dest, src, MaxCch, false, opts)
}

// StringCchCopyNA copies at most cchToCopy characters of src.
func StringCchCopyNA(dest, src []byte, cchToCopy int) HRESULT {
	_, _, hr := cchCopyEx("StringCchCopyNA", dest, src, cchToCopy, false, Options{})
	return hr
}

func StringCchCopyNW(dest, src []uint16, cchToCopy int) HRESULT {
	_, _, hr := cchCopyEx("StringCchCopyNW", dest, src, cchToCopy, false, Options{})
	return hr
}

func StringCbCopyNA(dest, src []byte, cbToCopy int) HRESULT {
	_, _, hr := cbCopyEx("StringCbCopyNA", dest, src, limitFromCb[byte](cbToCopy), false, Options{})
	return hr
}

// StringCbCopyNW copies at most cbToCopy bytes of src; an odd byte count
// drops the trailing half unit.
func StringCbCopyNW(dest, src []uint16, cbToCopy int) HRESULT {
	_, _, hr := cbCopyEx("StringCbCopyNW", dest, src, limitFromCb[uint16](cbToCopy), false, Options{})
	return hr
}

func StringCchCopyNExA(dest, src []byte, cchToCopy int, opts Options) (end, remaining int, hr HRESULT) {
	return cchCopyEx("StringCchCopyNExA", dest, src, cchToCopy, false, opts)
}

func StringCchCopyNExW(dest, src []uint16, cchToCopy int, opts Options) (end, remaining int, hr HRESULT) {
	return cchCopyEx("StringCchCopyNExW", dest, src, cchToCopy, false, opts)
}

func StringCbCopyNExA(dest, src []byte, cbToCopy int, opts Options) (end, remaining int, hr HRESULT) {
	return cbCopyEx("StringCbCopyNExA", dest, src, limitFromCb[byte](cbToCopy), false, opts)
}

func StringCbCopyNExW(dest, src []uint16, cbToCopy int, opts Options) (end, remaining int, hr HRESULT) {
	return cbCopyEx("StringCbCopyNExW", dest, src, limitFromCb[uint16](cbToCopy), false, opts)
}
