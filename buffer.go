package strsafe

import "unsafe"

// Char is a code unit: byte for narrow strings, uint16 (or uint32) for wide.
type Char interface {
	~uint8 | ~uint16 | ~uint32
}

func unitSize[T Char]() int {
	var u T
	return int(unsafe.Sizeof(u))
}

// fillUnit repeats b over every byte of a code unit, the way memset would.
func fillUnit[T Char](b byte) T {
	var u T
	for i := 0; i < unitSize[T](); i++ {
		u = u<<8 | T(b)
	}
	return u
}

func validCapacity(cch int) bool {
	return cch > 0 && cch <= MaxCch
}

// cchFromCb converts a byte capacity to characters, truncating a
// non-multiple of the unit size. The character count is range-checked by
// the caller; a negative byte count maps to 0.
func cchFromCb[T Char](cb int) int {
	if cb < 0 {
		return 0
	}
	return cb / unitSize[T]()
}

func cbOf[T Char](dest []T) int {
	return len(dest) * unitSize[T]()
}

// indexNull returns the offset of the first NUL in s[:limit], or -1.
func indexNull[T Char](s []T, limit int) int {
	if limit > len(s) {
		limit = len(s)
	}
	for i := 0; i < limit; i++ {
		if s[i] == 0 {
			return i
		}
	}
	return -1
}

// sourceLength measures a source string: it ends at its first NUL, at the
// slice bound, or at limit, whichever comes first.
func sourceLength[T Char](src []T, limit int) int {
	if n := indexNull(src, limit); n >= 0 {
		return n
	}
	return min(len(src), limit)
}

// ToString returns the NUL-terminated prefix of psz as a Go string. A
// buffer without a terminator is returned whole.
func ToString(psz []byte) string {
	if n := indexNull(psz, len(psz)); n >= 0 {
		return string(psz[:n])
	}
	return string(psz)
}

// destination is a positional writer over the capacity of a borrowed
// buffer. It never writes outside buf.
type destination[T Char] struct {
	op  string
	buf []T
}

func newDestination[T Char](op string, dest []T, cch int) *destination[T] {
	return &destination[T]{op: op, buf: dest[:cch]}
}

func (d *destination[T]) Cap() int { return len(d.buf) }

// writeAt copies s at offset i and terminates the result. It returns the
// terminator offset.
func (d *destination[T]) writeAt(i int, s []T) int {
	end := i + copy(d.buf[i:d.Cap()-1], s)
	d.buf[end] = 0
	return end
}

func (d *destination[T]) terminate(i int) int {
	d.buf[i] = 0
	return i
}

func (d *destination[T]) fill(from, to int, b byte) {
	u := fillUnit[T](b)
	for i := from; i < to; i++ {
		d.buf[i] = u
	}
}

func (d *destination[T]) succeed(end int, opts Options) (int, int, HRESULT) {
	if opts.FillBehindNull {
		d.fill(end+1, d.Cap(), opts.Fill)
	}
	return end, d.Cap() - end, S_OK
}

func (d *destination[T]) truncated(end int) (int, int, HRESULT) {
	return end, d.Cap() - end, traceResult(d.op, STRSAFE_E_INSUFFICIENT_BUFFER, d.Cap())
}

// fail normalizes the buffer after a failure. FillOnFailure wins over
// NullOnFailure; without either, an overflow rolls back to the offset the
// write started at and any other failure leaves an empty string.
func (d *destination[T]) fail(hr HRESULT, rollback int, opts Options) (int, int, HRESULT) {
	end := 0
	switch {
	case opts.FillOnFailure:
		end = d.Cap() - 1
		d.fill(0, end, opts.Fill)
	case opts.NullOnFailure:
	case hr == STRSAFE_E_INSUFFICIENT_BUFFER:
		end = rollback
	}
	d.buf[end] = 0
	return end, d.Cap() - end, traceResult(d.op, hr, d.Cap())
}
