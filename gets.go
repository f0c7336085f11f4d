package strsafe

import (
	"errors"
	"io"

	"github.com/rs/zerolog/log"
)

// stringGetsEx reads one line from r into dest. The newline is consumed but
// not stored. When dest fills up, one more byte is peeked: a newline or end
// of input means the line fit exactly, anything else is pushed back and the
// line is reported as truncated.
func stringGetsEx(op string, r io.ByteScanner, dest []byte, cchDest int, opts Options) (int, int, HRESULT) {
	if dest == nil && opts.IgnoreNulls {
		return 0, 0, S_OK
	}
	if !validCapacity(cchDest) || cchDest > len(dest) {
		return 0, 0, traceResult(op, STRSAFE_E_INVALID_PARAMETER, cchDest)
	}
	d := newDestination(op, dest, cchDest)
	if r == nil {
		return d.fail(STRSAFE_E_INVALID_PARAMETER, 0, opts)
	}
	if cchDest == 1 {
		return d.fail(STRSAFE_E_INSUFFICIENT_BUFFER, 0, opts)
	}

	n := 0
	eof := false
	for n < cchDest-1 {
		c, err := r.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Error().Err(err).Str("op", op).Int("read", n).Msg("read failed")
				return d.fail(STRSAFE_E_END_OF_FILE, 0, opts)
			}
			eof = true
			break
		}
		if c == '\n' {
			return d.succeed(d.terminate(n), opts)
		}
		d.buf[n] = c
		n++
	}
	if eof {
		if n == 0 {
			return d.fail(STRSAFE_E_END_OF_FILE, 0, opts)
		}
		return d.succeed(d.terminate(n), opts)
	}

	c, err := r.ReadByte()
	if err != nil && !errors.Is(err, io.EOF) {
		log.Error().Err(err).Str("op", op).Int("read", n).Msg("read failed")
		return d.fail(STRSAFE_E_END_OF_FILE, 0, opts)
	}
	if err != nil || c == '\n' {
		return d.succeed(d.terminate(n), opts)
	}
	if err := r.UnreadByte(); err != nil {
		log.Trace().Err(err).Str("op", op).Msg("unable to push back peeked byte")
	}
	if opts.failurePolicy() {
		return d.fail(STRSAFE_E_INSUFFICIENT_BUFFER, 0, opts)
	}
	return d.truncated(d.terminate(n))
}

// StringCchGetsA reads a line from r into dest. It returns
// STRSAFE_E_END_OF_FILE, with dest emptied, when r is exhausted before any
// byte is read or fails with an error other than io.EOF, and
// STRSAFE_E_INSUFFICIENT_BUFFER when the line is longer than len(dest)-1;
// the rest of that line stays in r.
func StringCchGetsA(r io.ByteScanner, dest []byte) HRESULT {
	_, _, hr := stringGetsEx("StringCchGetsA", r, dest, len(dest), Options{})
	return hr
}

func StringCbGetsA(r io.ByteScanner, dest []byte) HRESULT {
	_, _, hr := stringGetsEx("StringCbGetsA", r, dest, len(dest), Options{})
	return hr
}

func StringCchGetsExA(r io.ByteScanner, dest []byte, opts Options) (end, remaining int, hr HRESULT) {
	return stringGetsEx("StringCchGetsExA", r, dest, len(dest), opts)
}

func StringCbGetsExA(r io.ByteScanner, dest []byte, opts Options) (end, remaining int, hr HRESULT) {
	return stringGetsEx("StringCbGetsExA", r, dest, len(dest), opts)
}
