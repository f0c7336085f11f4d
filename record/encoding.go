package record

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// charset converts field values between Go strings and the single-byte
// code page of the record area. A nil enc means the area is ASCII.
type charset struct {
	enc encoding.Encoding
}

func charsetFor(name string) (charset, error) {
	switch strings.ToLower(name) {
	case "", EncodingASCII:
		return charset{}, nil
	case EncodingEBCDIC037:
		return charset{enc: charmap.CodePage037}, nil
	}
	return charset{}, fmt.Errorf("unsupported encoding %q", name)
}

func (cs charset) encode(text []byte) ([]byte, error) {
	if cs.enc == nil {
		return text, nil
	}
	return cs.enc.NewEncoder().Bytes(text)
}

func (cs charset) decode(raw []byte) (string, error) {
	if cs.enc == nil {
		return string(raw), nil
	}
	out, err := cs.enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// encodeByte maps a pad byte. NUL is NUL in every supported code page.
func (cs charset) encodeByte(b byte) (byte, error) {
	if cs.enc == nil || b == 0 {
		return b, nil
	}
	out, err := cs.encode([]byte{b})
	if err != nil {
		return 0, err
	}
	if len(out) != 1 {
		return 0, fmt.Errorf("pad byte %q does not map to a single byte", b)
	}
	return out[0], nil
}
