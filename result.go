package strsafe

import (
	"fmt"

	"github.com/GPA-Gruppo-Progetti-Avanzati-SRL/go-core-app"
	"github.com/rs/zerolog/log"
)

// HRESULT is the status returned by every operation. Check it with
// Succeeded or Failed.
type HRESULT uint32

const (
	S_OK                          HRESULT = 0x0000
	STRSAFE_E_END_OF_FILE         HRESULT = 0x0001
	STRSAFE_E_INVALID_PARAMETER   HRESULT = 0x0002
	STRSAFE_E_INSUFFICIENT_BUFFER HRESULT = 0x0004
)

// MaxCch is the largest capacity accepted, in characters or bytes.
const MaxCch = 0x7fffffff

const ErrorAmbit = "strsafe"

func Succeeded(hr HRESULT) bool {
	return hr == S_OK
}

func Failed(hr HRESULT) bool {
	return hr != S_OK
}

func (hr HRESULT) String() string {
	switch hr {
	case S_OK:
		return "S_OK"
	case STRSAFE_E_END_OF_FILE:
		return "STRSAFE_E_END_OF_FILE"
	case STRSAFE_E_INVALID_PARAMETER:
		return "STRSAFE_E_INVALID_PARAMETER"
	case STRSAFE_E_INSUFFICIENT_BUFFER:
		return "STRSAFE_E_INSUFFICIENT_BUFFER"
	}
	return fmt.Sprintf("HRESULT(0x%04x)", uint32(hr))
}

func (hr HRESULT) Error() string {
	return "strsafe: " + hr.String()
}

// Err returns nil for S_OK and the HRESULT itself otherwise, so results can
// flow through ordinary error handling and be matched with errors.Is.
func (hr HRESULT) Err() error {
	if Succeeded(hr) {
		return nil
	}
	return hr
}

// ApplicationError converts a failed HRESULT into the application error
// surfaced to service callers. It returns nil on success.
func ApplicationError(ambit string, hr HRESULT) *core.ApplicationError {
	if Succeeded(hr) {
		return nil
	}
	if ambit == "" {
		ambit = ErrorAmbit
	}
	return &core.ApplicationError{
		StatusCode: 500,
		Ambit:      ambit,
		Code:       fmt.Sprintf("%04x", uint32(hr)),
		Message:    hr.String(),
	}
}

func traceResult(op string, hr HRESULT, cch int) HRESULT {
	if Failed(hr) {
		log.Trace().Str("op", op).Stringer("result", hr).Int("cch", cch).Msg("strsafe operation failed")
	}
	return hr
}
