package strsafe

// Legacy flag word bits. The low byte carries the fill value.
const (
	STRSAFE_IGNORE_NULLS     uint32 = 0x00000100
	STRSAFE_FILL_BEHIND_NULL uint32 = 0x00000200
	STRSAFE_FILL_ON_FAILURE  uint32 = 0x00000400
	STRSAFE_NULL_ON_FAILURE  uint32 = 0x00000800
	STRSAFE_NO_TRUNCATION    uint32 = 0x00001000

	STRSAFE_VALID_FLAGS = 0x000000ff | STRSAFE_IGNORE_NULLS | STRSAFE_FILL_BEHIND_NULL |
		STRSAFE_FILL_ON_FAILURE | STRSAFE_NULL_ON_FAILURE | STRSAFE_NO_TRUNCATION
)

// Options controls the extended (Ex) operations.
type Options struct {
	// IgnoreNulls treats a nil source as the empty string and a nil
	// destination as a successful no-op.
	IgnoreNulls bool
	// FillBehindNull fills every slot after the terminator with Fill on success.
	FillBehindNull bool
	// FillOnFailure fills the whole destination with Fill on failure and
	// terminates it in the last slot. It wins over NullOnFailure.
	FillOnFailure bool
	// NullOnFailure leaves an empty string in the destination on failure.
	NullOnFailure bool
	// NoTruncation reports an overflow without keeping the truncated data.
	NoTruncation bool
	// Fill is written into every byte of each filled code unit.
	Fill byte
}

func (o Options) failurePolicy() bool {
	return o.FillOnFailure || o.NullOnFailure || o.NoTruncation
}

// Flags packs o into the legacy flag word.
func (o Options) Flags() uint32 {
	var dw uint32
	if o.IgnoreNulls {
		dw |= STRSAFE_IGNORE_NULLS
	}
	if o.FillBehindNull {
		dw |= STRSAFE_FILL_BEHIND_NULL
	}
	if o.FillOnFailure {
		dw |= STRSAFE_FILL_ON_FAILURE
	}
	if o.NullOnFailure {
		dw |= STRSAFE_NULL_ON_FAILURE
	}
	if o.NoTruncation {
		dw |= STRSAFE_NO_TRUNCATION
	}
	if o.FillBehindNull || o.FillOnFailure {
		dw |= uint32(o.Fill)
	}
	return dw
}

// ParseFlags unpacks a legacy flag word. Bits outside STRSAFE_VALID_FLAGS
// are rejected with STRSAFE_E_INVALID_PARAMETER.
func ParseFlags(dwFlags uint32) (Options, HRESULT) {
	if dwFlags&^STRSAFE_VALID_FLAGS != 0 {
		return Options{}, STRSAFE_E_INVALID_PARAMETER
	}
	o := Options{
		IgnoreNulls:    dwFlags&STRSAFE_IGNORE_NULLS != 0,
		FillBehindNull: dwFlags&STRSAFE_FILL_BEHIND_NULL != 0,
		FillOnFailure:  dwFlags&STRSAFE_FILL_ON_FAILURE != 0,
		NullOnFailure:  dwFlags&STRSAFE_NULL_ON_FAILURE != 0,
		NoTruncation:   dwFlags&STRSAFE_NO_TRUNCATION != 0,
	}
	if o.FillBehindNull || o.FillOnFailure {
		o.Fill = byte(dwFlags & 0xff)
	}
	return o, S_OK
}
