package record

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/GPA-Gruppo-Progetti-Avanzati-SRL/go-strsafe"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// Codec writes tagged structs into fixed-length record areas and reads them
// back. Every slot is written with the bounded copy routines, so a value can
// never spill into the next field.
type Codec struct {
	cfg     *Config
	metrics *Metrics
	pool    *AreaPool
	cs      charset
}

func New(cfg *Config, metrics *Metrics) (*Codec, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cs, err := charsetFor(cfg.Encoding)
	if err != nil {
		return nil, technicalError(err)
	}
	if metrics == nil {
		metrics = noopMetrics()
	}
	return &Codec{
		cfg:     cfg,
		metrics: metrics,
		pool:    NewAreaPool(context.Background(), cfg, metrics),
		cs:      cs,
	}, nil
}

func (c *Codec) Close(ctx context.Context) {
	c.pool.Close(ctx)
}

func (c *Codec) Pool() *AreaPool { return c.pool }

// Size returns the number of bytes the record of v occupies.
func (c *Codec) Size(v any) (int, error) {
	value, err := structValue(v)
	if err != nil {
		return 0, err
	}
	l, err := layoutOf(value.Type())
	if err != nil {
		return 0, err
	}
	return l.size, nil
}

func structValue(v any) (reflect.Value, error) {
	value := reflect.ValueOf(v)
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return value, recordError("nil %s", value.Type())
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return value, recordError("value is not a struct: %s", value.Kind())
	}
	return value, nil
}

// MarshalTo writes v into dst and returns the record length. dst is cleared
// up to the record length first.
func (c *Codec) MarshalTo(ctx context.Context, dst []byte, v any) (int, error) {
	start := time.Now()
	defer func() {
		c.metrics.MarshalDuration.Record(ctx, time.Since(start).Microseconds())
	}()

	value, err := structValue(v)
	if err != nil {
		return 0, err
	}
	if err := validate.Struct(v); err != nil {
		return 0, technicalError(err)
	}
	l, err := layoutOf(value.Type())
	if err != nil {
		return 0, err
	}
	if len(dst) < l.size {
		return 0, recordError("area of %d bytes too small for %s", len(dst), l)
	}

	clear(dst[:l.size])
	for i := range l.fields {
		if err := c.writeField(ctx, dst, &l.fields[i], value.Field(l.fields[i].index)); err != nil {
			c.metrics.FieldsFailed.Add(ctx, 1)
			return 0, err
		}
	}
	log.Trace().Msgf("marshalled %s", l)
	return l.size, nil
}

func (c *Codec) writeField(ctx context.Context, dst []byte, f *field, fv reflect.Value) error {
	var text string
	truncate := f.truncate || c.cfg.Truncate
	switch f.kind {
	case reflect.String:
		text = fv.String()
	default:
		text = fmt.Sprintf("%0*d", f.length-1, fv.Int())
		truncate = false
	}

	encoded, err := c.cs.encode([]byte(text))
	if err != nil {
		return recordError("field %s: %v", f.name, err)
	}
	pad, err := c.cs.encodeByte(f.pad)
	if err != nil {
		return recordError("field %s: %v", f.name, err)
	}

	opts := strsafe.Options{IgnoreNulls: true, FillBehindNull: true, Fill: pad}
	if !truncate {
		opts.NoTruncation = true
		opts.NullOnFailure = true
	}
	slot := dst[f.start:f.end()]
	end, _, hr := strsafe.StringCchCopyExA(slot, encoded, opts)
	switch {
	case hr == strsafe.S_OK:
	case hr == strsafe.STRSAFE_E_INSUFFICIENT_BUFFER && truncate:
		log.Debug().Msgf("field %s truncated to %d bytes", f.name, end)
		c.metrics.FieldsTruncated.Add(ctx, 1)
	default:
		log.Error().Msgf("field %s: %d bytes do not fit a slot of %d", f.name, len(encoded), f.length)
		return fieldError(f.name, hr)
	}
	c.metrics.FieldsWritten.Add(ctx, 1)
	return nil
}

// MarshalArea writes v into a pooled area. The caller releases the area.
func (c *Codec) MarshalArea(ctx context.Context, v any) (*Area, error) {
	a, err := c.pool.Borrow(ctx)
	if err != nil {
		return nil, err
	}
	n, err := c.MarshalTo(ctx, a.buf, v)
	if err != nil {
		if rerr := a.Release(ctx); rerr != nil {
			log.Error().Err(rerr).Msg("error returning area")
		}
		return nil, err
	}
	a.n = n
	return a, nil
}

func (c *Codec) Marshal(ctx context.Context, v any) ([]byte, error) {
	a, err := c.MarshalArea(ctx, v)
	if err != nil {
		return nil, err
	}
	out := append([]byte(nil), a.Bytes()...)
	if err := a.Release(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

// Unmarshal reads the record in data into the struct v points to. Each slot
// must hold its terminator.
func (c *Codec) Unmarshal(ctx context.Context, data []byte, v any) error {
	value := reflect.ValueOf(v)
	if value.Kind() != reflect.Pointer || value.IsNil() {
		return recordError("unmarshal needs a non-nil pointer, got %T", v)
	}
	value = value.Elem()
	if value.Kind() != reflect.Struct {
		return recordError("value is not a struct: %s", value.Kind())
	}
	l, err := layoutOf(value.Type())
	if err != nil {
		return err
	}
	if len(data) < l.size {
		return recordError("record of %d bytes too short for %s", len(data), l)
	}

	for _, f := range l.fields {
		slot := data[f.start:f.end()]
		n, hr := strsafe.StringCchLengthA(slot, len(slot))
		if strsafe.Failed(hr) {
			return fieldError(f.name, hr)
		}
		s, err := c.cs.decode(slot[:n])
		if err != nil {
			return recordError("field %s: %v", f.name, err)
		}
		fv := value.Field(f.index)
		switch f.kind {
		case reflect.String:
			fv.SetString(s)
		default:
			i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
			if err != nil {
				return recordError("field %s: %v", f.name, err)
			}
			if fv.OverflowInt(i) {
				return recordError("field %s: %d overflows %s", f.name, i, fv.Kind())
			}
			fv.SetInt(i)
		}
	}
	log.Trace().Msgf("unmarshalled %s", l)

	if err := validate.Struct(v); err != nil {
		return technicalError(err)
	}
	return nil
}
