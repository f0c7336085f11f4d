package record

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// Module provides a *Codec built from a supplied *Config. The codec's area
// pool is closed when the application stops.
var Module = fx.Module("strsafe-record",
	fx.Provide(
		GlobalMeter,
		NewMetrics,
		NewCodecWithLifecycle,
	),
)

func NewCodecWithLifecycle(lc fx.Lifecycle, config *Config, metrics *Metrics) (*Codec, error) {
	c, err := New(config, metrics)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("record codec ready: encoding=%s recordlength=%d", c.cfg.Encoding, c.cfg.RecordLength)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			c.Close(ctx)
			return nil
		},
	})
	return c, nil
}
