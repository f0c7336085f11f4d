package record

import (
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
)

const (
	EncodingASCII     = "ascii"
	EncodingEBCDIC037 = "ebcdic037"
)

type Config struct {
	Encoding        string `mapstructure:"encoding" validate:"omitempty,oneof=ascii ebcdic037"`
	RecordLength    int    `mapstructure:"recordlength" validate:"required,min=1,max=2147483647"`
	Truncate        bool   `mapstructure:"truncate"`
	MaxTotal        int    `mapstructure:"maxtotal" validate:"min=1"`
	MaxIdle         int    `mapstructure:"maxidle" validate:"min=0,ltefield=MaxTotal"`
	MinIdle         int    `mapstructure:"minidle" validate:"min=0,ltefield=MaxIdle"`
	MaxIdleLifeTime int    `mapstructure:"maxidlelifetime" validate:"min=0"`
}

func DefaultConfig() *Config {
	return &Config{
		Encoding:        EncodingASCII,
		RecordLength:    4096,
		MaxTotal:        8,
		MaxIdle:         8,
		MinIdle:         0,
		MaxIdleLifeTime: 300,
	}
}

// DecodeConfig overlays raw (as read from a yaml/viper section) on the
// default configuration and validates the result.
func DecodeConfig(raw map[string]any) (*Config, error) {
	cfg := DefaultConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, technicalError(err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, technicalError(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Debug().Msgf("record config decoded: encoding=%s recordlength=%d maxtotal=%d", cfg.Encoding, cfg.RecordLength, cfg.MaxTotal)
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return technicalError(err)
	}
	return nil
}
