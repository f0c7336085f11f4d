package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(map[string]any{
		"encoding":     "ebcdic037",
		"recordlength": "128",
		"truncate":     true,
		"maxtotal":     4,
		"maxidle":      2,
	})
	require.NoError(t, err)
	assert.Equal(t, EncodingEBCDIC037, cfg.Encoding)
	assert.Equal(t, 128, cfg.RecordLength)
	assert.True(t, cfg.Truncate)
	assert.Equal(t, 4, cfg.MaxTotal)
	assert.Equal(t, 2, cfg.MaxIdle)
	assert.Equal(t, 300, cfg.MaxIdleLifeTime)
}

func TestDecodeConfigDefaults(t *testing.T) {
	cfg, err := DecodeConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestDecodeConfigErrors(t *testing.T) {
	for name, raw := range map[string]map[string]any{
		"unknown key":        {"recordsize": 10},
		"unknown encoding":   {"encoding": "utf8"},
		"zero length":        {"recordlength": 0},
		"idle above total":   {"maxtotal": 2, "maxidle": 3},
		"min idle above max": {"maxidle": 1, "minidle": 2},
		"not a number":       {"maxtotal": "many"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeConfig(raw)
			assert.Error(t, err)
		})
	}
}
