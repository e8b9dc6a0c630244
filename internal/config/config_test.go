package config

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOrnament(t *testing.T) {
	cfg := DefaultOrnament()
	assert.Equal(t, 160.0, cfg.Size)
	assert.Equal(t, 28.0, cfg.Glow)
	assert.Equal(t, 0.0, cfg.Rotation)
	assert.False(t, cfg.Pulse)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x02, B: 0xe6, A: 0xff}, cfg.Color)
	require.NoError(t, cfg.Validate())
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{name: "default magenta", in: "#ff02e6", want: color.RGBA{R: 0xff, G: 0x02, B: 0xe6, A: 0xff}},
		{name: "short form", in: "#f0e", want: color.RGBA{R: 0xff, G: 0x00, B: 0xee, A: 0xff}},
		{name: "white", in: "#ffffff", want: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{name: "named color rejected", in: "magenta", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage", in: "#zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrnamentValidate(t *testing.T) {
	cfg := DefaultOrnament()

	cfg.Size = 0
	assert.Error(t, cfg.Validate())
	cfg.Size = -10
	assert.Error(t, cfg.Validate())

	cfg = DefaultOrnament()
	cfg.Glow = -1
	assert.Error(t, cfg.Validate())

	cfg = DefaultOrnament()
	cfg.Glow = 0
	assert.NoError(t, cfg.Validate())
}
