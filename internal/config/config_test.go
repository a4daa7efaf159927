package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 480, cfg.Surface.Width)
	assert.Equal(t, 200, cfg.Surface.Height)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, cfg.BackgroundColor())
	assert.Equal(t, color.NRGBA{A: 255}, cfg.StatePen().Color)
	assert.True(t, cfg.Remote.Enabled)
	assert.Equal(t, 8889, cfg.Remote.Port)
}

func TestLoadFile(t *testing.T) {
	yaml := `
surface:
  width: 600
  height: 240
background: "#fafafa"
pen:
  color: "#1a237e"
  width: 3
remote:
  enabled: false
  port: 9000
`
	path := filepath.Join(t.TempDir(), "sigpad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 600, cfg.Surface.Width)
	assert.Equal(t, color.NRGBA{R: 0x1a, G: 0x23, B: 0x7e, A: 255}, cfg.StatePen().Color)
	assert.Equal(t, float32(3), cfg.StatePen().Width)
	assert.False(t, cfg.Remote.Enabled)
	assert.True(t, cfg.Remote.Advertise)
	assert.Equal(t, 9000, cfg.Remote.Port)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsBadValues(t *testing.T) {
	for _, in := range []string{
		`background: "chartreuse"`,
		`pen: {color: "#12"}`,
		`remote: {port: 70000}`,
		`surface: {width: 10000}`,
		`surface: [`,
	} {
		_, err := Parse([]byte(in))
		assert.Error(t, err, in)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#f00")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, c)

	c, err = ParseHexColor("00ff0080")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{G: 255, A: 0x80}, c)

	_, err = ParseHexColor("#zzzzzz")
	assert.Error(t, err)

	assert.Equal(t, "#1a237e", HexColor(color.NRGBA{R: 0x1a, G: 0x23, B: 0x7e, A: 255}))
	assert.Equal(t, "#00ff0080", HexColor(color.NRGBA{G: 255, A: 0x80}))
}
