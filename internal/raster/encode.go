package raster

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"
)

const dataURIPrefix = "data:image/png;base64,"

var (
	// ErrEncoding wraps every failure of Encode.
	ErrEncoding = errors.New("raster: encoding failed")
	// ErrReleased is returned once the surface has been torn down.
	ErrReleased = errors.New("raster: surface released")
	// ErrNotDataURI is returned by Decode for input without the PNG data URI prefix.
	ErrNotDataURI = errors.New("raster: not a png data uri")
)

// EncodedImage is a self-contained PNG data URI.
type EncodedImage string

// Bytes returns the raw PNG bytes.
func (e EncodedImage) Bytes() ([]byte, error) {
	s := string(e)
	if !strings.HasPrefix(s, dataURIPrefix) {
		return nil, ErrNotDataURI
	}
	return base64.StdEncoding.DecodeString(s[len(dataURIPrefix):])
}

// Decode parses the PNG back into an image.
func (e EncodedImage) Decode() (image.Image, error) {
	b, err := e.Bytes()
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(b))
}

var pngEncoder = png.Encoder{CompressionLevel: png.BestCompression}

func encodePNG(w io.Writer, m image.Image) error {
	return pngEncoder.Encode(w, m)
}

// Encode captures the current surface. It never repaints and never
// modifies the surface.
func (c *Compositor) Encode() (EncodedImage, error) {
	if c.img == nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, ErrReleased)
	}
	var buf bytes.Buffer
	if err := c.encode(&buf, c.img); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return EncodedImage(dataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes())), nil
}

// WritePNG streams the surface as PNG to w.
func (c *Compositor) WritePNG(w io.Writer) error {
	if c.img == nil {
		return fmt.Errorf("%w: %w", ErrEncoding, ErrReleased)
	}
	if err := c.encode(w, c.img); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return nil
}
