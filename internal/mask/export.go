package mask

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/draw"
	"image/png"
)

// ExportPNG finalizes the mask for transport. An untouched or cleared layer
// yields ("", false): an absent mask, never an all-white image. Otherwise the
// painted layer is composited onto an opaque white background of identical
// dimensions and returned as a base64 PNG payload without a data-URL header.
// Painted pixels are fully opaque, so the composite contains only pure white
// and pure stroke-color pixels.
func (l *Layer) ExportPNG() (string, bool) {
	if l == nil || l.Empty() {
		return "", false
	}

	out := image.NewRGBA(l.rgba.Rect)
	draw.Draw(out, out.Rect, image.White, image.Point{}, draw.Src)
	draw.Draw(out, out.Rect, l.rgba, l.rgba.Rect.Min, draw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return "", false
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), true
}
