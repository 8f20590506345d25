package studio

import (
	"bytes"
	"encoding/base64"
	"image"
	"strings"

	// Upload decoding supports the three accepted formats.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// MaxUploadBytes caps the decoded size of an uploaded image.
const MaxUploadBytes = 10 << 20

// UploadedImage is a decoded user upload held in session state. Width and
// Height are the natural pixel dimensions the mask layer must match.
type UploadedImage struct {
	DataURL  string
	MIMEType string
	Data     []byte
	Width    int
	Height   int
}

// Base64Data returns the payload of the data URL without its MIME prefix.
func (u *UploadedImage) Base64Data() string {
	if i := strings.IndexByte(u.DataURL, ','); i >= 0 {
		return u.DataURL[i+1:]
	}
	return ""
}

// UploadError reports a client-side upload problem: unsupported type,
// oversize file, or unreadable data. It never reaches the backend.
type UploadError struct {
	Reason string
}

func (e *UploadError) Error() string { return "upload: " + e.Reason }

var allowedUploadTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/webp": {},
}

// DecodeUpload parses a base64 data URL produced by a file selection or drop,
// enforces the accepted MIME types and size cap, and reads the image's
// natural dimensions.
func DecodeUpload(dataURL string) (*UploadedImage, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return nil, &UploadError{Reason: "not a data URL"}
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, &UploadError{Reason: "malformed data URL"}
	}
	mimeType, enc, _ := strings.Cut(meta, ";")
	if enc != "base64" {
		return nil, &UploadError{Reason: "data URL is not base64-encoded"}
	}
	if _, ok := allowedUploadTypes[mimeType]; !ok {
		return nil, &UploadError{Reason: "unsupported image type " + mimeType}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, &UploadError{Reason: "unreadable image data"}
	}
	if len(data) > MaxUploadBytes {
		return nil, &UploadError{Reason: "image exceeds the size limit"}
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &UploadError{Reason: "undecodable image data"}
	}

	return &UploadedImage{
		DataURL:  dataURL,
		MIMEType: mimeType,
		Data:     data,
		Width:    cfg.Width,
		Height:   cfg.Height,
	}, nil
}
