package imagegen

import "context"

// GenerateParams describes a text-to-image request.
type GenerateParams struct {
	Prompt      string
	AspectRatio string
}

// EditParams describes an image edit request. MaskData is optional; when nil
// the edit is unconstrained. A present mask is always transported as PNG
// regardless of the source image's MIME type.
type EditParams struct {
	Prompt    string
	ImageData []byte
	MIMEType  string
	MaskData  []byte
}

// Generator produces an image from a text prompt and an aspect-ratio hint.
type Generator interface {
	Generate(ctx context.Context, p GenerateParams) ([]byte, error)
}

// Editor applies a prompt-driven edit to an uploaded image, optionally
// constrained by a black/white mask.
type Editor interface {
	Edit(ctx context.Context, p EditParams) ([]byte, error)
}

// AspectRatios is the fixed set of supported width:height labels.
var AspectRatios = []string{"1:1", "3:4", "4:3", "9:16", "16:9"}

// ValidAspectRatio reports whether ratio is one of the supported labels.
func ValidAspectRatio(ratio string) bool {
	for _, r := range AspectRatios {
		if r == ratio {
			return true
		}
	}
	return false
}
