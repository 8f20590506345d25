package imagegen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

const (
	// DefaultEditModel is the multimodal image model used for edits.
	DefaultEditModel = "gemini-2.5-flash-image"
	// DefaultGenerateModel is the text-to-image model used for generation.
	DefaultGenerateModel = "imagen-4.0-generate-001"
)

// models is the slice of the genai SDK surface the orchestrator touches.
// *genai.Models satisfies it; tests substitute a mock.
type models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateImages(ctx context.Context, model string, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

// Options configures the Gemini orchestrator.
type Options struct {
	APIKey        string
	EditModel     string
	GenerateModel string
	Logger        zerolog.Logger
}

// Gemini translates validated generate/edit requests into the model's
// expected payload shape and interprets its responses. It holds no mutable
// state; each call is an independent round trip.
type Gemini struct {
	models        models
	editModel     string
	generateModel string
	logger        zerolog.Logger
}

// NewGemini builds the orchestrator over the official SDK client.
func NewGemini(ctx context.Context, opts Options) (*Gemini, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("imagegen: API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("imagegen: create genai client: %w", err)
	}

	g := &Gemini{
		models:        client.Models,
		editModel:     opts.EditModel,
		generateModel: opts.GenerateModel,
		logger:        opts.Logger,
	}
	if g.editModel == "" {
		g.editModel = DefaultEditModel
	}
	if g.generateModel == "" {
		g.generateModel = DefaultGenerateModel
	}
	return g, nil
}

var (
	_ Generator = (*Gemini)(nil)
	_ Editor    = (*Gemini)(nil)
)

// Generate produces a single image for the prompt, honoring the aspect-ratio
// hint. The first returned image's bytes win; an empty result is
// ErrNoImageData.
func (g *Gemini) Generate(ctx context.Context, p GenerateParams) ([]byte, error) {
	resp, err := g.models.GenerateImages(ctx, g.generateModel, p.Prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    p.AspectRatio,
		OutputMIMEType: "image/png",
	})
	if err != nil {
		return nil, g.classify(err)
	}
	for _, img := range resp.GeneratedImages {
		if img != nil && img.Image != nil && len(img.Image.ImageBytes) > 0 {
			g.logger.Debug().
				Str("model", g.generateModel).
				Str("aspect_ratio", p.AspectRatio).
				Int("bytes", len(img.Image.ImageBytes)).
				Msg("imagegen: generated image")
			return img.Image.ImageBytes, nil
		}
	}
	return nil, ErrNoImageData
}

// Edit sends the image, the optional mask (re-tagged as PNG) and the
// instruction text to the edit model and extracts the returned image. A
// text-only reply is surfaced as *GenerationFailedError carrying that text.
func (g *Gemini) Edit(ctx context.Context, p EditParams) ([]byte, error) {
	masked := len(p.MaskData) > 0

	parts := []*genai.Part{
		{InlineData: &genai.Blob{MIMEType: p.MIMEType, Data: p.ImageData}},
	}
	if masked {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: "image/png", Data: p.MaskData},
		})
	}
	parts = append(parts, &genai.Part{Text: EditInstruction(p.Prompt, masked)})

	contents := []*genai.Content{{Role: "user", Parts: parts}}
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: editSystemInstruction}},
		},
	}

	resp, err := g.models.GenerateContent(ctx, g.editModel, contents, config)
	if err != nil {
		return nil, g.classify(err)
	}

	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil {
				continue
			}
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				g.logger.Debug().
					Str("model", g.editModel).
					Bool("masked", masked).
					Int("bytes", len(part.InlineData.Data)).
					Msg("imagegen: edited image")
				return part.InlineData.Data, nil
			}
			if part.Text != "" {
				text.WriteString(part.Text)
			}
		}
	}

	if reason := strings.TrimSpace(text.String()); reason != "" {
		return nil, &GenerationFailedError{Reason: reason}
	}
	return nil, ErrNoImageData
}

// classify folds SDK failures into *UpstreamError, keeping the upstream
// status code when one was reported.
func (g *Gemini) classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		g.logger.Warn().
			Int("status", apiErr.Code).
			Str("upstream_status", apiErr.Status).
			Msg("imagegen: upstream rejected request")
		return &UpstreamError{StatusCode: apiErr.Code, Message: apiErr.Message, Err: err}
	}
	g.logger.Warn().Err(err).Msg("imagegen: upstream call failed")
	return &UpstreamError{Message: "model call failed", Err: err}
}
