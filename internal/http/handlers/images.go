package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"imagestudio/internal/imagegen"
)

type generateRequest struct {
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspectRatio"`
}

type editRequest struct {
	Prompt          string `json:"prompt"`
	ImageBase64Data string `json:"imageBase64Data"`
	MimeType        string `json:"mimeType"`
	MaskBase64Data  string `json:"maskBase64Data"`
}

type imageResponse struct {
	ImageBase64 string `json:"imageBase64"`
}

// GenerateImage handles POST /api/generate.
func (a *App) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		a.error(w, http.StatusBadRequest, "prompt is required")
		return
	}
	if req.AspectRatio == "" {
		a.error(w, http.StatusBadRequest, "aspectRatio is required")
		return
	}
	if !imagegen.ValidAspectRatio(req.AspectRatio) {
		a.error(w, http.StatusBadRequest, "unsupported aspect ratio")
		return
	}

	data, err := a.Generator.Generate(r.Context(), imagegen.GenerateParams{
		Prompt:      req.Prompt,
		AspectRatio: req.AspectRatio,
	})
	if err != nil {
		a.imageError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, imageResponse{ImageBase64: base64.StdEncoding.EncodeToString(data)})
}

// EditImage handles POST /api/edit.
func (a *App) EditImage(w http.ResponseWriter, r *http.Request) {
	var req editRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		a.error(w, http.StatusBadRequest, "prompt is required")
		return
	}
	if req.ImageBase64Data == "" {
		a.error(w, http.StatusBadRequest, "imageBase64Data is required")
		return
	}
	if req.MimeType == "" {
		a.error(w, http.StatusBadRequest, "mimeType is required")
		return
	}

	imageData, err := base64.StdEncoding.DecodeString(req.ImageBase64Data)
	if err != nil {
		a.error(w, http.StatusBadRequest, "invalid image data")
		return
	}
	var maskData []byte
	if req.MaskBase64Data != "" {
		maskData, err = base64.StdEncoding.DecodeString(req.MaskBase64Data)
		if err != nil {
			a.error(w, http.StatusBadRequest, "invalid mask data")
			return
		}
	}

	data, err := a.Editor.Edit(r.Context(), imagegen.EditParams{
		Prompt:    req.Prompt,
		ImageData: imageData,
		MIMEType:  req.MimeType,
		MaskData:  maskData,
	})
	if err != nil {
		a.imageError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, imageResponse{ImageBase64: base64.StdEncoding.EncodeToString(data)})
}

// imageError classifies an orchestrator failure into the HTTP contract.
// Upstream auth failures and rate limits pass their message through; model
// refusals are the caller's problem; everything else collapses to a generic
// 500 so upstream internals do not leak.
func (a *App) imageError(w http.ResponseWriter, r *http.Request, err error) {
	var genFailed *imagegen.GenerationFailedError
	var upstream *imagegen.UpstreamError

	switch {
	case errors.As(err, &genFailed):
		a.error(w, http.StatusBadRequest, genFailed.Reason)
	case errors.As(err, &upstream) && upstream.AuthFailure():
		a.error(w, http.StatusUnauthorized, upstream.Message)
	case errors.As(err, &upstream) && upstream.RateLimited():
		a.error(w, http.StatusTooManyRequests, upstream.Message)
	case errors.Is(err, imagegen.ErrNoImageData):
		a.error(w, http.StatusInternalServerError, imagegen.ErrNoImageData.Error())
	default:
		a.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("image request failed")
		a.error(w, http.StatusInternalServerError, "image generation failed")
	}
}
