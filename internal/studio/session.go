package studio

import (
	"bytes"
	"encoding/base64"
	"image"

	"imagestudio/internal/mask"
)

// Mode selects between text-to-image generation and image editing.
type Mode string

const (
	ModeGenerate Mode = "generate"
	ModeEdit     Mode = "edit"
)

// State is the whole session: one struct instead of independent flags, so
// transitions are the only way state changes and illegal combinations
// (loading with a visible error, submit while in flight) cannot arise.
type State struct {
	Mode        Mode
	AspectRatio string
	Prompt      string
	Uploaded    *UploadedImage
	Mask        *mask.Layer
	Generated   string
	Loading     bool
	ErrMsg      string
	History     History
}

// MaskExport finalizes the current mask for an edit submit. It is absent
// when no image is loaded or nothing was painted.
func (s State) MaskExport() (string, bool) {
	return s.Mask.ExportPNG()
}

// NewState returns the initial session state.
func NewState() State {
	return State{Mode: ModeGenerate, AspectRatio: "1:1"}
}

// CanSubmit reports whether a generate/edit call may be started: never while
// one is in flight, never without a prompt, and edit mode needs an image.
func (s State) CanSubmit() bool {
	if s.Loading || s.Prompt == "" {
		return false
	}
	if s.Mode == ModeEdit && s.Uploaded == nil {
		return false
	}
	return true
}

// Action is a session state transition.
type Action interface{ isAction() }

type SetMode struct{ Mode Mode }
type SetPrompt struct{ Prompt string }
type SetAspectRatio struct{ Ratio string }
type SetImage struct{ Image *UploadedImage }
type RemoveImage struct{}
type SubmitStarted struct{}
type SubmitSucceeded struct{ ImageBase64 string }
type SubmitFailed struct{ Message string }
type DismissError struct{}
type ReEdit struct{}

func (SetMode) isAction()         {}
func (SetPrompt) isAction()       {}
func (SetAspectRatio) isAction()  {}
func (SetImage) isAction()        {}
func (RemoveImage) isAction()     {}
func (SubmitStarted) isAction()   {}
func (SubmitSucceeded) isAction() {}
func (SubmitFailed) isAction()    {}
func (DismissError) isAction()    {}
func (ReEdit) isAction()          {}

// Reduce applies a to s and returns the next state. Unknown or currently
// illegal actions leave the state unchanged.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case SetMode:
		if s.Loading {
			return s
		}
		s.Mode = act.Mode
		s.ErrMsg = ""
	case SetPrompt:
		s.Prompt = act.Prompt
	case SetAspectRatio:
		s.AspectRatio = act.Ratio
	case SetImage:
		if s.Loading {
			return s
		}
		// A new upload replaces the previous one wholesale, along with its
		// mask layer, which always matches the image's natural dimensions.
		s.Uploaded = act.Image
		s.Mask = nil
		if act.Image != nil {
			if layer, err := mask.NewLayer(act.Image.Width, act.Image.Height); err == nil {
				s.Mask = layer
			}
		}
		s.ErrMsg = ""
	case RemoveImage:
		if s.Loading {
			return s
		}
		s.Uploaded = nil
		s.Mask = nil
	case SubmitStarted:
		if !s.CanSubmit() {
			return s
		}
		s.Loading = true
		s.ErrMsg = ""
	case SubmitSucceeded:
		if !s.Loading {
			return s
		}
		s.Loading = false
		s.Generated = act.ImageBase64
		s.History = s.History.Push(act.ImageBase64)
	case SubmitFailed:
		if !s.Loading {
			return s
		}
		s.Loading = false
		s.ErrMsg = act.Message
	case DismissError:
		s.ErrMsg = ""
	case ReEdit:
		if s.Loading || s.Generated == "" {
			return s
		}
		// Generated results are always PNG; editing one starts from it,
		// with a fresh mask layer at the result's natural dimensions.
		up := &UploadedImage{
			DataURL:  "data:image/png;base64," + s.Generated,
			MIMEType: "image/png",
		}
		s.Mask = nil
		if data, err := base64.StdEncoding.DecodeString(s.Generated); err == nil {
			if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
				up.Data = data
				up.Width = cfg.Width
				up.Height = cfg.Height
				if layer, err := mask.NewLayer(cfg.Width, cfg.Height); err == nil {
					s.Mask = layer
				}
			}
		}
		s.Uploaded = up
		s.Generated = ""
		s.Mode = ModeEdit
	}
	return s
}
