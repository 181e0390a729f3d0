package domain

import "strings"

// Model selects which image model variant handles a generation request.
type Model string

const (
	// ModelFast is the base variant (fast, lower cost).
	ModelFast Model = "fast"
	// ModelPro is the high-resolution variant. Only this variant honors an
	// explicit image size.
	ModelPro Model = "pro"
)

// API model names for the two variants.
const (
	apiModelFast = "gemini-2.5-flash-image"
	apiModelPro  = "gemini-3-pro-image-preview"
)

// ParseModel resolves a user-supplied model string to a Model. It accepts the
// short variant names as well as the raw API model names; anything else falls
// back to the fast variant.
func ParseModel(s string) Model {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ModelPro), apiModelPro:
		return ModelPro
	default:
		return ModelFast
	}
}

// APIName returns the remote API model identifier.
func (m Model) APIName() string {
	if m == ModelPro {
		return apiModelPro
	}
	return apiModelFast
}

// Label returns the human-readable name persisted with generated images.
func (m Model) Label() string {
	if m == ModelPro {
		return "Nano Banana Pro"
	}
	return "Nano Banana"
}

// DefaultAspectRatio is used when a request leaves the ratio unset.
const DefaultAspectRatio = "1:1"

// aspectRatios is the fixed set of ratios the remote API accepts.
var aspectRatios = map[string]bool{
	"1:1": true, "2:3": true, "3:2": true, "3:4": true, "4:3": true,
	"4:5": true, "5:4": true, "9:16": true, "16:9": true, "21:9": true,
}

// imageSizes is the fixed set of output resolutions for the pro variant.
var imageSizes = map[string]bool{"1K": true, "2K": true, "4K": true}

// ValidAspectRatio reports whether s is one of the supported ratios.
func ValidAspectRatio(s string) bool { return aspectRatios[s] }

// ValidImageSize reports whether s is one of the supported resolutions.
func ValidImageSize(s string) bool { return imageSizes[s] }

// ReferenceImage is a user-supplied input image used as generation context.
type ReferenceImage struct {
	Data     string `json:"data"` // base64-encoded binary
	MimeType string `json:"mimeType"`
}

// GenerationRequest carries the parameters of one generation call. It is
// ephemeral and never persisted.
type GenerationRequest struct {
	Model           Model            `json:"model"`
	Prompt          string           `json:"prompt"`
	ReferenceImages []ReferenceImage `json:"images,omitempty"`
	AspectRatio     string           `json:"aspectRatio,omitempty"`
	ImageSize       string           `json:"imageSize,omitempty"`
}

// IsEmpty reports whether the request has neither a usable prompt nor any
// reference images. Such requests are rejected before any network call.
func (r *GenerationRequest) IsEmpty() bool {
	return strings.TrimSpace(r.Prompt) == "" && len(r.ReferenceImages) == 0
}
