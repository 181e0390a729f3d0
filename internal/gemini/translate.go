package gemini

import (
	"fmt"

	"github.com/genz27/Nano-Gaallery/internal/domain"
)

// MIME defaults for untagged payloads. Uploads default to JPEG, generated
// output to PNG, matching the remote API's own conventions.
const (
	defaultUploadMime = "image/jpeg"
	defaultOutputMime = "image/png"
)

// BuildRequest translates a generation request into the wire payload.
// Part order is fixed: all reference images first, in their original upload
// order, then a single text part iff the prompt is non-empty. The image size
// is included only for the pro variant; the base variant silently ignores it.
func BuildRequest(req *domain.GenerationRequest) *GenerateContentRequest {
	parts := make([]Part, 0, len(req.ReferenceImages)+1)

	for _, ref := range req.ReferenceImages {
		mime := ref.MimeType
		if mime == "" {
			mime = defaultUploadMime
		}
		parts = append(parts, Part{InlineData: &InlineData{
			MimeType: mime,
			Data:     ref.Data,
		}})
	}

	if req.Prompt != "" {
		parts = append(parts, Part{Text: req.Prompt})
	}

	ratio := req.AspectRatio
	if ratio == "" {
		ratio = domain.DefaultAspectRatio
	}

	imgCfg := &ImageConfig{AspectRatio: ratio}
	if req.Model == domain.ModelPro && req.ImageSize != "" {
		imgCfg.ImageSize = req.ImageSize
	}

	return &GenerateContentRequest{
		Contents: []Content{{Parts: parts}},
		GenerationConfig: &GenerationConfig{
			ResponseModalities: []string{"IMAGE"},
			ImageConfig:        imgCfg,
		},
	}
}

// Image is one inline image extracted from an API response.
type Image struct {
	MimeType string
	Data     string // base64
}

// DataURL returns the self-contained data URL form of the image.
func (i Image) DataURL() string {
	return "data:" + i.MimeType + ";base64," + i.Data
}

// ParseResponse extracts every inline image from the response, preserving
// the API's part ordering across candidates. If the response carries no
// image data at all, the error message is the first text part verbatim
// (prefixed) when one exists, or a generic failure otherwise.
func ParseResponse(resp *GenerateContentResponse) ([]Image, error) {
	var images []Image
	var explanation string

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				mime := part.InlineData.MimeType
				if mime == "" {
					mime = defaultOutputMime
				}
				images = append(images, Image{MimeType: mime, Data: part.InlineData.Data})
			} else if part.Text != "" && explanation == "" {
				explanation = part.Text
			}
		}
	}

	if len(images) == 0 {
		if explanation != "" {
			return nil, &domain.RemoteError{Message: fmt.Sprintf("image generation failed: %s", explanation)}
		}
		return nil, &domain.RemoteError{Message: "generation succeeded but returned no image data"}
	}

	return images, nil
}
