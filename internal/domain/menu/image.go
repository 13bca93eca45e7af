package menu

import (
	"strings"

	"cafe-menu-service/internal/pkg/errs"
)

// ImageAsset pairs a stored original with its thumbnail. Either both exist or there is no image.
type ImageAsset struct {
	originalPath  string
	thumbnailPath string
}

// NewImageAsset returns (nil, nil) when both paths are nil.
func NewImageAsset(originalPath, thumbnailPath *string) (*ImageAsset, error) {
	if originalPath == nil && thumbnailPath == nil {
		return nil, nil
	}
	orig, thumb := trimPtr(originalPath), trimPtr(thumbnailPath)
	if orig == "" || thumb == "" {
		return nil, errs.Validation(errs.NewDetail("", CodeImageIncomplete,
			"image requires both original and thumbnail paths"))
	}
	return &ImageAsset{originalPath: orig, thumbnailPath: thumb}, nil
}

func ReconstructImageAsset(originalPath, thumbnailPath string) *ImageAsset {
	return &ImageAsset{originalPath: originalPath, thumbnailPath: thumbnailPath}
}

func (a ImageAsset) OriginalPath() string  { return a.originalPath }
func (a ImageAsset) ThumbnailPath() string { return a.thumbnailPath }

func trimPtr(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
