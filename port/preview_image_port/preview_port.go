package preview_image_port

import (
	"context"
)

//go:generate go run go.uber.org/mock/mockgen -source=preview_port.go -destination=../../mocks/mock_preview_image_port.go -package=mocks

// PreviewImagePort fetches a page and extracts its social preview image.
// An empty string with nil error means the page has no preview tag.
type PreviewImagePort interface {
	PreviewImage(ctx context.Context, pageURL string) (string, error)
}
