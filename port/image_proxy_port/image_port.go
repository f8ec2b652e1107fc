package image_proxy_port

import (
	"antena/domain"
	"context"
)

//go:generate go run go.uber.org/mock/mockgen -source=image_port.go -destination=../../mocks/mock_image_proxy_port.go -package=mocks

// FetchImagePort fetches raw image bytes for passthrough serving.
type FetchImagePort interface {
	FetchImage(ctx context.Context, src string) (*domain.ImageProxyResult, error)
}
