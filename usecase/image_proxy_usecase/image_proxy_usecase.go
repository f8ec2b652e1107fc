// Package image_proxy_usecase validates proxy sources and fetches the image
// bytes for passthrough serving.
package image_proxy_usecase

import (
	"context"

	"antena/domain"
	"antena/port/image_proxy_port"
)

type ImageProxyUsecase struct {
	imagePort image_proxy_port.FetchImagePort
}

func NewImageProxyUsecase(imagePort image_proxy_port.FetchImagePort) *ImageProxyUsecase {
	return &ImageProxyUsecase{imagePort: imagePort}
}

// Execute rejects non-absolute or non-http(s) sources with
// errors.ErrInvalidInput before any network activity happens.
func (u *ImageProxyUsecase) Execute(ctx context.Context, src string) (*domain.ImageProxyResult, error) {
	if err := domain.ValidateProxySource(src); err != nil {
		return nil, err
	}

	return u.imagePort.FetchImage(ctx, src)
}
