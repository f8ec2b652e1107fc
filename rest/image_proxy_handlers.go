package rest

import (
	"fmt"
	"net/http"

	"antena/domain"
	"antena/usecase/image_proxy_usecase"
	apperrors "antena/utils/errors"
	"antena/utils/logger"

	"github.com/labstack/echo/v4"
)

type ImageProxyHandler struct {
	usecase *image_proxy_usecase.ImageProxyUsecase
}

func NewImageProxyHandler(usecase *image_proxy_usecase.ImageProxyUsecase) *ImageProxyHandler {
	return &ImageProxyHandler{usecase: usecase}
}

// GetImage proxies a remote image. A missing or non-absolute src is the one
// place in the API that answers 400; a fetch failure still answers 200 with
// a JSON error body.
func (h *ImageProxyHandler) GetImage(c echo.Context) error {
	ctx := c.Request().Context()
	src := c.QueryParam("src")

	result, err := h.usecase.Execute(ctx, src)
	if err != nil {
		if apperrors.IsValidationError(err) {
			return c.JSON(http.StatusBadRequest, ProxyErrorResponse{
				Error: "src must be an absolute http(s) URL",
			})
		}
		logger.Logger.Warn("image proxy fetch failed", "src", src, "error", err)
		return c.JSON(http.StatusOK, ProxyErrorResponse{Error: "could not load image"})
	}

	ttl := int(domain.ImageProxyCacheTTL.Seconds())
	c.Response().Header().Set("Cache-Control", fmt.Sprintf(
		"public, max-age=%d, s-maxage=%d", ttl, ttl,
	))

	return c.Blob(http.StatusOK, result.ContentType, result.Data)
}
