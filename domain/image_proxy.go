package domain

import (
	"net/url"
	"strings"
	"time"

	apperrors "antena/utils/errors"
)

// ImageProxyResult represents fetched image bytes ready for passthrough.
type ImageProxyResult struct {
	Data        []byte
	ContentType string
}

// ImageProxyCacheTTL is the cache lifetime advertised to intermediaries.
const ImageProxyCacheTTL = 12 * time.Hour

// ValidateProxySource checks that a proxy source is an absolute http(s)
// URL. Anything else is rejected before any network activity.
func ValidateProxySource(src string) error {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return apperrors.ValidationError("proxy source is empty", apperrors.ErrInvalidInput, nil)
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return apperrors.ValidationError("proxy source is not a URL", apperrors.ErrInvalidInput,
			map[string]interface{}{"src": trimmed})
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperrors.ValidationError("proxy source must be an absolute http(s) URL", apperrors.ErrInvalidInput,
			map[string]interface{}{"src": trimmed})
	}

	return nil
}
