// Package images converts between raw image bytes and the data URLs stored
// in the résumé record.
package images

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// MaxBytes caps accepted image payloads. Covers uploads and refetched
// remote avatars alike; data URLs of this size already stress the renderer.
const MaxBytes = 5 << 20

var httpClient = &http.Client{Timeout: 15 * time.Second}

// DataURL sniffs the content type of raw bytes and encodes them as a data
// URL. Non-image content and oversized payloads are rejected.
func DataURL(data []byte) (string, error) {
	if len(data) == 0 {
		return "", &ImageError{Message: "empty image payload"}
	}
	if len(data) > MaxBytes {
		return "", ErrTooLarge
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", &ImageError{Message: fmt.Sprintf("unsupported content type %s", mime.String())}
	}

	return "data:" + mime.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// ParseDataURL decodes a data URL back into its media type and raw bytes.
func ParseDataURL(url string) (string, []byte, error) {
	if !strings.HasPrefix(url, "data:") {
		return "", nil, &ImageError{Message: "not a data URL"}
	}

	meta, payload, found := strings.Cut(url[len("data:"):], ",")
	if !found {
		return "", nil, &ImageError{Message: "malformed data URL"}
	}

	mime, _, _ := strings.Cut(meta, ";")
	if !strings.Contains(meta, ";base64") {
		return "", nil, &ImageError{Message: "only base64 data URLs are supported"}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, &ImageError{Message: "failed to decode data URL payload", Cause: err}
	}
	return mime, data, nil
}

// Fetch downloads a remote image, applying the same size and content-type
// rules as DataURL. Used to turn a stock avatar reference into bytes an
// image edit can start from.
func Fetch(ctx context.Context, url string) (string, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", nil, &ImageError{Message: "failed to build image request", Cause: err}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", nil, &ImageError{Message: "failed to fetch image", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, &ImageError{Message: fmt.Sprintf("image fetch returned status %d", resp.StatusCode)}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBytes+1))
	if err != nil {
		return "", nil, &ImageError{Message: "failed to read image body", Cause: err}
	}
	if len(data) > MaxBytes {
		return "", nil, ErrTooLarge
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", nil, &ImageError{Message: fmt.Sprintf("fetched content is %s, not an image", mime.String())}
	}
	return mime.String(), data, nil
}
