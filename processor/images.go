package processor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var imageClient = &http.Client{Timeout: 10 * time.Second}

// FetchImageBytes downloads one uploaded image from the storage collaborator.
func FetchImageBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating image request: %w", err)
	}

	resp, err := imageClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch image: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading image body: %w", err)
	}
	return data, nil
}

// MimeTypeFromURL infers the image MIME type from the filename extension.
// Unknown extensions fall back to image/jpeg.
func MimeTypeFromURL(url string) string {
	ext := ""
	if idx := strings.LastIndex(url, "."); idx != -1 {
		ext = strings.ToLower(url[idx+1:])
	}

	switch ext {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "webp":
		return "image/webp"
	case "gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
