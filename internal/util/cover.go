package util

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
)

// MaxCoverBytes caps cover image uploads at 2 MB.
const MaxCoverBytes = 2 * 1024 * 1024

// LoadCoverArt reads an image file and returns it as a base64 data URI for
// storage inside a book record. Size and content-type checks happen here,
// at the edge; the store never inspects cover data.
func LoadCoverArt(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("reading cover: %w", err)
	}
	if info.Size() > MaxCoverBytes {
		return "", fmt.Errorf("cover image is %s, must be under %s",
			HumanBytes(info.Size()), HumanBytes(MaxCoverBytes))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading cover: %w", err)
	}

	mime := http.DetectContentType(data)
	switch mime {
	case "image/png", "image/jpeg", "image/gif", "image/webp":
	default:
		return "", fmt.Errorf("unsupported cover type %s: use png, jpeg, gif, or webp", mime)
	}

	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)), nil
}

// HumanBytes renders a byte count for humans.
func HumanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
