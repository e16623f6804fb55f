package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// ConvertToWebp re-encodes an image file as webp next to the original and
// removes the source. Returns the new path.
func ConvertToWebp(srcPath string) (string, error) {
	if strings.EqualFold(filepath.Ext(srcPath), ".webp") {
		return srcPath, nil
	}

	img, err := imaging.Open(srcPath, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	dstPath := strings.TrimSuffix(srcPath, filepath.Ext(srcPath)) + ".webp"
	out, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create webp file: %w", err)
	}
	defer out.Close()

	if err := webp.Encode(out, img, &webp.Options{Quality: 85}); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to encode webp: %w", err)
	}

	if err := os.Remove(srcPath); err != nil {
		// keep both files rather than fail the upload
		return dstPath, nil
	}
	return dstPath, nil
}
