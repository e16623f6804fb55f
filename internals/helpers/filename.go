package helper

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// SanitizeFilename strips everything except letters, digits, dot, dash, underscore.
func SanitizeFilename(filename string) string {
	return unsafeFilenameChars.ReplaceAllString(filename, "_")
}

// GenerateUniqueFilename builds "<field>-<yyyymmdd>-<uuid><ext>" so concurrent
// uploads of the same original name never collide.
func GenerateUniqueFilename(field, originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(SanitizeFilename(originalFilename)))
	return fmt.Sprintf("%s-%s-%s%s", field, time.Now().Format("20060102"), uuid.New().String(), ext)
}
