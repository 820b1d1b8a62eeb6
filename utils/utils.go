package utils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var unsafeRunes = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeBaseName strips the extension and everything unsafe for an object
// key from an uploaded file name, capped at 50 characters. An empty result
// falls back to a random name.
func SanitizeBaseName(fileName string) string {
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	base = strings.Join(strings.Fields(base), "_")
	base = unsafeRunes.ReplaceAllString(base, "")
	if len(base) > 50 {
		base = base[:50]
	}
	if base == "" || base == "." {
		base = uuid.NewString()
	}
	return base
}

// ObjectKey builds the storage key for an upload: <area>/<timestamp>-<name>.<ext>
func ObjectKey(area, fileName, ext string) string {
	return fmt.Sprintf("%s/%d-%s.%s", area, time.Now().UnixMilli(), SanitizeBaseName(fileName), ext)
}
