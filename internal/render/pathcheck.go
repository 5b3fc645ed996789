package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hpungsan/starmap/internal/errors"
)

// pageExtensions are the accepted output file extensions.
var pageExtensions = []string{".html", ".htm"}

// ValidateOutputPath checks that path names an HTML file a viewer can open.
func ValidateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.NewInvalidRequest("output path is required")
	}
	if strings.ContainsRune(path, 0) {
		return errors.NewInvalidRequest("output path must not contain NUL bytes")
	}

	ext := strings.ToLower(filepath.Ext(filepath.Clean(path)))
	for _, allowed := range pageExtensions {
		if ext == allowed {
			return nil
		}
	}
	return errors.NewInvalidRequest(fmt.Sprintf("output path must have one of the extensions %v", pageExtensions))
}
