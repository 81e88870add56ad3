package pipeline

import (
	"fmt"
	"os"
	"strings"
)

// Concatenate reads every path and joins the contents with a single newline,
// in the order given. Paths are never sorted or deduplicated.
// Returns ErrResourceNotFound for the first unreadable path; no partial
// result is returned.
func Concatenate(paths []string) (string, error) {
	parts := make([]string, len(paths))
	for i, p := range paths {
		content, err := os.ReadFile(p) // #nosec G304 -- caller-supplied source list
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrResourceNotFound, p, err)
		}
		parts[i] = string(content)
	}
	return strings.Join(parts, "\n"), nil
}
