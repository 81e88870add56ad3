package main

// Notes:
// - exitCodeFor: we test every sentinel the CLI can surface, plus wrapped
//   errors to verify the errors.Is() chain.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	jammit "github.com/alnah/go-jammit"
	"github.com/alnah/go-jammit/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"resource not found", jammit.ErrResourceNotFound, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"wrapped resource", fmt.Errorf("css: %w", jammit.ErrResourceNotFound), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid config value", config.ErrInvalidValue, ExitUsage},
		{"invalid variant", jammit.ErrInvalidVariant, ExitUsage},
		{"invalid template name", jammit.ErrInvalidTemplateName, ExitUsage},
		{"invalid template function", jammit.ErrInvalidTemplateFunction, ExitUsage},
		{"invalid embed marker", jammit.ErrInvalidEmbedMarker, ExitUsage},
		{"invalid asset path", jammit.ErrInvalidAssetPath, ExitUsage},
		{"unresolved mime", jammit.ErrUnresolvedMimeType, ExitUsage},
		{"usage", ErrUsage, ExitUsage},
		{"unsupported shell", ErrUnsupportedShell, ExitUsage},
		{"wrapped config", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General
		{"minification", jammit.ErrMinification, ExitGeneral},
		{"unknown", errors.New("something else"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes must follow Unix conventions (0, 1, 2)")
	}
	for _, code := range []int{ExitIO} {
		if code >= 126 {
			t.Errorf("custom exit code %d must be below 126", code)
		}
	}
}
