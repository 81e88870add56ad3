package assets

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewPublicRoot(t *testing.T) {
	t.Parallel()

	t.Run("empty path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewPublicRoot("")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewPublicRoot(\"\") error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("missing directory is accepted", func(t *testing.T) {
		t.Parallel()

		root, err := NewPublicRoot(filepath.Join(t.TempDir(), "not-yet"))
		if err != nil {
			t.Fatalf("NewPublicRoot() error = %v", err)
		}
		if !filepath.IsAbs(root.Dir()) {
			t.Errorf("Dir() = %q, want absolute path", root.Dir())
		}
	})
}

func TestPublicRoot_LoadResource(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	embedDir := filepath.Join(tmpDir, "images", "embed")
	if err := os.MkdirAll(embedDir, 0755); err != nil {
		t.Fatalf("failed to create embed dir: %v", err)
	}
	png := []byte{0x89, 'P', 'N', 'G'}
	if err := os.WriteFile(filepath.Join(embedDir, "logo.png"), png, 0644); err != nil {
		t.Fatalf("failed to write resource: %v", err)
	}

	root, err := NewPublicRoot(tmpDir)
	if err != nil {
		t.Fatalf("NewPublicRoot() error = %v", err)
	}

	tests := []struct {
		name       string
		identifier string
		want       []byte
		wantErr    error
	}{
		{
			name:       "absolute identifier resolves under root",
			identifier: "/images/embed/logo.png",
			want:       png,
		},
		{
			name:       "missing resource",
			identifier: "/images/embed/missing.png",
			wantErr:    ErrResourceNotFound,
		},
		{
			name:       "directory is not a resource",
			identifier: "/images/embed",
			wantErr:    ErrResourceNotFound,
		},
		{
			name:       "traversal out of root",
			identifier: "/images/embed/../../../etc/passwd",
			wantErr:    ErrPathTraversal,
		},
		{
			name:       "empty identifier",
			identifier: "/",
			wantErr:    ErrResourceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := root.LoadResource(tt.identifier)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadResource(%q) error = %v, want %v", tt.identifier, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadResource(%q) unexpected error: %v", tt.identifier, err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("LoadResource(%q) = %v, want %v", tt.identifier, got, tt.want)
			}
		})
	}
}
