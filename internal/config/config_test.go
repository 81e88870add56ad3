package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return p
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if *cfg != (Config{}) {
		t.Errorf("DefaultConfig() = %+v, want zero value", *cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() unexpected error: %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{name: "empty value is valid", value: "", maxLength: 10},
		{name: "value at limit is valid", value: "1234567890", maxLength: 10},
		{name: "value over limit returns error", value: "12345678901", maxLength: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("test.field", tt.value, tt.maxLength)
			if !tt.wantErr {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrFieldTooLong) {
				t.Fatalf("error = %v, want ErrFieldTooLong", err)
			}
			if !strings.Contains(err.Error(), "test.field") {
				t.Errorf("error should name the field, got: %v", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate - field values
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	assetDir := t.TempDir()
	notADir := writeConfig(t, assetDir, "file.txt", "x")

	tests := []struct {
		name     string
		cfg      Config
		wantErr  error
		wantText string
	}{
		{name: "embed datauri", cfg: Config{EmbedAssets: "datauri"}},
		{name: "embed mhtml uppercase", cfg: Config{EmbedAssets: "MHTML"}},
		{name: "embed off", cfg: Config{EmbedAssets: "off"}},
		{
			name:    "embed unknown",
			cfg:     Config{EmbedAssets: "inline"},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "embed too long",
			cfg:     Config{EmbedAssets: strings.Repeat("x", MaxEmbedAssetsLength+1)},
			wantErr: ErrFieldTooLong,
		},
		{name: "dotted template function", cfg: Config{TemplateFunction: "_.template"}},
		{
			name:    "template function with call",
			cfg:     Config{TemplateFunction: "template()"},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "template function too long",
			cfg:     Config{TemplateFunction: strings.Repeat("a", MaxTemplateFunctionLength+1)},
			wantErr: ErrFieldTooLong,
		},
		{name: "custom marker", cfg: Config{EmbedMarker: "inline/"}},
		{
			name:    "marker with quote",
			cfg:     Config{EmbedMarker: `em"bed/`},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "public root too long",
			cfg:     Config{PublicRoot: strings.Repeat("p", MaxPathLength+1)},
			wantErr: ErrFieldTooLong,
		},
		{name: "existing asset path", cfg: Config{AssetPath: assetDir}},
		{
			name:     "missing asset path",
			cfg:      Config{AssetPath: filepath.Join(assetDir, "missing")},
			wantErr:  ErrInvalidValue,
			wantText: "does not exist",
		},
		{
			name:     "asset path is a file",
			cfg:      Config{AssetPath: notADir},
			wantErr:  ErrInvalidValue,
			wantText: "not a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantText != "" && !strings.Contains(err.Error(), tt.wantText) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantText)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - file loading and name resolution
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		dir := t.TempDir()
		configPath := writeConfig(t, dir, "assets.yaml", `embedAssets: mhtml
templateFunction: _.template
embedMarker: inline/
publicRoot: web
strictMimeTypes: true
`)

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		want := Config{
			EmbedAssets:      "mhtml",
			TemplateFunction: "_.template",
			EmbedMarker:      "inline/",
			PublicRoot:       "web",
			StrictMimeTypes:  true,
		}
		if *cfg != want {
			t.Errorf("LoadConfig() = %+v, want %+v", *cfg, want)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/assets.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "invalid.yaml", "embedAssets: [unclosed")

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "typo.yaml", "embedAsset: datauri\n")

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("empty file returns ErrConfigParse", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "empty.yaml", "")

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("oversized file returns ErrConfigParse", func(t *testing.T) {
		content := "embedMarker: embed/\n# " + strings.Repeat("x", maxConfigSize) + "\n"
		configPath := writeConfig(t, t.TempDir(), "big.yaml", content)

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid values fail validation", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "bad.yaml", "embedAssets: gzip\n")

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("name resolves in current directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "jammit.yml", "embedAssets: datauri\n")
		t.Chdir(dir)

		cfg, err := LoadConfig("jammit")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.EmbedAssets != "datauri" {
			t.Errorf("EmbedAssets = %q, want %q", cfg.EmbedAssets, "datauri")
		}
	})

	t.Run("name resolves in user config directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		t.Setenv("HOME", home)
		t.Setenv("AppData", home)
		t.Chdir(t.TempDir())

		userDir, err := os.UserConfigDir()
		if err != nil {
			t.Skipf("no user config dir: %v", err)
		}
		if err := os.MkdirAll(filepath.Join(userDir, userConfigDirName), 0o750); err != nil {
			t.Fatalf("setup: %v", err)
		}
		writeConfig(t, filepath.Join(userDir, userConfigDirName), "shared.yaml", "publicRoot: static\n")

		cfg, err := LoadConfig("shared")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.PublicRoot != "static" {
			t.Errorf("PublicRoot = %q, want %q", cfg.PublicRoot, "static")
		}
	})

	t.Run("search paths order", func(t *testing.T) {
		paths := SearchPaths("jammit")
		if len(paths) < 2 || paths[0] != "jammit.yaml" || paths[1] != "jammit.yml" {
			t.Fatalf("SearchPaths() = %v, want local .yaml then .yml first", paths)
		}
		for _, p := range paths[2:] {
			if !strings.Contains(p, userConfigDirName) {
				t.Errorf("SearchPaths() entry %q should be under %s", p, userConfigDirName)
			}
		}
	})

	t.Run("unknown name lists tried paths", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := LoadConfig("nothing-here")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		for _, want := range []string{"nothing-here.yaml", "nothing-here.yml"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("error %q should list %q", err, want)
			}
		}
	})
}
