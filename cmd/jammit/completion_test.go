package main

// Notes:
// - GenerateCompletion: we test that shell scripts are generated with expected
//   content markers. We do not test that the scripts actually work in the
//   target shell (that would require integration tests with actual shells).
// - getCommands: we test the registry mirrors the flag sets used for parsing.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion_SupportedShells - Shell completion script generation
// ---------------------------------------------------------------------------

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		shell        Shell
		wantContains []string
	}{
		{
			name:  "bash",
			shell: ShellBash,
			wantContains: []string{
				"_jammit_completions()",
				"complete -F _jammit_completions jammit",
				"compgen",
				"-e|--embed)",
				`"none datauri mhtml"`,
				"--template-function",
				"compgen -f -X '!*.jst'",
				"compgen -f -X '!*.yaml'",
			},
		},
		{
			name:  "zsh",
			shell: ShellZsh,
			wantContains: []string{
				"#compdef jammit",
				"_jammit()",
				"_arguments",
				"_describe 'command' commands",
				"'(-e --embed)'{-e,--embed}",
				":embed:(none datauri mhtml)",
				"'--public-root",
				":directory:_files -/",
				`'*:file:_files -g "*.css"'`,
				"compdef _jammit jammit",
			},
		},
		{
			name:  "fish",
			shell: ShellFish,
			wantContains: []string{
				"complete -c jammit -f",
				"__fish_jammit_needs_command",
				"'__fish_jammit_using_command css' -s e -l embed -x -a 'none datauri mhtml'",
				"-l strict-mime -d",
				"-l asset-path -x -a '(__fish_complete_directories)'",
				"'__fish_jammit_using_command completion' -a 'bash zsh fish'",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion() error = %v", err)
			}
			got := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("script missing %q", want)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := GenerateCompletion(&buf, Shell("powershell"))
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Fatalf("GenerateCompletion() error = %v, want ErrUnsupportedShell", err)
	}
	if !strings.Contains(err.Error(), "bash, zsh, fish") {
		t.Errorf("error = %q, want supported shells listed", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes, want none", buf.Len())
	}
}

// ---------------------------------------------------------------------------
// TestGetCommands - registry mirrors parse flag sets
// ---------------------------------------------------------------------------

func TestGetCommands(t *testing.T) {
	t.Parallel()

	byName := make(map[string]commandDef)
	for _, c := range getCommands() {
		byName[c.Name] = c
	}

	for _, name := range []string{"js", "css", "jst", "version", "help", "completion"} {
		if _, ok := byName[name]; !ok {
			t.Errorf("missing command %q", name)
		}
	}

	hasFlag := func(c commandDef, long string) bool {
		for _, f := range c.Flags {
			if f.Long == long {
				return true
			}
		}
		return false
	}

	tests := []struct {
		cmd  string
		flag string
		want bool
	}{
		{"js", "output", true},
		{"js", "embed", false},
		{"css", "embed", true},
		{"css", "strict-mime", true},
		{"css", "template-function", false},
		{"jst", "template-function", true},
		{"jst", "asset-path", true},
	}
	for _, tt := range tests {
		if got := hasFlag(byName[tt.cmd], tt.flag); got != tt.want {
			t.Errorf("%s has --%s = %v, want %v", tt.cmd, tt.flag, got, tt.want)
		}
	}
}

func TestExtractFlagsFromFlagSet_Metadata(t *testing.T) {
	t.Parallel()

	flags := commandFlags(cmdCSS)
	byName := make(map[string]flagDef)
	for _, f := range flags {
		byName[f.Long] = f
	}

	if got := byName["embed"]; got.Short != "e" || len(got.Values) != 3 {
		t.Errorf("embed = %+v, want shorthand e and three values", got)
	}
	if !byName["strict-mime"].IsBool {
		t.Error("strict-mime should be a bool flag")
	}
	if !byName["public-root"].IsDir {
		t.Error("public-root should complete directories")
	}
	if byName["config"].FileGlob != "*.yaml,*.yml" {
		t.Errorf("config glob = %q", byName["config"].FileGlob)
	}
}

func TestShellQuoting(t *testing.T) {
	t.Parallel()

	if got := zshQuote("it's [x]: y"); got != `it'\''s \[x\]\: y` {
		t.Errorf("zshQuote() = %q", got)
	}
	if got := fishQuote(`it's a\b`); got != `it\'s a\\b` {
		t.Errorf("fishQuote() = %q", got)
	}
}
