package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Desc     string   // help text
	IsBool   bool     // takes no value
	Values   []string // for enum flags
	FileGlob string   // for file flags
	IsDir    bool     // directory completion
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	FilePattern string // glob for file arguments (e.g., "*.js"), empty if none
}

// completionMeta holds completion-specific metadata for flags.
// Flag names and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string
	FileGlob string
	IsDir    bool
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"embed":       {Values: []string{"none", "datauri", "mhtml"}},
	"config":      {FileGlob: "*.yaml,*.yml"},
	"public-root": {IsDir: true},
	"asset-path":  {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:   f.Name,
			Short:  f.Shorthand,
			Desc:   f.Usage,
			IsBool: f.Value.Type() == "bool",
		}
		if meta, ok := flagCompletionMeta[f.Name]; ok {
			fd.Values = meta.Values
			fd.FileGlob = meta.FileGlob
			fd.IsDir = meta.IsDir
		}
		flags = append(flags, fd)
	})

	return flags
}

// commandFlags returns the completion flags of a compression command.
func commandFlags(cmd command) []flagDef {
	return extractFlagsFromFlagSet(newCompressFlagSet(cmd, &compressFlags{}))
}

// getCommands returns the command registry for completion.
func getCommands() []commandDef {
	return []commandDef{
		{Name: "js", Desc: "Concatenate and minify JavaScript", Flags: commandFlags(cmdJS), FilePattern: "*.js"},
		{Name: "css", Desc: "Concatenate and minify CSS", Flags: commandFlags(cmdCSS), FilePattern: "*.css"},
		{Name: "jst", Desc: "Compile templates into a window.JST script", Flags: commandFlags(cmdJST), FilePattern: "*.jst"},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
		{Name: "completion", Desc: "Generate shell completion script"},
	}
}

// supportedShells lists shells in the order help shows them.
func supportedShells() []string {
	return []string{string(ShellBash), string(ShellZsh), string(ShellFish)}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = bashScript(getCommands())
	case ShellZsh:
		script = zshScript(getCommands())
	case ShellFish:
		script = fishScript(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedShell, shell, strings.Join(supportedShells(), ", "))
	}

	if _, err := io.WriteString(w, script); err != nil {
		return fmt.Errorf("%w: completion script: %v", ErrWriteOutput, err)
	}
	return nil
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: jammit completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(jammit completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(jammit completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    jammit completion fish > ~/.config/fish/completions/jammit.fish")
}

// commandNames returns the names of cmds.
func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

// globs splits a comma-separated glob list.
func globs(pattern string) []string {
	if pattern == "" {
		return nil
	}
	return strings.Split(pattern, ",")
}

// ---- bash ----

func bashScript(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("# bash completion for jammit\n\n")
	b.WriteString("_jammit_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(commandNames(cmds), " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"$cmd\" in\n")

	for _, c := range cmds {
		switch c.Name {
		case "help":
			b.WriteString("    help)\n")
			fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", "js css jst")
			b.WriteString("        ;;\n")
			continue
		case "completion":
			b.WriteString("    completion)\n")
			fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(supportedShells(), " "))
			b.WriteString("        ;;\n")
			continue
		}
		if len(c.Flags) == 0 {
			continue
		}

		fmt.Fprintf(&b, "    %s)\n", c.Name)
		b.WriteString("        case \"$prev\" in\n")
		var words []string
		for _, f := range c.Flags {
			words = append(words, "--"+f.Long)
			if f.Short != "" {
				words = append(words, "-"+f.Short)
			}
			if f.IsBool {
				continue
			}
			fmt.Fprintf(&b, "        %s)\n", bashFlagPattern(f))
			fmt.Fprintf(&b, "            COMPREPLY=( %s )\n", bashValueCompletion(f))
			b.WriteString("            return\n")
			b.WriteString("            ;;\n")
		}
		b.WriteString("        esac\n")
		b.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
		fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(words, " "))
		b.WriteString("            return\n")
		b.WriteString("        fi\n")
		fmt.Fprintf(&b, "        COMPREPLY=( %s $(compgen -d -- \"$cur\") )\n", bashFileCompletion(c.FilePattern))
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _jammit_completions jammit\n")
	return b.String()
}

func bashFlagPattern(f flagDef) string {
	if f.Short != "" {
		return "-" + f.Short + "|--" + f.Long
	}
	return "--" + f.Long
}

func bashValueCompletion(f flagDef) string {
	switch {
	case len(f.Values) > 0:
		return fmt.Sprintf("$(compgen -W %q -- \"$cur\")", strings.Join(f.Values, " "))
	case f.IsDir:
		return "$(compgen -d -- \"$cur\")"
	case f.FileGlob != "":
		return bashFileCompletion(f.FileGlob)
	default:
		return "$(compgen -f -- \"$cur\")"
	}
}

func bashFileCompletion(pattern string) string {
	parts := globs(pattern)
	if len(parts) == 0 {
		return "$(compgen -f -- \"$cur\")"
	}
	out := make([]string, len(parts))
	for i, g := range parts {
		out[i] = fmt.Sprintf("$(compgen -f -X '!%s' -- \"$cur\")", g)
	}
	return strings.Join(out, " ")
}

// ---- zsh ----

func zshScript(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("#compdef jammit\n\n")
	b.WriteString("_jammit() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshQuote(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    local cmd=\"${words[2]}\"\n")
	b.WriteString("    shift words\n")
	b.WriteString("    (( CURRENT-- ))\n\n")
	b.WriteString("    case \"$cmd\" in\n")

	for _, c := range cmds {
		switch c.Name {
		case "help":
			b.WriteString("    help)\n")
			b.WriteString("        _values 'command' js css jst\n")
			b.WriteString("        ;;\n")
			continue
		case "completion":
			b.WriteString("    completion)\n")
			fmt.Fprintf(&b, "        _values 'shell' %s\n", strings.Join(supportedShells(), " "))
			b.WriteString("        ;;\n")
			continue
		}
		if len(c.Flags) == 0 {
			continue
		}

		fmt.Fprintf(&b, "    %s)\n", c.Name)
		b.WriteString("        _arguments \\\n")
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "            %s \\\n", zshFlagSpec(f))
		}
		fmt.Fprintf(&b, "            '*:file:_files -g \"%s\"'\n", strings.Join(globs(c.FilePattern), " "))
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _jammit jammit\n")
	return b.String()
}

func zshFlagSpec(f flagDef) string {
	desc := "[" + zshQuote(f.Desc) + "]"

	var action string
	if !f.IsBool {
		switch {
		case len(f.Values) > 0:
			action = ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
		case f.IsDir:
			action = ":directory:_files -/"
		case f.FileGlob != "":
			action = ":file:_files -g \"" + strings.Join(globs(f.FileGlob), " ") + "\""
		default:
			action = ":" + f.Long + ":_files"
		}
	}

	if f.Short == "" {
		return "'--" + f.Long + desc + action + "'"
	}
	return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'%s%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
}

// zshQuote escapes text for a single-quoted _arguments spec.
func zshQuote(s string) string {
	return strings.NewReplacer(
		"'", `'\''`,
		"[", `\[`,
		"]", `\]`,
		":", `\:`,
	).Replace(s)
}

// ---- fish ----

func fishScript(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("# fish completion for jammit\n\n")
	b.WriteString("function __fish_jammit_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_jammit_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c jammit -f\n\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c jammit -n __fish_jammit_needs_command -a %s -d '%s'\n", c.Name, fishQuote(c.Desc))
	}
	b.WriteString("\n")
	b.WriteString("complete -c jammit -n '__fish_jammit_using_command help' -a 'js css jst'\n")
	fmt.Fprintf(&b, "complete -c jammit -n '__fish_jammit_using_command completion' -a '%s'\n", strings.Join(supportedShells(), " "))

	for _, c := range cmds {
		if len(c.Flags) == 0 {
			continue
		}
		cond := "'__fish_jammit_using_command " + c.Name + "'"
		b.WriteString("\n")
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "complete -c jammit -n %s%s\n", cond, fishFlagSpec(f))
		}
		fmt.Fprintf(&b, "complete -c jammit -n %s -F\n", cond)
	}

	return b.String()
}

func fishFlagSpec(f flagDef) string {
	var b strings.Builder
	if f.Short != "" {
		b.WriteString(" -s " + f.Short)
	}
	b.WriteString(" -l " + f.Long)

	if !f.IsBool {
		switch {
		case len(f.Values) > 0:
			fmt.Fprintf(&b, " -x -a '%s'", strings.Join(f.Values, " "))
		case f.IsDir:
			b.WriteString(" -x -a '(__fish_complete_directories)'")
		default:
			b.WriteString(" -r -F")
		}
	}

	fmt.Fprintf(&b, " -d '%s'", fishQuote(f.Desc))
	return b.String()
}

// fishQuote escapes text for a single-quoted fish string.
func fishQuote(s string) string {
	return strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s)
}
