package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: jammit <command> [flags] <file>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  js         Concatenate and minify JavaScript")
	fmt.Fprintln(w, "  css        Concatenate and minify CSS, optionally embedding images")
	fmt.Fprintln(w, "  jst        Compile .jst templates into a window.JST script")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'jammit help <command>' for details on a specific command.")
}

// printCommandUsage prints usage for a compression command.
func printCommandUsage(w io.Writer, cmd command) {
	switch cmd {
	case cmdJS:
		fmt.Fprintln(w, "Usage: jammit js [flags] <file>...")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Concatenate JavaScript files in the order given and minify the result.")
	case cmdCSS:
		fmt.Fprintln(w, "Usage: jammit css [flags] <file>...")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Concatenate CSS files in the order given, minify the result, and embed")
		fmt.Fprintln(w, "images referenced as url(/.../embed/...).")
	case cmdJST:
		fmt.Fprintln(w, "Usage: jammit jst [flags] <file.jst>...")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Compile templates into one script registering window.JST.<name>.")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>             Output file (default: stdout)")
	fmt.Fprintln(w, "  -c, --config <name>             Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet                     Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                   Show debug output")

	switch cmd {
	case cmdCSS:
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Embedding:")
		fmt.Fprintln(w, "  -e, --embed <mode>              none, datauri, or mhtml (default: none)")
		fmt.Fprintln(w, "      --public-root <dir>         Directory embedded urls resolve under (default: public)")
		fmt.Fprintln(w, "      --embed-marker <s>          Path segment marking embeddable images (default: embed/)")
		fmt.Fprintln(w, "      --strict-mime               Fail on images with unknown extensions")
		fmt.Fprintln(w, "      --stylesheet-url <url>      Public URL of the stylesheet (reserved)")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "With --embed mhtml, replace REQUEST_URL in the output with the stylesheet's")
		fmt.Fprintln(w, "absolute URL when serving it.")
	case cmdJST:
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Templates:")
		fmt.Fprintln(w, "  -t, --template-function <fn>    Function compiling each template (default: template)")
		fmt.Fprintln(w, "      --asset-path <dir>          Directory whose scripts/jst.js replaces the bundled compiler")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "The bundled compiler is only included with the default template function.")
	}
}

// runHelp prints help for a command, or the main usage.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch cmd := command(args[0]); cmd {
	case cmdJS, cmdCSS, cmdJST:
		printCommandUsage(env.Stdout, cmd)
		return ExitSuccess
	case "completion":
		printCompletionUsage(env.Stdout)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
}
