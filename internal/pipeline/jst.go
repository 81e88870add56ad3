package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultTemplateFunction is the name of the bundled template compiler.
// The bootstrap script defining it is only emitted when this name is in use.
const DefaultTemplateFunction = "template"

var (
	jstNamer            = regexp.MustCompile(`(?:^|/)(\w+)\.jst\z`)
	jsIdentifierPattern = regexp.MustCompile(`^[A-Za-z_$][\w$]*(?:\.[A-Za-z_$][\w$]*)*$`)
)

// TemplateName derives the registration name from a template path:
// "views/greeting.jst" is registered as "greeting".
// Returns ErrInvalidTemplateName if the base name is not <word>.jst.
func TemplateName(path string) (string, error) {
	m := jstNamer.FindStringSubmatch(filepath.ToSlash(path))
	if m == nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidTemplateName, path)
	}
	return m[1], nil
}

// EscapeTemplate makes contents safe inside a single-quoted JavaScript
// string: newlines are dropped and single quotes are backslash-escaped.
// Other characters, backslashes included, pass through verbatim.
func EscapeTemplate(contents string) string {
	contents = strings.ReplaceAll(contents, "\n", "")
	return strings.ReplaceAll(contents, "'", `\'`)
}

// ValidateTemplateFunction checks that name can be emitted as a call target,
// e.g. "template", "_.template" or "Handlebars.compile".
func ValidateTemplateFunction(name string) error {
	if !jsIdentifierPattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidTemplateFunction, name)
	}
	return nil
}

// JSTCompiler turns template files into window.JST registrations.
type JSTCompiler struct {
	// TemplateFunction is called on each escaped template string.
	TemplateFunction string

	// Bootstrap is prepended once when TemplateFunction is
	// DefaultTemplateFunction. It must define window.JST and the compiler.
	Bootstrap string
}

// Compile emits one statement per path, in order:
//
//	window.JST.<name> = <TemplateFunction>('<escaped contents>');
//
// Statements are joined with a newline. Any invalid name or unreadable file
// fails the whole call.
func (c *JSTCompiler) Compile(paths []string) (string, error) {
	statements := make([]string, len(paths))
	for i, p := range paths {
		name, err := TemplateName(p)
		if err != nil {
			return "", err
		}
		content, err := os.ReadFile(p) // #nosec G304 -- caller-supplied template list
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrResourceNotFound, p, err)
		}
		statements[i] = "window.JST." + name + " = " + c.TemplateFunction + "('" + EscapeTemplate(string(content)) + "');"
	}

	compiled := strings.Join(statements, "\n")
	if c.TemplateFunction == DefaultTemplateFunction {
		return c.Bootstrap + compiled, nil
	}
	return compiled, nil
}
