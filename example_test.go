package jammit_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-jammit"
)

// Example compiles a template with a custom template function.
func Example() {
	dir, err := os.MkdirTemp("", "jammit-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	tmpl := filepath.Join(dir, "greeting.jst")
	if err := os.WriteFile(tmpl, []byte("<p>Hello, <%= name %>!</p>\n"), 0o600); err != nil {
		fmt.Println("error:", err)
		return
	}

	c, err := jammit.NewCompressor(jammit.WithTemplateFunction("_.template"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	js, err := c.CompileJST(tmpl)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(js)
	// Output: window.JST.greeting = _.template('<p>Hello, <%= name %>!</p>');
}

// ExampleCompressor_CompressCSS embeds an image as a data: URL.
func ExampleCompressor_CompressCSS() {
	dir, err := os.MkdirTemp("", "jammit-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	public := filepath.Join(dir, "public")
	if err := os.MkdirAll(filepath.Join(public, "embed"), 0o750); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := os.WriteFile(filepath.Join(public, "embed", "dot.gif"), []byte("GIF89a"), 0o600); err != nil {
		fmt.Println("error:", err)
		return
	}
	css := filepath.Join(dir, "site.css")
	if err := os.WriteFile(css, []byte(".dot {\n  background: url(/embed/dot.gif);\n}\n"), 0o600); err != nil {
		fmt.Println("error:", err)
		return
	}

	c, err := jammit.NewCompressor(jammit.WithPublicRoot(public))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	out, err := c.CompressCSS([]string{css}, jammit.VariantDataURI, "")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)
	// Output: .dot{background:url("data:image/gif;base64,R0lGODlh")}
}

// ExampleParseVariant maps command-line names to variants.
func ExampleParseVariant() {
	for _, name := range []string{"none", "data-uri", "MHTML"} {
		v, err := jammit.ParseVariant(name)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println(v)
	}
	// Output:
	// none
	// datauri
	// mhtml
}
