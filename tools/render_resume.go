package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-editor/internal/model"
	"resume-editor/internal/usecase"
)

// Renders an exported resume JSON file to the printable HTML page.
// Usage: go run ./tools resume.json [out.html]
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: render_resume <resume.json> [out.html]")
		os.Exit(2)
	}
	in := os.Args[1]
	b, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read resume: %v\n", err)
		os.Exit(2)
	}
	r, err := model.Decode(b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode resume: %v\n", err)
		os.Exit(2)
	}
	html, err := usecase.RenderHTML(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}

	outFile := strings.TrimSuffix(in, filepath.Ext(in)) + ".html"
	if len(os.Args) > 2 {
		outFile = os.Args[2]
	}
	if err := os.WriteFile(outFile, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write out: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", outFile)
}
