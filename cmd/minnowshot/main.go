// minnowshot renders an HTML file or URL to a PNG:
//
//	minnowshot -o page.png page.html
//	minnowshot -w 1024 -h 768 https://example.com/
package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"minnow/pkg/css"
	"minnow/pkg/html"
	"minnow/pkg/layout"
	"minnow/pkg/render"
)

func main() {
	width := flag.Int("w", 800, "viewport width in pixels")
	height := flag.Int("h", 600, "viewport height in pixels")
	output := flag.String("o", "output.png", "output PNG file path")
	cssFile := flag.String("css", "", "extra stylesheet file applied before document styles")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: minnowshot [flags] <file-or-url>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	source := flag.Arg(0)

	markup, err := readSource(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", source, err)
		os.Exit(1)
	}

	doc, err := html.Parse(markup, source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing markup: %v\n", err)
		os.Exit(1)
	}

	cssText := ""
	if *cssFile != "" {
		extra, err := os.ReadFile(*cssFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stylesheet: %v\n", err)
			os.Exit(1)
		}
		cssText = string(extra)
	}
	// Document styles come after the extra sheet so the page wins.
	cssText += "\n" + strings.Join(doc.Stylesheets, "\n")

	sheet, err := css.ParseStylesheet(cssText)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing CSS: %v\n", err)
		os.Exit(1)
	}

	engine := layout.NewEngine(float64(*width), float64(*height))
	tree := engine.BuildRenderTree(doc, sheet)
	engine.Layout(tree)

	renderer := render.NewRenderer(*width, *height)
	renderer.Render(tree)
	if err := renderer.SavePNG(*output); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendered %q (%d nodes) to %s\n", doc.Title, tree.Count(), *output)
}

func readSource(source string) (string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("unexpected status: %s", resp.Status)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		return string(body), nil
	}
	body, err := os.ReadFile(source)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
