// minnowdump parses an HTML file and prints the element tree and the
// laid-out render tree, one line of geometry per node.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"minnow/pkg/css"
	"minnow/pkg/html"
	"minnow/pkg/layout"
)

func main() {
	width := flag.Float64("w", 800, "viewport width")
	height := flag.Float64("h", 600, "viewport height")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: minnowdump [flags] <file.html>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	markup, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	doc, err := html.Parse(string(markup), path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing markup: %v\n", err)
		os.Exit(1)
	}

	sheet, err := css.ParseStylesheet(strings.Join(doc.Stylesheets, "\n"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing CSS: %v\n", err)
		os.Exit(1)
	}

	engine := layout.NewEngine(*width, *height)
	tree := engine.BuildRenderTree(doc, sheet)
	engine.Layout(tree)

	fmt.Printf("Title: %s\n\n", doc.Title)
	fmt.Println("Element tree:")
	fmt.Print(doc.Root.Dump())
	fmt.Println("Render tree:")
	fmt.Print(tree.Dump())
}
