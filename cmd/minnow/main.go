// minnow is a minimal GUI shell around the engine: a URL bar, a render
// canvas, and a status line.
package main

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"minnow/pkg/browser"
	"minnow/pkg/css"
	"minnow/pkg/render"
)

const (
	viewportWidth  = 1024
	viewportHeight = 700
)

func main() {
	a := app.New()
	w := a.NewWindow("minnow")
	w.Resize(fyne.NewSize(1024, 768))

	b := browser.New(browser.DefaultConfig())
	b.Resize(viewportWidth, viewportHeight)
	b.NewTab()

	renderer := render.NewRenderer(viewportWidth, viewportHeight)
	renderer.Render(nil)
	canvasImg := canvas.NewImageFromImage(renderer.Image())
	canvasImg.FillMode = canvas.ImageFillOriginal

	status := widget.NewLabel("Enter a URL and press Enter")

	urlEntry := widget.NewEntry()
	urlEntry.SetPlaceHolder("https://example.com")
	urlEntry.OnSubmitted = func(url string) {
		status.SetText("Loading " + url + "...")
		go func() {
			markup, err := fetch(url)
			if err != nil {
				status.SetText("Error: " + err.Error())
				return
			}
			if err := b.Navigate(url, markup); err != nil {
				status.SetText("Error: " + err.Error())
				return
			}

			tab := b.ActiveTab()
			sheet, err := css.ParseStylesheet(strings.Join(tab.Document.Stylesheets, "\n"))
			if err != nil {
				sheet = &css.Stylesheet{}
			}
			tree := b.Engine().BuildRenderTree(tab.Document, sheet)
			b.Engine().Layout(tree)
			renderer.Render(tree)

			canvasImg.Image = renderer.Image()
			canvasImg.Refresh()
			status.SetText(url)
			w.SetTitle(fmt.Sprintf("minnow - %s", tab.Title))
		}()
	}

	content := container.NewBorder(
		container.NewVBox(urlEntry), status, nil, nil,
		container.NewScroll(canvasImg),
	)
	w.SetContent(content)
	w.ShowAndRun()
}

func fetch(url string) (string, error) {
	resp, err := http.Get(url)
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
