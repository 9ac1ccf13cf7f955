// Package browser manages tabs and navigation around the parse/layout
// core. It is the navigation collaborator: it feeds markup into the
// parser, owns the resulting documents, and drives each tab's
// NavigationState from the parser's success or failure.
package browser

import (
	"fmt"
	"sync"

	"minnow/pkg/html"
	"minnow/pkg/layout"
)

// Browser holds an ordered list of tabs and the layout engine shared by
// their viewports. The core pipeline itself needs no locking, since every
// tab's document is independently owned, but the tab list is shared
// state, so Browser methods serialize on a mutex.
type Browser struct {
	mu        sync.Mutex
	config    Config
	engine    *layout.Engine
	tabs      []*Tab
	activeTab int
	nextTabID uint64
}

// New creates a browser with no tabs and a default-sized viewport.
func New(config Config) *Browser {
	return &Browser{
		config:    config,
		engine:    layout.NewEngine(1920, 1080),
		nextTabID: 1,
	}
}

// Config returns the browser configuration.
func (b *Browser) Config() Config {
	return b.config
}

// Engine returns the layout engine for the presentation collaborator.
func (b *Browser) Engine() *layout.Engine {
	return b.engine
}

// NewTab opens a tab at about:blank and makes it active. Returns the
// tab's ID.
func (b *Browser) NewTab() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextTabID
	b.nextTabID++
	b.tabs = append(b.tabs, newTab(id))
	b.activeTab = len(b.tabs) - 1
	return id
}

// CloseTab closes the tab with the given ID. Reports whether a tab was
// closed.
func (b *Browser) CloseTab(id uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, tab := range b.tabs {
		if tab.ID == id {
			b.tabs = append(b.tabs[:i], b.tabs[i+1:]...)
			if b.activeTab >= len(b.tabs) && len(b.tabs) > 0 {
				b.activeTab = len(b.tabs) - 1
			}
			return true
		}
	}
	return false
}

// Navigate parses markup fetched from url into the active tab, opening
// a tab if none exists. On success the tab holds the new document with
// state Loaded and the document's title; on failure the tab's state is
// Error and the parse error is returned. Fetching is the caller's
// concern; Navigate takes the markup it is given.
func (b *Browser) Navigate(url, markup string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.tabs) == 0 {
		id := b.nextTabID
		b.nextTabID++
		b.tabs = append(b.tabs, newTab(id))
		b.activeTab = 0
	}

	tab := b.tabs[b.activeTab]
	tab.URL = url
	tab.State = NavLoading

	doc, err := html.Parse(markup, url)
	if err != nil {
		tab.State = NavError
		return fmt.Errorf("navigate %s: %w", url, err)
	}

	tab.Document = doc
	tab.Title = doc.Title
	tab.State = NavLoaded
	return nil
}

// ActiveTab returns the currently active tab, or nil when the browser
// has no tabs.
func (b *Browser) ActiveTab() *Tab {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.tabs) == 0 {
		return nil
	}
	return b.tabs[b.activeTab]
}

// SelectTab makes the tab with the given ID active. Reports whether the
// tab exists.
func (b *Browser) SelectTab(id uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, tab := range b.tabs {
		if tab.ID == id {
			b.activeTab = i
			return true
		}
	}
	return false
}

// Tabs returns a snapshot of the tab list in order.
func (b *Browser) Tabs() []*Tab {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]*Tab, len(b.tabs))
	copy(out, b.tabs)
	return out
}

// Resize updates the layout viewport. Geometry changes on the next
// layout call, never retroactively.
func (b *Browser) Resize(width, height float64) {
	b.engine.Resize(width, height)
}
