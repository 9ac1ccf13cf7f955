package browser

import "minnow/pkg/dom"

// NavigationState tracks where a tab is in its navigation lifecycle.
// The only transitions are Idle → Loading → {Loaded, Error}; a tab
// returns to a fresh state only by replacing its document on the next
// navigation.
type NavigationState int

const (
	NavIdle NavigationState = iota
	NavLoading
	NavLoaded
	NavError
)

func (s NavigationState) String() string {
	switch s {
	case NavLoading:
		return "loading"
	case NavLoaded:
		return "loaded"
	case NavError:
		return "error"
	}
	return "idle"
}

// Tab is one browsing context. Its document is owned exclusively by the
// tab and replaced wholesale on navigation; the previous document is
// simply dropped.
type Tab struct {
	ID       uint64
	URL      string
	Title    string
	State    NavigationState
	Document *dom.Document
	Metrics  PageMetrics
}

func newTab(id uint64) *Tab {
	return &Tab{
		ID:    id,
		URL:   "about:blank",
		Title: "New Tab",
		State: NavIdle,
	}
}

// PageMetrics records page timing milestones in milliseconds. The core
// pipeline does not populate these; they are bookkeeping for whatever
// drives the fetch.
type PageMetrics struct {
	TTFB                 float64
	DOMContentLoaded     float64
	LoadComplete         float64
	FirstContentfulPaint float64
}
