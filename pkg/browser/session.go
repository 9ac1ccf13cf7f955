package browser

import "strings"

// SaveSession serializes the open tabs as a semicolon-joined URL list,
// in tab order.
func (b *Browser) SaveSession() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	urls := make([]string, len(b.tabs))
	for i, tab := range b.tabs {
		urls[i] = tab.URL
	}
	return strings.Join(urls, ";")
}

// RestoreSession opens one tab per URL in a saved session string. The
// tabs come back Idle with no document. Restoring does not navigate,
// it only restores the URLs for the caller to re-fetch. The last tab
// becomes active. An empty session string opens nothing.
func (b *Browser) RestoreSession(session string) {
	if session == "" {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, url := range strings.Split(session, ";") {
		if url == "" {
			continue
		}
		id := b.nextTabID
		b.nextTabID++
		tab := newTab(id)
		tab.URL = url
		b.tabs = append(b.tabs, tab)
	}
	if len(b.tabs) > 0 {
		b.activeTab = len(b.tabs) - 1
	}
}
