package browser

// Config gates the surrounding features of a browsing session. The core
// pipeline (parse, resolve, build, layout) never branches on these
// flags; they are consumed by the collaborators that decide whether to
// fetch images, apply stylesheets, and so on.
type Config struct {
	EnableJavaScript bool
	EnableImages     bool
	EnableCSS        bool
	MaxConnections   int
	UserAgent        string
	MaxMemory        int // bytes
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		EnableJavaScript: true,
		EnableImages:     true,
		EnableCSS:        true,
		MaxConnections:   6,
		UserAgent:        "minnow/1.0",
		MaxMemory:        512 * 1024 * 1024,
	}
}
