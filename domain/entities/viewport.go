package entities

// Default viewport matches the original browser profile used against
// the PACS screens.
const (
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 800
)

// ViewportConfig describes the browser window for one session. It is
// immutable for the session's lifetime.
type ViewportConfig struct {
	Width    int  `json:"width"`
	Height   int  `json:"height"`
	Headless bool `json:"headless"`
}

// WithDefaults fills absent dimensions with the default viewport size.
func (v ViewportConfig) WithDefaults() ViewportConfig {
	if v.Width <= 0 {
		v.Width = DefaultViewportWidth
	}
	if v.Height <= 0 {
		v.Height = DefaultViewportHeight
	}
	return v
}
