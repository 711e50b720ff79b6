package entities

// ExtractionRequest is the body of one POST /scrape call. Credentials
// may be omitted to fall back to process-wide defaults; the headless
// flag defaults to the server's configuration when absent.
type ExtractionRequest struct {
	Credentials    *Credentials   `json:"credentials,omitempty"`
	FilterOptions  *FilterOptions `json:"filter_options,omitempty"`
	Headless       *bool          `json:"headless,omitempty"`
	ViewportWidth  int            `json:"viewport_width,omitempty"`
	ViewportHeight int            `json:"viewport_height,omitempty"`
}

// Viewport builds the session viewport from the request, falling back
// to defaults for absent dimensions and to defaultHeadless when the
// request does not say.
func (r ExtractionRequest) Viewport(defaultHeadless bool) ViewportConfig {
	headless := defaultHeadless
	if r.Headless != nil {
		headless = *r.Headless
	}
	return ViewportConfig{
		Width:    r.ViewportWidth,
		Height:   r.ViewportHeight,
		Headless: headless,
	}.WithDefaults()
}

// RequestCredentials returns the request pair, zero-valued when absent.
func (r ExtractionRequest) RequestCredentials() Credentials {
	if r.Credentials == nil {
		return Credentials{}
	}
	return *r.Credentials
}
