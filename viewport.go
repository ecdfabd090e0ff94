package pagespec

// Viewport describes one browser window size used for a render pass.
type Viewport struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Validate returns an error if the viewport contains invalid fields.
func (v Viewport) Validate() error {
	if v.Name == "" {
		return Errorf(EINVALID, "viewport name required")
	}
	if v.Width <= 0 || v.Height <= 0 {
		return Errorf(EINVALID, "viewport dimensions must be positive")
	}
	return nil
}

// DefaultViewports returns the standard responsive viewport set, ordered
// smallest first. The last entry is the primary pass: the analyzer captures
// full per-element data only for it.
func DefaultViewports() []Viewport {
	return []Viewport{
		{Name: "mobile", Width: 375, Height: 667},
		{Name: "tablet", Width: 768, Height: 1024},
		{Name: "desktop", Width: 1920, Height: 1080},
	}
}
