package pagespec

// DesignTokens holds the deduplicated design-token sets extracted from
// computed styles across a page. Each slice contains each value at most
// once; order is implementation-defined (the collector sorts for output
// determinism).
type DesignTokens struct {
	Colors      []string `json:"colors"`
	Fonts       []string `json:"fonts"`   // family + weight composite
	Spacing     []string `json:"spacing"` // non-zero margin/padding values
	BorderRadii []string `json:"borderRadii"`
	BoxShadows  []string `json:"boxShadows"`
	Gradients   []string `json:"gradients"`
}
