package pagespec

// Geometry is the viewport-relative, post-layout bounding box of an element.
type Geometry struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// ElementRecord describes one DOM element encountered during traversal.
// Index values are dense and unique within a single analysis pass, in
// document order (querySelectorAll('*') order). ParentIndex refers to an
// index produced in the same pass, or is nil for the root.
type ElementRecord struct {
	Index       int               `json:"index"`
	TagName     string            `json:"tagName"` // lowercased
	ID          *string           `json:"id"`
	Classes     []string          `json:"classes"`
	TextContent *string           `json:"textContent"` // trimmed, capped at 200 chars
	Geometry    Geometry          `json:"geometry"`
	CSSStyles   map[string]string `json:"cssStyles"` // full computed style, not a curated subset
	Selector    string            `json:"selector"`
	ParentIndex *int              `json:"parentIndex"`
	ChildCount  int               `json:"childCount"`
	Attributes  map[string]string `json:"attributes"`
}
