package pagespec

// LandmarkRoles lists the five landmark region keys in section-map order.
var LandmarkRoles = []string{"header", "nav", "main", "aside", "footer"}

// Dimensions is a width/height pair in CSS pixels.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Point is a viewport-relative x/y position in CSS pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LandmarkSection reports one landmark region. When Exists is false all
// other fields are absent; when true the payload is fully populated.
type LandmarkSection struct {
	Exists       bool        `json:"exists"`
	Dimensions   *Dimensions `json:"dimensions,omitempty"`
	Position     *Point      `json:"position,omitempty"`
	Display      string      `json:"display,omitempty"`
	PositionMode string      `json:"positionMode,omitempty"`
}

// LayoutTypes counts elements whose style attribute or class name textually
// references a layout technique. This is a substring heuristic, not a
// CSSOM-accurate count: a class named "flexible-width" counts as flex.
type LayoutTypes struct {
	Grid int `json:"grid"`
	Flex int `json:"flex"`
}

// LayoutInfo describes page-level layout signals for one render pass.
type LayoutInfo struct {
	PageHeight  float64                    `json:"pageHeight"` // max of body/documentElement scroll dims
	PageWidth   float64                    `json:"pageWidth"`
	Sections    map[string]LandmarkSection `json:"sections"`
	LayoutTypes LayoutTypes                `json:"layoutTypes"`
	Scrollable  bool                       `json:"scrollable"` // body scroll height exceeds viewport height
}
