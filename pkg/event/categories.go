package event

// Category binds a host event type to the callback prop names used for its
// two phases.
type Category struct {
	Type    string // host event type, e.g. "click"
	Capture string // prop name for the capture phase, e.g. "onClickCapture"
	Bubble  string // prop name for the bubble phase, e.g. "onClick"
}

// PropName returns the callback prop name for phase.
func (c Category) PropName(p Phase) string {
	if p == PhaseCapture {
		return c.Capture
	}
	return c.Bubble
}

func category(eventType, name string) Category {
	return Category{Type: eventType, Capture: "on" + name + "Capture", Bubble: "on" + name}
}

// Mouse events

var (
	Click       = category("click", "Click")
	DoubleClick = category("dblclick", "DoubleClick")
	MouseDown   = category("mousedown", "MouseDown")
	MouseUp     = category("mouseup", "MouseUp")
)

// Keyboard events

var (
	KeyDown = category("keydown", "KeyDown")
	KeyUp   = category("keyup", "KeyUp")
)

// Form events

var (
	Input  = category("input", "Input")
	Change = category("change", "Change")
	Submit = category("submit", "Submit")
)

// known lists every category Lookup resolves.
var known = []Category{Click, DoubleClick, MouseDown, MouseUp, KeyDown, KeyUp, Input, Change, Submit}

// DefaultCategories are delegated when a root is created without WithEvents.
var DefaultCategories = []Category{Click}

// Lookup resolves a host event type to its category.
func Lookup(eventType string) (Category, bool) {
	for _, c := range known {
		if c.Type == eventType {
			return c, true
		}
	}
	return Category{}, false
}
