package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E120-E149)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The configuration file could not be read or parsed.",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration field holds a value outside its allowed range.",
	},
	"E141": {
		Category:   CategoryConfig,
		Message:    "Configuration file not found",
		Suggestion: "Create vdomctl.json or run without --config to use the defaults",
	},

	// ============================================
	// Tree File Errors (E150-E169)
	// ============================================

	"E150": {
		Category: CategoryCLI,
		Message:  "Invalid tree file",
		Detail:   "The tree file is not valid YAML or JSON.",
	},
	"E151": {
		Category:   CategoryCLI,
		Message:    "Invalid tree node",
		Detail:     "Every node must be a string (text) or a mapping with a tag.",
		Suggestion: "Write text as a plain string and elements as {tag: li, children: [...]}",
	},
	"E152": {
		Category:   CategoryConfig,
		Message:    "Unknown event category",
		Suggestion: "Use one of: click, dblclick, mousedown, mouseup, keydown, keyup, input, change, submit",
	},

	// ============================================
	// Tree Errors (E200-E219)
	// ============================================

	"E201": {
		Category:   CategoryTree,
		Message:    "Malformed node type",
		Detail:     "The node is neither a host tag, a text value, nor a declared component. It renders nothing.",
		Suggestion: "Create nodes with vdom.CreateElement or the element helpers",
	},
	"E202": {
		Category:   CategoryTree,
		Message:    "Event prop is not callable",
		Detail:     "Props starting with \"on\" must hold an event.Handler, a func(*event.Synthetic) or a func().",
		Suggestion: "Pass a function, or rename the prop if it is a plain attribute",
	},
	"E203": {
		Category:   CategoryTree,
		Message:    "Callback under a non-event prop",
		Detail:     "Only props named \"on\" plus an upper-case letter are event callbacks. This callback is neither registered nor set as an attribute.",
		Suggestion: "Use the camel-case event name, e.g. onClick instead of onclick",
	},

	// ============================================
	// Runtime Errors (E220-E239)
	// ============================================

	"E220": {
		Category: CategoryRuntime,
		Message:  "Component constructor returned nil",
		Detail:   "A class component's New function must return a component instance.",
	},
	"E221": {
		Category: CategoryRuntime,
		Message:  "Mount target has no host parent",
		Detail:   "A subtree was mounted without a host parent and was not inserted.",
	},
}
