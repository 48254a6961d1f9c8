package memhost

import "fmt"

// Op is the type of a recorded host mutation.
type Op uint8

const (
	OpCreateElement Op = iota + 1 // Create detached element
	OpCreateText                  // Create detached text node
	OpSetAttr                     // Set/update attribute
	OpRemoveAttr                  // Remove attribute
	OpMergeStyle                  // Merge style declarations
	OpClearStyle                  // Clear one style declaration
	OpSetText                     // Overwrite text content
	OpAppendChild                 // Append node to parent
	OpInsertBefore                // Insert node before sibling
	OpRemoveChild                 // Detach node from parent
)

// String returns the string representation of the Op.
func (op Op) String() string {
	switch op {
	case OpCreateElement:
		return "CreateElement"
	case OpCreateText:
		return "CreateText"
	case OpSetAttr:
		return "SetAttr"
	case OpRemoveAttr:
		return "RemoveAttr"
	case OpMergeStyle:
		return "MergeStyle"
	case OpClearStyle:
		return "ClearStyle"
	case OpSetText:
		return "SetText"
	case OpAppendChild:
		return "AppendChild"
	case OpInsertBefore:
		return "InsertBefore"
	case OpRemoveChild:
		return "RemoveChild"
	default:
		return "Unknown"
	}
}

// IsStructural reports whether the op changes the shape of the attached tree
// or a node's content, as opposed to creating a detached node.
func (op Op) IsStructural() bool {
	return op != OpCreateElement && op != OpCreateText
}

// Mutation is one recorded adapter call.
type Mutation struct {
	Op     Op     // Operation type
	Node   int    // Target node ID
	Parent int    // Parent for AppendChild/InsertBefore
	Before int    // Reference sibling for InsertBefore
	Key    string // Attribute or style key
	Value  string // New value (tag name for CreateElement)
}

// String formats the mutation for logs and CLI output.
func (m Mutation) String() string {
	switch m.Op {
	case OpCreateElement, OpCreateText, OpSetText:
		return fmt.Sprintf("%s #%d %q", m.Op, m.Node, m.Value)
	case OpSetAttr:
		return fmt.Sprintf("%s #%d %s=%q", m.Op, m.Node, m.Key, m.Value)
	case OpRemoveAttr, OpClearStyle:
		return fmt.Sprintf("%s #%d %s", m.Op, m.Node, m.Key)
	case OpMergeStyle:
		return fmt.Sprintf("%s #%d %s", m.Op, m.Node, m.Value)
	case OpAppendChild:
		return fmt.Sprintf("%s #%d -> #%d", m.Op, m.Node, m.Parent)
	case OpInsertBefore:
		return fmt.Sprintf("%s #%d -> #%d before #%d", m.Op, m.Node, m.Parent, m.Before)
	default:
		return fmt.Sprintf("%s #%d", m.Op, m.Node)
	}
}
