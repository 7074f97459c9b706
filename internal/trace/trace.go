// Package trace builds the nested evaluation trace returned when a request
// asks for it: one TraceNode per rule, condition-tree, leaf, property
// resolution, or operator application, mirroring the ART's own shape.
package trace

// Kind tags which step of evaluation a TraceNode records.
type Kind int

const (
	Rule Kind = iota
	ConditionTree
	Leaf
	PropertyResolve
	OperatorApply
	RuleRef
	LabelRef
	Skipped
)

func (k Kind) String() string {
	switch k {
	case Rule:
		return "Rule"
	case ConditionTree:
		return "ConditionTree"
	case Leaf:
		return "Leaf"
	case PropertyResolve:
		return "PropertyResolve"
	case OperatorApply:
		return "OperatorApply"
	case RuleRef:
		return "RuleRef"
	case LabelRef:
		return "LabelRef"
	case Skipped:
		return "Skipped"
	default:
		return "Unknown"
	}
}

// Node is one step of an evaluation trace. Only Result is meaningful for
// Skipped nodes (always false, never consulted). Detail carries operator-
// or resolution-specific data (operand values, resolved path, predicate
// name) as a plain map so it serializes without a parallel type hierarchy.
type Node struct {
	Kind        Kind
	Description string
	Result      bool
	Children    []*Node
	Detail      map[string]any
}

// New builds a node with children (ConditionTree, RuleRef, LabelRef, Rule).
func New(kind Kind, description string, result bool, children ...*Node) *Node {
	return &Node{Kind: kind, Description: description, Result: result, Children: children}
}

// NewLeaf builds a leaf node (Leaf, PropertyResolve, OperatorApply) carrying
// detail data instead of children.
func NewLeaf(kind Kind, description string, result bool, detail map[string]any) *Node {
	return &Node{Kind: kind, Description: description, Result: result, Detail: detail}
}

// NewSkipped builds a node for a condition short-circuit skipped over.
func NewSkipped(description string) *Node {
	return &Node{Kind: Skipped, Description: description, Result: false}
}
