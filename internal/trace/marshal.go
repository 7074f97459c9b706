package trace

import "encoding/json"

// jsonNode is the wire shape of a Node, mirroring pgraph.go's jsonResult
// tagging convention (a Kind discriminator alongside the payload).
type jsonNode struct {
	Kind        string         `json:"kind"`
	Description string         `json:"description"`
	Result      bool           `json:"result"`
	Children    []*jsonNode    `json:"children,omitempty"`
	Detail      map[string]any `json:"detail,omitempty"`
}

// MarshalJSON renders the trace tree as nested structured data, suitable
// for embedding directly in an evaluation response.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	return json.Marshal(toJSONNode(n))
}

func toJSONNode(n *Node) *jsonNode {
	jn := &jsonNode{
		Kind:        n.Kind.String(),
		Description: n.Description,
		Result:      n.Result,
		Detail:      n.Detail,
	}
	if len(n.Children) > 0 {
		jn.Children = make([]*jsonNode, len(n.Children))
		for i, c := range n.Children {
			jn.Children[i] = toJSONNode(c)
		}
	}
	return jn
}
