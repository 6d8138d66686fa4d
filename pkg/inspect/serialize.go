package inspect

import (
	"fmt"
	"reflect"

	"github.com/go-slate/slate/pkg/core"
)

// maxTreeDepth limits recursion depth to prevent stack overflow from
// malformed trees.
const maxTreeDepth = 500

// TreeNode represents a node in the serialized widget/element tree.
type TreeNode struct {
	ID          string     `json:"id"`
	WidgetType  string     `json:"widgetType"`
	ElementType string     `json:"elementType"`
	Key         any        `json:"key,omitempty"`
	Depth       int        `json:"depth"`
	NeedsBuild  bool       `json:"needsBuild"`
	HasState    bool       `json:"hasState,omitempty"`
	Children    []TreeNode `json:"children,omitempty"`
}

func serializeTree(element core.Element, depth int) TreeNode {
	node := TreeNode{
		ID:          element.ID().String(),
		WidgetType:  typeString(element.Widget()),
		ElementType: typeString(element),
		Key:         safeKey(element.Widget()),
		Depth:       element.Depth(),
	}
	if dirty, ok := element.(interface{ NeedsBuild() bool }); ok {
		node.NeedsBuild = dirty.NeedsBuild()
	}
	if stateful, ok := element.(*core.StatefulElement); ok {
		node.HasState = stateful.State() != nil
	}

	if depth >= maxTreeDepth {
		return node
	}
	element.VisitChildren(func(child core.Element) bool {
		node.Children = append(node.Children, serializeTree(child, depth+1))
		return true
	})
	return node
}

func typeString(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}

// safeKey renders a widget key into something JSON-encodable. Keys are
// arbitrary values; non-primitive keys are stringified.
func safeKey(w core.Widget) any {
	if w == nil {
		return nil
	}
	key := w.Key()
	if key == nil {
		return nil
	}
	switch key.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return key
	default:
		return fmt.Sprintf("%v", key)
	}
}
