package nodeutil

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// AssertTypeIs checks that node exists and has the expected type
func AssertTypeIs(node *sitter.Node, expectedType string) error {
	if node == nil {
		return fmt.Errorf("assertion failed: expected a %s node, got nothing", expectedType)
	}
	if node.Type() != expectedType {
		return fmt.Errorf("assertion failed: Type of node differs from expected: %s, got: %s", expectedType, node.Type())
	}
	return nil
}

// OnlyNamedChild returns the single named child of node, or an error if it
// has none or more than one
func OnlyNamedChild(node *sitter.Node) (*sitter.Node, error) {
	if node == nil {
		return nil, fmt.Errorf("expected a node, got nothing")
	}
	if count := node.NamedChildCount(); count != 1 {
		return nil, fmt.Errorf("expected %s to have exactly one child, got %d", node.Type(), count)
	}
	return node.NamedChild(0), nil
}
