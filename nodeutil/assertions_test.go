package nodeutil

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

func parseJava(t *testing.T, source string) (*sitter.Node, []byte) {
	t.Helper()
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, []byte(source))
	if err != nil {
		t.Fatal(err)
	}
	return tree.RootNode(), []byte(source)
}

func TestAssertTypeIs(t *testing.T) {
	root, _ := parseJava(t, "class Test {}")
	if err := AssertTypeIs(root, "program"); err != nil {
		t.Error(err)
	}
	if err := AssertTypeIs(root, "class_declaration"); err == nil {
		t.Error("Expected a type mismatch")
	}
	if err := AssertTypeIs(nil, "program"); err == nil {
		t.Error("Expected an error for a missing node")
	}
}

func TestOnlyNamedChild(t *testing.T) {
	root, _ := parseJava(t, "class A {}\nclass B {}")
	if _, err := OnlyNamedChild(root); err == nil {
		t.Error("Expected an error for two children")
	}

	root, source := parseJava(t, "class A {}")
	child, err := OnlyNamedChild(root)
	if err != nil {
		t.Fatal(err)
	}
	if name := child.ChildByFieldName("name").Content(source); name != "A" {
		t.Errorf("Expected A, got %s", name)
	}
	if _, err := OnlyNamedChild(nil); err == nil {
		t.Error("Expected an error for a missing node")
	}
}
