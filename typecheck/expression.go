package typecheck

import (
	"context"
	"fmt"

	"github.com/NickyBoy89/sjavac/diagnostic"
	"github.com/NickyBoy89/sjavac/nodeutil"
	"github.com/NickyBoy89/sjavac/parsetools"
	"github.com/NickyBoy89/sjavac/symbol"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// Expressions are parsed by placing them in the condition of an if statement
// inside an otherwise empty Java class
const (
	wrapperPrefix = "class Check { void check() { if ("
	wrapperSuffix = ") {} } }"
)

// ExprParser parses the expressions of S-Java lines with the Java grammar
type ExprParser struct {
	parser *sitter.Parser
}

// NewExprParser creates a parser for the Java grammar
func NewExprParser() *ExprParser {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())
	return &ExprParser{parser: parser}
}

// Parse returns the root node of a single expression, along with the source
// the node's contents refer to
func (ep *ExprParser) Parse(expr string) (*sitter.Node, []byte, error) {
	// There is no division in S-Java, and this keeps comments out
	if parsetools.FindNextIndexOfCharWithSkip(expr, '/') != -1 {
		return nil, nil, fmt.Errorf("unexpected '/' in %q", expr)
	}

	source := []byte(wrapperPrefix + expr + wrapperSuffix)
	tree, err := ep.parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, nil, err
	}

	root := tree.RootNode()
	if root.HasError() {
		return nil, nil, fmt.Errorf("%q is not a valid expression", expr)
	}

	node, err := unwrap(root)
	if err != nil {
		return nil, nil, fmt.Errorf("%q is not a single expression: %w", expr, err)
	}
	return node, source, nil
}

// unwrap walks from the root of the wrapper class down to the expression,
// checking that the expression did not change the shape of the wrapper
func unwrap(root *sitter.Node) (*sitter.Node, error) {
	class, err := nodeutil.OnlyNamedChild(root)
	if err != nil {
		return nil, err
	}
	if err := nodeutil.AssertTypeIs(class, "class_declaration"); err != nil {
		return nil, err
	}

	method, err := nodeutil.OnlyNamedChild(class.ChildByFieldName("body"))
	if err != nil {
		return nil, err
	}
	if err := nodeutil.AssertTypeIs(method, "method_declaration"); err != nil {
		return nil, err
	}

	statement, err := nodeutil.OnlyNamedChild(method.ChildByFieldName("body"))
	if err != nil {
		return nil, err
	}
	if err := nodeutil.AssertTypeIs(statement, "if_statement"); err != nil {
		return nil, err
	}
	if statement.ChildByFieldName("alternative") != nil {
		return nil, fmt.Errorf("unexpected else branch")
	}
	consequence := statement.ChildByFieldName("consequence")
	if err := nodeutil.AssertTypeIs(consequence, "block"); err != nil {
		return nil, err
	}
	if consequence.NamedChildCount() != 0 {
		return nil, fmt.Errorf("unexpected statements after the expression")
	}

	// The condition holds the parentheses of the wrapper itself
	condition := statement.ChildByFieldName("condition")
	if condition == nil {
		return nil, fmt.Errorf("missing condition")
	}
	if condition.Type() == "parenthesized_expression" || condition.Type() == "condition" {
		return nodeutil.OnlyNamedChild(condition)
	}
	return condition, nil
}

// TypeOf returns the type of an expression in the current scope
func (c *Checker) TypeOf(expr string) (symbol.Type, error) {
	node, source, err := c.exprs.Parse(expr)
	if err != nil {
		return symbol.Invalid, c.errorf(diagnostic.MalformedLine, "%v", err)
	}
	return c.typeOfNode(node, source)
}

func (c *Checker) typeOfNode(node *sitter.Node, source []byte) (symbol.Type, error) {
	switch node.Type() {
	case "parenthesized_expression":
		inner, err := nodeutil.OnlyNamedChild(node)
		if err != nil {
			return symbol.Invalid, c.errorf(diagnostic.MalformedLine, "%v", err)
		}
		return c.typeOfNode(inner, source)

	case "identifier":
		name := node.Content(source)
		binding, _ := c.stack.Lookup(name)
		if binding == nil {
			return symbol.Invalid, c.errorf(diagnostic.UndeclaredVariable, "%q is not declared", name)
		}
		if !c.stack.IsInitialized(binding) {
			return symbol.Invalid, c.errorf(diagnostic.UninitializedVariable, "%q is used before it is given a value", name)
		}
		return binding.Type, nil

	case "unary_expression":
		return c.typeOfUnary(node, source)

	case "binary_expression":
		return c.typeOfBinary(node, source)
	}

	if typ, ok := symbol.TypeOfLiteral(node, source); ok {
		return typ, nil
	}
	return symbol.Invalid, c.errorf(diagnostic.MalformedLine, "unsupported expression %q", node.Content(source))
}

func (c *Checker) typeOfUnary(node *sitter.Node, source []byte) (symbol.Type, error) {
	operator := node.ChildByFieldName("operator")
	operand := node.ChildByFieldName("operand")
	if operator == nil || operand == nil {
		return symbol.Invalid, c.errorf(diagnostic.MalformedLine, "malformed expression %q", node.Content(source))
	}

	switch operator.Type() {
	case "-", "+":
		// Signs are only allowed on number literals
		typ, ok := symbol.TypeOfLiteral(operand, source)
		if !ok || !typ.Numeric() {
			return symbol.Invalid, c.errorf(diagnostic.MalformedLine, "sign applied to %q", operand.Content(source))
		}
		return typ, nil
	case "!":
		typ, err := c.typeOfNode(operand, source)
		if err != nil {
			return symbol.Invalid, err
		}
		if typ != symbol.Boolean {
			return symbol.Invalid, c.errorf(diagnostic.TypeMismatch, "cannot negate a %s", typ)
		}
		return symbol.Boolean, nil
	}
	return symbol.Invalid, c.errorf(diagnostic.MalformedLine, "unsupported operator %q", operator.Type())
}

func (c *Checker) typeOfBinary(node *sitter.Node, source []byte) (symbol.Type, error) {
	operator := node.ChildByFieldName("operator")
	left := node.ChildByFieldName("left")
	right := node.ChildByFieldName("right")
	if operator == nil || left == nil || right == nil {
		return symbol.Invalid, c.errorf(diagnostic.MalformedLine, "malformed expression %q", node.Content(source))
	}

	var check func(l, r symbol.Type) bool
	switch op := operator.Type(); op {
	case "&&", "||":
		check = func(l, r symbol.Type) bool { return l == symbol.Boolean && r == symbol.Boolean }
	case "<", ">", "<=", ">=":
		check = func(l, r symbol.Type) bool { return l.Numeric() && r.Numeric() }
	case "==", "!=":
		check = symbol.Comparable
	default:
		return symbol.Invalid, c.errorf(diagnostic.MalformedLine, "unsupported operator %q", op)
	}

	leftType, err := c.typeOfNode(left, source)
	if err != nil {
		return symbol.Invalid, err
	}
	rightType, err := c.typeOfNode(right, source)
	if err != nil {
		return symbol.Invalid, err
	}
	if !check(leftType, rightType) {
		return symbol.Invalid, c.errorf(diagnostic.TypeMismatch, "operator %s cannot be applied to %s and %s", operator.Type(), leftType, rightType)
	}
	return symbol.Boolean, nil
}
