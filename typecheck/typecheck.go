// Package typecheck runs the semantic second pass over the structure built
// by the first pass.
//
// Globals are checked first, in order, then every method signature, and
// finally each method body with a stack of frames that mirrors the blocks of
// the source. The first violation found stops the check.
package typecheck

import (
	"github.com/NickyBoy89/sjavac/diagnostic"
	"github.com/NickyBoy89/sjavac/lines"
	"github.com/NickyBoy89/sjavac/parsing"
	"github.com/NickyBoy89/sjavac/symbol"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Info records facts about a program that passed the check
type Info struct {
	// Method names in declaration order
	Methods []string
	// For every method, the methods it calls in order of their first call
	Calls map[string][]string
}

// Checker holds the state of the second pass over a single program
type Checker struct {
	program *parsing.Program
	info    *Info
	exprs   *ExprParser

	methods *symbol.MethodTable
	global  *symbol.Frame
	stack   *symbol.Stack

	// Current method, nil while checking globals
	method *symbol.Method
	// Line being checked, for error reporting
	line lines.ParsedLine
}

// NewChecker creates a checker for program
func NewChecker(program *parsing.Program) *Checker {
	global := symbol.NewFrame("global")
	return &Checker{
		program: program,
		info:    &Info{Calls: make(map[string][]string)},
		exprs:   NewExprParser(),
		methods: symbol.NewMethodTable(),
		global:  global,
		stack:   symbol.NewStack(global),
	}
}

// RunSecondPass checks program, and returns the first violation found
func RunSecondPass(program *parsing.Program) error {
	_, err := Check(program)
	return err
}

// Check checks program, and returns what it learned about it
func Check(program *parsing.Program) (*Info, error) {
	c := NewChecker(program)
	if err := c.Check(); err != nil {
		return nil, err
	}
	return c.info, nil
}

// Check runs all three phases of the pass
func (c *Checker) Check() error {
	if err := c.checkGlobals(); err != nil {
		return err
	}
	if err := c.checkSignatures(); err != nil {
		return err
	}
	return c.checkBodies()
}

func (c *Checker) errorf(kind diagnostic.Kind, format string, args ...interface{}) error {
	if c.line == nil {
		return diagnostic.Errorf(kind, 0, "", format, args...)
	}
	return diagnostic.Errorf(kind, c.line.Number(), c.line.Source(), format, args...)
}

func (c *Checker) checkGlobals() error {
	for _, line := range c.program.Globals {
		c.line = line
		if err := c.checkStatement(line); err != nil {
			return err
		}
	}
	log.WithField("globals", c.stack.Global().Names()).Debug("Checked global declarations")
	return nil
}

func (c *Checker) checkSignatures() error {
	for _, sig := range c.program.Signatures {
		c.line = &lines.Bare{Line: lines.Line{LineKind: lines.MethodDecl, LineNumber: sig.Line, Text: sig.Source}}

		method := &symbol.Method{Name: sig.Name, Line: sig.Line}
		if existing := c.methods.Insert(method); existing != nil {
			return c.errorf(diagnostic.DuplicateMethod, "method %q is already declared on line %d", sig.Name, existing.Line)
		}

		params := symbol.NewFrame("method " + sig.Name)
		for _, param := range sig.Params {
			typ, _ := symbol.ParseType(param.Type)
			binding := &symbol.Binding{
				Name:        param.Name,
				Type:        typ,
				Final:       param.Final,
				Initialized: true,
				Line:        sig.Line,
			}
			if params.Insert(binding) != nil {
				return c.errorf(diagnostic.DuplicateDeclaration, "parameter %q is declared twice", param.Name)
			}
			method.Parameters = append(method.Parameters, binding)
		}

		log.WithFields(log.Fields{
			"method":     method.Name,
			"parameters": method.ParameterTypes(),
		}).Debug("Declared method")
	}

	for _, method := range c.methods.Methods() {
		c.info.Methods = append(c.info.Methods, method.Name)
	}
	return nil
}

func (c *Checker) checkBodies() error {
	for ind, sig := range c.program.Signatures {
		c.method = c.methods.FindMethodByName(sig.Name)
		c.stack = symbol.NewStack(c.global)
		frame := c.stack.Push("method " + sig.Name)
		for _, param := range c.method.Parameters {
			frame.Insert(param)
		}

		for _, line := range c.program.Bodies[ind] {
			c.line = line
			if err := c.checkStatement(line); err != nil {
				return err
			}
		}

		log.WithFields(log.Fields{
			"method": sig.Name,
			"depth":  c.stack.Depth(),
		}).Debug("Checked method body")
	}
	return nil
}

// checkStatement checks a single global or body line
func (c *Checker) checkStatement(line lines.ParsedLine) error {
	switch l := line.(type) {
	case *lines.Declaration:
		return c.checkDeclaration(l)
	case *lines.Assignments:
		return c.checkAssignments(l)
	case *lines.Conditional:
		typ, err := c.TypeOf(l.Condition)
		if err != nil {
			return err
		}
		if typ != symbol.Boolean {
			return c.errorf(diagnostic.TypeMismatch, "%s condition must be a boolean, got %s", l.Keyword, typ)
		}
		c.stack.Push(l.Keyword)
	case *lines.Call:
		return c.checkCall(l)
	case *lines.Bare:
		if l.Kind() == lines.ClosingBracket {
			c.stack.Pop()
		}
		// Returns are allowed anywhere inside a method
	}
	return nil
}

func (c *Checker) checkDeclaration(decl *lines.Declaration) error {
	typ, ok := symbol.ParseType(decl.Type)
	if !ok {
		return c.errorf(diagnostic.MalformedLine, "unknown type %q", decl.Type)
	}

	for _, declarator := range decl.Declarators {
		if existing := c.stack.Current().Lookup(declarator.Name); existing != nil {
			return c.errorf(diagnostic.DuplicateDeclaration, "%q is already declared in this scope", declarator.Name)
		}
		if decl.Final && !declarator.HasValue {
			return c.errorf(diagnostic.UninitializedFinal, "final variable %q must be given a value", declarator.Name)
		}

		// The name is in scope inside its own initializer, without a value yet
		binding := &symbol.Binding{
			Name:  declarator.Name,
			Type:  typ,
			Final: decl.Final,
			Line:  decl.Number(),
		}
		c.stack.Declare(binding)

		if declarator.HasValue {
			valueType, err := c.TypeOf(declarator.Value)
			if err != nil {
				return err
			}
			if !symbol.AssignableTo(valueType, typ) {
				return c.errorf(diagnostic.TypeMismatch, "cannot assign a %s to %q of type %s", valueType, declarator.Name, typ)
			}
			binding.Initialized = true
		}
	}
	return nil
}

func (c *Checker) checkAssignments(assignments *lines.Assignments) error {
	for _, assign := range assignments.Assigns {
		binding, _ := c.stack.Lookup(assign.Name)
		if binding == nil {
			return c.errorf(diagnostic.UndeclaredVariable, "%q is not declared", assign.Name)
		}
		if binding.Final {
			return c.errorf(diagnostic.ReassignedFinal, "cannot assign to final variable %q", assign.Name)
		}

		valueType, err := c.TypeOf(assign.Value)
		if err != nil {
			return err
		}
		if !symbol.AssignableTo(valueType, binding.Type) {
			return c.errorf(diagnostic.TypeMismatch, "cannot assign a %s to %q of type %s", valueType, assign.Name, binding.Type)
		}

		c.stack.MarkInitialized(binding)
	}
	return nil
}

func (c *Checker) checkCall(call *lines.Call) error {
	target := c.methods.FindMethodByName(call.Name)
	if target == nil {
		return c.errorf(diagnostic.UndeclaredMethod, "method %q is not declared", call.Name)
	}
	if len(call.Args) != len(target.Parameters) {
		return c.errorf(diagnostic.ArityMismatch, "%s expects %d argument(s), got %d", call.Name, len(target.Parameters), len(call.Args))
	}

	for ind, arg := range call.Args {
		argType, err := c.TypeOf(arg)
		if err != nil {
			return err
		}
		param := target.Parameters[ind]
		if !symbol.AssignableTo(argType, param.Type) {
			return c.errorf(diagnostic.TypeMismatch, "argument %d of %s must be %s, got %s", ind+1, call.Name, param.Type, argType)
		}
	}

	if c.method != nil && !slices.Contains(c.info.Calls[c.method.Name], call.Name) {
		c.info.Calls[c.method.Name] = append(c.info.Calls[c.method.Name], call.Name)
	}
	return nil
}
