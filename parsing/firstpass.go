// Package parsing runs the structural first pass over an S-Java file.
//
// The first pass classifies and parses every line, keeps track of how deeply
// nested the current line is, and splits the file into global lines, method
// signatures, and method bodies. It only checks that blocks are balanced and
// that statements appear where they are allowed; types and declarations are
// left to the second pass.
package parsing

import (
	"github.com/NickyBoy89/sjavac/diagnostic"
	"github.com/NickyBoy89/sjavac/lines"
	log "github.com/sirupsen/logrus"
)

// FirstPass holds the state of the structural pass over a single file
type FirstPass struct {
	classifier lines.Classifier
	program    *Program
	// 0 is the global scope, 1 is directly inside a method
	depth int
}

// NewFirstPass creates a pass that classifies lines with classifier
func NewFirstPass(classifier lines.Classifier) *FirstPass {
	return &FirstPass{
		classifier: classifier,
		program:    &Program{},
	}
}

// RunFirstPass runs a default first pass over the lines of a file
func RunFirstPass(source []string) (*Program, error) {
	return NewFirstPass(lines.Classifier{}).Run(source)
}

// Run processes every line in order, and returns the finished program
// The first error stops the pass
func (fp *FirstPass) Run(source []string) (*Program, error) {
	for ind, line := range source {
		parsed, err := fp.classifier.Parse(line, ind+1)
		if err != nil {
			return nil, err
		}
		if err := fp.ProcessLine(parsed); err != nil {
			return nil, err
		}
	}
	return fp.Finish()
}

// ProcessLine updates the nesting depth and sorts a single line into the program
func (fp *FirstPass) ProcessLine(parsed lines.ParsedLine) error {
	log.WithFields(log.Fields{
		"line":  parsed.Number(),
		"kind":  parsed.Kind(),
		"depth": fp.depth,
	}).Debug("Processing line")

	switch parsed.Kind() {
	case lines.Empty, lines.Comment:
		return nil

	case lines.MethodDecl:
		if fp.depth != 0 {
			return fp.errorf(diagnostic.NestedMethod, parsed, "method declared inside another method")
		}
		method := parsed.(*lines.Method)
		fp.program.Signatures = append(fp.program.Signatures, MethodSignature{
			Name:   method.Name,
			Params: method.Params,
			Line:   method.Number(),
			Source: method.Source(),
		})
		fp.program.Bodies = append(fp.program.Bodies, []lines.ParsedLine{})

	case lines.IfWhile:
		if fp.depth == 0 {
			return fp.errorf(diagnostic.StatementOutsideMethod, parsed, "%s block outside of a method", parsed.(*lines.Conditional).Keyword)
		}
		fp.appendToBody(parsed)

	case lines.Return, lines.MethodCall:
		if fp.depth == 0 {
			return fp.errorf(diagnostic.StatementOutsideMethod, parsed, "%s not allowed in the global scope", parsed.Kind())
		}
		fp.appendToBody(parsed)

	case lines.ClosingBracket:
		if fp.depth == 0 {
			return fp.errorf(diagnostic.UnmatchedClosingBracket, parsed, "closing bracket without an open block")
		}
		fp.depth--
		fp.appendToBody(parsed)

	case lines.FinalVarDecl, lines.VarDecl, lines.Assignment:
		if fp.depth == 0 {
			fp.program.Globals = append(fp.program.Globals, parsed)
		} else {
			fp.appendToBody(parsed)
		}
	}

	if parsed.Kind().Opens() {
		fp.depth++
	}
	return nil
}

// Finish checks that every block was closed, and returns the program
func (fp *FirstPass) Finish() (*Program, error) {
	if fp.depth != 0 {
		return nil, diagnostic.Errorf(diagnostic.UnmatchedOpeningBracket, 0, "", "%d block(s) still open at the end of the file", fp.depth)
	}
	log.WithFields(log.Fields{
		"globals": len(fp.program.Globals),
		"methods": len(fp.program.Signatures),
	}).Debug("First pass finished")
	return fp.program, nil
}

func (fp *FirstPass) appendToBody(parsed lines.ParsedLine) {
	last := len(fp.program.Bodies) - 1
	fp.program.Bodies[last] = append(fp.program.Bodies[last], parsed)
}

func (fp *FirstPass) errorf(kind diagnostic.Kind, parsed lines.ParsedLine, format string, args ...interface{}) error {
	return diagnostic.Errorf(kind, parsed.Number(), parsed.Source(), format, args...)
}
