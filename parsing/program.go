package parsing

import (
	"fmt"

	"github.com/NickyBoy89/sjavac/lines"
)

// MethodSignature is the name and parameter list of a declared method
type MethodSignature struct {
	Name   string
	Params []lines.Param
	// Line of the declaration
	Line   int
	Source string
}

func (sig MethodSignature) String() string {
	return fmt.Sprintf("Name: %s Params: %v", sig.Name, sig.Params)
}

// Program is the structure of a source file found by the first pass
type Program struct {
	// Declarations and assignments made outside of any method, in order
	Globals []lines.ParsedLine
	// Every method signature in declaration order
	Signatures []MethodSignature
	// The lines of each method's body, aligned with Signatures
	// A body holds everything after the signature line, up to and including
	// the bracket that closes the method. Empty lines and comments are dropped
	Bodies [][]lines.ParsedLine
}

func (p Program) String() string {
	return fmt.Sprintf("Program { Globals: %d, Methods: %v }", len(p.Globals), p.Signatures)
}
