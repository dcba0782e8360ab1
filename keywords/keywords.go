// Package keywords lists the reserved words of S-Java
package keywords

import "golang.org/x/exp/slices"

// The only types a variable or parameter can be declared with
var PrimitiveTypes = []string{"int", "double", "boolean", "char", "String"}

// Every word that cannot be used as a variable or method name
var Reserved = []string{
	"int", "double", "boolean", "char", "String",
	"void", "final", "if", "while", "true", "false", "return",
}

// IsType reports whether word names one of the primitive types
func IsType(word string) bool {
	return slices.Contains(PrimitiveTypes, word)
}

// IsReserved tests if a given identifier is a reserved keyword
func IsReserved(word string) bool {
	return slices.Contains(Reserved, word)
}
