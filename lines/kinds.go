// Package lines classifies and parses single lines of S-Java source.
//
// Every statement in S-Java sits on its own line, so a line is classified
// against an ordered list of patterns, and then parsed strictly into a
// ParsedLine holding the pieces the later passes need:
//
//	kind, err := lines.Classify(line)
//	parsed, err := lines.ParseStrict(kind, line, lineNumber)
package lines

import (
	"fmt"
	"regexp"
)

// Kind is the grammatical form of a line
// The order of the constants is the order the patterns are tried in
type Kind int

const (
	Empty Kind = iota
	Comment
	FinalVarDecl
	VarDecl
	MethodDecl
	IfWhile
	Return
	ClosingBracket
	Assignment
	MethodCall
)

var kindNames = [...]string{
	Empty:          "Empty",
	Comment:        "Comment",
	FinalVarDecl:   "FinalVarDecl",
	VarDecl:        "VarDecl",
	MethodDecl:     "MethodDecl",
	IfWhile:        "IfWhile",
	Return:         "Return",
	ClosingBracket: "ClosingBracket",
	Assignment:     "Assignment",
	MethodCall:     "MethodCall",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText lets kinds show up by name in JSON dumps of parsed lines
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Opens reports whether lines of this kind start a new block
func (k Kind) Opens() bool {
	return k == MethodDecl || k == IfWhile
}

const (
	typeNames = `(int|double|boolean|char|String)`
	// A value is anything up to the next comma or semicolon, with quoted
	// literals allowed to contain either
	assignName  = `[a-zA-Z_]\w*`
	assignValue = `(?:"(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*'|[^,;"'])+`
	assignPair  = assignName + `\s*=\s*` + assignValue
)

type rule struct {
	kind    Kind
	pattern *regexp.Regexp
}

// rules is tried top-to-bottom, and the first match wins
// More specific forms come first, e.g. a final declaration before a plain one
var rules = []rule{
	{Empty, regexp.MustCompile(`^\s*$`)},
	{Comment, regexp.MustCompile(`^\s*//.*$`)},
	{FinalVarDecl, regexp.MustCompile(`^\s*final\s+` + typeNames + `\s+.+;\s*$`)},
	{VarDecl, regexp.MustCompile(`^\s*` + typeNames + `\s+.+;\s*$`)},
	{MethodDecl, regexp.MustCompile(`^\s*void\s+[a-zA-Z]\w*\s*\([^)]*\)\s*\{\s*$`)},
	{IfWhile, regexp.MustCompile(`^\s*(if|while)\s*\(.*\)\s*\{\s*$`)},
	{Return, regexp.MustCompile(`^\s*return\s*;\s*$`)},
	{ClosingBracket, regexp.MustCompile(`^\s*}\s*$`)},
	{Assignment, regexp.MustCompile(`^\s*` + assignPair + `(?:\s*,\s*` + assignPair + `)*\s*;\s*$`)},
	{MethodCall, regexp.MustCompile(`^\s*[a-zA-Z]\w*\s*\(.*\)\s*;\s*$`)},
}

// In strict mode a comment has to start at the very beginning of the line
var strictComment = regexp.MustCompile(`^//.*$`)
