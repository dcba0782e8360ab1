package symbol

import (
	"regexp"
	"strconv"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
)

var (
	decimalInteger = regexp.MustCompile(`^\d+$`)
	// No exponents or type suffixes
	decimalFloat = regexp.MustCompile(`^(?:\d+\.\d*|\.\d+)$`)
)

// TypeOfLiteral returns the corresponding type for a Java literal node
// The second result is false for literals that S-Java does not have, such as
// hex numbers, suffixed numbers, or null, and for ints that are out of range
func TypeOfLiteral(node *sitter.Node, source []byte) (Type, bool) {
	content := node.Content(source)

	switch node.Type() {
	case "decimal_integer_literal", "octal_integer_literal":
		if !decimalInteger.MatchString(content) {
			break
		}
		// Has to fit in an int
		if _, err := strconv.ParseInt(content, 10, 32); err == nil {
			return Int, true
		}
	case "decimal_floating_point_literal":
		if decimalFloat.MatchString(content) {
			return Double, true
		}
	case "true", "false":
		return Boolean, true
	case "character_literal":
		if isSingleCharacter(content) {
			return Char, true
		}
	case "string_literal":
		return String, true
	}

	return Invalid, false
}

// isSingleCharacter checks that a quoted character literal holds exactly one
// character or one escape sequence
func isSingleCharacter(literal string) bool {
	if len(literal) < 3 {
		return false
	}
	inner := literal[1 : len(literal)-1]
	if inner[0] == '\\' {
		return len(inner) == 2
	}
	return utf8.RuneCountInString(inner) == 1
}
