package parsetools

import (
	"regexp"
	"strings"
)

var (
	variableName = regexp.MustCompile(`^(?:[a-zA-Z]\w*|_\w+)$`)
	methodName   = regexp.MustCompile(`^[a-zA-Z]\w*$`)
)

// IsVariableName reports whether name is a legal variable or parameter name
// A single underscore is not a legal name
func IsVariableName(name string) bool {
	return variableName.MatchString(name)
}

// IsMethodName reports whether name is a legal method name
// Method names must start with a letter
func IsMethodName(name string) bool {
	return methodName.MatchString(name)
}

// IndexOfMatchingParenths returns the index of the parenthesis that closes
// the one at openingIndex, or -1 if it is never closed
func IndexOfMatchingParenths(searchString string, openingIndex int) int {
	return IndexOfMatchingChar(searchString, openingIndex, '(', ')')
}

// IndexOfMatchingChar finds the closing character that balances the opening
// one at openingIndex, skipping over anything in single or double quotes
// Returns -1 if the opening character is not at openingIndex or is unbalanced
func IndexOfMatchingChar(searchString string, openingIndex int, openingChar, closingChar byte) int {
	if openingIndex < 0 || openingIndex >= len(searchString) || searchString[openingIndex] != openingChar {
		return -1
	}

	balance := 0
	for ci := openingIndex; ci < len(searchString); ci++ {
		switch searchString[ci] {
		case '\\':
			ci++
		case '"', '\'':
			end := indexOfClosingQuote(searchString, ci)
			if end == -1 {
				return -1
			}
			ci = end
		case openingChar:
			balance++
		case closingChar:
			balance--
			if balance == 0 {
				return ci
			}
		}
	}
	return -1
}

// FindNextIndexOfCharWithSkip finds the index of target, skipping over
// quoted sections
// Returns -1 if no character was found
func FindNextIndexOfCharWithSkip(source string, target byte) int {
	for ci := 0; ci < len(source); ci++ {
		switch char := source[ci]; {
		case char == '\\': // Skip escaped characters
			ci++
		case char == '"' || char == '\'':
			end := indexOfClosingQuote(source, ci)
			if end == -1 {
				return -1
			}
			ci = end
		case char == target:
			return ci
		}
	}
	return -1
}

// FindAllIndexesOfCharWithSkip returns the indexes of every target character
// that is not inside quotes
func FindAllIndexesOfCharWithSkip(source string, target byte) []int {
	indexes := []int{}
	var cutout int
	for {
		ind := FindNextIndexOfCharWithSkip(source[cutout:], target)
		if ind == -1 {
			break
		}
		indexes = append(indexes, ind+cutout)
		cutout += ind + 1
	}
	return indexes
}

// SplitWithSkip splits source around every separator that is outside quotes
// Every part is trimmed of surrounding whitespace, and empty parts are kept
// so that callers can reject them
func SplitWithSkip(source string, separator byte) []string {
	parts := []string{}
	carrier := 0
	for _, sep := range FindAllIndexesOfCharWithSkip(source, separator) {
		parts = append(parts, strings.TrimSpace(source[carrier:sep]))
		carrier = sep + 1 // Skip the separator
	}
	return append(parts, strings.TrimSpace(source[carrier:]))
}

// indexOfClosingQuote returns the index of the quote that closes the one at
// openingIndex, honoring backslash escapes
func indexOfClosingQuote(source string, openingIndex int) int {
	quote := source[openingIndex]
	for ci := openingIndex + 1; ci < len(source); ci++ {
		switch source[ci] {
		case '\\':
			ci++
		case quote:
			return ci
		}
	}
	return -1
}
