package lines

import (
	"strings"

	"github.com/NickyBoy89/sjavac/diagnostic"
)

// Classifier matches lines against the ordered kind patterns
type Classifier struct {
	// StrictComments rejects comments that do not start in the first column
	StrictComments bool
}

// Classify uses a default, non-strict Classifier
func Classify(line string) (Kind, error) {
	return Classifier{}.Classify(line)
}

// Classify returns the kind of the first pattern that matches line
// Apart from empty lines and comments, every line must end with ';', '{', or '}'
func (c Classifier) Classify(line string) (Kind, error) {
	for _, r := range rules {
		if r.kind == Comment && c.StrictComments {
			if strictComment.MatchString(line) {
				return Comment, nil
			}
			continue
		}

		if r.kind == FinalVarDecl {
			// Empty lines and comments have been ruled out, so everything from
			// here on is a statement that needs a terminator
			trimmed := strings.TrimSpace(line)
			if !(strings.HasSuffix(trimmed, ";") || strings.HasSuffix(trimmed, "{") || strings.HasSuffix(trimmed, "}")) {
				return 0, diagnostic.Errorf(diagnostic.UnrecognizedLine, 0, line, "line must end with ';', '{', or '}'")
			}
		}

		if r.pattern.MatchString(line) {
			return r.kind, nil
		}
	}
	return 0, diagnostic.Errorf(diagnostic.UnrecognizedLine, 0, line, "unrecognized line")
}

// Parse classifies and strictly parses a single line
func (c Classifier) Parse(line string, number int) (ParsedLine, error) {
	kind, err := c.Classify(line)
	if err != nil {
		return nil, diagnostic.At(err, number, line)
	}
	return ParseStrict(kind, line, number)
}
