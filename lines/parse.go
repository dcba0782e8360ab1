package lines

import (
	"regexp"
	"strings"

	"github.com/NickyBoy89/sjavac/diagnostic"
	"github.com/NickyBoy89/sjavac/keywords"
	"github.com/NickyBoy89/sjavac/parsetools"
)

var (
	methodParts      = regexp.MustCompile(`^\s*void\s+(\w+)\s*\(([^)]*)\)\s*\{\s*$`)
	conditionalParts = regexp.MustCompile(`^\s*(if|while)\s*\((.*)\)\s*\{\s*$`)
	callName         = regexp.MustCompile(`^\s*(\w+)\s*\(`)
)

// ParseStrict parses a line that has already been classified as kind
// It is stricter than the classification patterns, and rejects lines that
// have the right shape but break a rule of the language
func ParseStrict(kind Kind, line string, number int) (ParsedLine, error) {
	base := Line{LineKind: kind, LineNumber: number, Text: line}

	switch kind {
	case Empty, Comment, Return, ClosingBracket:
		return &Bare{Line: base}, nil
	case FinalVarDecl, VarDecl:
		return parseDeclaration(base, line)
	case MethodDecl:
		return parseMethod(base, line)
	case IfWhile:
		return parseConditional(base, line)
	case Assignment:
		return parseAssignments(base, line)
	case MethodCall:
		return parseCall(base, line)
	}
	return nil, malformed(base, "unknown line kind %s", kind)
}

func malformed(base Line, format string, args ...interface{}) error {
	return diagnostic.Errorf(diagnostic.MalformedLine, base.LineNumber, base.Text, format, args...)
}

// stripTerminator removes the trailing semicolon of a statement
func stripTerminator(line string) string {
	return strings.TrimSuffix(strings.TrimSpace(line), ";")
}

func checkVariableName(base Line, name string) error {
	if keywords.IsReserved(name) {
		return malformed(base, "%q is a reserved word", name)
	}
	if !parsetools.IsVariableName(name) {
		return malformed(base, "%q is not a legal variable name", name)
	}
	return nil
}

// splitAssignment splits `name = value` around its first unquoted equals sign
func splitAssignment(base Line, source string) (name, value string, err error) {
	equalsIndex := parsetools.FindNextIndexOfCharWithSkip(source, '=')
	if equalsIndex == -1 {
		return strings.TrimSpace(source), "", nil
	}
	name = strings.TrimSpace(source[:equalsIndex])
	value = strings.TrimSpace(source[equalsIndex+1:])
	if value == "" {
		return "", "", malformed(base, "missing value for %q", name)
	}
	if strings.HasPrefix(value, "=") {
		return "", "", malformed(base, "unexpected '=' after %q", name)
	}
	return name, value, nil
}

func parseDeclaration(base Line, line string) (ParsedLine, error) {
	words := strings.TrimSpace(stripTerminator(line))

	decl := &Declaration{Line: base}
	if strings.HasPrefix(words, "final") {
		decl.Final = true
		words = strings.TrimSpace(strings.TrimPrefix(words, "final"))
	}

	spaceIndex := strings.IndexFunc(words, func(r rune) bool { return r == ' ' || r == '\t' })
	if spaceIndex == -1 {
		return nil, malformed(base, "declaration without a name")
	}
	decl.Type = words[:spaceIndex]
	if !keywords.IsType(decl.Type) {
		return nil, malformed(base, "unknown type %q", decl.Type)
	}

	for _, part := range parsetools.SplitWithSkip(words[spaceIndex+1:], ',') {
		if part == "" {
			return nil, malformed(base, "empty declaration")
		}
		name, value, err := splitAssignment(base, part)
		if err != nil {
			return nil, err
		}
		if err := checkVariableName(base, name); err != nil {
			return nil, err
		}
		decl.Declarators = append(decl.Declarators, Declarator{
			Name:     name,
			Value:    value,
			HasValue: value != "",
		})
	}

	return decl, nil
}

func parseMethod(base Line, line string) (ParsedLine, error) {
	parts := methodParts.FindStringSubmatch(line)
	if parts == nil {
		return nil, malformed(base, "malformed method declaration")
	}

	method := &Method{Line: base, Name: parts[1], Params: []Param{}}
	if keywords.IsReserved(method.Name) {
		return nil, malformed(base, "%q is a reserved word", method.Name)
	}
	if !parsetools.IsMethodName(method.Name) {
		return nil, malformed(base, "%q is not a legal method name", method.Name)
	}

	if strings.TrimSpace(parts[2]) == "" {
		return method, nil
	}

	for _, param := range strings.Split(parts[2], ",") {
		words := strings.Fields(param)
		var p Param
		switch {
		case len(words) == 2:
			p = Param{Type: words[0], Name: words[1]}
		case len(words) == 3 && words[0] == "final":
			p = Param{Type: words[1], Name: words[2], Final: true}
		default:
			return nil, malformed(base, "malformed parameter %q", strings.TrimSpace(param))
		}

		if !keywords.IsType(p.Type) {
			return nil, malformed(base, "unknown parameter type %q", p.Type)
		}
		if err := checkVariableName(base, p.Name); err != nil {
			return nil, err
		}
		method.Params = append(method.Params, p)
	}

	return method, nil
}

func parseConditional(base Line, line string) (ParsedLine, error) {
	parts := conditionalParts.FindStringSubmatch(line)
	if parts == nil {
		return nil, malformed(base, "malformed %s statement", strings.Fields(line)[0])
	}
	condition := strings.TrimSpace(parts[2])
	if condition == "" {
		return nil, malformed(base, "empty condition")
	}
	return &Conditional{Line: base, Keyword: parts[1], Condition: condition}, nil
}

func parseAssignments(base Line, line string) (ParsedLine, error) {
	assignments := &Assignments{Line: base}
	for _, part := range parsetools.SplitWithSkip(stripTerminator(line), ',') {
		if part == "" {
			return nil, malformed(base, "empty assignment")
		}
		name, value, err := splitAssignment(base, part)
		if err != nil {
			return nil, err
		}
		if value == "" {
			return nil, malformed(base, "assignment to %q without a value", name)
		}
		if err := checkVariableName(base, name); err != nil {
			return nil, err
		}
		assignments.Assigns = append(assignments.Assigns, Assign{Name: name, Value: value})
	}
	return assignments, nil
}

func parseCall(base Line, line string) (ParsedLine, error) {
	name := callName.FindStringSubmatchIndex(line)
	if name == nil {
		return nil, malformed(base, "malformed method call")
	}
	openIndex := name[1] - 1
	closeIndex := parsetools.IndexOfMatchingParenths(line, openIndex)
	if closeIndex == -1 {
		return nil, malformed(base, "unbalanced parentheses")
	}
	// Only the terminator can follow the argument list
	if strings.TrimSpace(line[closeIndex+1:]) != ";" {
		return nil, malformed(base, "unexpected text after the arguments")
	}

	call := &Call{Line: base, Name: line[name[2]:name[3]], Args: []string{}}
	if keywords.IsReserved(call.Name) {
		return nil, malformed(base, "%q is a reserved word", call.Name)
	}

	args := line[openIndex+1 : closeIndex]
	if strings.TrimSpace(args) == "" {
		return call, nil
	}
	for _, arg := range parsetools.SplitWithSkip(args, ',') {
		if arg == "" {
			return nil, malformed(base, "empty argument")
		}
		call.Args = append(call.Args, arg)
	}
	return call, nil
}
