package lines

// ParsedLine is the structured form of a single classified line
// The concrete type is determined by the line's kind
type ParsedLine interface {
	Kind() Kind
	// 1-based line number in the source file
	Number() int
	// The raw line as it appeared in the source
	Source() string
}

// Line holds the information common to every parsed line
type Line struct {
	LineKind   Kind   `json:"kind"`
	LineNumber int    `json:"line"`
	Text       string `json:"text"`
}

func (l Line) Kind() Kind {
	return l.LineKind
}

func (l Line) Number() int {
	return l.LineNumber
}

func (l Line) Source() string {
	return l.Text
}

// Bare is a line without a payload: empty lines, comments, returns, and
// closing brackets
type Bare struct {
	Line
}

// Declaration is a final or non-final variable declaration, such as
// `final int a = 5, b = a;`
type Declaration struct {
	Line
	Type        string       `json:"type"`
	Final       bool         `json:"final"`
	Declarators []Declarator `json:"declarators"`
}

// Declarator is a single declared name, with its initializer if it has one
type Declarator struct {
	Name     string `json:"name"`
	Value    string `json:"value,omitempty"`
	HasValue bool   `json:"hasValue"`
}

// Method is the signature line of a method declaration
type Method struct {
	Line
	Name   string  `json:"name"`
	Params []Param `json:"params"`
}

// Param is a single formal parameter of a method
type Param struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Final bool   `json:"final"`
}

// Conditional is the opening line of an if or while block
type Conditional struct {
	Line
	Keyword   string `json:"keyword"`
	Condition string `json:"condition"`
}

// Call is a method call statement
type Call struct {
	Line
	Name string   `json:"name"`
	Args []string `json:"args"`
}

// Assignments is one or more comma-separated assignments, such as `a = 1, b = a;`
type Assignments struct {
	Line
	Assigns []Assign `json:"assigns"`
}

// Assign is a single assignment of a value to a name
type Assign struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
