package symbol

import "fmt"

// Binding represents a single declared variable or parameter
type Binding struct {
	Name string
	Type Type
	// Final bindings cannot be assigned after their declaration
	Final bool
	// Whether the binding was given a value where it was declared, or by an
	// assignment in the same frame
	Initialized bool
	// Line of the declaration
	Line int
}

func (b Binding) String() string {
	if b.Final {
		return fmt.Sprintf("Name: %s Type: final %s", b.Name, b.Type)
	}
	return fmt.Sprintf("Name: %s Type: %s", b.Name, b.Type)
}

// Method represents the signature of a single declared method
type Method struct {
	Name       string
	Parameters []*Binding
	Line       int
}

func (m Method) String() string {
	return fmt.Sprintf("Name: %s Parameters: %v", m.Name, m.ParameterTypes())
}

// ParameterTypes returns the declared types of the parameters, in order
func (m *Method) ParameterTypes() []Type {
	types := make([]Type, len(m.Parameters))
	for ind, param := range m.Parameters {
		types[ind] = param.Type
	}
	return types
}
