package symbol

// Type is one of the primitive types of S-Java
type Type int

const (
	Invalid Type = iota
	Int
	Double
	Boolean
	Char
	String
)

var typeNames = map[string]Type{
	"int":     Int,
	"double":  Double,
	"boolean": Boolean,
	"char":    Char,
	"String":  String,
}

// ParseType returns the type with the given source name
func ParseType(name string) (Type, bool) {
	t, ok := typeNames[name]
	return t, ok
}

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Double:
		return "double"
	case Boolean:
		return "boolean"
	case Char:
		return "char"
	case String:
		return "String"
	}
	return "invalid"
}

// Numeric reports whether t can take part in an ordering comparison
func (t Type) Numeric() bool {
	return t == Int || t == Double
}

// AssignableTo reports whether a value of type value can be stored in a
// location declared as target
// The only implicit conversion is int -> double
func AssignableTo(value, target Type) bool {
	if value == Invalid || target == Invalid {
		return false
	}
	return value == target || (value == Int && target == Double)
}

// Comparable reports whether two values can be tested for equality, which
// is the case when either one is assignable to the other
func Comparable(a, b Type) bool {
	return AssignableTo(a, b) || AssignableTo(b, a)
}
