package symbol

// MethodTable holds every method declared in a file, in declaration order
type MethodTable struct {
	methods []*Method
	byName  map[string]*Method
}

// NewMethodTable creates an empty table
func NewMethodTable() *MethodTable {
	return &MethodTable{byName: make(map[string]*Method)}
}

// Insert adds a method to the table
// If a method with the same name already exists it is returned and the table
// is left unchanged, otherwise it returns nil
func (mt *MethodTable) Insert(method *Method) *Method {
	if existing := mt.byName[method.Name]; existing != nil {
		return existing
	}
	mt.methods = append(mt.methods, method)
	mt.byName[method.Name] = method
	return nil
}

// FindMethodByName returns the method with the given name, or nil if none
// was declared
func (mt *MethodTable) FindMethodByName(name string) *Method {
	return mt.byName[name]
}

// Methods returns all the methods in declaration order
func (mt *MethodTable) Methods() []*Method {
	return mt.methods
}
