package symbol

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Frame is the set of bindings declared directly in one lexical scope
type Frame struct {
	// Debugging comment, e.g. "global", "method foo", "if"
	comment  string
	bindings map[string]*Binding
	// Bindings of outer frames that were assigned while this frame was open
	// They count as initialized until the frame closes
	initialized map[*Binding]bool
}

// NewFrame creates an empty frame
func NewFrame(comment string) *Frame {
	return &Frame{
		comment:     comment,
		bindings:    make(map[string]*Binding),
		initialized: make(map[*Binding]bool),
	}
}

// Lookup returns the binding declared in this frame, without searching any
// outer frames
func (f *Frame) Lookup(name string) *Binding {
	return f.bindings[name]
}

// Insert declares a binding in the frame
// If the name is already declared in this frame the existing binding is
// returned and nothing changes, otherwise it returns nil
func (f *Frame) Insert(b *Binding) *Binding {
	if existing := f.bindings[b.Name]; existing != nil {
		return existing
	}
	f.bindings[b.Name] = b
	return nil
}

// Names returns the names declared in the frame, sorted alphabetically
func (f *Frame) Names() []string {
	names := maps.Keys(f.bindings)
	slices.Sort(names)
	return names
}

func (f *Frame) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "frame %s {", f.comment)
	for _, name := range f.Names() {
		fmt.Fprintf(&buf, " %s;", f.bindings[name])
	}
	buf.WriteString(" }")
	return buf.String()
}

// Stack is the chain of frames visible at one point of the analysis
// The bottom frame is always the global one
type Stack struct {
	frames []*Frame
}

// NewStack creates a stack with global as its bottom frame
func NewStack(global *Frame) *Stack {
	return &Stack{frames: []*Frame{global}}
}

// Push opens a new innermost frame
func (s *Stack) Push(comment string) *Frame {
	frame := NewFrame(comment)
	s.frames = append(s.frames, frame)
	return frame
}

// Pop closes the innermost frame
// The global frame is never popped
func (s *Stack) Pop() {
	if len(s.frames) > 1 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// Depth is the number of frames above the global one
func (s *Stack) Depth() int {
	return len(s.frames) - 1
}

// Current returns the innermost frame
func (s *Stack) Current() *Frame {
	return s.frames[len(s.frames)-1]
}

// Global returns the bottom frame
func (s *Stack) Global() *Frame {
	return s.frames[0]
}

// Lookup searches for name from the innermost frame outwards, and returns
// the binding along with the frame it was declared in
// Returns (nil, nil) if the name is not declared anywhere
func (s *Stack) Lookup(name string) (*Binding, *Frame) {
	for ind := len(s.frames) - 1; ind >= 0; ind-- {
		if b := s.frames[ind].Lookup(name); b != nil {
			return b, s.frames[ind]
		}
	}
	return nil, nil
}

// Declare inserts the binding into the innermost frame, see Frame.Insert
func (s *Stack) Declare(b *Binding) *Binding {
	return s.Current().Insert(b)
}

// IsInitialized reports whether b holds a value at this point, either from
// its declaration or from an assignment in a frame that is still open
func (s *Stack) IsInitialized(b *Binding) bool {
	if b.Initialized {
		return true
	}
	for _, frame := range s.frames {
		if frame.initialized[b] {
			return true
		}
	}
	return false
}

// MarkInitialized records an assignment to b
// An assignment to a binding of the current frame initializes it for good,
// while an assignment to an outer binding only lasts until the current frame
// is popped, since the block might never run
func (s *Stack) MarkInitialized(b *Binding) {
	current := s.Current()
	if current.Lookup(b.Name) == b {
		b.Initialized = true
		return
	}
	current.initialized[b] = true
}
