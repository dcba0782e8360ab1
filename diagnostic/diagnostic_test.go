package diagnostic

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindNames(t *testing.T) {
	if TypeMismatch.String() != "TypeMismatchError" {
		t.Errorf("Expected TypeMismatchError, got %s", TypeMismatch)
	}
	if Kind(100).String() != "Kind(100)" {
		t.Errorf("Expected a fallback name, got %s", Kind(100))
	}
}

func TestStructuralKinds(t *testing.T) {
	for _, kind := range []Kind{UnrecognizedLine, MalformedLine, NestedMethod, UnmatchedOpeningBracket} {
		if !kind.Structural() {
			t.Errorf("%s should be structural", kind)
		}
	}
	for _, kind := range []Kind{DuplicateDeclaration, TypeMismatch, UninitializedVariable} {
		if kind.Structural() {
			t.Errorf("%s should not be structural", kind)
		}
	}
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("validating: %w", Errorf(ArityMismatch, 4, "f(1);", "expected %d arguments", 2))

	kind, ok := KindOf(err)
	if !ok {
		t.Fatal("Expected to find a diagnostic in the chain")
	}
	if kind != ArityMismatch {
		t.Errorf("Expected %s, got %s", ArityMismatch, kind)
	}
	if !errors.Is(err, &Error{Kind: ArityMismatch}) {
		t.Error("errors.Is should match on kind")
	}
	if errors.Is(err, &Error{Kind: TypeMismatch}) {
		t.Error("errors.Is should not match a different kind")
	}
}

func TestKindOfForeignError(t *testing.T) {
	if _, ok := KindOf(errors.New("disk on fire")); ok {
		t.Error("A plain error has no kind")
	}
}

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		err      *Error
		expected string
	}{
		{Errorf(UnmatchedOpeningBracket, 0, "", "1 block(s) left open"), "UnmatchedOpeningBracketError: 1 block(s) left open"},
		{Errorf(NestedMethod, 3, "", "nested"), "line 3: NestedMethodError: nested"},
		{Errorf(TypeMismatch, 2, "int a = 1.5;", "bad"), `line 2: TypeMismatchError: bad ("int a = 1.5;")`},
	}
	for _, c := range cases {
		if c.err.Error() != c.expected {
			t.Errorf("Expected %q, got %q", c.expected, c.err.Error())
		}
	}
}

func TestAtOnlyFillsMissingLines(t *testing.T) {
	err := At(Errorf(MalformedLine, 0, "", "bad literal"), 7, "int a = 0x1;")
	var d *Error
	if !errors.As(err, &d) || d.Line != 7 || d.Text != "int a = 0x1;" {
		t.Errorf("Expected line information to be filled in, got %v", err)
	}

	err = At(Errorf(MalformedLine, 2, "x", "bad literal"), 7, "y")
	if !errors.As(err, &d) || d.Line != 2 {
		t.Errorf("Existing line information should be kept, got %v", err)
	}
}
