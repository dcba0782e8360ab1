package parsetools

import (
	"reflect"
	"testing"
)

func TestSplitWithSkip(t *testing.T) {
	cases := []struct {
		source   string
		expected []string
	}{
		{"a, b ,c", []string{"a", "b", "c"}},
		{`"a,b", ','`, []string{`"a,b"`, `','`}},
		{"a,,b", []string{"a", "", "b"}},
		{"", []string{""}},
		{`x = "say \"hi, there\"", y = 2`, []string{`x = "say \"hi, there\""`, "y = 2"}},
	}
	for _, c := range cases {
		if actual := SplitWithSkip(c.source, ','); !reflect.DeepEqual(actual, c.expected) {
			t.Errorf("Splitting %q: expected %q, got %q", c.source, c.expected, actual)
		}
	}
}

func TestIndexOfMatchingParenths(t *testing.T) {
	cases := []struct {
		source   string
		opening  int
		expected int
	}{
		{"if (a) {", 3, 5},
		{"((a) && (b))", 0, 11},
		{`f(")", 1)`, 1, 8},
		{"(a", 0, -1},
		{"a)", 0, -1},
	}
	for _, c := range cases {
		if actual := IndexOfMatchingParenths(c.source, c.opening); actual != c.expected {
			t.Errorf("Matching paren in %q: expected %d, got %d", c.source, c.expected, actual)
		}
	}
}

func TestFindNextIndexSkipsQuotes(t *testing.T) {
	if ind := FindNextIndexOfCharWithSkip(`"a=b" = c`, '='); ind != 6 {
		t.Errorf("Expected 6, got %d", ind)
	}
	if ind := FindNextIndexOfCharWithSkip(`"unterminated = c`, '='); ind != -1 {
		t.Errorf("Expected -1 for an unterminated quote, got %d", ind)
	}
}

func TestNames(t *testing.T) {
	for _, name := range []string{"a", "abc1", "_a", "__", "a_b"} {
		if !IsVariableName(name) {
			t.Errorf("Expected %q to be a variable name", name)
		}
	}
	for _, name := range []string{"_", "1a", "a-b", ""} {
		if IsVariableName(name) {
			t.Errorf("Expected %q not to be a variable name", name)
		}
	}
	if IsMethodName("_foo") || !IsMethodName("foo_1") {
		t.Error("Method names must start with a letter")
	}
}
