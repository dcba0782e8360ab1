package lines

import (
	"encoding/json"
	"testing"

	"github.com/NickyBoy89/sjavac/diagnostic"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// compareParsed marshals both values and reports a pretty diff if they differ
func compareParsed(t *testing.T, actual ParsedLine, expected ParsedLine) {
	t.Helper()

	parsedTest, err := json.MarshalIndent(actual, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	parsedResult, err := json.MarshalIndent(expected, "", "  ")
	if err != nil {
		t.Fatal(err)
	}

	if string(parsedTest) != string(parsedResult) {
		diff := diffmatchpatch.New()
		t.Log(diff.DiffPrettyText(diff.DiffMain(string(parsedTest), string(parsedResult), false)))
		t.Error("Result and Original did not match")
	}
}

func mustParse(t *testing.T, line string) ParsedLine {
	t.Helper()
	parsed, err := Classifier{}.Parse(line, 1)
	if err != nil {
		t.Fatalf("Parsing %q failed: %v", line, err)
	}
	return parsed
}

func TestParseFinalDeclaration(t *testing.T) {
	test := `final String s = "a, b", t = s;`
	compareParsed(t, mustParse(t, test), &Declaration{
		Line:  Line{LineKind: FinalVarDecl, LineNumber: 1, Text: test},
		Type:  "String",
		Final: true,
		Declarators: []Declarator{
			{Name: "s", Value: `"a, b"`, HasValue: true},
			{Name: "t", Value: "s", HasValue: true},
		},
	})
}

func TestParseDeclarationWithoutValues(t *testing.T) {
	test := "  int a,b ,  _c = -5 ;"
	compareParsed(t, mustParse(t, test), &Declaration{
		Line: Line{LineKind: VarDecl, LineNumber: 1, Text: test},
		Type: "int",
		Declarators: []Declarator{
			{Name: "a"},
			{Name: "b"},
			{Name: "_c", Value: "-5", HasValue: true},
		},
	})
}

func TestParseMethod(t *testing.T) {
	test := "void foo ( int a, final char b ) {"
	compareParsed(t, mustParse(t, test), &Method{
		Line: Line{LineKind: MethodDecl, LineNumber: 1, Text: test},
		Name: "foo",
		Params: []Param{
			{Type: "int", Name: "a"},
			{Type: "char", Name: "b", Final: true},
		},
	})

	test = "void bar() {"
	compareParsed(t, mustParse(t, test), &Method{
		Line:   Line{LineKind: MethodDecl, LineNumber: 1, Text: test},
		Name:   "bar",
		Params: []Param{},
	})
}

func TestParseConditional(t *testing.T) {
	test := "while ((a < 5) && b) {"
	compareParsed(t, mustParse(t, test), &Conditional{
		Line:      Line{LineKind: IfWhile, LineNumber: 1, Text: test},
		Keyword:   "while",
		Condition: "(a < 5) && b",
	})
}

func TestParseCall(t *testing.T) {
	test := `print(a, "x, y", 'c');`
	compareParsed(t, mustParse(t, test), &Call{
		Line: Line{LineKind: MethodCall, LineNumber: 1, Text: test},
		Name: "print",
		Args: []string{"a", `"x, y"`, "'c'"},
	})

	test = "run( );"
	compareParsed(t, mustParse(t, test), &Call{
		Line: Line{LineKind: MethodCall, LineNumber: 1, Text: test},
		Name: "run",
		Args: []string{},
	})

	test = `log((1), ")", (a == b));`
	compareParsed(t, mustParse(t, test), &Call{
		Line: Line{LineKind: MethodCall, LineNumber: 1, Text: test},
		Name: "log",
		Args: []string{"(1)", `")"`, "(a == b)"},
	})
}

func TestParseAssignments(t *testing.T) {
	test := "a = 1, b=a ;"
	compareParsed(t, mustParse(t, test), &Assignments{
		Line: Line{LineKind: Assignment, LineNumber: 1, Text: test},
		Assigns: []Assign{
			{Name: "a", Value: "1"},
			{Name: "b", Value: "a"},
		},
	})
}

func TestParseBareLines(t *testing.T) {
	for _, test := range []string{"", "// hi", "return;", "}"} {
		parsed := mustParse(t, test)
		if _, ok := parsed.(*Bare); !ok {
			t.Errorf("Expected %q to parse to a bare line, got %T", test, parsed)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	cases := []string{
		"int if = 5;",
		"int a, ;",
		"int a = ;",
		"int a b;",
		"int _ = 1;",
		"int 1a;",
		"int a == 5;",
		"final double true = 1.0;",
		"void while() {",
		"void foo(int) {",
		"void foo(a) {",
		"void foo(int a,) {",
		"void foo(long a) {",
		"void foo(int a b c) {",
		"void foo(final final a) {",
		"if () {",
		"while (   ) {",
		"foo(1,,2);",
		"foo(1, );",
		"while(a);",
		"return(a);",
		"foo(1)(2);",
		"foo((1);",
		"foo(1) + bar();",
		"a == 5;",
		"int = 5;",
	}

	for _, line := range cases {
		_, err := Classifier{}.Parse(line, 3)
		if err == nil {
			t.Errorf("Expected %q to be malformed", line)
			continue
		}
		kind, _ := diagnostic.KindOf(err)
		if kind != diagnostic.MalformedLine {
			t.Errorf("Expected %s for %q, got %v", diagnostic.MalformedLine, line, err)
		}
	}
}
