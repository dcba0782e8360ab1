package parsing

import (
	"strings"
	"testing"

	"github.com/NickyBoy89/sjavac/diagnostic"
	"github.com/NickyBoy89/sjavac/lines"
)

func source(text string) []string {
	return strings.Split(text, "\n")
}

func expectKind(t *testing.T, err error, expected diagnostic.Kind, line int) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected %s, but the pass succeeded", expected)
	}
	kind, ok := diagnostic.KindOf(err)
	if !ok || kind != expected {
		t.Fatalf("Expected %s, got %v", expected, err)
	}
	if actual := err.(*diagnostic.Error).Line; actual != line {
		t.Errorf("Expected the error on line %d, got line %d", line, actual)
	}
}

func TestProgramStructure(t *testing.T) {
	program, err := RunFirstPass(source(`// globals
int a = 5;
final double b = 1.5;

void foo(int x, char y) {
  if (x < a) {
    a = x;
    return;
  }
  bar();
}
a = 7;
void bar() {
  return;
}`))
	if err != nil {
		t.Fatal(err)
	}

	if len(program.Globals) != 3 {
		t.Fatalf("Expected 3 global lines, got %d", len(program.Globals))
	}
	if program.Globals[2].Kind() != lines.Assignment || program.Globals[2].Number() != 12 {
		t.Errorf("Unexpected last global line %+v", program.Globals[2])
	}

	if len(program.Signatures) != 2 || len(program.Bodies) != 2 {
		t.Fatalf("Expected 2 methods, got %v", program.Signatures)
	}
	foo := program.Signatures[0]
	if foo.Name != "foo" || foo.Line != 5 || len(foo.Params) != 2 || foo.Params[1].Type != "char" {
		t.Errorf("Unexpected signature %v", foo)
	}

	expectedBody := []lines.Kind{
		lines.IfWhile, lines.Assignment, lines.Return, lines.ClosingBracket,
		lines.MethodCall, lines.ClosingBracket,
	}
	body := program.Bodies[0]
	if len(body) != len(expectedBody) {
		t.Fatalf("Expected %d body lines, got %d", len(expectedBody), len(body))
	}
	for ind, kind := range expectedBody {
		if body[ind].Kind() != kind {
			t.Errorf("Body line %d: expected %s, got %s", ind, kind, body[ind].Kind())
		}
	}

	if len(program.Bodies[1]) != 2 {
		t.Errorf("Expected bar to have 2 body lines, got %d", len(program.Bodies[1]))
	}
}

func TestSingleMethodIsValid(t *testing.T) {
	_, err := RunFirstPass(source("void f(int a) {\n  return;\n}"))
	if err != nil {
		t.Fatal(err)
	}
}

func TestNestedMethod(t *testing.T) {
	_, err := RunFirstPass(source("void f() {\n  void g() {\n  }\n}"))
	expectKind(t, err, diagnostic.NestedMethod, 2)
}

func TestStatementsOutsideMethod(t *testing.T) {
	cases := []string{"g(5);", "return;", "if (true) {", "while (a) {"}
	for _, line := range cases {
		_, err := RunFirstPass([]string{"int a;", line})
		expectKind(t, err, diagnostic.StatementOutsideMethod, 2)
	}
}

func TestUnmatchedClosingBracket(t *testing.T) {
	_, err := RunFirstPass(source("void f() {\n}\n}"))
	expectKind(t, err, diagnostic.UnmatchedClosingBracket, 3)
}

func TestUnmatchedOpeningBracket(t *testing.T) {
	_, err := RunFirstPass(source("void f() {\n  if (true) {\n  return;\n}"))
	expectKind(t, err, diagnostic.UnmatchedOpeningBracket, 0)
}

func TestLineErrorsSurface(t *testing.T) {
	_, err := RunFirstPass(source("int a;\nint b"))
	expectKind(t, err, diagnostic.UnrecognizedLine, 2)

	_, err = RunFirstPass(source("int a;\n\nint while;"))
	expectKind(t, err, diagnostic.MalformedLine, 3)
}

func TestStrictCommentsPass(t *testing.T) {
	pass := NewFirstPass(lines.Classifier{StrictComments: true})
	_, err := pass.Run(source("// ok\n  // not ok"))
	expectKind(t, err, diagnostic.UnrecognizedLine, 2)
}

func TestReadLines(t *testing.T) {
	read, err := ReadLines(strings.NewReader("int a;\r\nint b;\n\nvoid f() {"))
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"int a;", "int b;", "", "void f() {"}
	if strings.Join(read, "|") != strings.Join(expected, "|") {
		t.Errorf("Expected %q, got %q", expected, read)
	}
}
