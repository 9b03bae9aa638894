package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"mython/interpreter-go/pkg/ast"
	"mython/interpreter-go/pkg/runtime"
)

func newTestContext() (*StdHostContext, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return &StdHostContext{Writer: buf}, buf
}

func run(t *testing.T, program ast.Statement) (string, runtime.Value) {
	t.Helper()
	interp := New()
	ctx, buf := newTestContext()
	val, err := interp.Run(program, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return buf.String(), val
}

func TestAssignmentAndVariableLookup(t *testing.T) {
	out, _ := run(t, ast.Block(
		ast.Assign(ast.Var("x"), ast.Num(41)),
		ast.Print(ast.Var("x")),
	))
	if strings.TrimSpace(out) != "41" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestUnknownIdentifierFails(t *testing.T) {
	interp := New()
	ctx, _ := newTestContext()
	_, err := interp.Run(ast.Block(ast.Print(ast.Var("nope"))), ctx)
	if err == nil {
		t.Fatalf("expected error for unknown identifier")
	}
}

func TestDivisionByZero(t *testing.T) {
	interp := New()
	ctx, _ := newTestContext()
	_, err := interp.Run(ast.Block(ast.Print(ast.Div(ast.Num(1), ast.Num(0)))), ctx)
	if err == nil || !strings.Contains(err.Error(), "Division by zero") {
		t.Fatalf("expected division by zero error, got %v", err)
	}
}

func TestArithmetic(t *testing.T) {
	out, _ := run(t, ast.Block(
		ast.Print(ast.Add(ast.Num(2), ast.Mul(ast.Num(3), ast.Num(4)))),
	))
	if strings.TrimSpace(out) != "14" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestStringConcatenation(t *testing.T) {
	out, _ := run(t, ast.Block(
		ast.Print(ast.Add(ast.Str("foo"), ast.Str("bar"))),
	))
	if strings.TrimSpace(out) != "foobar" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestIfElseBranches(t *testing.T) {
	out, _ := run(t, ast.Block(
		ast.If(ast.Bool(true), ast.Print(ast.Str("yes")), ast.Print(ast.Str("no"))),
		ast.If(ast.Bool(false), ast.Print(ast.Str("yes")), ast.Print(ast.Str("no"))),
	))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || lines[0] != "yes" || lines[1] != "no" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestLogicalShortCircuit(t *testing.T) {
	// `false and nope` must not evaluate the right operand, which would
	// otherwise fail as an unknown identifier.
	out, _ := run(t, ast.Block(
		ast.Print(ast.And(ast.Bool(false), ast.Var("nope"))),
		ast.Print(ast.Or(ast.Bool(true), ast.Var("nope"))),
	))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || lines[0] != "False" || lines[1] != "True" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestComparisons(t *testing.T) {
	out, _ := run(t, ast.Block(
		ast.Print(ast.Lt(ast.Num(1), ast.Num(2))),
		ast.Print(ast.Ge(ast.Num(2), ast.Num(2))),
		ast.Print(ast.Ne(ast.Str("a"), ast.Str("b"))),
	))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 || lines[0] != "True" || lines[1] != "True" || lines[2] != "True" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestClassDefinitionAndInstantiation(t *testing.T) {
	// class Point: def __init__(x): self.x = x
	//              def __str__(): return "Point"
	// print Point(3)
	init := ast.Method("__init__", []string{"x"}, ast.FieldAssign(ast.Var("self"), "x", ast.Var("x")))
	str := ast.Method("__str__", nil, ast.Ret(ast.Str("Point")))
	cls := ast.Class("Point", "", init, str)
	out, _ := run(t, ast.Block(
		cls,
		ast.Print(ast.New("Point", ast.Num(3))),
	))
	if strings.TrimSpace(out) != "Point" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestFieldAccessViaDottedName(t *testing.T) {
	init := ast.Method("__init__", []string{"x"}, ast.FieldAssign(ast.Var("self"), "x", ast.Var("x")))
	cls := ast.Class("Point", "", init)
	out, _ := run(t, ast.Block(
		cls,
		ast.Assign(ast.Var("p"), ast.New("Point", ast.Num(7))),
		ast.Print(ast.Var("p", "x")),
	))
	if strings.TrimSpace(out) != "7" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestInheritanceResolvesParentMethod(t *testing.T) {
	greet := ast.Method("greet", nil, ast.Ret(ast.Str("hello")))
	base := ast.Class("Base", "", greet)
	derived := ast.Class("Derived", "Base")
	out, _ := run(t, ast.Block(
		base,
		derived,
		ast.Assign(ast.Var("d"), ast.New("Derived")),
		ast.Print(ast.Call(ast.Var("d"), "greet")),
	))
	if strings.TrimSpace(out) != "hello" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestMissingMethodCallIsSilentEmptyHandle(t *testing.T) {
	cls := ast.Class("Empty", "")
	out, _ := run(t, ast.Block(
		cls,
		ast.Assign(ast.Var("e"), ast.New("Empty")),
		ast.Print(ast.Call(ast.Var("e"), "nope")),
	))
	if strings.TrimSpace(out) != "None" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestReturnUnwindsThroughNestedStatements(t *testing.T) {
	body := ast.Block(
		ast.If(ast.Bool(true), ast.Ret(ast.Num(99)), ast.Print(ast.Str("unreachable"))),
		ast.Print(ast.Str("also unreachable")),
	)
	m := ast.Method("f", nil, body)
	cls := ast.Class("C", "", m)
	out, _ := run(t, ast.Block(
		cls,
		ast.Assign(ast.Var("c"), ast.New("C")),
		ast.Print(ast.Call(ast.Var("c"), "f")),
	))
	if strings.TrimSpace(out) != "99" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestUserDefinedEqAndLt(t *testing.T) {
	eq := ast.Method("__eq__", []string{"other"}, ast.Ret(ast.Bool(true)))
	lt := ast.Method("__lt__", []string{"other"}, ast.Ret(ast.Bool(false)))
	cls := ast.Class("Box", "", eq, lt)
	out, _ := run(t, ast.Block(
		cls,
		ast.Assign(ast.Var("a"), ast.New("Box")),
		ast.Assign(ast.Var("b"), ast.New("Box")),
		ast.Print(ast.Eq(ast.Var("a"), ast.Var("b"))),
		ast.Print(ast.Lt(ast.Var("a"), ast.Var("b"))),
	))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || lines[0] != "True" || lines[1] != "False" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestStringifyOfEmptyHandleIsNone(t *testing.T) {
	// A method call on a non-object receiver yields an empty handle (the
	// None literal would yield a NilValue instead).
	out, _ := run(t, ast.Block(
		ast.Print(ast.ToString(ast.Call(ast.Num(1), "nope"))),
	))
	if strings.TrimSpace(out) != "None" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestUserDefinedAddDelegates(t *testing.T) {
	add := ast.Method("__add__", []string{"other"}, ast.Ret(ast.Str("combined")))
	cls := ast.Class("Vec", "", add)
	out, _ := run(t, ast.Block(
		cls,
		ast.Assign(ast.Var("v"), ast.New("Vec")),
		ast.Print(ast.Add(ast.Var("v"), ast.Num(1))),
	))
	if strings.TrimSpace(out) != "combined" {
		t.Fatalf("unexpected output %q", out)
	}
}
