// Package interpreter tree-walks the AST defined in pkg/ast against the
// runtime object model in pkg/runtime. Its shape follows the teacher's own
// pkg/interpreter: a small Interpreter struct holding the global scope, one
// execute entry point dispatching on Go's dynamic type switch, and
// Go-error-typed "signal" structs (here just returnSignal) used to unwind
// non-local control flow through ordinary (runtime.Value, error) returns.
package interpreter

import (
	"fmt"
	"io"

	"mython/interpreter-go/pkg/ast"
	"mython/interpreter-go/pkg/runtime"
)

// HostContext is the one collaborator the evaluator needs from its
// embedder: a sink for Print and object display output (spec §6.3).
type HostContext interface {
	OutputStream() io.Writer
}

// StdHostContext is the default HostContext, writing to an arbitrary
// io.Writer (typically os.Stdout from cmd/langrun).
type StdHostContext struct {
	Writer io.Writer
}

func (c *StdHostContext) OutputStream() io.Writer { return c.Writer }

// Interpreter owns the global scope that module-level statements execute
// against.
type Interpreter struct {
	global *runtime.Scope
}

// New returns an interpreter with an empty global scope.
func New() *Interpreter {
	return &Interpreter{global: runtime.NewScope()}
}

// Global exposes the interpreter's global scope.
func (i *Interpreter) Global() *runtime.Scope { return i.global }

// Run executes a top-level statement (typically a *ast.Compound holding an
// entire program) against the global scope.
func (i *Interpreter) Run(program ast.Statement, ctx HostContext) (runtime.Value, error) {
	val, err := i.execute(program, i.global, ctx)
	if err != nil {
		if _, ok := err.(returnSignal); ok {
			return nil, fmt.Errorf("return statement outside of a method body")
		}
		return nil, err
	}
	return val, nil
}

// returnSignal is the non-local exit of spec §5: it implements error so it
// can be threaded through ordinary execute() returns, and is caught only by
// *ast.MethodBody.
type returnSignal struct {
	value runtime.Value
}

func (returnSignal) Error() string { return "return" }

// execute is the sole entry point every AST node's evaluation goes
// through; spec §4.5's per-node table is split across this file and
// eval_statements.go / eval_expressions.go for readability, same as the
// teacher splits evaluateStatement/evaluateExpression across files.
func (i *Interpreter) execute(node ast.Node, scope *runtime.Scope, ctx HostContext) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.NilLiteral:
		return runtime.NilValue{}, nil
	case *ast.VariableValue:
		return i.evalVariableValue(n, scope)
	case *ast.Assignment:
		return i.evalAssignment(n, scope, ctx)
	case *ast.FieldAssignment:
		return i.evalFieldAssignment(n, scope, ctx)
	case *ast.PrintStatement:
		return i.evalPrint(n, scope, ctx)
	case *ast.MethodCall:
		return i.evalMethodCall(n, scope, ctx)
	case *ast.Stringify:
		return i.evalStringify(n, scope, ctx)
	case *ast.BinaryExpression:
		return i.evalBinary(n, scope, ctx)
	case *ast.Comparison:
		return i.evalComparison(n, scope, ctx)
	case *ast.LogicalExpression:
		return i.evalLogical(n, scope, ctx)
	case *ast.NotExpression:
		return i.evalNot(n, scope, ctx)
	case *ast.NewInstance:
		return i.evalNewInstance(n, scope, ctx)
	case *ast.Compound:
		return i.evalCompound(n, scope, ctx)
	case *ast.ReturnStatement:
		return i.evalReturn(n, scope, ctx)
	case *ast.ClassDefinition:
		return i.evalClassDefinition(n, scope)
	case *ast.IfElse:
		return i.evalIfElse(n, scope, ctx)
	case *ast.MethodBody:
		return i.evalMethodBody(n, scope, ctx)
	default:
		return nil, fmt.Errorf("unsupported AST node: %T", node)
	}
}

// callMethod implements ClassInstance.call (spec §4.3): build a fresh local
// scope, bind self to a plain pointer (Go's GC reclaims the instance↔scope
// graph; there is no manual refcount to break, see DESIGN.md), bind
// parameters positionally, and evaluate the body.
func (i *Interpreter) callMethod(instance *runtime.ClassInstance, name string, args []runtime.Value, ctx HostContext) (runtime.Value, error) {
	method, ok := instance.Method(name)
	if !ok || len(method.Params) != len(args) {
		return nil, fmt.Errorf("ClassInstance has no method '%s' accepting %d argument(s)", name, len(args))
	}
	local := runtime.NewScope()
	local.Define("self", instance)
	for idx, param := range method.Params {
		local.Define(param, args[idx])
	}
	return i.execute(method.Body, local, ctx)
}
