package interpreter

import (
	"fmt"

	"mython/interpreter-go/pkg/ast"
	"mython/interpreter-go/pkg/runtime"
)

// evalVariableValue implements the dotted-name lookup of spec §4.4: the
// first segment resolves against scope; every later segment descends into
// the previous result's field table, which requires that result to be a
// ClassInstance.
func (i *Interpreter) evalVariableValue(n *ast.VariableValue, scope *runtime.Scope) (runtime.Value, error) {
	if len(n.Names) == 0 {
		return nil, fmt.Errorf("empty variable reference")
	}
	name := n.Names[0]
	val, ok := scope.Get(name)
	if !ok {
		return nil, fmt.Errorf("Unknown identifier '%s'", name)
	}
	for _, seg := range n.Names[1:] {
		ci, ok := val.(*runtime.ClassInstance)
		if !ok {
			return nil, fmt.Errorf("'%s' has no field '%s'", name, seg)
		}
		val, ok = ci.Fields.Get(seg)
		if !ok {
			return nil, fmt.Errorf("Unknown identifier '%s'", seg)
		}
		name = seg
	}
	return val, nil
}

// evalAssignment binds the result of evaluating Value to the single name
// named by Target in scope. Dotted targets are the domain of
// FieldAssignment, not Assignment.
func (i *Interpreter) evalAssignment(n *ast.Assignment, scope *runtime.Scope, ctx HostContext) (runtime.Value, error) {
	val, err := i.execute(n.Value, scope, ctx)
	if err != nil {
		return nil, err
	}
	if len(n.Target.Names) != 1 {
		return nil, fmt.Errorf("assignment target must be a single identifier, got '%v'", n.Target.Names)
	}
	scope.Define(n.Target.Names[0], val)
	return val, nil
}

func (i *Interpreter) evalFieldAssignment(n *ast.FieldAssignment, scope *runtime.Scope, ctx HostContext) (runtime.Value, error) {
	objVal, err := i.execute(n.Object, scope, ctx)
	if err != nil {
		return nil, err
	}
	ci, ok := objVal.(*runtime.ClassInstance)
	if !ok {
		return nil, fmt.Errorf("cannot assign field '%s' on a non-object value", n.Field)
	}
	val, err := i.execute(n.Value, scope, ctx)
	if err != nil {
		return nil, err
	}
	ci.Fields.Define(n.Field, val)
	return val, nil
}

// evalMethodCall dispatches a method call when the receiver is a
// ClassInstance exposing a matching-arity method; any other combination
// (non-object receiver, missing method, arity mismatch) silently yields an
// empty handle, per spec §4.5.
func (i *Interpreter) evalMethodCall(n *ast.MethodCall, scope *runtime.Scope, ctx HostContext) (runtime.Value, error) {
	objVal, err := i.execute(n.Object, scope, ctx)
	if err != nil {
		return nil, err
	}
	args := make([]runtime.Value, len(n.Arguments))
	for idx, a := range n.Arguments {
		v, err := i.execute(a, scope, ctx)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}
	ci, ok := objVal.(*runtime.ClassInstance)
	if !ok || !ci.HasMethod(n.Method, len(args)) {
		return nil, nil
	}
	return i.callMethod(ci, n.Method, args, ctx)
}

func (i *Interpreter) evalStringify(n *ast.Stringify, scope *runtime.Scope, ctx HostContext) (runtime.Value, error) {
	val, err := i.execute(n.Argument, scope, ctx)
	if err != nil {
		return nil, err
	}
	text, err := i.displayValue(val, ctx)
	if err != nil {
		return nil, err
	}
	return runtime.StringValue{Val: text}, nil
}

func (i *Interpreter) evalNewInstance(n *ast.NewInstance, scope *runtime.Scope, ctx HostContext) (runtime.Value, error) {
	cv, ok := scope.Get(n.ClassName)
	if !ok {
		return nil, fmt.Errorf("Unknown identifier '%s'", n.ClassName)
	}
	class, ok := cv.(*runtime.Class)
	if !ok {
		return nil, fmt.Errorf("'%s' is not a class", n.ClassName)
	}
	instance := runtime.NewClassInstance(class)
	args := make([]runtime.Value, len(n.Arguments))
	for idx, a := range n.Arguments {
		v, err := i.execute(a, scope, ctx)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}
	if instance.HasMethod("__init__", len(args)) {
		if _, err := i.callMethod(instance, "__init__", args, ctx); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (i *Interpreter) evalBinary(n *ast.BinaryExpression, scope *runtime.Scope, ctx HostContext) (runtime.Value, error) {
	l, err := i.execute(n.Left, scope, ctx)
	if err != nil {
		return nil, err
	}
	r, err := i.execute(n.Right, scope, ctx)
	if err != nil {
		return nil, err
	}

	if n.Operator == ast.OpAdd {
		if ln, ok := l.(runtime.NumberValue); ok {
			if rn, ok := r.(runtime.NumberValue); ok {
				return runtime.NumberValue{Val: ln.Val + rn.Val}, nil
			}
		}
		if ls, ok := l.(runtime.StringValue); ok {
			if rs, ok := r.(runtime.StringValue); ok {
				return runtime.StringValue{Val: ls.Val + rs.Val}, nil
			}
		}
		if ci, ok := l.(*runtime.ClassInstance); ok && ci.HasMethod("__add__", 1) {
			return i.callMethod(ci, "__add__", []runtime.Value{r}, ctx)
		}
		return nil, fmt.Errorf("unsupported operand types for '+'")
	}

	ln, lok := l.(runtime.NumberValue)
	rn, rok := r.(runtime.NumberValue)
	if !lok || !rok {
		return nil, fmt.Errorf("unsupported operand types for '%s'", n.Operator)
	}
	switch n.Operator {
	case ast.OpSub:
		return runtime.NumberValue{Val: ln.Val - rn.Val}, nil
	case ast.OpMul:
		return runtime.NumberValue{Val: ln.Val * rn.Val}, nil
	case ast.OpDiv:
		if rn.Val == 0 {
			return nil, fmt.Errorf("Error. Division by zero")
		}
		return runtime.NumberValue{Val: ln.Val / rn.Val}, nil
	default:
		return nil, fmt.Errorf("unknown binary operator '%s'", n.Operator)
	}
}

func (i *Interpreter) evalComparison(n *ast.Comparison, scope *runtime.Scope, ctx HostContext) (runtime.Value, error) {
	l, err := i.execute(n.Left, scope, ctx)
	if err != nil {
		return nil, err
	}
	r, err := i.execute(n.Right, scope, ctx)
	if err != nil {
		return nil, err
	}
	result, err := i.compare(n.Operator, l, r, ctx)
	if err != nil {
		return nil, err
	}
	return runtime.BoolValue{Val: result}, nil
}

// evalLogical implements short-circuit `and`/`or`: the right operand is
// only evaluated when the left one doesn't already decide the result.
func (i *Interpreter) evalLogical(n *ast.LogicalExpression, scope *runtime.Scope, ctx HostContext) (runtime.Value, error) {
	l, err := i.execute(n.Left, scope, ctx)
	if err != nil {
		return nil, err
	}
	lt := IsTrue(l)
	if n.Operator == ast.LogicalOr && lt {
		return runtime.BoolValue{Val: true}, nil
	}
	if n.Operator == ast.LogicalAnd && !lt {
		return runtime.BoolValue{Val: false}, nil
	}
	r, err := i.execute(n.Right, scope, ctx)
	if err != nil {
		return nil, err
	}
	return runtime.BoolValue{Val: IsTrue(r)}, nil
}

func (i *Interpreter) evalNot(n *ast.NotExpression, scope *runtime.Scope, ctx HostContext) (runtime.Value, error) {
	v, err := i.execute(n.Operand, scope, ctx)
	if err != nil {
		return nil, err
	}
	return runtime.BoolValue{Val: !IsTrue(v)}, nil
}
