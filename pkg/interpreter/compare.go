package interpreter

import (
	"fmt"

	"mython/interpreter-go/pkg/ast"
	"mython/interpreter-go/pkg/runtime"
)

// IsTrue implements spec §4.2's truthiness rule. It never calls a
// user-defined method, so it takes no HostContext: a nonzero Number, a
// nonempty String, and `true` are truthy; everything else (empty handle,
// None, false, Class, ClassInstance) is falsy.
func IsTrue(v runtime.Value) bool {
	switch vv := v.(type) {
	case runtime.NumberValue:
		return vv.Val != 0
	case runtime.BoolValue:
		return vv.Val
	case runtime.StringValue:
		return vv.Val != ""
	default:
		return false
	}
}

// valuesEqual implements spec §4.2's equal(): same-type scalar comparison,
// __eq__ delegation for a ClassInstance left operand, two empty handles
// comparing equal, and a hard failure for anything else (mismatched types,
// a handle with no __eq__).
func (i *Interpreter) valuesEqual(l, r runtime.Value, ctx HostContext) (bool, error) {
	if l == nil && r == nil {
		return true, nil
	}
	switch lv := l.(type) {
	case runtime.NumberValue:
		if rv, ok := r.(runtime.NumberValue); ok {
			return lv.Val == rv.Val, nil
		}
	case runtime.StringValue:
		if rv, ok := r.(runtime.StringValue); ok {
			return lv.Val == rv.Val, nil
		}
	case runtime.BoolValue:
		if rv, ok := r.(runtime.BoolValue); ok {
			return lv.Val == rv.Val, nil
		}
	case *runtime.ClassInstance:
		if lv.HasMethod("__eq__", 1) {
			res, err := i.callMethod(lv, "__eq__", []runtime.Value{r}, ctx)
			if err != nil {
				return false, err
			}
			return IsTrue(res), nil
		}
	}
	return false, fmt.Errorf("Cannot compare objects for equality")
}

// valuesLess implements spec §4.2's less(): same-type ordering for Number
// and String, __lt__ delegation for a ClassInstance left operand, and a
// hard failure otherwise.
func (i *Interpreter) valuesLess(l, r runtime.Value, ctx HostContext) (bool, error) {
	switch lv := l.(type) {
	case runtime.NumberValue:
		if rv, ok := r.(runtime.NumberValue); ok {
			return lv.Val < rv.Val, nil
		}
	case runtime.StringValue:
		if rv, ok := r.(runtime.StringValue); ok {
			return lv.Val < rv.Val, nil
		}
	case *runtime.ClassInstance:
		if lv.HasMethod("__lt__", 1) {
			res, err := i.callMethod(lv, "__lt__", []runtime.Value{r}, ctx)
			if err != nil {
				return false, err
			}
			return IsTrue(res), nil
		}
	}
	return false, fmt.Errorf("Cannot compare objects for ordering")
}

// compare derives all six comparison operators from equal() and less(),
// exactly as spec §4.2 specifies: not_equal = !equal, greater = !less &&
// !equal, less_or_equal = !greater, greater_or_equal = !less.
func (i *Interpreter) compare(op ast.CompareOp, l, r runtime.Value, ctx HostContext) (bool, error) {
	switch op {
	case ast.CmpEq:
		return i.valuesEqual(l, r, ctx)
	case ast.CmpNe:
		eq, err := i.valuesEqual(l, r, ctx)
		if err != nil {
			return false, err
		}
		return !eq, nil
	case ast.CmpLt:
		return i.valuesLess(l, r, ctx)
	case ast.CmpGt:
		lt, err := i.valuesLess(l, r, ctx)
		if err != nil {
			return false, err
		}
		eq, err := i.valuesEqual(l, r, ctx)
		if err != nil {
			return false, err
		}
		return !lt && !eq, nil
	case ast.CmpLe:
		lt, err := i.valuesLess(l, r, ctx)
		if err != nil {
			return false, err
		}
		eq, err := i.valuesEqual(l, r, ctx)
		if err != nil {
			return false, err
		}
		return lt || eq, nil
	case ast.CmpGe:
		lt, err := i.valuesLess(l, r, ctx)
		if err != nil {
			return false, err
		}
		return !lt, nil
	default:
		return false, fmt.Errorf("unknown comparison operator '%s'", op)
	}
}
