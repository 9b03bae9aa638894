package interpreter

import (
	"fmt"
	"strconv"

	"mython/interpreter-go/pkg/runtime"
)

// displayValue renders val for Print and Stringify, mirroring the
// teacher's stringifyValue/valueToString split: a ClassInstance first gets
// a chance to render itself through a zero-argument __str__, falling back
// to a stable identity string when it has none.
func (i *Interpreter) displayValue(val runtime.Value, ctx HostContext) (string, error) {
	switch v := val.(type) {
	case nil:
		return "None", nil
	case runtime.NilValue:
		return "None", nil
	case runtime.NumberValue:
		return strconv.FormatInt(v.Val, 10), nil
	case runtime.StringValue:
		return v.Val, nil
	case runtime.BoolValue:
		if v.Val {
			return "True", nil
		}
		return "False", nil
	case *runtime.Class:
		return fmt.Sprintf("<class %s>", v.Name), nil
	case *runtime.ClassInstance:
		return i.displayInstance(v, ctx)
	default:
		return "", fmt.Errorf("cannot display value of type %T", val)
	}
}

func (i *Interpreter) displayInstance(inst *runtime.ClassInstance, ctx HostContext) (string, error) {
	if inst.HasMethod("__str__", 0) {
		result, err := i.callMethod(inst, "__str__", nil, ctx)
		if err != nil {
			return "", err
		}
		return i.displayValue(result, ctx)
	}
	return fmt.Sprintf("<%s instance>", inst.Class.Name), nil
}
