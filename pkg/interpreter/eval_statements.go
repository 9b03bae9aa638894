package interpreter

import (
	"fmt"

	"mython/interpreter-go/pkg/ast"
	"mython/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evalCompound(n *ast.Compound, scope *runtime.Scope, ctx HostContext) (runtime.Value, error) {
	for _, stmt := range n.Statements {
		if _, err := i.execute(stmt, scope, ctx); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func (i *Interpreter) evalReturn(n *ast.ReturnStatement, scope *runtime.Scope, ctx HostContext) (runtime.Value, error) {
	var val runtime.Value
	if n.Argument != nil {
		v, err := i.execute(n.Argument, scope, ctx)
		if err != nil {
			return nil, err
		}
		val = v
	}
	return nil, returnSignal{value: val}
}

// evalMethodBody is the sole catch point for a returnSignal: the body of a
// method, evaluated in its own local scope, either runs to completion
// (yielding an empty handle) or unwinds through a Return (yielding its
// argument).
func (i *Interpreter) evalMethodBody(n *ast.MethodBody, scope *runtime.Scope, ctx HostContext) (runtime.Value, error) {
	_, err := i.execute(n.Body, scope, ctx)
	if err != nil {
		if rs, ok := err.(returnSignal); ok {
			return rs.value, nil
		}
		return nil, err
	}
	return nil, nil
}

func (i *Interpreter) evalIfElse(n *ast.IfElse, scope *runtime.Scope, ctx HostContext) (runtime.Value, error) {
	cond, err := i.execute(n.Condition, scope, ctx)
	if err != nil {
		return nil, err
	}
	if IsTrue(cond) {
		return i.execute(n.Then, scope, ctx)
	}
	if n.Else != nil {
		return i.execute(n.Else, scope, ctx)
	}
	return nil, nil
}

func (i *Interpreter) evalClassDefinition(n *ast.ClassDefinition, scope *runtime.Scope) (runtime.Value, error) {
	desc := n.Class
	var parent *runtime.Class
	if desc.Parent != "" {
		pv, ok := scope.Get(desc.Parent)
		if !ok {
			return nil, fmt.Errorf("Unknown identifier '%s'", desc.Parent)
		}
		pc, ok := pv.(*runtime.Class)
		if !ok {
			return nil, fmt.Errorf("'%s' is not a class", desc.Parent)
		}
		parent = pc
	}
	methods := make(map[string]*runtime.Method, len(desc.Methods))
	for _, m := range desc.Methods {
		methods[m.Name] = &runtime.Method{Name: m.Name, Params: m.Params, Body: m.Body}
	}
	class := &runtime.Class{Name: desc.Name, Methods: methods, Parent: parent}
	scope.Define(desc.Name, class)
	return nil, nil
}

func (i *Interpreter) evalPrint(n *ast.PrintStatement, scope *runtime.Scope, ctx HostContext) (runtime.Value, error) {
	parts := make([]string, len(n.Args))
	for idx, arg := range n.Args {
		val, err := i.execute(arg, scope, ctx)
		if err != nil {
			return nil, err
		}
		text, err := i.displayValue(val, ctx)
		if err != nil {
			return nil, err
		}
		parts[idx] = text
	}
	out := ""
	for idx, p := range parts {
		if idx > 0 {
			out += " "
		}
		out += p
	}
	fmt.Fprintln(ctx.OutputStream(), out)
	return nil, nil
}
