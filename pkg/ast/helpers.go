package ast

// Short constructor aliases for hand-built trees in tests, mirroring the
// teacher's own terse ast.* helpers (ast.Str, ast.ID, ast.Block, ...).

func Num(v int64) *IntegerLiteral    { return NewIntegerLiteral(v) }
func Str(v string) *StringLiteral    { return NewStringLiteral(v) }
func Bool(v bool) *BooleanLiteral    { return NewBooleanLiteral(v) }
func None() *NilLiteral              { return NewNilLiteral() }
func Var(names ...string) *VariableValue { return NewVariableValue(names...) }

func Assign(target *VariableValue, value Expression) *Assignment {
	return NewAssignment(target, value)
}

func FieldAssign(object Expression, field string, value Expression) *FieldAssignment {
	return NewFieldAssignment(object, field, value)
}

func Print(args ...Expression) *PrintStatement { return NewPrintStatement(args...) }

func Block(stmts ...Statement) *Compound { return NewCompound(stmts...) }

func Ret(arg Expression) *ReturnStatement { return NewReturnStatement(arg) }

func If(cond Expression, then Statement, els Statement) *IfElse {
	return NewIfElse(cond, then, els)
}

func Method(name string, params []string, body Statement) *MethodDefinition {
	return NewMethodDefinition(name, params, MBody(body))
}

func Class(name, parent string, methods ...*MethodDefinition) *ClassDefinition {
	return NewClassDefinition(NewClassDescriptor(name, parent, methods))
}

func MBody(body Statement) *MethodBody { return NewMethodBody(body) }

func Call(object Expression, method string, args ...Expression) *MethodCall {
	return NewMethodCall(object, method, args...)
}

func New(className string, args ...Expression) *NewInstance {
	return NewNewInstance(className, args...)
}

func ToString(arg Expression) *Stringify { return NewStringify(arg) }

func Add(l, r Expression) *BinaryExpression { return NewBinaryExpression(OpAdd, l, r) }
func Sub(l, r Expression) *BinaryExpression { return NewBinaryExpression(OpSub, l, r) }
func Mul(l, r Expression) *BinaryExpression { return NewBinaryExpression(OpMul, l, r) }
func Div(l, r Expression) *BinaryExpression { return NewBinaryExpression(OpDiv, l, r) }

func Eq(l, r Expression) *Comparison  { return NewComparison(CmpEq, l, r) }
func Ne(l, r Expression) *Comparison  { return NewComparison(CmpNe, l, r) }
func Lt(l, r Expression) *Comparison  { return NewComparison(CmpLt, l, r) }
func Gt(l, r Expression) *Comparison  { return NewComparison(CmpGt, l, r) }
func Le(l, r Expression) *Comparison  { return NewComparison(CmpLe, l, r) }
func Ge(l, r Expression) *Comparison  { return NewComparison(CmpGe, l, r) }

func And(l, r Expression) *LogicalExpression { return NewLogicalExpression(LogicalAnd, l, r) }
func Or(l, r Expression) *LogicalExpression  { return NewLogicalExpression(LogicalOr, l, r) }
func Not(arg Expression) *NotExpression      { return NewNotExpression(arg) }
