// Package runtime holds the interpreter's runtime object model: Number,
// String, Bool, Class, and ClassInstance values, plus the flat Scope
// mapping used for the global scope, method locals, and instance field
// tables. It mirrors the shape of the teacher's pkg/runtime (a Value
// interface with a Kind() tag and one concrete type per variant) but drops
// every variant this language doesn't have (arrays, ranges, structs,
// interfaces, unions, procs/futures, ...).
package runtime

import "mython/interpreter-go/pkg/ast"

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindBool
	KindNil
	KindClass
	KindClassInstance
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNil:
		return "nil"
	case KindClass:
		return "class"
	case KindClassInstance:
		return "class_instance"
	default:
		return "unknown_kind"
	}
}

// Value is the shared behaviour for all runtime values. A Go nil Value is
// the empty object handle of spec §3.2: the absence of an object, distinct
// from the explicit NilValue ("None"), though both print as "None".
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type NumberValue struct {
	Val int64
}

func (NumberValue) Kind() Kind { return KindNumber }

type StringValue struct {
	Val string
}

func (StringValue) Kind() Kind { return KindString }

type BoolValue struct {
	Val bool
}

func (BoolValue) Kind() Kind { return KindBool }

// NilValue is the user-visible `None`, distinct from an empty handle.
type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }

//-----------------------------------------------------------------------------
// Classes
//-----------------------------------------------------------------------------

// Method is a method descriptor bound inside a Class: a name, ordered
// formal parameter names, and an owned AST body.
type Method struct {
	Name   string
	Params []string
	Body   *ast.MethodBody
}

// Class is a class descriptor: a name, its own methods, and a non-owning
// reference to a parent class (nil at the root of a hierarchy). Go's
// garbage collector reclaims the descriptor graph; there is no manual
// refcounting to break here (see DESIGN.md, Open Questions, item 1).
type Class struct {
	Name    string
	Methods map[string]*Method
	Parent  *Class
}

func (*Class) Kind() Kind { return KindClass }

// Lookup walks the class chain child→parent, first match wins.
func (c *Class) Lookup(name string) (*Method, bool) {
	for cur := c; cur != nil; cur = cur.Parent {
		if m, ok := cur.Methods[name]; ok {
			return m, true
		}
	}
	return nil, false
}

// ClassInstance is bound to one Class descriptor and holds its own field
// table.
type ClassInstance struct {
	Class  *Class
	Fields *Scope
}

func NewClassInstance(class *Class) *ClassInstance {
	return &ClassInstance{Class: class, Fields: NewScope()}
}

func (*ClassInstance) Kind() Kind { return KindClassInstance }

// HasMethod reports whether the class chain defines name with exactly argc
// formal parameters.
func (ci *ClassInstance) HasMethod(name string, argc int) bool {
	m, ok := ci.Class.Lookup(name)
	return ok && len(m.Params) == argc
}

// Method returns the resolved method, if any, regardless of arity; callers
// that care about arity should use HasMethod first.
func (ci *ClassInstance) Method(name string) (*Method, bool) {
	return ci.Class.Lookup(name)
}
