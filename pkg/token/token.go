// Package token defines the closed set of lexical tokens produced by
// pkg/lexer and consumed by pkg/parser.
package token

import "fmt"

// Kind identifies which variant of Token a value holds.
type Kind int

const (
	Number Kind = iota
	Id
	String
	Char

	Class
	Return
	If
	Else
	Def
	Print
	And
	Or
	Not
	None
	True
	False

	Eq
	NotEq
	LessOrEq
	GreaterOrEq

	Newline
	Indent
	Dedent
	Eof
)

var names = map[Kind]string{
	Number:      "Number",
	Id:          "Id",
	String:      "String",
	Char:        "Char",
	Class:       "Class",
	Return:      "Return",
	If:          "If",
	Else:        "Else",
	Def:         "Def",
	Print:       "Print",
	And:         "And",
	Or:          "Or",
	Not:         "Not",
	None:        "None",
	True:        "True",
	False:       "False",
	Eq:          "Eq",
	NotEq:       "NotEq",
	LessOrEq:    "LessOrEq",
	GreaterOrEq: "GreaterOrEq",
	Newline:     "Newline",
	Indent:      "Indent",
	Dedent:      "Dedent",
	Eof:         "Eof",
}

func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown_kind_%d", int(k))
}

// Keywords maps reserved spellings to their nullary token kind. Identifiers
// matching one of these never become an Id token.
var Keywords = map[string]Kind{
	"class":  Class,
	"return": Return,
	"if":     If,
	"else":   Else,
	"def":    Def,
	"print":  Print,
	"and":    And,
	"or":     Or,
	"not":    Not,
	"None":   None,
	"True":   True,
	"False":  False,
}

// Token is a closed tagged union: Kind selects which payload field, if any,
// is meaningful.
type Token struct {
	Kind Kind

	IntValue  int64  // Number
	TextValue string // Id, String
	CharValue byte   // Char
}

// Num builds a Number token.
func Num(v int64) Token { return Token{Kind: Number, IntValue: v} }

// Ident builds an Id token.
func Ident(name string) Token { return Token{Kind: Id, TextValue: name} }

// Str builds a String token.
func Str(text string) Token { return Token{Kind: String, TextValue: text} }

// Ch builds a Char token.
func Ch(c byte) Token { return Token{Kind: Char, CharValue: c} }

// Nullary builds a payload-less token of the given kind.
func Nullary(k Kind) Token { return Token{Kind: k} }

// Equal reports whether two tokens carry the same variant and payload.
func (t Token) Equal(other Token) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case Number:
		return t.IntValue == other.IntValue
	case Id, String:
		return t.TextValue == other.TextValue
	case Char:
		return t.CharValue == other.CharValue
	default:
		return true
	}
}

// String renders a printable form of the token, payload included.
func (t Token) String() string {
	switch t.Kind {
	case Number:
		return fmt.Sprintf("Number(%d)", t.IntValue)
	case Id:
		return fmt.Sprintf("Id(%q)", t.TextValue)
	case String:
		return fmt.Sprintf("String(%q)", t.TextValue)
	case Char:
		return fmt.Sprintf("Char(%q)", rune(t.CharValue))
	default:
		return t.Kind.String()
	}
}
