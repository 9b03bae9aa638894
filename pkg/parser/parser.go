// Package parser is the recursive-descent parser spec.md treats as an
// external collaborator (§"Out of scope"): it consumes the pkg/token
// stream pkg/lexer produces and builds the pkg/ast trees pkg/interpreter
// evaluates. Grounded on scenario S5/S6 of spec.md (class/def/if/print/
// return surface syntax) and on the teacher's own parser package split
// across several small per-concern files.
package parser

import (
	"fmt"

	"mython/interpreter-go/pkg/ast"
	"mython/interpreter-go/pkg/lexer"
	"mython/interpreter-go/pkg/token"
)

// ParseError reports ill-formed but lexically valid input.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

// Parser wraps a lexer.Lexer and produces one ast.Statement tree.
type Parser struct {
	lex *lexer.Lexer
}

// New wraps an already-primed lexer.
func New(lex *lexer.Lexer) *Parser {
	return &Parser{lex: lex}
}

// Parse consumes the entire token stream and returns the program as a
// single Compound statement.
func Parse(lex *lexer.Lexer) (*ast.Compound, error) {
	p := New(lex)
	stmts, err := p.parseStatementList(token.Eof)
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != token.Eof {
		return nil, p.errorf("expected end of input, got %s", p.cur())
	}
	return ast.Block(stmts...), nil
}

func (p *Parser) cur() token.Token { return p.lex.Current() }

func (p *Parser) advance() error {
	_, err := p.lex.Next()
	return err
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) expectChar(c byte) error {
	if p.cur().Kind != token.Char || p.cur().CharValue != c {
		return p.errorf("expected '%c', got %s", c, p.cur())
	}
	return p.advance()
}

func (p *Parser) expectKind(k token.Kind) error {
	if p.cur().Kind != k {
		return p.errorf("expected %s, got %s", k, p.cur())
	}
	return p.advance()
}

func (p *Parser) expectIdent() (string, error) {
	if p.cur().Kind != token.Id {
		return "", p.errorf("expected identifier, got %s", p.cur())
	}
	name := p.cur().TextValue
	if err := p.advance(); err != nil {
		return "", err
	}
	return name, nil
}

// parseStatementList parses statements until it sees `stop` (token.Dedent
// closing a block, or token.Eof closing the program).
func (p *Parser) parseStatementList(stop token.Kind) ([]ast.Statement, error) {
	var stmts []ast.Statement
	for p.cur().Kind != stop {
		// Blank logical lines never reach here: the lexer never emits a
		// bare Newline with nothing between two others, so every
		// iteration parses exactly one statement.
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if p.cur().Kind == token.Newline {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	return stmts, nil
}

// parseBlock parses `Newline Indent StatementList Dedent`, the common
// suffix of class/def/if/else headers.
func (p *Parser) parseBlock() (*ast.Compound, error) {
	if err := p.expectKind(token.Newline); err != nil {
		return nil, err
	}
	if err := p.expectKind(token.Indent); err != nil {
		return nil, err
	}
	stmts, err := p.parseStatementList(token.Dedent)
	if err != nil {
		return nil, err
	}
	if err := p.expectKind(token.Dedent); err != nil {
		return nil, err
	}
	return ast.Block(stmts...), nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur().Kind {
	case token.Class:
		return p.parseClassDefinition()
	case token.If:
		return p.parseIfElse()
	case token.Print:
		return p.parsePrint()
	case token.Return:
		return p.parseReturn()
	default:
		return p.parseSimpleStatement()
	}
}

// parseClassDefinition parses `class Name[(Parent)]:` followed by a block
// of `def` method definitions exclusively (spec.md's class body carries no
// other statement kind).
func (p *Parser) parseClassDefinition() (*ast.ClassDefinition, error) {
	if err := p.advance(); err != nil { // consume 'class'
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	parent := ""
	if p.cur().Kind == token.Char && p.cur().CharValue == '(' {
		if err := p.advance(); err != nil {
			return nil, err
		}
		parent, err = p.expectIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if err := p.expectKind(token.Newline); err != nil {
		return nil, err
	}
	if err := p.expectKind(token.Indent); err != nil {
		return nil, err
	}
	var methods []*ast.MethodDefinition
	for p.cur().Kind == token.Def {
		m, err := p.parseMethodDefinition()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	if err := p.expectKind(token.Dedent); err != nil {
		return nil, err
	}
	return ast.Class(name, parent, methods...), nil
}

// parseMethodDefinition parses `def name(params):` + block. `self` is
// never written in the parameter list: spec.md's ClassInstance.call binds
// it implicitly (see pkg/interpreter.callMethod), so a written `self` here
// would double-bind and shift every other parameter by one.
func (p *Parser) parseMethodDefinition() (*ast.MethodDefinition, error) {
	if err := p.advance(); err != nil { // consume 'def'
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	var params []string
	for p.cur().Kind != token.Char || p.cur().CharValue != ')' {
		param, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if p.cur().Kind == token.Char && p.cur().CharValue == ',' {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expectChar(')'); err != nil {
		return nil, err
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.Method(name, params, body), nil
}

func (p *Parser) parseIfElse() (*ast.IfElse, error) {
	if err := p.advance(); err != nil { // consume 'if'
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseStmt ast.Statement
	if p.cur().Kind == token.Else {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectChar(':'); err != nil {
			return nil, err
		}
		elseStmt, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return ast.If(cond, then, elseStmt), nil
}

// parsePrint parses `print expr [, expr]*`.
func (p *Parser) parsePrint() (*ast.PrintStatement, error) {
	if err := p.advance(); err != nil { // consume 'print'
		return nil, err
	}
	var args []ast.Expression
	if p.cur().Kind != token.Newline && p.cur().Kind != token.Eof {
		first, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, first)
		for p.cur().Kind == token.Char && p.cur().CharValue == ',' {
			if err := p.advance(); err != nil {
				return nil, err
			}
			next, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, next)
		}
	}
	return ast.Print(args...), nil
}

func (p *Parser) parseReturn() (*ast.ReturnStatement, error) {
	if err := p.advance(); err != nil { // consume 'return'
		return nil, err
	}
	if p.cur().Kind == token.Newline || p.cur().Kind == token.Eof || p.cur().Kind == token.Dedent {
		return ast.Ret(nil), nil
	}
	arg, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.Ret(arg), nil
}

// parseSimpleStatement parses an assignment, a field assignment, or a bare
// expression (typically a MethodCall used for its side effect).
func (p *Parser) parseSimpleStatement() (ast.Statement, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind == token.Char && p.cur().CharValue == '=' {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		switch target := expr.(type) {
		case *ast.VariableValue:
			if len(target.Names) == 1 {
				return ast.Assign(target, rhs), nil
			}
			object := ast.Var(target.Names[:len(target.Names)-1]...)
			field := target.Names[len(target.Names)-1]
			return ast.FieldAssign(object, field, rhs), nil
		default:
			return nil, p.errorf("invalid assignment target")
		}
	}
	return expr, nil
}
