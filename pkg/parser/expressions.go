package parser

import (
	"mython/interpreter-go/pkg/ast"
	"mython/interpreter-go/pkg/token"
)

// parseExpression is the entry point into the standard precedence chain,
// lowest to highest: or, and, not, comparison, additive, multiplicative,
// postfix (call/field access), primary.
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.Or {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ast.Or(left, right)
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expression, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.And {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = ast.And(left, right)
	}
	return left, nil
}

func (p *Parser) parseNot() (ast.Expression, error) {
	if p.cur().Kind == token.Not {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return ast.Not(operand), nil
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	op, ok := p.matchCompareOp()
	if !ok {
		return left, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return ast.NewComparison(op, left, right), nil
}

func (p *Parser) matchCompareOp() (ast.CompareOp, bool) {
	switch p.cur().Kind {
	case token.Eq:
		return ast.CmpEq, true
	case token.NotEq:
		return ast.CmpNe, true
	case token.LessOrEq:
		return ast.CmpLe, true
	case token.GreaterOrEq:
		return ast.CmpGe, true
	case token.Char:
		switch p.cur().CharValue {
		case '<':
			return ast.CmpLt, true
		case '>':
			return ast.CmpGt, true
		}
	}
	return "", false
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.Char && (p.cur().CharValue == '+' || p.cur().CharValue == '-') {
		op := ast.OpAdd
		if p.cur().CharValue == '-' {
			op = ast.OpSub
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op, left, right)
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.Char && (p.cur().CharValue == '*' || p.cur().CharValue == '/') {
		op := ast.OpMul
		if p.cur().CharValue == '/' {
			op = ast.OpDiv
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op, left, right)
	}
	return left, nil
}

// parsePostfix handles dotted-name chains (`a.b.c`) and trailing call
// parens. A bare `Name(args)` is a NewInstance (class instantiation); a
// dotted `obj.method(args)` is a MethodCall on the prefix.
func (p *Parser) parsePostfix() (ast.Expression, error) {
	if p.cur().Kind != token.Id {
		return p.parsePrimary()
	}
	names := []string{p.cur().TextValue}
	if err := p.advance(); err != nil {
		return nil, err
	}
	for p.cur().Kind == token.Char && p.cur().CharValue == '.' {
		if err := p.advance(); err != nil {
			return nil, err
		}
		seg, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		names = append(names, seg)
	}
	if p.cur().Kind == token.Char && p.cur().CharValue == '(' {
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		if len(names) == 1 {
			return ast.New(names[0], args...), nil
		}
		object := ast.Var(names[:len(names)-1]...)
		method := names[len(names)-1]
		return ast.Call(object, method, args...), nil
	}
	return ast.Var(names...), nil
}

func (p *Parser) parseArgList() ([]ast.Expression, error) {
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	var args []ast.Expression
	for p.cur().Kind != token.Char || p.cur().CharValue != ')' {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
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
	return args, nil
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch p.cur().Kind {
	case token.Number:
		v := p.cur().IntValue
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.Num(v), nil
	case token.String:
		v := p.cur().TextValue
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.Str(v), nil
	case token.True:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.Bool(true), nil
	case token.False:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.Bool(false), nil
	case token.None:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.None(), nil
	case token.Char:
		if p.cur().CharValue == '(' {
			if err := p.advance(); err != nil {
				return nil, err
			}
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if err := p.expectChar(')'); err != nil {
				return nil, err
			}
			return expr, nil
		}
	}
	return nil, p.errorf("expected an expression, got %s", p.cur())
}
