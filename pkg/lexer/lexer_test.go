package lexer

import (
	"testing"

	"mython/interpreter-go/pkg/token"
)

func allTokens(t *testing.T, src string) []token.Token {
	t.Helper()
	l, err := NewFromString(src)
	if err != nil {
		t.Fatalf("construct lexer: %v", err)
	}
	toks := []token.Token{l.Current()}
	for l.Current().Kind != token.Eof {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		toks = append(toks, tok)
	}
	return toks
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func assertKinds(t *testing.T, got []token.Kind, want []token.Kind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("kind count mismatch:\n got: %v\nwant: %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kind[%d]: got %s, want %s\n got: %v\nwant: %v", i, got[i], want[i], got, want)
		}
	}
}

func TestIndentationScenarioS1(t *testing.T) {
	src := "if x:\n  print 1\n  print 2\nprint 3\n"
	toks := allTokens(t, src)
	want := []token.Kind{
		token.If, token.Id, token.Char, token.Newline,
		token.Indent,
		token.Print, token.Number, token.Newline,
		token.Print, token.Number, token.Newline,
		token.Dedent,
		token.Print, token.Number, token.Newline,
		token.Eof,
	}
	assertKinds(t, kinds(toks), want)
}

func TestOddIndentFails(t *testing.T) {
	// The constructor primes only the first token; the odd indentation is
	// reached by advancing.
	l, err := NewFromString("if x:\n   print 1\n")
	for err == nil && l.Current().Kind != token.Eof {
		_, err = l.Next()
	}
	if err == nil {
		t.Fatalf("expected LexError for odd indentation")
	}
	if _, ok := err.(*LexError); !ok {
		t.Fatalf("expected *LexError, got %T: %v", err, err)
	}
	if err.Error() != "Invalid number of spaces" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestStringEscapes(t *testing.T) {
	l, err := NewFromString(`"hello\n\t\"\'\\"` + "\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Current().Kind != token.String {
		t.Fatalf("expected String token, got %s", l.Current().Kind)
	}
	want := "hello\n\t\"'\\"
	if l.Current().TextValue != want {
		t.Fatalf("unexpected string payload: %q, want %q", l.Current().TextValue, want)
	}
}

func TestUnterminatedStringFails(t *testing.T) {
	_, err := NewFromString(`"unterminated`)
	if err == nil {
		t.Fatalf("expected LexError for unterminated string")
	}
	if err.Error() != "Unterminated string" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestTwoCharOperators(t *testing.T) {
	toks := allTokens(t, "a == b != c <= d >= e\n")
	want := []token.Kind{
		token.Id, token.Eq, token.Id, token.NotEq, token.Id,
		token.LessOrEq, token.Id, token.GreaterOrEq, token.Id,
		token.Newline, token.Eof,
	}
	assertKinds(t, kinds(toks), want)
}

func TestInvalidCharFails(t *testing.T) {
	l, err := NewFromString("a $ b\n")
	for err == nil && l.Current().Kind != token.Eof {
		_, err = l.Next()
	}
	if err == nil {
		t.Fatalf("expected LexError for invalid char")
	}
	if err.Error() != "Invalid char" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestKeywordsNeverBecomeId(t *testing.T) {
	toks := allTokens(t, "class return if else def print and or not None True False\n")
	want := []token.Kind{
		token.Class, token.Return, token.If, token.Else, token.Def,
		token.Print, token.And, token.Or, token.Not, token.None,
		token.True, token.False, token.Newline, token.Eof,
	}
	assertKinds(t, kinds(toks), want)
}

func TestEofIsPermanentTerminal(t *testing.T) {
	l, err := NewFromString("x\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for l.Current().Kind != token.Eof {
		if _, err := l.Next(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	for i := 0; i < 3; i++ {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Kind != token.Eof {
			t.Fatalf("expected Eof to stick, got %s", tok.Kind)
		}
	}
}

func TestMissingTrailingNewlineSynthesizesOne(t *testing.T) {
	toks := allTokens(t, "print 1")
	want := []token.Kind{token.Print, token.Number, token.Newline, token.Eof}
	assertKinds(t, kinds(toks), want)
}

func TestNestedDedentAcrossMultipleLevels(t *testing.T) {
	src := "if a:\n  if b:\n    print 1\nprint 2\n"
	toks := allTokens(t, src)
	want := []token.Kind{
		token.If, token.Id, token.Char, token.Newline,
		token.Indent,
		token.If, token.Id, token.Char, token.Newline,
		token.Indent,
		token.Print, token.Number, token.Newline,
		token.Dedent, token.Dedent,
		token.Print, token.Number, token.Newline,
		token.Eof,
	}
	assertKinds(t, kinds(toks), want)

	indentCount, dedentCount := 0, 0
	for _, k := range kinds(toks) {
		if k == token.Indent {
			indentCount++
		}
		if k == token.Dedent {
			dedentCount++
		}
	}
	if indentCount != dedentCount {
		t.Fatalf("unbalanced indent/dedent: %d indents, %d dedents", indentCount, dedentCount)
	}
}

func TestBlankLinesProduceNoTokens(t *testing.T) {
	toks := allTokens(t, "print 1\n\n\nprint 2\n")
	want := []token.Kind{
		token.Print, token.Number, token.Newline,
		token.Print, token.Number, token.Newline,
		token.Eof,
	}
	assertKinds(t, kinds(toks), want)
}

func TestCommentsAreIgnored(t *testing.T) {
	toks := allTokens(t, "print 1 # trailing comment\n# whole line comment\nprint 2\n")
	want := []token.Kind{
		token.Print, token.Number, token.Newline,
		token.Print, token.Number, token.Newline,
		token.Eof,
	}
	assertKinds(t, kinds(toks), want)
}
