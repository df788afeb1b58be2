// parser.go — recursive-descent parser for eerolang.
//
// The grammar is deliberately flat: a program is a sequence of top-level
// statements, and a statement is either an assignment `name = expr` or a bare
// call `name(args)`. Expressions are resolved with precedence climbing: the
// loop consumes operators at or above a minimum binding rank and recurses
// only for strictly tighter-binding operators, which makes equal-rank chains
// left-associative by construction.
//
// There is no error recovery: the first token that does not fit the expected
// grammar position aborts the parse with a *ParseError carrying the token's
// line and column. The FOR and IN keyword tokens are reserved vocabulary
// with no production; meeting either one anywhere is such an error.
package eerolang

import (
	"fmt"
	"log/slog"
)

// ----- errors -----

type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// ----- public API -----

// Parse turns a token stream into the ordered top-level statement sequence.
func Parse(tokens []Token) ([]Stmt, error) {
	p := &parser{toks: tokens}
	return p.program()
}

// ParseSource scans and parses in one step.
func ParseSource(src string) ([]Stmt, error) {
	tokens, err := NewLexer(src).Scan()
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// ----- parser state & helpers -----

type parser struct {
	toks []Token
	i    int
}

func (p *parser) peek() Token {
	if p.i >= len(p.toks) {
		return Token{Type: EOF}
	}
	return p.toks[p.i]
}

func (p *parser) next() Token {
	t := p.peek()
	if p.i < len(p.toks) {
		p.i++
	}
	return t
}

func (p *parser) match(tt TokenType) bool {
	if p.peek().Type == tt {
		p.i++
		return true
	}
	return false
}

func (p *parser) errAt(t Token, msg string) error {
	return &ParseError{Line: t.Line, Col: t.Col, Msg: msg}
}

func (p *parser) need(tt TokenType, msg string) (Token, error) {
	t := p.peek()
	if t.Type != tt {
		return Token{}, p.errAt(t, fmt.Sprintf("%s, found %s", msg, t.Type))
	}
	return p.next(), nil
}

func tokPos(t Token) Pos { return Pos{Line: t.Line, Col: t.Col} }

// operator table: token type → Op
var tokOps = map[TokenType]Op{
	PLUS:  OpAdd,
	MINUS: OpSub,
	MULT:  OpMul,
	DIV:   OpDiv,
}

func (p *parser) peekOp() (Op, bool) {
	op, ok := tokOps[p.peek().Type]
	return op, ok
}

// ----- grammar -----

// program ::= (statement | EOL)* EOF
func (p *parser) program() ([]Stmt, error) {
	var block []Stmt
	for {
		t := p.peek()
		switch t.Type {
		case EOF:
			slog.Debug("parsed program", "statements", len(block))
			return block, nil
		case EOL:
			p.next()
		case IDENT:
			stmt, err := p.statement()
			if err != nil {
				return nil, err
			}
			block = append(block, stmt)
		default:
			return nil, p.errAt(t, fmt.Sprintf("%s not allowed at start of statement", t.Type))
		}
	}
}

// statement ::= IDENT '=' expression | IDENT '(' arguments ')'
func (p *parser) statement() (Stmt, error) {
	ident := p.next()
	name := ident.Lexeme

	switch p.peek().Type {
	case ASSIGN:
		p.next()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &AssignStmt{Pos: tokPos(ident), Name: name, Expr: expr}, nil
	case LROUND:
		return p.finishCall(ident)
	default:
		return nil, p.errAt(p.peek(),
			fmt.Sprintf("%s not allowed after identifier %q", p.peek().Type, name))
	}
}

// finishCall consumes '(' args ')' for the identifier token already consumed.
func (p *parser) finishCall(ident Token) (*CallExpr, error) {
	if _, err := p.need(LROUND, "expected '('"); err != nil {
		return nil, err
	}
	args, err := p.commaList(RROUND)
	if err != nil {
		return nil, err
	}
	return &CallExpr{Pos: tokPos(ident), Name: ident.Lexeme, Args: args}, nil
}

// commaList parses `expr (',' expr)* ','?` terminated by the end token, which
// is consumed. The list may be empty.
func (p *parser) commaList(end TokenType) ([]Expr, error) {
	var elems []Expr
	for {
		if p.match(end) {
			return elems, nil
		}
		elem, err := p.expression()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		if p.match(COMMA) {
			continue
		}
		if p.match(end) {
			return elems, nil
		}
		return nil, p.errAt(p.peek(),
			fmt.Sprintf("expected ',' or %s in list, found %s", end, p.peek().Type))
	}
}

// expression ::= primary (op primary)* with precedence climbing.
func (p *parser) expression() (Expr, error) {
	left, err := p.primary()
	if err != nil {
		return nil, err
	}
	return p.climb(left, 0)
}

// climb folds operators of at least minPrec into left. After each right-hand
// primary it recurses while the pending operator binds strictly tighter than
// the one just consumed; the strict-greater test keeps equal ranks
// left-associative.
func (p *parser) climb(left Expr, minPrec int) (Expr, error) {
	for {
		op, ok := p.peekOp()
		if !ok || op.Precedence() < minPrec {
			return left, nil
		}
		opTok := p.next()

		right, err := p.primary()
		if err != nil {
			return nil, err
		}
		for {
			nextOp, ok := p.peekOp()
			if !ok || nextOp.Precedence() <= op.Precedence() {
				break
			}
			right, err = p.climb(right, nextOp.Precedence())
			if err != nil {
				return nil, err
			}
		}

		left = &BinaryExpr{Pos: tokPos(opTok), Op: op, Left: left, Right: right}
	}
}

// primary ::= LITERAL
//
//	| IDENT ('(' arguments ')')?
//	| '(' expression ')'
//	| '[' elements ']'
func (p *parser) primary() (Expr, error) {
	t := p.peek()
	switch t.Type {
	case LITERAL:
		p.next()
		return &LiteralExpr{Pos: tokPos(t), Val: t.Literal}, nil
	case IDENT:
		p.next()
		if p.peek().Type == LROUND {
			return p.finishCall(t)
		}
		return &VarExpr{Pos: tokPos(t), Name: t.Lexeme}, nil
	case LROUND:
		p.next()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(RROUND, "expected closing parenthesis"); err != nil {
			return nil, err
		}
		return expr, nil
	case LSQUARE:
		p.next()
		elems, err := p.commaList(RSQUARE)
		if err != nil {
			return nil, err
		}
		return &ListExpr{Pos: tokPos(t), Elems: elems}, nil
	default:
		return nil, p.errAt(t, fmt.Sprintf("expected expression, found %s", t.Type))
	}
}
