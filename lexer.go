// lexer.go — scanner for eerolang source text.
package eerolang

import (
	"fmt"
	"log/slog"
	"strconv"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	EOL // optional end-of-statement marker; skipped by the parser

	// Punctuation
	ASSIGN  // "="
	LROUND  // "("
	RROUND  // ")"
	LSQUARE // "["
	RSQUARE // "]"
	LCURLY  // "{"
	RCURLY  // "}"
	COMMA   // ","

	// Operators
	PLUS
	MINUS
	MULT
	DIV

	// Literals & identifiers
	LITERAL
	IDENT

	// Keywords (reserved; no grammar rule consumes them yet)
	FOR
	IN
)

var tokenNames = map[TokenType]string{
	EOF: "end of input", EOL: "end of statement",
	ASSIGN: "'='", LROUND: "'('", RROUND: "')'",
	LSQUARE: "'['", RSQUARE: "']'", LCURLY: "'{'", RCURLY: "'}'",
	COMMA: "','",
	PLUS:  "'+'", MINUS: "'-'", MULT: "'*'", DIV: "'/'",
	LITERAL: "literal", IDENT: "identifier",
	FOR: "'for'", IN: "'in'",
}

func (t TokenType) String() string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// Token is a lexical token with optional literal value.
type Token struct {
	Type    TokenType
	Lexeme  string // raw text slice
	Literal Value  // parsed value for LITERAL tokens
	Line    int
	Col     int
}

// keywords map
var keywords = map[string]TokenType{
	"for": FOR,
	"in":  IN,
}

// ----- errors -----

type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// Lexer scans an eerolang source string into tokens.
type Lexer struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	line   int // 1-based
	col    int // 0-based column within line
	tokens []Token

	// precise token start position
	tokStartLine int
	tokStartCol  int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{
		src:  src,
		line: 1,
		col:  0,
	}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch, true
}

func (l *Lexer) addToken(tt TokenType, lit Value) Token {
	tok := Token{
		Type:    tt,
		Lexeme:  l.src[l.start:l.cur],
		Literal: lit,
		Line:    l.tokStartLine,
		Col:     l.tokStartCol,
	}
	l.tokens = append(l.tokens, tok)
	l.start = l.cur
	return tok
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		ch, _ := l.peek()
		switch ch {
		case ' ', '\r', '\n', '\t':
			l.advance()
			l.start = l.cur
		default:
			return
		}
	}
}

func (l *Lexer) err(msg string) error {
	return &LexError{Line: l.line, Col: l.col, Msg: msg}
}

// helpers

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isAlphaNum(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// ----- scanners -----

// ignoreUntilNewline eats until '\n' or EOF. The newline itself is left for
// skipWhitespace so line accounting stays in one place.
func (l *Lexer) ignoreUntilNewline() {
	for {
		b, ok := l.peek()
		if !ok || b == '\n' {
			return
		}
		l.advance()
	}
}

// scanString decodes a double-quoted string body. The opening quote has
// already been consumed. Recognized escapes are \n \t \r \\ \"; any other
// escaped character passes through literally. Hitting end of input before the
// closing quote is not an error: the collected text becomes the final token
// and scanning stops there (quirk inherited from the language definition).
func (l *Lexer) scanString() string {
	var out []byte
	escape := false
	for !l.isAtEnd() {
		ch, _ := l.advance()
		if escape {
			switch ch {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case 'r':
				out = append(out, '\r')
			default:
				// includes '\\' and '"': the escaped character itself
				out = append(out, ch)
			}
			escape = false
			continue
		}
		if ch == '\\' {
			escape = true
			continue
		}
		if ch == '"' {
			break
		}
		out = append(out, ch)
	}
	return string(out)
}

// scanIdentifier consumes [A-Za-z][A-Za-z0-9]*; the first character has
// already been consumed by the caller.
func (l *Lexer) scanIdentifier() string {
	for {
		b, ok := l.peek()
		if !ok || !isAlphaNum(b) {
			break
		}
		l.advance()
	}
	return l.src[l.start:l.cur]
}

// scanNumber consumes a digit run with at most one interior decimal point.
// A point makes the literal a Num, otherwise it is an Int.
func (l *Lexer) scanNumber() (Value, error) {
	sawDot := false
	for {
		b, ok := l.peek()
		if !ok {
			break
		}
		if isDigit(b) {
			l.advance()
			continue
		}
		if b == '.' && !sawDot {
			sawDot = true
			l.advance()
			continue
		}
		break
	}

	lex := l.src[l.start:l.cur]
	if sawDot {
		f, convErr := strconv.ParseFloat(lex, 64)
		if convErr != nil {
			return Value{}, l.err(fmt.Sprintf("invalid float literal: %s", lex))
		}
		return Num(f), nil
	}
	n, convErr := strconv.ParseInt(lex, 10, 64)
	if convErr != nil {
		return Value{}, l.err(fmt.Sprintf("invalid integer literal: %s", lex))
	}
	return Int(n), nil
}

// ----- main scanner -----

func (l *Lexer) scanToken() (Token, error) {
	for {
		l.skipWhitespace()
		l.tokStartLine = l.line
		l.tokStartCol = l.col
		l.start = l.cur

		if l.isAtEnd() {
			return l.addToken(EOF, Value{}), nil
		}

		ch, _ := l.advance()

		switch ch {
		case '=':
			return l.addToken(ASSIGN, Value{}), nil
		case '+':
			return l.addToken(PLUS, Value{}), nil
		case '-':
			return l.addToken(MINUS, Value{}), nil
		case '*':
			return l.addToken(MULT, Value{}), nil
		case '/':
			return l.addToken(DIV, Value{}), nil
		case '(':
			return l.addToken(LROUND, Value{}), nil
		case ')':
			return l.addToken(RROUND, Value{}), nil
		case '[':
			return l.addToken(LSQUARE, Value{}), nil
		case ']':
			return l.addToken(RSQUARE, Value{}), nil
		case '{':
			return l.addToken(LCURLY, Value{}), nil
		case '}':
			return l.addToken(RCURLY, Value{}), nil
		case ',':
			return l.addToken(COMMA, Value{}), nil
		}

		// Comments
		if ch == '#' {
			l.ignoreUntilNewline()
			continue
		}

		// Strings
		if ch == '"' {
			text := l.scanString()
			return l.addToken(LITERAL, Str(text)), nil
		}

		// Numbers
		if isDigit(ch) {
			lit, err := l.scanNumber()
			if err != nil {
				return Token{}, err
			}
			return l.addToken(LITERAL, lit), nil
		}

		// Identifiers / keywords
		if isAlpha(ch) {
			lex := l.scanIdentifier()
			if tt, ok := keywords[lex]; ok {
				return l.addToken(tt, Value{}), nil
			}
			return l.addToken(IDENT, Value{}), nil
		}

		return Token{}, &LexError{
			Line: l.tokStartLine,
			Col:  l.tokStartCol,
			Msg:  fmt.Sprintf("unexpected character: %q", ch),
		}
	}
}

// Scan tokenizes the entire source and returns tokens (EOF included).
func (l *Lexer) Scan() ([]Token, error) {
	for {
		tok, err := l.scanToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			slog.Debug("tokenized source", "tokens", len(l.tokens))
			return l.tokens, nil
		}
	}
}
