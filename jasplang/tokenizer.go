package jasplang

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenizer is a single forward pass over the source with one rune of
// lookahead. It owns nothing beyond the cursor, so every call to
// Tokens on a fresh Tokenizer is independent and reentrant.
type Tokenizer struct {
	source *Source
	offset int
	pos    Pos

	// Strict rejects characters matched by no rule instead of
	// skipping them.
	Strict bool
}

func NewTokenizer(source *Source) *Tokenizer {
	return &Tokenizer{
		source: source,
		pos: Pos{
			Source: source,
			Line:   1,
			Column: 1,
		},
	}
}

// Tokenize scans src into tokens. There is no end-of-input sentinel;
// exhaustion of the returned slice is the termination signal.
func Tokenize(src string) ([]Token, error) {
	return NewTokenizer(NewSource("", src)).Tokens()
}

func (t *Tokenizer) peek() (rune, bool) {
	if t.offset >= len(t.source.Content) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(t.source.Content[t.offset:])
	return r, true
}

func (t *Tokenizer) next() (rune, bool) {
	if t.offset >= len(t.source.Content) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(t.source.Content[t.offset:])
	t.offset += size
	if r == '\n' {
		t.pos.Line++
		t.pos.Column = 1
	} else {
		t.pos.Column++
	}
	return r, true
}

// Tokens scans the whole source. The first malformed construct aborts
// the scan; no partial result is returned.
func (t *Tokenizer) Tokens() ([]Token, error) {
	var tokens []Token
	for {
		r, ok := t.peek()
		if !ok {
			return tokens, nil
		}
		start := t.pos

		switch {

		case r == '(':
			t.next()
			tokens = append(tokens, Token{Kind: TokenParen, Paren: ParenOpen, Pos: start})

		case r == ')':
			t.next()
			tokens = append(tokens, Token{Kind: TokenParen, Paren: ParenClose, Pos: start})

		case unicode.IsSpace(r):
			t.next()

		case r == '0':
			// Multi-digit numbers may not start with a zero.
			t.next()
			if next, ok := t.peek(); ok && isDigit(next) {
				return nil, &LexError{Err: ErrLeadingZero, Pos: start}
			}
			tokens = append(tokens, Token{Kind: TokenNumber, Num: 0, Pos: start})

		case isDigit(r):
			token, err := t.scanNumber(start)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)

		case r == '"':
			t.next()
			token, err := t.scanString(start)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)

		case isIdentStart(r):
			tokens = append(tokens, t.scanIdentifier(start))

		case r == '+' || r == '-' || r == '*' || r == '/':
			t.next()
			tokens = append(tokens, Token{Kind: TokenArithmetic, Text: string(r), Pos: start})

		case r == '=' || r == '<' || r == '>':
			t.next()
			text := string(r)
			if next, ok := t.peek(); ok && next == '=' {
				t.next()
				text += "="
			}
			tokens = append(tokens, Token{Kind: TokenOperator, Text: text, Pos: start})

		default:
			if t.Strict {
				return nil, &LexError{
					Err: fmt.Errorf("%w %q", ErrUnexpectedRune, r),
					Pos: start,
				}
			}
			t.next()
		}
	}
}

func (t *Tokenizer) scanNumber(start Pos) (Token, error) {
	var buf strings.Builder
	for {
		r, ok := t.peek()
		if !ok || !isDigit(r) {
			break
		}
		t.next()
		buf.WriteRune(r)
	}
	n, err := strconv.ParseInt(buf.String(), 10, 64)
	if err != nil {
		return Token{}, &LexError{Err: err, Pos: start}
	}
	return Token{Kind: TokenNumber, Num: n, Pos: start}, nil
}

// scanString is entered with the opening quote consumed. Only the
// two-character sequence \" is special; every other backslash is
// stored verbatim.
func (t *Tokenizer) scanString(start Pos) (Token, error) {
	var buf strings.Builder
	prev := '"'
	for {
		r, ok := t.next()
		if !ok {
			return Token{}, &LexError{Err: ErrUnterminatedString, Pos: start}
		}
		if r == '"' && prev != '\\' {
			break
		}
		buf.WriteRune(r)
		prev = r
	}
	return Token{Kind: TokenString, Text: buf.String(), Pos: start}, nil
}

func (t *Tokenizer) scanIdentifier(start Pos) Token {
	var buf strings.Builder
	r, _ := t.next()
	buf.WriteRune(r)
	for {
		r, ok := t.peek()
		if !ok || !isIdentPart(r) {
			break
		}
		t.next()
		buf.WriteRune(r)
	}
	text := buf.String()
	switch text {
	case "true":
		return Token{Kind: TokenBoolean, Bool: true, Pos: start}
	case "false":
		return Token{Kind: TokenBoolean, Bool: false, Pos: start}
	}
	return Token{Kind: TokenIdentifier, Text: text, Pos: start}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r >= 'a' && r <= 'z' || r == '_'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r) || r == '-'
}
