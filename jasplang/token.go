package jasplang

import (
	"fmt"
	"strconv"
)

type TokenKind int

const (
	TokenParen TokenKind = iota
	TokenNumber
	TokenString
	TokenIdentifier
	TokenBoolean
	TokenOperator
	TokenArithmetic
)

func (k TokenKind) String() string {
	switch k {
	case TokenParen:
		return "paren"
	case TokenNumber:
		return "number"
	case TokenString:
		return "string"
	case TokenIdentifier:
		return "identifier"
	case TokenBoolean:
		return "boolean"
	case TokenOperator:
		return "operator"
	case TokenArithmetic:
		return "arithmetic"
	}
	return "invalid"
}

type ParenDir int

const (
	ParenOpen ParenDir = iota
	ParenClose
)

func (d ParenDir) String() string {
	if d == ParenClose {
		return "close"
	}
	return "open"
}

// Synthetic tokens for structural comparison. No position attached.
var (
	OpenParen  = Token{Kind: TokenParen, Paren: ParenOpen}
	CloseParen = Token{Kind: TokenParen, Paren: ParenClose}
)

// Token carries one payload field depending on Kind: Paren for
// TokenParen, Num for TokenNumber, Bool for TokenBoolean, Text for
// everything else. Pos is zero for synthetic tokens.
type Token struct {
	Kind  TokenKind
	Text  string
	Num   int64
	Bool  bool
	Paren ParenDir
	Pos   Pos
}

// Equal compares kind and payload only. Position is a diagnostics
// side channel, never part of token identity.
func (t Token) Equal(other Token) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case TokenParen:
		return t.Paren == other.Paren
	case TokenNumber:
		return t.Num == other.Num
	case TokenBoolean:
		return t.Bool == other.Bool
	}
	return t.Text == other.Text
}

func (t Token) payload() string {
	switch t.Kind {
	case TokenParen:
		return t.Paren.String()
	case TokenNumber:
		return strconv.FormatInt(t.Num, 10)
	case TokenBoolean:
		return strconv.FormatBool(t.Bool)
	}
	return t.Text
}

func (t Token) String() string {
	if t.Pos.Line == 0 && t.Pos.Column == 0 {
		return fmt.Sprintf("<%s:%s>", t.Kind, t.payload())
	}
	return fmt.Sprintf("<%s:%s @%d,%d>", t.Kind, t.payload(), t.Pos.Line, t.Pos.Column)
}
