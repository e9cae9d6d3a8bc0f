package jasplang

// TokenStream is the consumption surface for a downstream parser.
// End of input is signaled by Current returning false, never by a
// sentinel token.
type TokenStream interface {
	Current() (Token, bool)
	Consume()
}

type SliceTokenStream struct {
	tokens []Token
	idx    int
}

func NewSliceTokenStream(tokens []Token) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
	}
}

func (s *SliceTokenStream) Current() (Token, bool) {
	if s.idx >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[s.idx], true
}

func (s *SliceTokenStream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}
