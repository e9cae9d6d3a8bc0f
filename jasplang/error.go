package jasplang

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrLeadingZero        = errors.New("you may only use a single zero")
	ErrUnterminatedString = errors.New("missing closing double quote")
	ErrUnexpectedRune     = errors.New("unexpected character")
)

// LexError locates a lexical error in the source. Error renders a
// caret snippet when the position carries a Source.
type LexError struct {
	Err error
	Pos Pos
}

func (l *LexError) Error() string {
	if l.Pos.Source == nil {
		if l.Pos.Line == 0 {
			return l.Err.Error()
		}
		return fmt.Sprintf("%s at %d:%d", l.Err.Error(), l.Pos.Line, l.Pos.Column)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s:%d:%d\n", l.Err.Error(), l.Pos.Source.Name, l.Pos.Line, l.Pos.Column))

	// Line content
	lines := l.Pos.Source.Lines
	idx := l.Pos.Line - 1
	if idx >= 0 && idx < len(lines) {
		line := lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")

		// Caret
		runes := []rune(line)
		col := l.Pos.Column - 1
		for i, r := range runes {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				w := runeWidth(r)
				for k := 0; k < w; k++ {
					sb.WriteString(" ")
				}
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (l *LexError) Unwrap() error {
	return l.Err
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
