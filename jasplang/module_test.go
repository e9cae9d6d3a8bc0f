package jasplang

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
)

func TestModuleTokenize(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		tokenize TokenizeSource,
	) {
		tokens, err := tokenize(context.Background(), NewSource("test", "(+ 3 243)"))
		if err != nil {
			t.Fatal(err)
		}
		expected := []Token{
			OpenParen,
			arithmetic("+"),
			number(3),
			number(243),
			CloseParen,
		}
		if len(tokens) != len(expected) {
			t.Fatalf("got %d tokens", len(tokens))
		}
		for i := range expected {
			if !tokens[i].Equal(expected[i]) {
				t.Errorf("token %d: %v != %v", i, tokens[i], expected[i])
			}
		}
	})
}

func TestTokenizeSourceMatchesTokenize(t *testing.T) {
	const src = "(foo\n bar)"
	dscope.New(new(Module)).Call(func(
		tokenizeSource TokenizeSource,
	) {
		fromScope, err := tokenizeSource(context.Background(), NewSource("test", src))
		if err != nil {
			t.Fatal(err)
		}
		direct, err := Tokenize(src)
		if err != nil {
			t.Fatal(err)
		}
		if len(fromScope) != len(direct) {
			t.Fatalf("got %d and %d tokens", len(fromScope), len(direct))
		}
		for i := range direct {
			if !fromScope[i].Equal(direct[i]) {
				t.Errorf("token %d: %v != %v", i, fromScope[i], direct[i])
			}
		}
		if fromScope[1].Pos.Line != 1 || fromScope[1].Pos.Column != 2 {
			t.Fatalf("got %d:%d", fromScope[1].Pos.Line, fromScope[1].Pos.Column)
		}
		if fromScope[2].Pos.Line != 2 || fromScope[2].Pos.Column != 2 {
			t.Fatalf("got %d:%d", fromScope[2].Pos.Line, fromScope[2].Pos.Column)
		}
	})
}

func TestModuleStrictConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jasp.cue")
	if err := os.WriteFile(path, []byte("strict_lexing: true"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("JASP_CONFIG", path)

	dscope.New(new(Module)).Call(func(
		strict Strict,
		tokenize TokenizeSource,
	) {
		if !strict {
			t.Fatal("expected strict lexing")
		}
		_, err := tokenize(context.Background(), NewSource("test", "{"))
		if !errors.Is(err, ErrUnexpectedRune) {
			t.Fatalf("got %v", err)
		}
	})
}
