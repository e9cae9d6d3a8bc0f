package jasplang

import (
	"context"

	"github.com/jasplang/jasp/configs"
	"github.com/jasplang/jasp/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

// Strict makes the scanner fail on characters matched by no rule
// instead of skipping them.
type Strict bool

var _ configs.Configurable = Strict(false)

func (Strict) JaspConfigurable() {}

func (Module) Strict(
	loader configs.Loader,
) Strict {
	return configs.First[Strict](loader, "strict_lexing")
}

type TokenizeSource func(ctx context.Context, source *Source) ([]Token, error)

func (Module) TokenizeSource(
	logger logs.Logger,
	newSpan logs.NewSpan,
	strict Strict,
) TokenizeSource {
	return func(ctx context.Context, source *Source) ([]Token, error) {
		ctx, _ = newSpan(ctx, "")

		tokenizer := NewTokenizer(source)
		tokenizer.Strict = bool(strict)
		tokens, err := tokenizer.Tokens()
		if err != nil {
			logger.ErrorContext(ctx, "tokenize",
				"source", source.Name,
				"error", err,
			)
			return nil, logs.WrapSpan(ctx, err)
		}

		logger.DebugContext(ctx, "tokenize",
			"source", source.Name,
			"tokens", len(tokens),
		)
		return tokens, nil
	}
}
