package luaulexer

import (
	"log/slog"

	"github.com/msix29/luau-lexer/token"
)

// Option configures a [Lexer].
type Option func(*lexerOptions)

// lexerOptions holds configuration for a [Lexer].
type lexerOptions struct {
	start  token.Position
	logger *slog.Logger
}

// WithStartPosition makes positions start at pos instead of (0, 0). Use it
// when the source is a fragment of a larger document.
func WithStartPosition(pos token.Position) Option {
	return func(o *lexerOptions) {
		o.start = pos
	}
}

// WithLogger sets the logger that receives debug records for diagnostics
// and state changes. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *lexerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func defaultOptions() lexerOptions {
	return lexerOptions{
		start:  token.MinPosition,
		logger: slog.New(slog.DiscardHandler),
	}
}
