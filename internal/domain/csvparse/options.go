package csvparse

import "github.com/okian/betcast/pkg/logger"

// Option applies a configuration option to the Parser.
type Option func(*Parser)

// WithDelimiter sets the field delimiter. Quote characters are rejected.
func WithDelimiter(d rune) Option {
	return func(p *Parser) {
		if d != 0 && d != '\n' && !isQuote(d) {
			p.delimiter = d
		}
	}
}

// WithLogger enables debug logging of skipped lines.
func WithLogger(l logger.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}
