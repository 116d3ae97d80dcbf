package parser

import (
	"github.com/gnuvince/gore/internal/diag"
	"github.com/gnuvince/gore/internal/token"
)

type delimitedConfig struct {
	Closing   token.Kind
	Separator token.Kind

	AllowEmpty    bool
	AllowTrailing bool

	// MissingElement builds the error for a closing token found where an
	// element was required. Defaults to UnexpectedToken.
	MissingElement func(tok token.Token) error
}

// parseDelimited parses a separated list up to and including cfg.Closing.
// The opening token must already have been consumed.
func parseDelimited[T any](p *Parser, cfg delimitedConfig, parseItem func() (T, error)) ([]T, error) {
	if cfg.Separator == token.None {
		cfg.Separator = token.Comma
	}

	items := make([]T, 0)

	if p.curTok.Kind == cfg.Closing {
		if cfg.AllowEmpty {
			p.nextToken()
			return items, nil
		}
		return nil, cfg.missingElement(p.curTok)
	}

	for {
		item, err := parseItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		switch p.curTok.Kind {
		case cfg.Separator:
			p.nextToken()

			if p.curTok.Kind == cfg.Closing {
				if cfg.AllowTrailing {
					p.nextToken()
					return items, nil
				}
				return nil, cfg.missingElement(p.curTok)
			}
		case cfg.Closing:
			p.nextToken()
			return items, nil
		default:
			return nil, diag.NewUnexpected(p.curTok, cfg.Separator, cfg.Closing)
		}
	}
}

func (cfg delimitedConfig) missingElement(tok token.Token) error {
	if cfg.MissingElement != nil {
		return cfg.MissingElement(tok)
	}
	return diag.NewUnexpected(tok)
}

// exprListConfig describes a parenthesized argument list.
var exprListConfig = delimitedConfig{
	Closing:       token.RParen,
	Separator:     token.Comma,
	AllowEmpty:    true,
	AllowTrailing: true,
}
