package honeypot

import (
	"context"
	"errors"
)

// StyleRule returns the CSS rule that hides elements carrying class.
func StyleRule(class string) string {
	return "." + class + " {\n\tdisplay: none;\n}"
}

// CSSClass returns the session's shared honeypot class, creating it on first use.
func (g *Guard) CSSClass(ctx context.Context) (string, error) {
	class, err := g.store.CSSClass(ctx)
	if err == nil {
		return class, nil
	}
	if !errors.Is(err, ErrTokenNotFound) {
		return "", errors.Join(ErrStoreUnavailable, err)
	}

	class, err = g.generator.Generate()
	if err != nil {
		return "", err
	}

	if err := g.store.SetCSSClass(ctx, class); err != nil {
		return "", errors.Join(ErrStoreUnavailable, err)
	}

	return class, nil
}

// Style returns the rule hiding this session's honeypot fields, for injection
// into the page head.
func (g *Guard) Style(ctx context.Context) (string, error) {
	class, err := g.CSSClass(ctx)
	if err != nil {
		return "", err
	}
	return StyleRule(class), nil
}
