package honeypot_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/honeypot/core/honeypot"
)

func TestStyleRule(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".hp_abc {\n\tdisplay: none;\n}", honeypot.StyleRule("hp_abc"))
}

func TestCSSClass(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("created once per session", func(t *testing.T) {
		t.Parallel()

		calls := 0
		gen := honeypot.GeneratorFunc(func() (string, error) {
			calls++
			return honeypot.RandomGenerator{}.Generate()
		})
		g := newGuard(t, honeypot.NewSessionStore(newValues()), honeypot.WithGenerator(gen))

		first, err := g.CSSClass(ctx)
		require.NoError(t, err)
		second, err := g.CSSClass(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, calls)
	})

	t.Run("style uses the session class", func(t *testing.T) {
		t.Parallel()

		g := newGuard(t, honeypot.NewSessionStore(newValues()))

		f, err := g.Initialize(ctx, "contact")
		require.NoError(t, err)

		style, err := g.Style(ctx)
		require.NoError(t, err)
		assert.Equal(t, honeypot.StyleRule(f.CSSClass), style)
	})

	t.Run("write failure is surfaced", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		store.On("CSSClass", mock.Anything).Return("", honeypot.ErrTokenNotFound)
		store.On("SetCSSClass", mock.Anything, mock.Anything).Return(errors.New("quota exceeded"))

		_, err := newGuard(t, store).Style(ctx)
		assert.ErrorIs(t, err, honeypot.ErrStoreUnavailable)
	})
}
