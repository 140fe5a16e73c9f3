package honeypot

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/dmitrymomot/honeypot/core/logger"
	"github.com/dmitrymomot/honeypot/pkg/clientip"
)

// maxMemory bounds multipart parsing in ValidateRequest.
const maxMemory = 32 << 20

// Guard issues honeypot fields and classifies submissions for one session.
// It keeps no state of its own; everything durable lives in the TokenStore.
type Guard struct {
	store     TokenStore
	generator Generator
	log       *slog.Logger
	now       func() time.Time

	minFill       time.Duration
	useTimestamps bool
	label         string
	secret        string

	fieldKey []byte
	signKey  []byte
}

// New creates a Guard bound to the session behind store.
func New(store TokenStore, opts ...Option) (*Guard, error) {
	if store == nil {
		return nil, ErrNoStore
	}

	g := &Guard{
		store:     store,
		generator: RandomGenerator{},
		log:       logger.Discard(),
		now:       time.Now,
		minFill:   DefaultConfig().MinimumFillDuration,
		label:     DefaultFieldLabel,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.secret != "" {
		var err error
		if g.fieldKey, err = deriveKey(g.secret, fieldKeyInfo); err != nil {
			return nil, err
		}
		if g.signKey, err = deriveKey(g.secret, signKeyInfo); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Initialize returns the fields to render for form, creating the form token
// on first use in the session. Repeated calls return the same field name.
func (g *Guard) Initialize(ctx context.Context, form string) (Fields, error) {
	if form == "" {
		return Fields{}, ErrEmptyFormName
	}

	tok, err := g.store.Token(ctx, form)
	switch {
	case errors.Is(err, ErrTokenNotFound):
		if tok, err = g.issue(ctx, form); err != nil {
			return Fields{}, err
		}
	case err != nil:
		return Fields{}, errors.Join(ErrStoreUnavailable, err)
	}

	return g.fields(ctx, form, tok)
}

// Rotate replaces the token for form and returns the new fields.
// Rotation only happens through this call, never implicitly.
func (g *Guard) Rotate(ctx context.Context, form string) (Fields, error) {
	if form == "" {
		return Fields{}, ErrEmptyFormName
	}

	tok, err := g.issue(ctx, form)
	if err != nil {
		return Fields{}, err
	}

	return g.fields(ctx, form, tok)
}

// Validate classifies a submission of form. data holds the submitted values;
// a key that is present with an empty value differs from a missing key.
//
// Bots get RejectBot and a warning log entry, never an error. An error means
// the session state could not be read; the decision is then RejectBot too.
func (g *Guard) Validate(ctx context.Context, form, remoteAddr string, data map[string]string) (Decision, error) {
	tok, err := g.store.Token(ctx, form)
	switch {
	case errors.Is(err, ErrTokenNotFound):
		return g.reject(ctx, form, remoteAddr, ReasonTokenMissing), nil
	case err != nil:
		return RejectBot, errors.Join(ErrStoreUnavailable, err)
	}

	value, ok := data[tok]
	if !ok {
		return g.reject(ctx, form, remoteAddr, ReasonHoneypotMissing), nil
	}
	if value != "" {
		return g.reject(ctx, form, remoteAddr, ReasonHoneypotFilled), nil
	}

	if g.useTimestamps && !g.slowEnough(form, data[g.timestampField(tok)]) {
		return g.reject(ctx, form, remoteAddr, ReasonTooFast), nil
	}

	return Accept, nil
}

// ValidateRequest parses the body of r and validates it as a submission of form.
// Query parameters are ignored. A key sent more than once counts as filled when
// any of its values is non-empty.
func (g *Guard) ValidateRequest(r *http.Request, form string) (Decision, error) {
	ctx := r.Context()
	remoteAddr := clientip.GetIP(r)

	var err error
	if isMultipart(r) {
		err = r.ParseMultipartForm(maxMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		g.log.DebugContext(ctx, "honeypot: unreadable submission", logger.Error(err))
		return g.reject(ctx, form, remoteAddr, ReasonMalformedBody), nil
	}

	data := make(map[string]string, len(r.PostForm))
	for k, vs := range r.PostForm {
		data[k] = firstNonEmpty(vs)
	}

	return g.Validate(ctx, form, remoteAddr, data)
}

// slowEnough reports whether more than the minimum fill duration passed since render.
// A missing or invalid timestamp counts as rendered now and therefore fails.
func (g *Guard) slowEnough(form, value string) bool {
	now := g.now().Unix()

	renderedAt, ok := g.decodeTimestamp(form, value)
	if !ok {
		renderedAt = now
	}

	if renderedAt > now {
		return false
	}
	elapsed := now - renderedAt
	if elapsed < 0 {
		// Wrapped past MaxInt64: rendered before any representable bound.
		return true
	}
	// Whole seconds: elapsed*1s > minFill iff elapsed > floor(minFill/1s).
	return elapsed > int64(g.minFill/time.Second)
}

func firstNonEmpty(vs []string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}

func (g *Guard) issue(ctx context.Context, form string) (string, error) {
	tok, err := g.generator.Generate()
	if err != nil {
		return "", err
	}

	if err := g.store.SetToken(ctx, form, tok); err != nil {
		return "", errors.Join(ErrStoreUnavailable, err)
	}

	return tok, nil
}

func (g *Guard) fields(ctx context.Context, form, tok string) (Fields, error) {
	class, err := g.CSSClass(ctx)
	if err != nil {
		return Fields{}, err
	}

	f := Fields{
		Form:     form,
		Name:     tok,
		Label:    g.label,
		CSSClass: class,
	}

	if g.useTimestamps {
		now := g.now()
		value, err := g.encodeTimestamp(form, now)
		if err != nil {
			return Fields{}, err
		}
		f.TimestampName = g.timestampField(tok)
		f.TimestampValue = value
		f.RenderedAt = now
	}

	return f, nil
}

func (g *Guard) reject(ctx context.Context, form, remoteAddr, reason string) Decision {
	g.log.WarnContext(ctx, "possible bot submission",
		logger.Component("honeypot"),
		logger.Form(form),
		logger.ClientIP(remoteAddr),
		logger.Reason(reason),
	)
	return RejectBot
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}
