// Package honeypot detects automated form submissions with a decoy field.
//
// Each protected form gets a decoy text input whose name is a random token
// stored in the visitor's session. Humans never see the input: it carries a
// per-session random CSS class hidden by a generated style rule, so bots cannot
// spot it by a well-known class name. A submission is human when the decoy key
// is present and empty. Optionally, a hidden timestamp field enforces a minimum
// fill time; its name is derived from the token and its value can be signed.
//
// # Usage
//
// A Guard is bound to one session through a TokenStore:
//
//	sess := middleware.MustGetSession(ctx)
//	guard, err := honeypot.NewFromConfig(cfg, honeypot.NewSessionStore(sess),
//		honeypot.WithLogger(log),
//	)
//
// Rendering the form:
//
//	fields, err := guard.Initialize(ctx, "contact")
//	style, err := guard.Style(ctx)
//	// render <style>{style}</style>, then
//	// <label class="{fields.CSSClass}">{fields.Label}
//	//   <input type="text" name="{fields.Name}" class="{fields.CSSClass}" autocomplete="off" tabindex="-1">
//	// </label>
//	// and, if fields.HasTimestamp(), a hidden input {fields.TimestampName}={fields.TimestampValue}
//
// Handling the submission:
//
//	decision, err := guard.ValidateRequest(r, "contact")
//	if err != nil {
//		return err // session backend failure; do not fail open
//	}
//	if decision == honeypot.RejectBot {
//		return response.Redirect("/thanks") // drop silently
//	}
//
// # Decision Rule
//
// Accept iff the decoy key is present with an empty value and, when timestamps
// are enabled, more than MinimumFillDuration elapsed since render. A missing or
// unverifiable timestamp counts as zero elapsed time. A form without a stored
// token is rejected; Validate never issues tokens.
//
// Rejections are logged at warn level with the form name, client IP and reason.
// They are not errors. Errors are reserved for ErrRandomSource and
// ErrStoreUnavailable, and neither is ever masked.
package honeypot
