package honeypot

// Decision is the outcome of validating a submission.
type Decision int

const (
	// RejectBot means the submission should be dropped silently.
	// It is the zero value so an unset Decision never accepts.
	RejectBot Decision = iota
	// Accept means the submission looks human.
	Accept
)

// String implements fmt.Stringer.
func (d Decision) String() string {
	if d == Accept {
		return "accept"
	}
	return "reject_bot"
}

// Rejection reasons attached to the warning log.
const (
	ReasonTokenMissing    = "token_missing"
	ReasonHoneypotMissing = "honeypot_missing"
	ReasonHoneypotFilled  = "honeypot_filled"
	ReasonTooFast         = "too_fast"
	ReasonMalformedBody   = "malformed_body"
)
