package sessiontransport

import "errors"

// ErrLoadSession wraps store failures while resolving the session cookie.
var ErrLoadSession = errors.New("sessiontransport: failed to load session")
