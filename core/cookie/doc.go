// Package cookie writes and reads HTTP cookies with shared defaults and
// HMAC-SHA256 signing.
//
//	mgr, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")}, cookie.WithSecure(true))
//	if err != nil {
//		return err
//	}
//
//	err = mgr.SetSigned(w, "__session", token, cookie.WithMaxAge(3600))
//	token, err := mgr.GetSigned(r, "__session")
//
// Secrets must be at least 32 characters. Pass several to rotate keys: the
// first signs new cookies, the rest are still accepted for verification.
// Defaults are Path "/", HttpOnly and SameSite=Lax. Set-Cookie headers larger
// than 4KB are rejected with ErrCookieTooLarge.
package cookie
