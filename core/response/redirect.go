package response

import (
	"net/http"

	"github.com/dmitrymomot/honeypot/core/handler"
)

const (
	headerHXRequest  = "HX-Request"
	headerHXLocation = "HX-Location"
)

// Redirect creates a 302 Found response.
// For HTMX requests it sets HX-Location with 200 OK instead.
func Redirect(url string) handler.Response {
	return RedirectWithStatus(url, http.StatusFound)
}

// RedirectSeeOther creates a 303 See Other response, the usual answer to a
// successful POST.
func RedirectSeeOther(url string) handler.Response {
	return RedirectWithStatus(url, http.StatusSeeOther)
}

// RedirectWithStatus creates a redirect with a custom 3xx status code.
// Non-3xx codes fall back to 302.
func RedirectWithStatus(url string, status int) handler.Response {
	if status < 300 || status > 399 {
		status = http.StatusFound
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		if r.Header.Get(headerHXRequest) == "true" {
			w.Header().Set(headerHXLocation, url)
			w.WriteHeader(http.StatusOK)
			return nil
		}
		http.Redirect(w, r, url, status)
		return nil
	}
}
