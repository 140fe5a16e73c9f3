package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/dmitrymomot/honeypot/core/handler"
	"github.com/dmitrymomot/honeypot/core/response"
)

type ctx = *handler.RequestContext

// serve runs h behind middlewares the way a server would.
func serve(h handler.HandlerFunc[ctx], req *http.Request, mws ...handler.Middleware[ctx]) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler.Adapt(handler.Chain(h, mws...), handler.NewContext, response.ErrorHandler[ctx]).ServeHTTP(w, req)
	return w
}

func ok(c ctx) handler.Response {
	return response.String("ok")
}
