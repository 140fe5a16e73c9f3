// Package response provides handler.Response constructors for plain text,
// HTML, templ components and redirects, plus a status-aware error handler.
//
//	func contactPage(ctx handler.Context) handler.Response {
//		return response.Templ(views.Contact(fields))
//	}
//
//	func contactSubmit(ctx handler.Context) handler.Response {
//		return response.RedirectSeeOther("/contact?sent=1")
//	}
//
// Errors returned through response.Error are rendered by ErrorHandler. An
// HTTPError keeps its status and message; any error implementing
// StatusCode() int is mapped to the matching predefined HTTPError; everything
// else becomes 500 Internal Server Error.
package response
