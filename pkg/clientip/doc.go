// Package clientip resolves the address of the visitor behind proxies and CDNs.
//
// GetIP checks, in order, CF-Connecting-IP, DO-Connecting-IP, the leftmost
// X-Forwarded-For entry, X-Real-IP and finally RemoteAddr. Header values
// that do not parse as an IP, and 0.0.0.0, are skipped. The result is
// normalized with net.IP.String, so IPv4-mapped and IPv6 forms compare equal
// across requests.
//
//	ip := clientip.GetIP(r)
//	log.WarnContext(ctx, "bot submission rejected", logger.ClientIP(ip))
//
// The honeypot guard uses it as the remote address in rejection events and
// the session transport records it on new sessions. Only trust these headers
// when a proxy you control sets them.
package clientip
