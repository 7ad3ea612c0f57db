// Package clientip resolves the address of the client behind a request.
//
// Forwarding headers (CF-Connecting-IP, X-Forwarded-For, X-Real-IP) are
// easy to forge, so they are only honored when the service runs behind a
// proxy that sets them:
//
//	r.Use(clientip.Middleware(cfg.TrustProxy))
//
//	ip := clientip.FromContext(r.Context())
package clientip
