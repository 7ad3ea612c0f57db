// Package requestid tags every HTTP request with a correlation ID.
//
// Middleware keeps a client supplied X-Request-ID when it is at most 128
// characters of [A-Za-z0-9_-] and otherwise generates a UUIDv7. The ID is
// stored in the request context, echoed in the response and, through
// LoggerExtractor, added to every log record written with that context.
package requestid
