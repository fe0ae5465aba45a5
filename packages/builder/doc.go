// Package builder assembles synthesized requests through ordered,
// chainable operations over a single request value.
//
// A Builder starts from the default request (GET, localhost, HTTP/1.1,
// empty body) and every operation rewrites part of it:
//   - request types swap method, body and content type together
//   - query, path, header and version setters adjust individual fields
//   - composites bundle the common call sequences (Get, PostURLEncoded, ...)
//
// Build runs the fixup pass exactly once and hands back the finished
// request. Fixup is exported separately so callers can observe that it is
// idempotent.
package builder
