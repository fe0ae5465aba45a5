// Package http models the synthesized requests and captured responses that
// drive handler-level tests.
//
// It builds on the standard library's types rather than replacing them:
//   - Request carries split path fields, a raw query string and a derived URI
//   - BodySource enforces single-read body semantics
//   - Multipart encoding with nested multipart/mixed bodies for multi-value
//     fields and file uploads
//   - Response mirrors what a handler wrote, ready for assertions
package http
