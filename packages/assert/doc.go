// Package assert provides response assertions for handler tests.
//
// Every helper takes the running test's testing.TB and fails through it:
//   - Status family: Success, NotFound, Status
//   - Redirect family: Redirect, RedirectTo
//   - Header checks: HeaderEqual
//   - Body checks: BodyContains (regular expression), JSONPath (gjson
//     syntax), MatchesSchema (JSON Schema)
//
// Body-reading helpers restore the response body afterwards, so several
// assertions can run against the same captured response.
package assert
