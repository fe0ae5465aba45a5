// Package render turns synthesized requests and captured responses into
// readable text.
//
// Two surfaces:
//   - RequestText / ResponseText materialize a plain display string
//   - Printer writes the same shape to a writer, with status and header
//     coloring when the target is a terminal
package render
