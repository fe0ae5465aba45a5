// Package drive executes synthesized requests against handlers and
// captures what they write.
//
// No socket is opened: the canonical Serve strategy converts the request
// into a server-side *net/http.Request, invokes the handler with a
// recorder, and lifts the recorded output back into a Response. Any other
// execution strategy can be plugged in as a plain function value.
package drive
