package builder

import (
	"net/url"
	"strconv"

	"github.com/abdul-hamid-achik/handlerspec/packages/http"
)

const formURLEncoded = "application/x-www-form-urlencoded"

// Fixup normalizes a request into its final, internally consistent form.
// The steps run in a fixed order: recompute the URI, strip bodies from
// bodyless methods, reconcile the Content-Length header, then unify query
// and form-body parameters. Running Fixup on its own output changes
// nothing.
func Fixup(rq *http.Request) {
	fixupURI(rq)
	fixupMethodBody(rq)
	fixupContentLength(rq)
	fixupParams(rq)
}

func fixupURI(rq *http.Request) {
	rq.URI = rq.FullURI()
}

// fixupMethodBody heals the request rather than rejecting it: a body that
// ended up on a GET, DELETE or HEAD is discarded along with its headers.
func fixupMethodBody(rq *http.Request) {
	if !http.MethodForbidsBody(rq.Method) {
		return
	}
	rq.Headers.Del("Content-Type")
	rq.Body = http.EmptyBody()
	rq.ClearContentLength()
}

func fixupContentLength(rq *http.Request) {
	if rq.ContentLength == nil {
		rq.Headers.Del("Content-Length")
		return
	}
	rq.Headers.Set("Content-Length", strconv.FormatInt(*rq.ContentLength, 10))
}

// fixupParams rebuilds Params from the query string, plus the body when
// the content type is exactly application/x-www-form-urlencoded. Query
// values come first in each key's list. Reading the body installs a fresh
// source, so the handler still sees it.
func fixupParams(rq *http.Request) {
	params := parseQuery(rq.QueryString)
	if rq.Headers.Get("Content-Type") == formURLEncoded {
		if body, err := rq.ReadBody(); err == nil {
			for key, values := range parseQuery(string(body)) {
				params[key] = append(params[key], values...)
			}
		}
	}
	rq.Params = params
}

// parseQuery is deliberately lenient: malformed pairs are dropped and the
// well-formed remainder is kept.
func parseQuery(qs string) url.Values {
	values, _ := url.ParseQuery(qs)
	return values
}
