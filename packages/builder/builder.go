package builder

import (
	nethttp "net/http"
	"net/url"
	"strings"

	"github.com/abdul-hamid-achik/handlerspec/packages/http"
)

// Builder holds the request under construction. Operations chain and
// mutate it in place; the first operation error latches and surfaces from
// Build, so a chain never needs intermediate error checks.
type Builder struct {
	rq  *http.Request
	err error
}

func New() *Builder {
	return &Builder{rq: http.NewRequest()}
}

// Request returns the request under construction.
func (b *Builder) Request() *http.Request {
	return b.rq
}

// SetRequest replaces the request under construction wholesale.
func (b *Builder) SetRequest(rq *http.Request) {
	b.rq = rq
}

// Modify applies an arbitrary transformation to the request under
// construction.
func (b *Builder) Modify(fn func(*http.Request)) {
	fn(b.rq)
}

// Err returns the latched operation error, if any.
func (b *Builder) Err() error {
	return b.err
}

// SetRequestType swaps method, body and body-derived headers according to
// the chosen variant.
func (b *Builder) SetRequestType(rt RequestType) *Builder {
	if b.err != nil {
		return b
	}
	rq := b.rq
	switch rt.Kind {
	case KindGet:
		rq.Method = nethttp.MethodGet
		rq.Body = http.EmptyBody()
		rq.ClearContentLength()
	case KindDelete:
		rq.Method = nethttp.MethodDelete
		rq.Body = http.EmptyBody()
		rq.ClearContentLength()
	case KindRawBody:
		rq.Method = rt.Method
		rq.Body = http.NewBodySource(rt.Body)
		rq.SetContentLength(int64(len(rt.Body)))
	case KindMultipart:
		body, bnd, err := http.EncodeMultipart(rt.Fields)
		if err != nil {
			b.err = err
			return b
		}
		rq.Method = nethttp.MethodPost
		rq.Headers.Set("Content-Type", "multipart/form-data; boundary="+bnd)
		rq.Body = http.NewBodySource(body)
		rq.SetContentLength(int64(len(body)))
	case KindURLEncoded:
		body := []byte(rt.Params.Encode())
		rq.Method = nethttp.MethodPost
		rq.Headers.Set("Content-Type", "application/x-www-form-urlencoded")
		rq.Body = http.NewBodySource(body)
		rq.SetContentLength(int64(len(body)))
	}
	return b
}

// SetQueryStringRaw stores an already percent-encoded query string as-is.
func (b *Builder) SetQueryStringRaw(qs string) *Builder {
	b.rq.QueryString = qs
	return b
}

// SetQueryString URL-encodes params and stores the result as the query
// string.
func (b *Builder) SetQueryString(params url.Values) *Builder {
	b.rq.QueryString = params.Encode()
	return b
}

func (b *Builder) SetHeader(key, value string) *Builder {
	b.rq.Headers.Set(key, value)
	return b
}

func (b *Builder) AddHeader(key, value string) *Builder {
	b.rq.Headers.Add(key, value)
	return b
}

func (b *Builder) DelHeader(key string) *Builder {
	b.rq.Headers.Del(key)
	return b
}

func (b *Builder) SetContentType(contentType string) *Builder {
	b.rq.Headers.Set("Content-Type", contentType)
	return b
}

func (b *Builder) SetSecure(secure bool) *Builder {
	b.rq.Secure = secure
	return b
}

func (b *Builder) SetHTTPVersion(major, minor int) *Builder {
	b.rq.Version = http.Version{Major: major, Minor: minor}
	return b
}

// SetRequestPath resets the snaplet and context paths, replaces the path
// info and recomputes the derived URI from whatever query string is
// currently set. Composites therefore always set the query string before
// the path.
func (b *Builder) SetRequestPath(path string) *Builder {
	b.rq.SnapletPath = ""
	b.rq.ContextPath = "/"
	b.rq.PathInfo = strings.TrimPrefix(path, "/")
	b.rq.URI = b.rq.FullURI()
	return b
}

// Get configures a bodyless GET of path with query params.
func (b *Builder) Get(path string, params url.Values) *Builder {
	return b.SetRequestType(GetRequest()).
		SetQueryString(params).
		SetRequestPath(path)
}

// Delete configures a bodyless DELETE of path with query params.
func (b *Builder) Delete(path string, params url.Values) *Builder {
	return b.SetRequestType(DeleteRequest()).
		SetQueryString(params).
		SetRequestPath(path)
}

// PostURLEncoded configures a POST of path with a form-encoded body.
func (b *Builder) PostURLEncoded(path string, params url.Values) *Builder {
	return b.SetRequestType(URLEncodedParams(params)).
		SetRequestPath(path)
}

// PostMultipart configures a POST of path with a multipart/form-data body.
func (b *Builder) PostMultipart(path string, fields []http.MultipartField) *Builder {
	return b.SetRequestType(MultipartParams(fields)).
		SetRequestPath(path)
}

// Put configures a PUT of path carrying body verbatim under contentType.
func (b *Builder) Put(path, contentType string, body []byte) *Builder {
	return b.SetRequestType(RawBody(nethttp.MethodPut, body)).
		SetContentType(contentType).
		SetRequestPath(path)
}

// PostRaw configures a POST of path carrying body verbatim under
// contentType.
func (b *Builder) PostRaw(path, contentType string, body []byte) *Builder {
	return b.SetRequestType(RawBody(nethttp.MethodPost, body)).
		SetContentType(contentType).
		SetRequestPath(path)
}

// Build runs the fixup pass exactly once and returns the finished request.
func (b *Builder) Build() (*http.Request, error) {
	if b.err != nil {
		return nil, b.err
	}
	Fixup(b.rq)
	return b.rq, nil
}
