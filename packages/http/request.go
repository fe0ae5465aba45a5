package http

import (
	"fmt"
	"net/http"
	"net/url"
)

// Request is a synthesized server-side request. It never touches a socket;
// packages/drive converts it to a *net/http.Request when a handler runs.
//
// URI is derived state. Only the path builder operation and the fixup pass
// write it, recomputing SnapletPath + ContextPath + PathInfo plus the query
// string.
type Request struct {
	Method        string
	Host          string
	SnapletPath   string
	ContextPath   string
	PathInfo      string
	URI           string
	QueryString   string // raw, already percent-encoded
	Headers       http.Header
	ContentLength *int64 // nil means no Content-Length at all
	Body          *BodySource
	Secure        bool
	Version       Version
	Params        url.Values
}

func NewRequest() *Request {
	return &Request{
		Method:  http.MethodGet,
		Host:    "localhost",
		Headers: make(http.Header),
		Body:    EmptyBody(),
		Version: Version{Major: 1, Minor: 1},
		Params:  make(url.Values),
	}
}

// FullURI derives the request-target from the path components and the
// current query string.
func (r *Request) FullURI() string {
	uri := r.SnapletPath + r.ContextPath + r.PathInfo
	if r.QueryString != "" {
		uri += "?" + r.QueryString
	}
	return uri
}

// ReadBody consumes the current body source and installs a fresh one
// holding the same bytes, so the request can still be executed afterwards.
func (r *Request) ReadBody() ([]byte, error) {
	data, err := r.Body.Consume()
	if err != nil {
		return nil, err
	}
	r.Body = NewBodySource(data)
	return data, nil
}

func (r *Request) SetContentLength(n int64) {
	r.ContentLength = &n
}

func (r *Request) ClearContentLength() {
	r.ContentLength = nil
}

// MethodForbidsBody reports whether method must not carry a request body.
func MethodForbidsBody(method string) bool {
	switch method {
	case http.MethodGet, http.MethodDelete, http.MethodHead:
		return true
	}
	return false
}

type Version struct {
	Major int
	Minor int
}

func (v Version) String() string {
	return fmt.Sprintf("HTTP/%d.%d", v.Major, v.Minor)
}
