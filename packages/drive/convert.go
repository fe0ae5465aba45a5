package drive

import (
	"bytes"
	"fmt"
	"io"
	nethttp "net/http"
	"net/http/httptest"

	"github.com/abdul-hamid-achik/handlerspec/packages/http"
)

// ToStdRequest converts a synthesized request into the server-side
// *net/http.Request a handler expects. The body is read through the
// restoring reader, so the synthesized request can be executed again.
func ToStdRequest(rq *http.Request) (*nethttp.Request, error) {
	body, err := rq.ReadBody()
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}

	scheme := "http"
	if rq.Secure {
		scheme = "https"
	}
	target := scheme + "://" + rq.Host + rq.URI

	std := httptest.NewRequest(rq.Method, target, bytes.NewReader(body))
	for key, values := range rq.Headers {
		for _, value := range values {
			std.Header.Add(key, value)
		}
	}
	std.Host = rq.Host
	std.Proto = rq.Version.String()
	std.ProtoMajor = rq.Version.Major
	std.ProtoMinor = rq.Version.Minor
	if rq.ContentLength != nil {
		std.ContentLength = *rq.ContentLength
	}
	return std, nil
}

// CaptureResponse lifts everything the handler wrote to the recorder into
// a Response.
func CaptureResponse(recorder *httptest.ResponseRecorder) *http.Response {
	result := recorder.Result()

	rsp := http.NewResponse(result.StatusCode)
	rsp.Headers = result.Header
	rsp.Version = http.Version{Major: result.ProtoMajor, Minor: result.ProtoMinor}

	// The recorder's body is an in-memory buffer; reads cannot fail.
	body, _ := io.ReadAll(result.Body)
	rsp.Body = http.NewBodySource(body)
	return rsp
}
