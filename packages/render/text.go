package render

import (
	"bytes"

	"github.com/abdul-hamid-achik/handlerspec/packages/http"
)

// ResponseText materializes the response as a plain display string:
// status line, headers sorted by name, a blank line, then the body.
func ResponseText(rsp *http.Response) (string, error) {
	var buf bytes.Buffer
	p := NewPrinter(WithWriter(&buf), WithColor(false))
	if err := p.PrintResponse(rsp); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RequestText materializes the request the same way, starting from the
// request line.
func RequestText(rq *http.Request) (string, error) {
	var buf bytes.Buffer
	p := NewPrinter(WithWriter(&buf), WithColor(false))
	if err := p.PrintRequest(rq); err != nil {
		return "", err
	}
	return buf.String(), nil
}
