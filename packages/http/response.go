package http

import "net/http"

// Response is what a handler produced, captured off the recorder.
type Response struct {
	Status  int
	Reason  string
	Headers http.Header
	Body    *BodySource
	Version Version
}

func NewResponse(status int) *Response {
	return &Response{
		Status:  status,
		Reason:  http.StatusText(status),
		Headers: make(http.Header),
		Body:    EmptyBody(),
		Version: Version{Major: 1, Minor: 1},
	}
}

// ReadBody consumes the current body source and installs a fresh one
// holding the same bytes, so further assertions can read it again.
func (r *Response) ReadBody() ([]byte, error) {
	data, err := r.Body.Consume()
	if err != nil {
		return nil, err
	}
	r.Body = NewBodySource(data)
	return data, nil
}

func (r *Response) BodyString() (string, error) {
	data, err := r.ReadBody()
	return string(data), err
}

func (r *Response) IsSuccess() bool {
	return r.Status >= 200 && r.Status < 300
}

func (r *Response) IsRedirect() bool {
	return r.Status >= 300 && r.Status < 400
}
