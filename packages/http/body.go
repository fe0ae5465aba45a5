package http

import "errors"

// ErrBodyConsumed reports a second read of a single-read body source.
var ErrBodyConsumed = errors.New("body source already consumed")

// BodySource is a single-read byte source. Reading twice is a programmer
// error surfaced as ErrBodyConsumed; callers that need the bytes without
// retiring the body go through Request.ReadBody or Response.ReadBody,
// which install a fresh source holding the same bytes.
type BodySource struct {
	data    []byte
	drained bool
}

func NewBodySource(data []byte) *BodySource {
	return &BodySource{data: data}
}

// EmptyBody returns a fresh source holding no bytes.
func EmptyBody() *BodySource {
	return &BodySource{}
}

// Consume yields the bytes exactly once.
func (s *BodySource) Consume() ([]byte, error) {
	if s.drained {
		return nil, ErrBodyConsumed
	}
	s.drained = true
	data := s.data
	s.data = nil
	return data, nil
}

func (s *BodySource) Drained() bool {
	return s.drained
}

// Len reports the number of bytes still held. Zero once consumed.
func (s *BodySource) Len() int {
	return len(s.data)
}
