package builder

import (
	"net/url"

	"github.com/abdul-hamid-achik/handlerspec/packages/http"
)

// RequestKind discriminates the request type variants.
type RequestKind int

const (
	KindGet RequestKind = iota
	KindDelete
	KindRawBody
	KindMultipart
	KindURLEncoded
)

func (k RequestKind) String() string {
	switch k {
	case KindGet:
		return "get"
	case KindDelete:
		return "delete"
	case KindRawBody:
		return "raw-body"
	case KindMultipart:
		return "multipart"
	case KindURLEncoded:
		return "url-encoded"
	default:
		return "unknown"
	}
}

// RequestType is a tagged selection of method and body shape. Use the
// constructors; only the fields belonging to the chosen kind are read.
type RequestType struct {
	Kind   RequestKind
	Method string // KindRawBody
	Body   []byte // KindRawBody
	Fields []http.MultipartField
	Params url.Values
}

// GetRequest is a bodyless GET.
func GetRequest() RequestType {
	return RequestType{Kind: KindGet}
}

// DeleteRequest is a bodyless DELETE.
func DeleteRequest() RequestType {
	return RequestType{Kind: KindDelete}
}

// RawBody carries body verbatim under an arbitrary method. The caller is
// responsible for the Content-Type header.
func RawBody(method string, body []byte) RequestType {
	return RequestType{Kind: KindRawBody, Method: method, Body: body}
}

// MultipartParams encodes fields as a multipart/form-data POST body.
func MultipartParams(fields []http.MultipartField) RequestType {
	return RequestType{Kind: KindMultipart, Fields: fields}
}

// URLEncodedParams encodes params as an application/x-www-form-urlencoded
// POST body.
func URLEncodedParams(params url.Values) RequestType {
	return RequestType{Kind: KindURLEncoded, Params: params}
}
