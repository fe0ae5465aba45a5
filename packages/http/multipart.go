package http

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/abdul-hamid-achik/handlerspec/packages/boundary"
)

// ParamKind discriminates the two shapes a multipart field can take.
type ParamKind int

const (
	KindFormData ParamKind = iota
	KindFiles
)

func (k ParamKind) String() string {
	switch k {
	case KindFormData:
		return "form-data"
	case KindFiles:
		return "files"
	default:
		return "unknown"
	}
}

// FileData is one uploaded file: its advertised name, its content type and
// the bytes themselves. Nothing is read from disk.
type FileData struct {
	FileName    string
	ContentType string
	Contents    []byte
}

// MultipartParam is a tagged value: either a list of plain form values or a
// list of files. Use the FormData and Files constructors.
type MultipartParam struct {
	Kind   ParamKind
	Values []string
	Files  []FileData
}

func FormData(values ...string) MultipartParam {
	return MultipartParam{Kind: KindFormData, Values: values}
}

func Files(files ...FileData) MultipartParam {
	return MultipartParam{Kind: KindFiles, Files: files}
}

// MultipartField pairs a field name with its parameter. Encoding preserves
// the order fields are listed in.
type MultipartField struct {
	Name  string
	Param MultipartParam
}

// EncodeMultipart renders fields as a multipart/form-data body and returns
// the bytes together with the top-level boundary.
//
// A single-value FormData becomes an ordinary form-data part. A FormData
// with several values becomes a part whose body is a nested multipart/mixed
// stream (fresh boundary) of bare, header-less sub-parts. Files always
// become a nested multipart/mixed stream whose sub-parts carry the file's
// content type, an attachment disposition with the file name, and a binary
// transfer encoding. A FormData or Files with no entries emits nothing, so
// the field disappears from the wire entirely.
func EncodeMultipart(fields []MultipartField) ([]byte, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.SetBoundary(boundary.Generate()); err != nil {
		return nil, "", fmt.Errorf("set boundary: %w", err)
	}

	for _, field := range fields {
		if err := encodeField(writer, field); err != nil {
			return nil, "", fmt.Errorf("encode field %q: %w", field.Name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body.Bytes(), writer.Boundary(), nil
}

func encodeField(writer *multipart.Writer, field MultipartField) error {
	switch field.Param.Kind {
	case KindFormData:
		values := field.Param.Values
		switch len(values) {
		case 0:
			return nil
		case 1:
			header := make(textproto.MIMEHeader)
			header.Set("Content-Disposition",
				fmt.Sprintf(`form-data; name="%s"`, escapeQuotes(field.Name)))
			part, err := writer.CreatePart(header)
			if err != nil {
				return err
			}
			_, err = part.Write([]byte(values[0]))
			return err
		default:
			return encodeMixed(writer, field.Name, func(sub *multipart.Writer) error {
				for _, value := range values {
					// Sub-parts of a multi-value field carry no headers at all.
					part, err := sub.CreatePart(textproto.MIMEHeader{})
					if err != nil {
						return err
					}
					if _, err := part.Write([]byte(value)); err != nil {
						return err
					}
				}
				return nil
			})
		}
	case KindFiles:
		files := field.Param.Files
		if len(files) == 0 {
			return nil
		}
		return encodeMixed(writer, field.Name, func(sub *multipart.Writer) error {
			for _, file := range files {
				header := make(textproto.MIMEHeader)
				header.Set("Content-Type", file.ContentType)
				header.Set("Content-Disposition",
					fmt.Sprintf(`attachment; filename="%s"`, escapeQuotes(file.FileName)))
				header.Set("Content-Transfer-Encoding", "binary")
				part, err := sub.CreatePart(header)
				if err != nil {
					return err
				}
				if _, err := part.Write(file.Contents); err != nil {
					return err
				}
			}
			return nil
		})
	default:
		return fmt.Errorf("unknown param kind %d", field.Param.Kind)
	}
}

// encodeMixed writes one outer form-data part whose body is a nested
// multipart/mixed stream with its own fresh boundary.
func encodeMixed(writer *multipart.Writer, name string, fill func(*multipart.Writer) error) error {
	inner := boundary.Generate()

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"`, escapeQuotes(name)))
	header.Set("Content-Type", "multipart/mixed; boundary="+inner)
	part, err := writer.CreatePart(header)
	if err != nil {
		return err
	}

	sub := multipart.NewWriter(part)
	if err := sub.SetBoundary(inner); err != nil {
		return err
	}
	if err := fill(sub); err != nil {
		return err
	}
	return sub.Close()
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
