package assert

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"

	"github.com/abdul-hamid-achik/handlerspec/packages/http"
)

// Success fails the test unless the response status is exactly 200.
func Success(t testing.TB, rsp *http.Response) {
	t.Helper()
	Status(t, rsp, 200)
}

// NotFound fails the test unless the response status is exactly 404.
func NotFound(t testing.TB, rsp *http.Response) {
	t.Helper()
	Status(t, rsp, 404)
}

func Status(t testing.TB, rsp *http.Response, want int) {
	t.Helper()
	if rsp.Status != want {
		t.Errorf("expected status %d, got %d %s", want, rsp.Status, rsp.Reason)
	}
}

// Redirect fails the test unless the status is in the 3xx range.
func Redirect(t testing.TB, rsp *http.Response) {
	t.Helper()
	if !rsp.IsRedirect() {
		t.Errorf("expected redirect status, got %d %s", rsp.Status, rsp.Reason)
	}
}

// RedirectTo fails the test unless the response redirects exactly to
// target.
func RedirectTo(t testing.TB, rsp *http.Response, target string) {
	t.Helper()
	Redirect(t, rsp)
	if location := rsp.Headers.Get("Location"); location != target {
		t.Errorf("expected redirect to %q, got %q", target, location)
	}
}

func HeaderEqual(t testing.TB, rsp *http.Response, key, want string) {
	t.Helper()
	if got := rsp.Headers.Get(key); got != want {
		t.Errorf("expected header %s to be %q, got %q", key, want, got)
	}
}

// BodyContains fails the test unless the body matches pattern. The
// pattern is a regular expression, not a literal substring.
func BodyContains(t testing.TB, rsp *http.Response, pattern string) {
	t.Helper()
	re, err := regexp.Compile(pattern)
	if err != nil {
		t.Fatalf("invalid body pattern %q: %v", pattern, err)
		return
	}
	body := readBody(t, rsp)
	if !re.Match(body) {
		t.Errorf("expected body to match %q, body: %s", pattern, truncate(body))
	}
}

// JSONPath looks up path in the JSON body using gjson syntax and compares
// the value found there against want.
func JSONPath(t testing.TB, rsp *http.Response, path string, want any) {
	t.Helper()
	body := readBody(t, rsp)
	result := gjson.GetBytes(body, path)
	if !result.Exists() {
		t.Errorf("expected JSON path %q to exist, body: %s", path, truncate(body))
		return
	}
	if got := result.Value(); fmt.Sprintf("%v", got) != fmt.Sprintf("%v", want) {
		t.Errorf("expected %v at %q, got %v", want, path, got)
	}
}

// MatchesSchema validates the JSON body against a JSON Schema document.
func MatchesSchema(t testing.TB, rsp *http.Response, schema []byte) {
	t.Helper()
	body := readBody(t, rsp)

	schemaLoader := gojsonschema.NewBytesLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(body)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		t.Fatalf("schema validation error: %v", err)
		return
	}
	if !result.Valid() {
		var messages []string
		for _, desc := range result.Errors() {
			messages = append(messages, desc.String())
		}
		t.Errorf("schema validation failed: %s", strings.Join(messages, "; "))
	}
}

func readBody(t testing.TB, rsp *http.Response) []byte {
	t.Helper()
	body, err := rsp.ReadBody()
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return body
}

func truncate(body []byte) string {
	const maxLen = 200
	if len(body) > maxLen {
		return string(body[:maxLen]) + "..."
	}
	return string(body)
}
