package fixture

import (
	"fmt"
	nethttp "net/http"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abdul-hamid-achik/handlerspec/packages/builder"
	"github.com/abdul-hamid-achik/handlerspec/packages/http"
)

type Fixture struct {
	Name        string              `yaml:"name"`
	Method      string              `yaml:"method" validate:"omitempty,oneof=GET POST PUT DELETE HEAD PATCH OPTIONS"`
	Path        string              `yaml:"path" validate:"required,startswith=/"`
	Secure      bool                `yaml:"secure"`
	HTTPVersion string              `yaml:"httpVersion" validate:"omitempty,oneof=1.0 1.1 2.0"`
	Query       map[string][]string `yaml:"query"`
	Headers     map[string][]string `yaml:"headers"`
	Body        *BodySpec           `yaml:"body"`
}

type BodySpec struct {
	Type        string              `yaml:"type" validate:"required,oneof=raw urlencoded multipart"`
	ContentType string              `yaml:"contentType"`
	Raw         string              `yaml:"raw"`
	Form        map[string][]string `yaml:"form"`
	Files       []FileSpec          `yaml:"files" validate:"dive"`
}

type FileSpec struct {
	Field       string `yaml:"field" validate:"required"`
	FileName    string `yaml:"filename" validate:"required"`
	ContentType string `yaml:"contentType"`
	Content     string `yaml:"content"`
}

// LoadOption configures fixture loading.
type LoadOption func(*loadConfig)

type loadConfig struct {
	resolver *Resolver
}

// WithResolver substitutes a prepared resolver for the default one.
func WithResolver(r *Resolver) LoadOption {
	return func(cfg *loadConfig) {
		cfg.resolver = r
	}
}

// WithVar sets one variable on the loader's resolver.
func WithVar(name, value string) LoadOption {
	return func(cfg *loadConfig) {
		cfg.resolver.SetVar(name, value)
	}
}

// Load parses a YAML fixture, resolves its placeholders and validates it.
func Load(data []byte, opts ...LoadOption) (*Fixture, error) {
	cfg := &loadConfig{resolver: NewResolver()}
	for _, opt := range opts {
		opt(cfg)
	}

	var fx Fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	fx.resolve(cfg.resolver)

	if err := Validate(&fx); err != nil {
		return nil, err
	}
	return &fx, nil
}

// LoadFile reads and loads a fixture from path.
func LoadFile(path string, opts ...LoadOption) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	fx, err := Load(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return fx, nil
}

func (f *Fixture) resolve(r *Resolver) {
	f.Path = r.Resolve(f.Path)
	f.Query = resolveValues(r, f.Query)
	f.Headers = resolveValues(r, f.Headers)
	if f.Body == nil {
		return
	}
	f.Body.ContentType = r.Resolve(f.Body.ContentType)
	f.Body.Raw = r.Resolve(f.Body.Raw)
	f.Body.Form = resolveValues(r, f.Body.Form)
	for i := range f.Body.Files {
		f.Body.Files[i].FileName = r.Resolve(f.Body.Files[i].FileName)
		f.Body.Files[i].Content = r.Resolve(f.Body.Files[i].Content)
	}
}

func resolveValues(r *Resolver, m map[string][]string) map[string][]string {
	if m == nil {
		return nil
	}
	resolved := make(map[string][]string, len(m))
	for key, values := range m {
		out := make([]string, len(values))
		for i, value := range values {
			out[i] = r.Resolve(value)
		}
		resolved[key] = out
	}
	return resolved
}

// Configure replays the fixture onto a builder in the canonical op order:
// request type first, then query, then path, then headers, version and
// the secure flag.
func (f *Fixture) Configure(b *builder.Builder) {
	f.configureType(b)
	b.SetQueryString(url.Values(f.Query))
	b.SetRequestPath(f.Path)

	for _, key := range sortedKeys(f.Headers) {
		for _, value := range f.Headers[key] {
			b.AddHeader(key, value)
		}
	}
	if f.HTTPVersion != "" {
		major, minor := splitVersion(f.HTTPVersion)
		b.SetHTTPVersion(major, minor)
	}
	b.SetSecure(f.Secure)
}

// Build runs the fixture through a fresh builder.
func (f *Fixture) Build() (*http.Request, error) {
	b := builder.New()
	f.Configure(b)
	return b.Build()
}

func (f *Fixture) configureType(b *builder.Builder) {
	if f.Body == nil {
		switch f.Method {
		case "", nethttp.MethodGet:
			b.SetRequestType(builder.GetRequest())
		case nethttp.MethodDelete:
			b.SetRequestType(builder.DeleteRequest())
		default:
			b.SetRequestType(builder.RawBody(f.Method, nil))
		}
		return
	}

	switch f.Body.Type {
	case "urlencoded":
		b.SetRequestType(builder.URLEncodedParams(url.Values(f.Body.Form)))
	case "multipart":
		b.SetRequestType(builder.MultipartParams(f.multipartFields()))
	default:
		method := f.Method
		if method == "" {
			method = nethttp.MethodPost
		}
		b.SetRequestType(builder.RawBody(method, []byte(f.Body.Raw)))
		if f.Body.ContentType != "" {
			b.SetContentType(f.Body.ContentType)
		}
	}
}

// multipartFields lists scalar fields sorted by name, then file fields
// grouped by field name in first-appearance order. YAML maps carry no
// reliable order, so sorting keeps the encoding deterministic.
func (f *Fixture) multipartFields() []http.MultipartField {
	var fields []http.MultipartField
	for _, name := range sortedKeys(f.Body.Form) {
		fields = append(fields, http.MultipartField{
			Name:  name,
			Param: http.FormData(f.Body.Form[name]...),
		})
	}

	var order []string
	groups := make(map[string][]http.FileData)
	for _, spec := range f.Body.Files {
		if _, seen := groups[spec.Field]; !seen {
			order = append(order, spec.Field)
		}
		groups[spec.Field] = append(groups[spec.Field], http.FileData{
			FileName:    spec.FileName,
			ContentType: spec.ContentType,
			Contents:    []byte(spec.Content),
		})
	}
	for _, name := range order {
		fields = append(fields, http.MultipartField{
			Name:  name,
			Param: http.Files(groups[name]...),
		})
	}
	return fields
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func splitVersion(s string) (int, int) {
	rawMajor, rawMinor, _ := strings.Cut(s, ".")
	major, _ := strconv.Atoi(rawMajor)
	minor, _ := strconv.Atoi(rawMinor)
	return major, minor
}
