package drive

import (
	"fmt"
	"log"
	nethttp "net/http"
	"net/http/httptest"
	"time"

	"github.com/abdul-hamid-achik/handlerspec/packages/builder"
	"github.com/abdul-hamid-achik/handlerspec/packages/http"
)

// Strategy executes a finished request and produces the response. Errors
// returned by a strategy pass through the runner untouched.
type Strategy func(*http.Request) (*http.Response, error)

// Option is a functional option for Driver
type Option func(*Driver)

// WithVerbose enables request/response logging
func WithVerbose(verbose bool) Option {
	return func(d *Driver) {
		d.verbose = verbose
	}
}

// WithLogger redirects verbose output away from the standard logger
func WithLogger(logger *log.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// Driver builds requests and runs them through a strategy.
type Driver struct {
	strategy Strategy
	verbose  bool
	logger   *log.Logger
}

func NewDriver(strategy Strategy, opts ...Option) *Driver {
	d := &Driver{
		strategy: strategy,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run applies configure to a fresh builder, builds the request (which
// fixes it up), executes it, and stamps the Date header on the response.
func (d *Driver) Run(configure func(*builder.Builder)) (*http.Response, error) {
	b := builder.New()
	configure(b)

	rq, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	start := time.Now()
	rsp, err := d.strategy(rq)
	if err != nil {
		return nil, err
	}
	if rsp == nil {
		return nil, nil
	}

	rsp.Headers.Set("Date", time.Now().UTC().Format(nethttp.TimeFormat))

	if d.verbose {
		d.logger.Printf("%s %s -> %d (%s)", rq.Method, rq.URI, rsp.Status, time.Since(start))
	}
	return rsp, nil
}

// Run builds a request via configure and executes it with strategy.
func Run(configure func(*builder.Builder), strategy Strategy) (*http.Response, error) {
	return NewDriver(strategy).Run(configure)
}

// RunHandler builds a request via configure and executes it against
// handler with the canonical Serve strategy.
func RunHandler(configure func(*builder.Builder), handler nethttp.Handler) (*http.Response, error) {
	return Run(configure, Serve(handler))
}

// Serve adapts an http.Handler into the canonical in-process strategy.
func Serve(handler nethttp.Handler) Strategy {
	return func(rq *http.Request) (*http.Response, error) {
		std, err := ToStdRequest(rq)
		if err != nil {
			return nil, fmt.Errorf("convert request: %w", err)
		}

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, std)

		return CaptureResponse(recorder), nil
	}
}
