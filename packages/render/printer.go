package render

import (
	"fmt"
	"io"
	nethttp "net/http"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/abdul-hamid-achik/handlerspec/packages/http"
)

// Printer writes requests and responses in wire-like shape: a first line,
// headers sorted by name, a blank separator, then the body.
type Printer struct {
	writer io.Writer
	color  bool
}

type Option func(*Printer)

// NewPrinter defaults to stdout with color enabled only when stdout is a
// terminal.
func NewPrinter(opts ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		color:  isatty.IsTerminal(os.Stdout.Fd()),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithWriter redirects output. Color stays on only for terminal files.
func WithWriter(w io.Writer) Option {
	return func(p *Printer) {
		p.writer = w
		if f, ok := w.(*os.File); ok {
			p.color = isatty.IsTerminal(f.Fd())
		} else {
			p.color = false
		}
	}
}

// WithColor forces color on or off regardless of the writer.
func WithColor(enabled bool) Option {
	return func(p *Printer) {
		p.color = enabled
	}
}

// PrintResponse writes the status line, sorted headers and body. The body
// is read through the restoring reader, so assertions can still follow.
func (p *Printer) PrintResponse(rsp *http.Response) error {
	statusColor := p.statusColor(rsp.Status)
	fmt.Fprintf(p.writer, "%s %s\n", rsp.Version.String(),
		statusColor(fmt.Sprintf("%d %s", rsp.Status, rsp.Reason)))

	p.printHeaders(rsp.Headers)
	fmt.Fprintln(p.writer)

	body, err := rsp.ReadBody()
	if err != nil {
		return err
	}
	p.printBody(body)
	return nil
}

// PrintRequest writes the request line, sorted headers and body.
func (p *Printer) PrintRequest(rq *http.Request) error {
	methodColor := p.sprintFunc(color.FgMagenta)
	fmt.Fprintf(p.writer, "%s %s %s\n", methodColor(rq.Method), rq.URI, rq.Version.String())

	p.printHeaders(rq.Headers)
	fmt.Fprintln(p.writer)

	body, err := rq.ReadBody()
	if err != nil {
		return err
	}
	p.printBody(body)
	return nil
}

func (p *Printer) printHeaders(headers nethttp.Header) {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	nameColor := p.sprintFunc(color.FgCyan)
	for _, name := range names {
		for _, value := range headers[name] {
			fmt.Fprintf(p.writer, "%s: %s\n", nameColor(name), value)
		}
	}
}

func (p *Printer) printBody(body []byte) {
	if len(body) == 0 {
		return
	}
	_, _ = p.writer.Write(body)
	if body[len(body)-1] != '\n' {
		fmt.Fprintln(p.writer)
	}
}

func (p *Printer) statusColor(status int) func(...any) string {
	switch {
	case status >= 200 && status < 300:
		return p.sprintFunc(color.FgGreen)
	case status >= 300 && status < 400:
		return p.sprintFunc(color.FgYellow)
	default:
		return p.sprintFunc(color.FgRed)
	}
}

func (p *Printer) sprintFunc(attr color.Attribute) func(...any) string {
	if !p.color {
		return fmt.Sprint
	}
	return color.New(attr).SprintFunc()
}
