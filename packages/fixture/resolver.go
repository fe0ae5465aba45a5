package fixture

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// Resolver substitutes {{name}} variables and {{fn(args)}} builtin calls
// in fixture strings. Unresolved placeholders stay verbatim so they show
// up plainly in the built request.
type Resolver struct {
	vars  map[string]string
	funcs *registry
}

func NewResolver() *Resolver {
	return &Resolver{
		vars:  make(map[string]string),
		funcs: newRegistry(),
	}
}

func (r *Resolver) SetVar(name, value string) {
	r.vars[name] = value
}

// RegisterFunc adds or replaces a builtin available to fixtures.
func (r *Resolver) RegisterFunc(name string, fn Func) {
	r.funcs.register(name, fn)
}

func (r *Resolver) Resolve(input string) string {
	return placeholderPattern.ReplaceAllStringFunc(input, func(match string) string {
		expr := strings.TrimSpace(match[2 : len(match)-2])

		if strings.Contains(expr, "(") {
			if result, ok := r.funcs.call(expr); ok {
				return fmt.Sprintf("%v", result)
			}
			return match
		}
		if value, ok := r.vars[expr]; ok {
			return value
		}
		return match
	})
}
