package fixture

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Func generates the value for one {{name(args)}} placeholder.
type Func func(args []string) any

type registry struct {
	funcs map[string]Func
}

func newRegistry() *registry {
	r := &registry{funcs: make(map[string]Func)}
	r.register("uuid", funcUUID)
	r.register("now", funcNow)
	r.register("timestamp", funcTimestamp)
	r.register("randomString", funcRandomString)
	return r
}

func (r *registry) register(name string, fn Func) {
	r.funcs[name] = fn
}

var funcCallPattern = regexp.MustCompile(`^(\w+)\((.*)\)$`)

func (r *registry) call(expr string) (any, bool) {
	matches := funcCallPattern.FindStringSubmatch(expr)
	if matches == nil {
		return nil, false
	}
	fn, ok := r.funcs[matches[1]]
	if !ok {
		return nil, false
	}
	return fn(splitArgs(matches[2])), true
}

// splitArgs separates comma-delimited arguments, honoring single and
// double quotes.
func splitArgs(s string) []string {
	if s == "" {
		return nil
	}
	var args []string
	var current strings.Builder
	var quote byte

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			} else {
				current.WriteByte(ch)
			}
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == ',':
			args = append(args, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	args = append(args, strings.TrimSpace(current.String()))
	return args
}

func funcUUID(_ []string) any {
	return uuid.New().String()
}

func funcNow(_ []string) any {
	return time.Now().UTC().Format(time.RFC3339)
}

func funcTimestamp(_ []string) any {
	return time.Now().Unix()
}

const randomStringCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func funcRandomString(args []string) any {
	length := 16
	if len(args) >= 1 {
		if v, err := strconv.Atoi(args[0]); err == nil {
			if v < 0 {
				v = 0
			}
			length = v
		}
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = randomStringCharset[rand.Intn(len(randomStringCharset))]
	}
	return string(b)
}
