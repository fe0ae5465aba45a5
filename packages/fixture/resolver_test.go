package fixture

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Vars(t *testing.T) {
	r := NewResolver()
	r.SetVar("id", "42")

	assert.Equal(t, "/users/42", r.Resolve("/users/{{id}}"))
	assert.Equal(t, "/users/{{missing}}", r.Resolve("/users/{{missing}}"))
}

func TestResolver_UUID(t *testing.T) {
	r := NewResolver()

	out := r.Resolve("{{uuid()}}")
	_, err := uuid.Parse(out)
	require.NoError(t, err)

	assert.NotEqual(t, out, r.Resolve("{{uuid()}}"))
}

func TestResolver_Now(t *testing.T) {
	r := NewResolver()

	out := r.Resolve("{{now()}}")
	_, err := time.Parse(time.RFC3339, out)
	assert.NoError(t, err)
}

func TestResolver_Timestamp(t *testing.T) {
	r := NewResolver()

	out := r.Resolve("{{timestamp()}}")
	_, err := strconv.ParseInt(out, 10, 64)
	assert.NoError(t, err)
}

func TestResolver_RandomString(t *testing.T) {
	r := NewResolver()

	assert.Len(t, r.Resolve("{{randomString()}}"), 16)
	assert.Len(t, r.Resolve("{{randomString(8)}}"), 8)

	// A negative length yields an empty string.
	assert.Empty(t, r.Resolve("{{randomString(-3)}}"))
}

func TestResolver_CustomFunc(t *testing.T) {
	r := NewResolver()
	r.RegisterFunc("echo", func(args []string) any {
		return strings.Join(args, "|")
	})

	assert.Equal(t, "a|b c", r.Resolve("{{echo(a, 'b c')}}"))
}

func TestResolver_UnknownFuncStaysVerbatim(t *testing.T) {
	r := NewResolver()

	assert.Equal(t, "{{nope(1)}}", r.Resolve("{{nope(1)}}"))
}

func TestResolver_MixedText(t *testing.T) {
	r := NewResolver()
	r.SetVar("user", "alice")
	r.SetVar("host", "example.com")

	assert.Equal(t, "alice@example.com", r.Resolve("{{user}}@{{host}}"))
}
