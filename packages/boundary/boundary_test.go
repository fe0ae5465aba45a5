package boundary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_Format(t *testing.T) {
	b := Generate()

	assert.True(t, strings.HasPrefix(b, "boundary-"))
	assert.Len(t, b, len("boundary-")+32)

	hexPart := strings.TrimPrefix(b, "boundary-")
	for _, c := range hexPart {
		assert.Contains(t, "0123456789abcdef", string(c))
	}
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		b := Generate()
		assert.False(t, seen[b], "boundary %q generated twice", b)
		seen[b] = true
	}
}
