package boundary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider_LookupIsCaseInsensitive(t *testing.T) {
	p := NewStaticProvider()

	lower, ok := p.Lookup("manhattan")
	require.True(t, ok)

	upper, ok := p.Lookup("MANHATTAN")
	require.True(t, ok)
	assert.Equal(t, lower, upper)

	padded, ok := p.Lookup("  Brooklyn ")
	require.True(t, ok)
	assert.NotEmpty(t, padded)
}

func TestStaticProvider_UnknownBorough(t *testing.T) {
	p := NewStaticProvider()
	_, ok := p.Lookup("queens")
	assert.False(t, ok)
}

func TestStaticProvider_RingsAreClosed(t *testing.T) {
	p := NewStaticProvider()
	for _, name := range []string{"manhattan", "brooklyn"} {
		poly, ok := p.Lookup(name)
		require.True(t, ok, name)
		require.GreaterOrEqual(t, len(poly), 4, name)
		assert.Equal(t, poly[0], poly[len(poly)-1], "%s ring must close", name)
	}
}
