package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Unique(t *testing.T) {
	g := UUIDGenerator{}
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		id := g.Generate()
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.False(t, seen[id], "id %s generated twice", id)
		seen[id] = true
	}
}

func TestNanoIDGenerator_Format(t *testing.T) {
	id := NanoIDGenerator{}.Generate()
	assert.Len(t, id, 21)
	assert.NotEqual(t, id, NanoIDGenerator{}.Generate())
}

func TestForFormat(t *testing.T) {
	assert.IsType(t, NanoIDGenerator{}, ForFormat("nanoid"))
	assert.IsType(t, UUIDGenerator{}, ForFormat("uuid"))
	assert.IsType(t, UUIDGenerator{}, ForFormat(""))
}

func TestFixedGenerator(t *testing.T) {
	g := NewFixedGenerator("a", "b")

	assert.Equal(t, "a", g.Generate())
	assert.Equal(t, "b", g.Generate())
	assert.Panics(t, func() { g.Generate() })
}

func TestSequenceGenerator(t *testing.T) {
	g := NewSequenceGenerator("card")

	assert.Equal(t, "card-1", g.Generate())
	assert.Equal(t, "card-2", g.Generate())
	assert.Equal(t, "card-3", g.Generate())
}
