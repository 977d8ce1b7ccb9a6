package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaKeepsRowOrder(t *testing.T) {
	s := NewSchema("S")
	s.Set("b", String())
	s.Set("a", Boolean())
	s.Set("c", Object())

	props := s.Properties()
	require.Len(t, props, 3)
	assert.Equal(t, "b", props[0].Name)
	assert.Equal(t, "a", props[1].Name)
	assert.Equal(t, "c", props[2].Name)
}

func TestSchemaDuplicateCollapsesToLastSeen(t *testing.T) {
	s := NewSchema("S")
	s.Set("id", String())
	s.Set("n", Integer(FormatInt32))
	s.Set("id", Boolean())

	assert.Equal(t, 2, s.Len())
	got, ok := s.Get("id")
	require.True(t, ok)
	assert.Equal(t, Boolean(), got)
	assert.Equal(t, "id", s.Properties()[0].Name)
}

func TestSchemaGetMissing(t *testing.T) {
	_, ok := NewSchema("S").Get("nope")
	assert.False(t, ok)
}

func TestSchemaZeroValue(t *testing.T) {
	var s Schema
	s.Set("x", String())
	assert.Equal(t, 1, s.Len())
}

func TestMapOrderAndLastWriteWins(t *testing.T) {
	m := NewMap()
	first := NewSchema("B")
	m.Set(first)
	m.Set(NewSchema("A"))
	second := NewSchema("B")
	second.Set("x", String())
	m.Set(second)

	assert.Equal(t, []string{"B", "A"}, m.Names())
	assert.Equal(t, 2, m.Len())

	got, ok := m.Get("B")
	require.True(t, ok)
	assert.Same(t, second, got)

	var seen []string
	for name := range m.All() {
		seen = append(seen, name)
	}
	assert.Equal(t, []string{"B", "A"}, seen)
}

func TestMapAllStopsEarly(t *testing.T) {
	m := NewMap()
	m.Set(NewSchema("A"))
	m.Set(NewSchema("B"))
	count := 0
	for range m.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestMapNamesIsCopy(t *testing.T) {
	m := NewMap()
	m.Set(NewSchema("A"))
	names := m.Names()
	names[0] = "Z"
	assert.Equal(t, []string{"A"}, m.Names())
}
