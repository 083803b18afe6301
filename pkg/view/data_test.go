package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lizardui/pkg/view"
)

func TestData(t *testing.T) {
	t.Parallel()

	d := view.NewData()
	assert.ErrorIs(t, d.Set("", 1), view.ErrEmptyKey)
	assert.ErrorIs(t, d.Set(view.ViewKey, 1), view.ErrReservedKey)
	assert.Zero(t, d.Len())

	require.NoError(t, d.Set("zeta", 1))
	require.NoError(t, d.Set("alpha", "a"))
	assert.Equal(t, []string{"alpha", "zeta"}, d.Keys())

	v, ok := d.Get("zeta")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	n, ok := view.Value[int](d, "zeta")
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	_, ok = view.Value[string](d, "zeta")
	assert.False(t, ok)

	m := d.Map()
	m["injected"] = true
	_, ok = d.Get("injected")
	assert.False(t, ok, "Map returns a copy")
}
