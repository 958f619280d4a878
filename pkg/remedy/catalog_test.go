package remedy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIntegrity(t *testing.T) {
	assert.Equal(t, 39, Count())

	for id, r := range All() {
		assert.Equal(t, id, r.ID, "map key must match remedy ID")
		assert.NotEmpty(t, r.Name, "%s has no name", id)
		assert.NotEmpty(t, r.Symptoms, "%s has no symptoms", id)
		assert.NotEmpty(t, r.RemedyFor, "%s has no description", id)
		assert.True(t, r.Category.Valid(), "%s has invalid category %q", id, r.Category)

		for _, combo := range r.Combinations {
			_, ok := Get(combo)
			assert.True(t, ok, "%s lists unknown combination %q", id, combo)
		}
	}
}

func TestGet(t *testing.T) {
	r, ok := Get("mimulus")
	require.True(t, ok)
	assert.Equal(t, "Mimulus", r.Name)
	assert.Equal(t, CategoryFear, r.Category)

	_, ok = Get("nonexistent")
	assert.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	delete(all, "mimulus")

	_, ok := Get("mimulus")
	assert.True(t, ok)
	assert.Equal(t, 39, Count())
}

func TestIDsSorted(t *testing.T) {
	ids := IDs()
	require.Len(t, ids, Count())
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}

func TestIndexText(t *testing.T) {
	r := Remedy{
		Symptoms:       []string{"fear of known things", "shyness"},
		EmotionalState: "timid",
		RemedyFor:      "everyday fears",
	}

	text := r.IndexText()
	assert.True(t, strings.Contains(text, "fear of known things"))
	assert.True(t, strings.Contains(text, "timid"))
	assert.True(t, strings.Contains(text, "everyday fears"))
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid())
	}
	assert.False(t, Category("anger").Valid())
}
