package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sample() []Note {
	return []Note{
		{ID: "1", Title: "Groceries", Content: "milk, eggs"},
		{ID: "2", Title: "Ideas", Content: "A TUI for notes"},
		{ID: "3", Title: "", Content: "buy MILK again"},
	}
}

func TestFilter_EmptyQueryPassesEverything(t *testing.T) {
	notes := sample()
	assert.Equal(t, notes, Filter(notes, ""))
	assert.Equal(t, notes, Filter(notes, "   "))
}

func TestFilter_CaseInsensitiveOverTitleAndContent(t *testing.T) {
	got := Filter(sample(), "Milk")
	ids := make([]string, 0, len(got))
	for _, n := range got {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"1", "3"}, ids, "order follows the input")

	got = Filter(sample(), "ideas")
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestFilter_NoMatchLeavesInputUntouched(t *testing.T) {
	notes := sample()
	before := append([]Note(nil), notes...)

	assert.Empty(t, Filter(notes, "zzz"))
	assert.Equal(t, before, notes)
}
