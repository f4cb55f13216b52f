package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	cases := map[string]string{
		"":             DefaultTitle,
		"   ":          DefaultTitle,
		"\t\n":         DefaultTitle,
		"  Groceries ": "Groceries",
		"A":            "A",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeTitle(in), "input %q", in)
	}
}

func TestDisplayTitle(t *testing.T) {
	assert.Equal(t, DefaultTitle, Note{}.DisplayTitle())
	assert.Equal(t, "x", Note{Title: "x"}.DisplayTitle())
}

func TestModifiedRoundTrip(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	n := Note{UpdatedAt: Millis(now)}
	assert.True(t, n.Modified().Equal(now))
}

func TestExistingNoteApply(t *testing.T) {
	n := Note{ID: "1", Title: "old", Content: "old body", UpdatedAt: 5}
	got := ExistingNote{ID: "1", Title: "new", Content: "new body"}.Apply(n)
	assert.Equal(t, Note{ID: "1", Title: "new", Content: "new body", UpdatedAt: 5}, got)
}

func TestEditVariants(t *testing.T) {
	var edits = []Edit{NewNote{Title: "a", Content: "b"}, ExistingNote{ID: "x", Title: "c", Content: "d"}}
	title, content := edits[0].Fields()
	assert.Equal(t, "a", title)
	assert.Equal(t, "b", content)
	_, isExisting := edits[1].(ExistingNote)
	assert.True(t, isExisting)
}
