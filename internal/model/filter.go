package model

import "strings"

// Matches reports whether query occurs in the title or content,
// ignoring case and surrounding whitespace. An empty query matches.
func (n Note) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Content), q)
}

// Filter returns the notes matching query in their original order.
// The input slice is never modified; an empty query returns it as is.
func Filter(notes []Note, query string) []Note {
	if strings.TrimSpace(query) == "" {
		return notes
	}
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if n.Matches(query) {
			out = append(out, n)
		}
	}
	return out
}
