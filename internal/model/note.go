package model

import (
	"strings"
	"time"
)

// DefaultTitle replaces an empty or blank title.
const DefaultTitle = "Untitled"

// Note is the domain model for a persisted note.
// UpdatedAt is epoch milliseconds and is always set by the persistence layer.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UpdatedAt int64  `json:"updatedAt"`
}

// Modified returns UpdatedAt as a local time.
func (n Note) Modified() time.Time {
	return time.UnixMilli(n.UpdatedAt)
}

// DisplayTitle is the title as shown in lists.
func (n Note) DisplayTitle() string {
	if n.Title == "" {
		return DefaultTitle
	}
	return n.Title
}

// NormalizeTitle trims t and substitutes DefaultTitle when nothing is left.
func NormalizeTitle(t string) string {
	t = strings.TrimSpace(t)
	if t == "" {
		return DefaultTitle
	}
	return t
}

// Millis converts t to the epoch-millisecond form stored in UpdatedAt.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}
