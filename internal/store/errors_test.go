package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("update: %w", &NotFoundError{ID: "abc"})
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "abc")

	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, "abc", nf.ID)
}

func TestRequestErrorMessage(t *testing.T) {
	err := &RequestError{StatusCode: 502, Body: "bad gateway"}
	assert.Equal(t, "request failed: 502 bad gateway", err.Error())
	assert.False(t, errors.Is(err, ErrNotFound))
}
